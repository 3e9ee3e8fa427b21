package atmosphere_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/NathanVRyver/Ascent/internal/atmosphere"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

var _ = Describe("AirDensity", func() {
	It("matches the ISA sea-level value for dry standard air", func() {
		rho := atmosphere.AirDensity(15, 101325, 0)
		Expect(rho).To(BeNumerically("~", 1.225, 0.001))
	})

	It("decreases with humidity", func() {
		dry := atmosphere.AirDensity(15, 101325, 0)
		humid := atmosphere.AirDensity(15, 101325, 1)
		Expect(humid).To(BeNumerically("<", dry))
	})

	It("decreases with temperature", func() {
		cold := atmosphere.AirDensity(0, 101325, 0.5)
		hot := atmosphere.AirDensity(35, 101325, 0.5)
		Expect(hot).To(BeNumerically("<", cold))
	})

	It("increases with pressure", func() {
		low := atmosphere.AirDensity(15, 95000, 0.5)
		high := atmosphere.AirDensity(15, 103000, 0.5)
		Expect(high).To(BeNumerically(">", low))
	})
})

var _ = Describe("DensityAltitude", func() {
	It("equals pressure altitude at the standard lapse temperature", func() {
		standardTemp := 15.0 - 0.00198*1000
		Expect(atmosphere.DensityAltitude(1000, standardTemp)).To(BeNumerically("~", 1000, 1e-9))
	})

	It("rises on hot days", func() {
		Expect(atmosphere.DensityAltitude(1000, 35)).To(BeNumerically(">", 1000))
	})
})

var _ = Describe("Wind sampler", func() {
	var weather atmosphere.Weather

	BeforeEach(func() {
		weather = atmosphere.DefaultWeather()
	})

	It("stays within the configured envelope", func() {
		s := atmosphere.NewSampler(weather, 1)
		limit := s.MaxWindSpeed() + 1e-9
		for i := 0; i < 500; i++ {
			w := s.At(vec.New(float64(i), 10, 0), float64(i)*0.01)
			Expect(w.Len()).To(BeNumerically("<=", limit))
		}
	})

	It("is deterministic for a fixed seed", func() {
		a := atmosphere.NewSampler(weather, 99)
		b := atmosphere.NewSampler(weather, 99)
		for i := 0; i < 100; i++ {
			pos := vec.New(float64(i), 5, 2)
			t := float64(i) * 0.01
			Expect(a.At(pos, t)).To(Equal(b.At(pos, t)))
		}
	})

	It("reduces to base wind with turbulence and gusts disabled", func() {
		weather.TurbulenceIntensity = 0
		weather.GustFrequency = 0
		s := atmosphere.NewSampler(weather, 7)
		w := s.At(vec.New(3, 10, 4), 1.5)
		Expect(w).To(Equal(weather.BaseWind))
	})

	It("varies over position and time with turbulence enabled", func() {
		s := atmosphere.NewSampler(weather, 7)
		a := s.At(vec.New(0, 10, 0), 0)
		b := s.At(vec.New(40, 10, 25), 3)
		Expect(a).NotTo(Equal(b))
	})
})

var _ = Describe("Conditions", func() {
	It("derives the full per-tick atmosphere state", func() {
		s := atmosphere.NewSampler(atmosphere.DefaultWeather(), 3)
		atmos := s.Conditions(vec.New(0, 5, 0), 0)
		Expect(atmos.AirDensity).To(BeNumerically(">", 1.1))
		Expect(atmos.AirDensity).To(BeNumerically("<", 1.3))
		Expect(atmos.Temperature).To(Equal(atmosphere.DefaultTemperature))
		Expect(atmos.TurbulenceIntensity).To(Equal(0.1))
	})
})

var _ = Describe("RelativeAirspeed", func() {
	It("subtracts the moving air mass", func() {
		rel := atmosphere.RelativeAirspeed(vec.New(10, 0, 0), vec.New(4, 0, -1))
		Expect(rel).To(Equal(vec.New(6, 0, 1)))
	})
})
