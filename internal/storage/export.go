package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/NathanVRyver/Ascent/internal/telemetry"
)

type ExportData struct {
	Meta    RunMetadata        `json:"meta"`
	Samples []telemetry.Sample `json:"samples"`
}

// ExportJSON writes a full run (metadata plus every telemetry sample) as
// indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, samples []telemetry.Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Samples: samples})
}

// ExportRunJSON loads a stored run and re-serializes it as JSON. Column
// data is reconstructed from the CSV.
func (s *Store) ExportRunJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	cols, err := s.LoadColumns(runID)
	if err != nil {
		return err
	}

	n := len(cols["time"])
	samples := make([]telemetry.Sample, n)
	at := func(name string, i int) float64 {
		c := cols[name]
		if i < len(c) {
			return c[i]
		}
		return 0
	}
	for i := 0; i < n; i++ {
		samples[i] = telemetry.Sample{
			Time:          at("time", i),
			Altitude:      at("altitude", i),
			Airspeed:      at("airspeed", i),
			VerticalSpeed: at("vertical_speed", i),
			AngleOfAttack: at("angle_of_attack", i),
			Lift:          at("lift_force", i),
			Drag:          at("drag_force", i),
			Thrust:        at("thrust_force", i),
			Net:           at("net_force", i),
			Stalled:       at("stalled", i) != 0,
			Flapping:      at("flapping", i) != 0,
			WindSpeed:     at("wind_speed", i),
			AirDensity:    at("air_density", i),
		}
		samples[i].Position.X = at("position_x", i)
		samples[i].Position.Y = at("position_y", i)
		samples[i].Position.Z = at("position_z", i)
		samples[i].Velocity.X = at("velocity_x", i)
		samples[i].Velocity.Y = at("velocity_y", i)
		samples[i].Velocity.Z = at("velocity_z", i)
		samples[i].Acceleration.X = at("acceleration_x", i)
		samples[i].Acceleration.Y = at("acceleration_y", i)
		samples[i].Acceleration.Z = at("acceleration_z", i)
	}

	return ExportJSON(w, *meta, samples)
}

// ExportRunCSV copies a stored run's telemetry to the given path.
func (s *Store) ExportRunCSV(runID, path string) error {
	data, err := os.ReadFile(s.telemetryPath(runID))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Store) telemetryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "telemetry.csv")
}
