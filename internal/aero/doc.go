// Package aero provides the closed-form aerodynamic force functions:
// lift, parasitic/induced drag, stall attenuation, ground effect and
// propulsive thrust. All functions are pure and total over their domain;
// near-zero airspeed yields zero force rather than an error.
package aero
