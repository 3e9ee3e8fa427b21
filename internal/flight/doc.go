// Package flight is the simulation core: flyer state, per-tick force
// accumulation, semi-implicit Euler integration with ground-contact
// classification, and a batch simulator with metrics and observers.
// It has no rendering or persistence dependency; presentation adapters
// read the exported state.
package flight
