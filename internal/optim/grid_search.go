// Package optim sweeps airframe parameters against a pluggable objective.
package optim

import (
	"context"
	"math"

	"github.com/NathanVRyver/Ascent/internal/flight"
)

// Objective scores a finished run; lower is better. Maximizing metrics
// negate their value.
type Objective func(*flight.Result) float64

// MaxDistance rewards cumulative distance traveled.
func MaxDistance(r *flight.Result) float64 {
	return -r.Metrics["distance"]
}

// MaxAirborneTime rewards time spent off the ground.
func MaxAirborneTime(r *flight.Result) float64 {
	return -r.Metrics["airborne_time"]
}

// SafeDistance rewards distance but disqualifies crashed runs.
func SafeDistance(r *flight.Result) float64 {
	if r.Metrics["crashed"] > 0 {
		return math.Inf(1)
	}
	return -r.Metrics["distance"]
}

// Objectives maps CLI names to built-in objectives.
var Objectives = map[string]Objective{
	"distance":      MaxDistance,
	"airborne_time": MaxAirborneTime,
	"safe_distance": SafeDistance,
}

// BuildFunc materializes a fresh simulator for one parameter combination.
type BuildFunc func(params map[string]float64) (*flight.Simulator, flight.Config, error)

// GridSearch exhaustively sweeps the cartesian product of parameter
// ranges, minimizing the objective.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Range builds an inclusive sweep from lo to hi in n steps.
func Range(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}

func (g *GridSearch) Search(ctx context.Context, build BuildFunc, objective Objective) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), build, objective, &best, &bestParams)

	return bestParams, best, ctx.Err()
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build BuildFunc,
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}

	if depth == len(g.paramNames) {
		sim, cfg, err := build(current)
		if err != nil {
			return
		}

		result, err := sim.Run(ctx, cfg)
		if err != nil {
			return
		}

		val := objective(result)
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val

		g.searchRecursive(ctx, depth+1, next, build, objective, best, bestParams)
	}
}
