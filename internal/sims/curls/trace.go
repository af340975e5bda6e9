package curls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// TraceResult captures telemetry from a deterministic run used for tuning.
type TraceResult struct {
	// TipHeights records the mean Y of the strand tips after every step.
	TipHeights []float64
	// Sag is the mean vertical drop from root to tip at the end of the run.
	Sag float64
	// MaxSegment is the longest root-to-tip neighbour distance at the end of
	// the run.
	MaxSegment float64
	// Finite reports whether every position stayed finite throughout.
	Finite bool
	// StepsSimulated reports how many steps were executed.
	StepsSimulated int
}

// SweepCandidate pairs a parameter set with the telemetry it produced.
type SweepCandidate struct {
	Params Params
	Result TraceResult
}

// Trace runs a fresh World built from cfg for steps steps of dt seconds and
// returns its telemetry.
func Trace(cfg Config, steps int, dt float64) (TraceResult, error) {
	w, err := NewWithConfig(cfg)
	if err != nil {
		return TraceResult{}, err
	}
	if steps < 0 {
		steps = 0
	}
	res := TraceResult{Finite: true, TipHeights: make([]float64, 0, steps)}
	for i := 0; i < steps; i++ {
		w.Step(dt)
		res.StepsSimulated++
		res.TipHeights = append(res.TipHeights, meanTipHeight(w.sim))
		if res.Finite && !allFinite(w.Positions()) {
			res.Finite = false
		}
	}
	res.Sag, res.MaxSegment = strandStats(w.sim)
	return res, nil
}

// Sweep traces every candidate parameter set against base, running up to
// workers traces at once. Results keep the order of candidates.
func Sweep(base Config, candidates []Params, steps int, dt float64, workers int) ([]SweepCandidate, error) {
	if workers <= 0 {
		workers = 1
	}
	out := make([]SweepCandidate, len(candidates))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, params := range candidates {
		g.Go(func() error {
			cfg := base
			cfg.Params = params
			// Each trace runs single-threaded; the sweep is the parallel axis.
			cfg.Workers = 1
			res, err := Trace(cfg, steps, dt)
			if err != nil {
				return err
			}
			out[i] = SweepCandidate{Params: params, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SpringGrid expands base into every combination of spring lengths and
// dampenings.
func SpringGrid(base Params, lengths, dampenings []float64) []Params {
	out := make([]Params, 0, len(lengths)*len(dampenings))
	for _, l := range lengths {
		for _, d := range dampenings {
			p := base
			p.MaxSpringLength = l
			p.SpringDampening = d
			out = append(out, p)
		}
	}
	return out
}

func meanTipHeight(s *Simulator) float64 {
	shape := s.Shape()
	sum := 0.0
	for strand := 0; strand < shape.Strands; strand++ {
		sum += s.Position(strand, shape.Points-1)[1]
	}
	return sum / float64(shape.Strands)
}

func strandStats(s *Simulator) (sag, maxSegment float64) {
	shape := s.Shape()
	for strand := 0; strand < shape.Strands; strand++ {
		pts := s.Strand(strand)
		sag += pts[0][1] - pts[len(pts)-1][1]
		for i := 1; i < len(pts); i++ {
			if d := pts[i].Sub(pts[i-1]).Len(); d > maxSegment {
				maxSegment = d
			}
		}
	}
	return sag / float64(shape.Strands), maxSegment
}

func allFinite(points []mgl64.Vec3) bool {
	for _, p := range points {
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
