package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"curls/internal/app"
	"curls/internal/sims/curls"

	"github.com/guptarohit/asciigraph"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	var out []float64
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func main() {
	steps := flag.Int("steps", 600, "number of steps to simulate per candidate")
	tps := flag.Int("tps", 60, "steps per simulated second")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	plotHeight := flag.Int("plot", 12, "height of the tip trace plot (0 disables it)")
	top := flag.Int("top", 5, "number of sweep results to print")
	lengths := floatList{0.5, 1, 1.5, 2}
	dampenings := floatList{5, 10, 20, 40}
	flag.Var(&lengths, "lengths", "comma-separated max spring lengths to sweep")
	flag.Var(&dampenings, "dampenings", "comma-separated spring dampenings to sweep")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	if *tps <= 0 {
		*tps = 60
	}
	dt := 1 / float64(*tps)
	cfg := curls.FromMap(overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	baseline, err := curls.Trace(cfg, *steps, dt)
	if err != nil {
		log.Fatalf("baseline trace: %v", err)
	}
	fmt.Printf("Baseline: %d strands x %d points, %d steps at dt=%.4f\n", cfg.Strands, cfg.Points, baseline.StepsSimulated, dt)
	printResult("  ", cfg.Params, baseline)
	if *plotHeight > 0 && len(baseline.TipHeights) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(baseline.TipHeights,
			asciigraph.Height(*plotHeight),
			asciigraph.Width(72),
			asciigraph.Caption("mean tip height per step")))
	}

	grid := curls.SpringGrid(cfg.Params, lengths, dampenings)
	if len(grid) == 0 {
		return
	}
	fmt.Printf("\nSweeping %d spring settings (%d workers)\n", len(grid), *workers)
	results, err := curls.Sweep(cfg, grid, *steps, dt, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return betterResult(results[i].Result, results[j].Result)
	})
	for i, c := range results[:clampTop(*top, len(results))] {
		printResult(fmt.Sprintf("%2d. ", i+1), c.Params, c.Result)
	}
}

// clampTop bounds the number of printed results to [0, n].
func clampTop(top, n int) int {
	return max(0, min(top, n))
}

// betterResult prefers finite runs, then the tightest longest segment.
func betterResult(a, b curls.TraceResult) bool {
	if a.Finite != b.Finite {
		return a.Finite
	}
	return a.MaxSegment < b.MaxSegment
}

func printResult(prefix string, p curls.Params, r curls.TraceResult) {
	status := "ok"
	if !r.Finite {
		status = "diverged"
	}
	fmt.Printf("%smax_spring_length=%.2f spring_dampening=%.2f -> sag %.2f, longest segment %.3f (%s)\n",
		prefix, p.MaxSpringLength, p.SpringDampening, r.Sag, r.MaxSegment, status)
}
