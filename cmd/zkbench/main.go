// Command zkbench benchmarks proof size and prove/verify latency across a
// range of soundness targets and charts the results.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/zkboo/internal/bench"
)

func main() {
	sigmasFlag := flag.String("sigmas", "40,60,80,100,128", "comma-separated soundness targets in bits")
	trials := flag.Int("trials", 5, "number of prove/verify trials to average per target")
	output := flag.String("output", "zkboo-bench.png", "output chart file path")

	flag.Parse()

	sigmas, err := parseSigmas(*sigmasFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Running zkboo benchmarks...")
	results, err := bench.Run(bench.Config{SigmaValues: sigmas, Trials: *trials})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running benchmarks: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("sigma=%v N=%d prove=%v verify=%v proof_bytes=%d\n",
			r.Sigma, r.N, r.ProveDuration, r.VerifyDuration, r.ProofBytes)
	}

	if err := renderChart(results, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chart written to %s\n", *output)
}

func parseSigmas(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	sigmas := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sigma value %q: %w", p, err)
		}
		sigmas = append(sigmas, v)
	}
	return sigmas, nil
}

func renderChart(results []bench.Result, path string) error {
	xValues := make([]float64, len(results))
	proofSizeValues := make([]float64, len(results))
	proveMillis := make([]float64, len(results))

	for i, r := range results {
		xValues[i] = r.Sigma
		proofSizeValues[i] = float64(r.ProofBytes)
		proveMillis[i] = float64(r.ProveDuration.Milliseconds())
	}

	graph := chart.Chart{
		Title: "zkboo proof size and prove time vs soundness",
		XAxis: chart.XAxis{Name: "soundness (bits)"},
		YAxis: chart.YAxis{Name: "proof bytes"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "proof bytes",
				XValues: xValues,
				YValues: proofSizeValues,
			},
			chart.ContinuousSeries{
				Name:    "prove time (ms)",
				YAxis:   chart.YAxisSecondary,
				XValues: xValues,
				YValues: proveMillis,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
