// Command fourierinfo runs the wave synthesis/analysis pipeline and prints
// spectrum and centroid summaries.
//
// Usage:
//
//	fourierinfo [flags] [wave-spec ...]
//
// A wave spec is freq[,amp[,decay[,phase]]] with frequency in cycles across
// the sample window and phase in degrees. Without arguments a single unit
// wave of 10 cycles is analyzed.
//
// Examples:
//
//	fourierinfo 10
//	fourierinfo -points 1024 -rate 44100 10,1 23,0.5,0.002
//	fourierinfo -target 19.53 -top 8 10 40,0.5
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mass-work/fft-understanding/dsp/spectrum"
	"github.com/mass-work/fft-understanding/dsp/wave"
	"github.com/mass-work/fft-understanding/measure/analyze"
)

func main() {
	points := flag.Int("points", 512, "signal length in samples (power of two)")
	rate := flag.Float64("rate", 1000, "sample rate in Hz")
	target := flag.Float64("target", 0, "projection target frequency in Hz")
	phaseOffset := flag.Float64("phase-offset", 0, "display offset added to phase spectrum values in degrees")
	top := flag.Int("top", 5, "number of strongest bins to print")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fourierinfo [flags] [wave-spec ...]\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes a composite of damped sinusoids.\n")
		fmt.Fprintf(os.Stderr, "A wave spec is freq[,amp[,decay[,phase]]].\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fourierinfo 10\n")
		fmt.Fprintf(os.Stderr, "  fourierinfo -points 1024 -rate 44100 10,1 23,0.5,0.002\n")
		fmt.Fprintf(os.Stderr, "  fourierinfo -target 19.53 10 40,0.5\n")
	}
	flag.Parse()

	waves, err := parseWaves(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res, err := analyze.Analyze(analyze.Config{
		SampleRate:      *rate,
		Points:          *points,
		TargetFrequency: *target,
		Waves:           waves,
		PhaseOffsetDeg:  *phaseOffset,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(res, *target, *top)
}

func parseWaves(specs []string) ([]wave.Params, error) {
	if len(specs) == 0 {
		return []wave.Params{{Frequency: 10, Amplitude: 1}}, nil
	}

	waves := make([]wave.Params, 0, len(specs))
	for _, spec := range specs {
		fields := strings.Split(spec, ",")
		if len(fields) > 4 {
			return nil, fmt.Errorf("wave spec %q has more than 4 fields", spec)
		}

		p := wave.Params{Amplitude: 1}
		dst := []*float64{&p.Frequency, &p.Amplitude, &p.Decay, &p.PhaseDeg}
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("wave spec %q: field %d: %v", spec, i+1, err)
			}
			*dst[i] = v
		}
		waves = append(waves, p)
	}
	return waves, nil
}

func printSummary(res analyze.Result, target float64, top int) {
	fmt.Printf("points=%d bins=%d\n", len(res.Composite), len(res.AmplitudeSpectrum))
	fmt.Printf("peak %.4f at %.2f Hz, centroid %.2f Hz, flatness %.4f\n",
		res.Stats.Peak, res.Stats.PeakHz, res.Stats.Centroid, res.Stats.Flatness)
	fmt.Printf("projection at %.2f Hz: centroid %.4f%+.4fi (|%.4f|)\n\n",
		target, real(res.Centroid), imag(res.Centroid), cmplx.Abs(res.Centroid))

	printTopBins(res.AmplitudeSpectrum, res.PhaseSpectrum, top)
}

func printTopBins(amp, phase []spectrum.Point, top int) {
	order := make([]int, len(amp))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return amp[order[a]].Value > amp[order[b]].Value
	})
	if top > len(order) {
		top = len(order)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tAmplitude\tPhase [deg]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, k := range order[:top] {
		if _, err := fmt.Fprintf(tw, "%d\t%.3f\t%.6f\t%.2f\n",
			k, amp[k].FrequencyHz, amp[k].Value, phase[k].Value); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
