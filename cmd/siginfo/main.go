// Command siginfo prints amplitude statistics of the built-in signal
// sources.
//
// Usage:
//
//	siginfo [flags] [source-name ...]
//
// Without arguments it prints info for all known sources.
//
// Examples:
//
//	siginfo sine
//	siginfo -hz 1000 -frames 8192 saw square
//	siginfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pcm/pcm/peak"
	"github.com/cwbudde/algo-pcm/pcm/rms"
	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

type sourceEntry struct {
	name  string
	build func(rate signal.Rate, hz float64, seed uint64) signal.Signal[sample.F64]
}

var registry = []sourceEntry{
	{"sine", func(r signal.Rate, hz float64, _ uint64) signal.Signal[sample.F64] {
		return signal.Sine(r.ConstHz(hz).Phase())
	}},
	{"saw", func(r signal.Rate, hz float64, _ uint64) signal.Signal[sample.F64] {
		return signal.Saw(r.ConstHz(hz).Phase())
	}},
	{"square", func(r signal.Rate, hz float64, _ uint64) signal.Signal[sample.F64] {
		return signal.Square(r.ConstHz(hz).Phase())
	}},
	{"noise", func(_ signal.Rate, _ float64, seed uint64) signal.Signal[sample.F64] {
		return signal.Noise(seed)
	}},
	{"noise-simplex", func(r signal.Rate, hz float64, _ uint64) signal.Signal[sample.F64] {
		return signal.NoiseSimplex(r.ConstHz(hz).Phase())
	}},
}

func main() {
	rateHz := flag.Float64("rate", 44100, "sample rate in frames per second")
	hz := flag.Float64("hz", 440, "oscillator frequency")
	frames := flag.Int("frames", 4096, "number of frames to analyze")
	seed := flag.Uint64("seed", 42, "noise seed")
	all := flag.Bool("all", false, "show all sources")
	list := flag.Bool("list", false, "list available source names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: siginfo [flags] [source-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints amplitude statistics of the built-in signal sources.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all sources.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  siginfo sine square\n")
		fmt.Fprintf(os.Stderr, "  siginfo -hz 1000 -frames 8192 saw\n")
		fmt.Fprintf(os.Stderr, "  siginfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	rate, err := signal.NewRate(*rateHz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *frames < 1 {
		fmt.Fprintf(os.Stderr, "error: -frames must be positive\n")
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching sources\n")
		os.Exit(1)
	}

	printAnalysis(entries, rate, *hz, *seed, *frames)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []sourceEntry {
	byName := make(map[string]sourceEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []sourceEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown source %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

type stats struct {
	peak float64
	rms  float64
	mean float64
}

func analyze(src signal.Signal[sample.F64], frames int) stats {
	meter, err := rms.New[sample.F64](1, frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var s stats
	var sum float64
	for range frames {
		f := src.Next()
		sum += float64(f[0])
		meter.Next(f)

		peak.FullWave(f)
		if v := float64(f[0]); v > s.peak {
			s.peak = v
		}
	}

	s.rms = float64(meter.Current()[0])
	s.mean = sum / float64(frames)
	return s
}

func printAnalysis(entries []sourceEntry, rate signal.Rate, hz float64, seed uint64, frames int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Source\tFrames\tPeak\tRMS\tMean\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t----\t---\t----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		s := analyze(e.build(rate, hz, seed), frames)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%+.6f\n",
			e.name,
			frames,
			s.peak,
			s.rms,
			s.mean,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
