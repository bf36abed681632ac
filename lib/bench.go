package lib

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Benchmark is one named workload in a BenchmarkSet.
type Benchmark struct {
	Name string
	Func func()
}

// BenchmarkSet is an ordered table of benchmarks, registered explicitly at
// startup.
type BenchmarkSet struct {
	Name       string
	benchmarks []Benchmark
}

func NewBenchmarkSet(name string) *BenchmarkSet {
	return &BenchmarkSet{Name: name, benchmarks: []Benchmark{}}
}

func (s *BenchmarkSet) Register(name string, fn func()) error {
	if fn == nil {
		return fmt.Errorf("Benchmark '%s' has no function", name)
	}
	for _, existing := range s.benchmarks {
		if existing.Name == name {
			return fmt.Errorf("Benchmark named '%s' already exists", name)
		}
	}
	s.benchmarks = append(s.benchmarks, Benchmark{Name: name, Func: fn})
	return nil
}

func (s *BenchmarkSet) Benchmarks() []Benchmark {
	return append([]Benchmark{}, s.benchmarks...)
}

type BenchmarkResult struct {
	Name    string
	Runs    int
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

type BenchmarkRunner struct {
	Runs int
	Out  io.Writer
}

const defaultBenchmarkRuns = 100

func (r BenchmarkRunner) runs() int {
	if r.Runs <= 0 {
		return defaultBenchmarkRuns
	}
	return r.Runs
}

func (r BenchmarkRunner) progress(format string, args ...interface{}) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Run times every benchmark in set and reports progress to Out.
func (r BenchmarkRunner) Run(set *BenchmarkSet) []BenchmarkResult {
	r.progress("Start benchmark set [ %s ].", set.Name)
	results := []BenchmarkResult{}
	var total time.Duration
	for _, b := range set.benchmarks {
		res := r.runOne(b)
		total += res.Total
		results = append(results, res)
	}
	r.progress("End benchmark set [ %s ]: Total %s.", set.Name, Humanize(total))
	return results
}

func (r BenchmarkRunner) runOne(b Benchmark) BenchmarkResult {
	runs := r.runs()
	r.progress("  Start benchmark [ %s ] for %d times.", b.Name, runs)

	res := BenchmarkResult{Name: b.Name, Runs: runs}
	for i := 0; i < runs; i++ {
		start := time.Now()
		b.Func()
		elapsed := time.Since(start)

		res.Total += elapsed
		if i == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
		if elapsed > res.Max {
			res.Max = elapsed
		}
	}
	res.Average = res.Total / time.Duration(runs)

	r.progress(
		"  End benchmark [ %s ]: Total: %s, Average: %s, Min: %s, Max: %s.",
		b.Name, Humanize(res.Total), Humanize(res.Average), Humanize(res.Min), Humanize(res.Max))
	return res
}

// Humanize renders d in the largest unit that keeps it above one.
func Humanize(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d Nanoseconds", d.Nanoseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2f Milliseconds", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.2f Seconds", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.2f Minutes", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.2f Hours", d.Hours())
	default:
		return fmt.Sprintf("%.2f Days", d.Hours()/24)
	}
}

// DefaultBenchmarks exercises the calculator and the tokenizer.
func DefaultBenchmarks() *BenchmarkSet {
	set := NewBenchmarkSet("calc")
	calc := NewCalculator()

	long := strings.Repeat("12 * 3 + 45 / 6 - 7 + ", 200) + "1"
	words := strings.Repeat("The quick brown fox jumps over the lazy dog ", 200)
	wordTokenizer := NewTokenizerFactory[string](IgnoreCase).
		With("word", `[a-z]+`).
		With("space", `\s+`)

	mustRegister(set, "calc/short", func() {
		_, _ = calc.Calc("1 + 2 * 3 + 4")
	})
	mustRegister(set, "calc/long", func() {
		_, _ = calc.Calc(long)
	})
	mustRegister(set, "tokenize/words", func() {
		l, _ := wordTokenizer.Tokenize(words)
		_ = Collect[string](l)
	})
	return set
}

func mustRegister(set *BenchmarkSet, name string, fn func()) {
	if err := set.Register(name, fn); err != nil {
		panic(err)
	}
}
