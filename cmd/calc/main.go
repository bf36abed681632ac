package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/graeme-hill/rpncalc-go/lib"
)

var (
	strict = flag.Bool("strict", false, "fail on text outside the grammar instead of ignoring it")
	rpn    = flag.Bool("rpn", false, "print the postfix form next to each result")
	dsn    = flag.String("dsn", os.Getenv("CALC_DSN"), "postgres connection string to record results in")
	bench  = flag.Bool("bench", false, "run the built in benchmarks and exit")
	runs   = flag.Int("runs", 100, "runs per benchmark")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: calc [flags] [expression...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *bench {
		runner := lib.BenchmarkRunner{Runs: *runs, Out: os.Stdout}
		runner.Run(lib.DefaultBenchmarks())
		return
	}

	ctx := context.Background()
	var history *lib.History
	if *dsn != "" {
		var err error
		history, err = lib.OpenHistory(ctx, *dsn)
		if err != nil {
			log.Fatalf("cannot open history: %v", err)
		}
	}

	exprs := flag.Args()
	if len(exprs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	calc := lib.NewCalculator()
	failed := false
	for _, expr := range exprs {
		if err := eval(ctx, calc, history, expr); err != nil {
			log.Printf("%q: %v", expr, err)
			failed = true
		}
	}
	if history != nil {
		history.Close()
	}
	if failed {
		os.Exit(1)
	}
}

func eval(ctx context.Context, calc *lib.Calculator, history *lib.History, expr string) error {
	var result int
	var err error
	if *strict {
		result, err = calc.CalcStrict(expr)
	} else {
		result, err = calc.Calc(expr)
	}
	if err != nil {
		return err
	}

	if *rpn {
		fmt.Printf("%d\t%s\n", result, lib.FormatRPN(calc.Parse(expr)))
	} else {
		fmt.Println(result)
	}

	if history != nil {
		_, err = history.Record(ctx, expr, result)
		if err != nil {
			return fmt.Errorf("cannot record result: %v", err)
		}
	}
	return nil
}
