package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Israrkhan09/invoice-website/internal/fileutil"
)

// MaxWorkers caps the batch worker pool.
const MaxWorkers = 32

// ErrInvalidWorkerCount indicates an invalid worker count.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// ExportOutcome captures the result of one document export.
type ExportOutcome struct {
	InputPath  string
	OutputPath string
	Pages      int
	Total      decimal.Decimal
	Warnings   []string
	Err        error
	Duration   time.Duration
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkerCount determines the worker count for a batch.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkerCount(n int) int {
	if n > 0 {
		return n
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	auto := available / 2

	// Minimum 1, maximum 8
	if auto < 1 {
		return 1
	}
	if auto > 8 {
		return 8
	}
	return auto
}

// exportBatch runs exports across a worker pool. The exporter is safe for
// concurrent use, so workers share it and only the job indexes move through
// the channel. Outcomes keep the input order.
func exportBatch(ctx context.Context, workers int, files []fileutil.InvoiceFile, exportOne func(context.Context, fileutil.InvoiceFile) ExportOutcome) []ExportOutcome {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	outcomes := make([]ExportOutcome, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					outcomes[idx] = ExportOutcome{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				outcomes[idx] = exportOne(ctx, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return outcomes
}

// printResults outputs export outcomes using the provided writers.
// Returns the number of failures.
func printResults(outcomes []ExportOutcome, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", o.InputPath, o.Err)
			continue
		}

		succeeded++

		if !quiet {
			for _, w := range o.Warnings {
				fmt.Fprintf(env.Stderr, "WARNING %s: %s\n", o.InputPath, w)
			}
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, $%s, %v)\n",
				o.InputPath, o.OutputPath, o.Pages, o.Total.StringFixed(2), o.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", o.OutputPath)
		}
	}

	if !quiet && len(outcomes) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
