package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"book3d-renderer/internal/batch"
	"book3d-renderer/internal/config"
)

func main() {
	jobsFile := flag.String("jobs", "", "JSON jobs file (array of render jobs)")
	baseFile := flag.String("base", "", "Optional JSON config with shared defaults")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	summary := flag.String("summary", "", "Optional path for a JSON results summary")
	testN := flag.Int("test", 0, "Render only the first N jobs")

	flag.Parse()

	if *jobsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -jobs is required")
		flag.Usage()
		os.Exit(1)
	}

	jobs, err := config.LoadJobs(*jobsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading jobs: %v\n", err)
		os.Exit(1)
	}

	var base config.File
	if *baseFile != "" {
		base, err = config.Load(*baseFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading base config: %v\n", err)
			os.Exit(1)
		}
	}

	if *testN > 0 && *testN < len(jobs) {
		jobs = jobs[:*testN]
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs to render.")
		os.Exit(0)
	}

	w := *workers
	if w <= 0 {
		w = runtime.NumCPU()
	}

	fmt.Printf("3D Book Cover Batch Renderer\n")
	fmt.Printf("Jobs: %d, Workers: %d\n", len(jobs), w)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{Base: base, Workers: w}, jobs)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errs []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errs = append(errs, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errs) > 0 {
		limit := 20
		if len(errs) < limit {
			limit = len(errs)
		}
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errs[:limit] {
			fmt.Printf("  %s: %s\n", e.Output, e.Error)
		}
	}

	if *summary != "" {
		if err := batch.WriteSummary(*summary, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summary write failed: %v\n", err)
		} else {
			fmt.Printf("Summary: %s\n", *summary)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
