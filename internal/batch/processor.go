// Package batch renders many books from a jobs file using a worker pool.
// Renders share nothing but read-only inputs, so workers need no locking.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"book3d-renderer/internal/config"
	"book3d-renderer/internal/imgio"
	"book3d-renderer/internal/render"
)

// Config holds the shared settings for a batch run.
type Config struct {
	Base    config.File // defaults every job inherits
	Workers int
}

// Result holds the outcome of one job.
type Result struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run processes all jobs with cfg.Workers goroutines and reports progress
// every two seconds.
func Run(cfg Config, jobs []config.File) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f books/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg.Base, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(base, job config.File) Result {
	out := job.Output
	if out == "" {
		return Result{Output: out, Error: "job has no output path"}
	}
	if job.Cover == "" {
		return Result{Output: out, Error: "job has no cover image"}
	}
	if len(job.Spines) == 0 {
		return Result{Output: out, Error: "job has no spine images"}
	}

	p, err := base.Params()
	if err == nil {
		err = job.Apply(&p)
	}
	if err != nil {
		return Result{Output: out, Error: err.Error()}
	}

	cover, err := imgio.Load(job.Cover)
	if err != nil {
		return Result{Output: out, Error: err.Error()}
	}
	spines := make([]*image.NRGBA, 0, len(job.Spines))
	for _, path := range job.Spines {
		s, err := imgio.Load(path)
		if err != nil {
			return Result{Output: out, Error: err.Error()}
		}
		spines = append(spines, s)
	}

	img, err := render.Render(p, cover, spines)
	if err != nil {
		return Result{Output: out, Error: err.Error()}
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return Result{Output: out, Error: err.Error()}
	}
	if err := imgio.Save(out, img); err != nil {
		return Result{Output: out, Error: err.Error()}
	}

	return Result{Output: out, Success: true}
}
