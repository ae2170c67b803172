package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// ScanResult is the aggregate over all files: Matched is the OR of every
// per-file outcome, Errors counts files that could not be read.
type ScanResult struct {
	Matched bool
	Files   int64
	Errors  int64
}

// Scanner fans file paths out over a bounded worker pool.
type Scanner struct {
	cfg  ScanConfig
	proc ProcessFunc
}

func NewScanner(cfg ScanConfig, proc ProcessFunc) *Scanner {
	return &Scanner{cfg: cfg, proc: proc}
}

// Scan reads newline-separated file paths from input and processes each on
// the pool. Dispatch follows input order; completion order is free. It
// blocks until every dispatched task has finished. Cancelling ctx stops
// dispatching new paths but never interrupts a running task.
func (s *Scanner) Scan(ctx context.Context, input io.Reader) (ScanResult, error) {
	var stats ScanStats
	stats.Start()

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(s.cfg.Concurrency, func(i interface{}) {
		defer wg.Done()
		path := i.(string)
		out := s.proc(path)
		stats.FilesProcessed.Add(1)
		if out.Err != nil {
			stats.Errors.Add(1)
			logrus.WithFields(logrus.Fields{"file": out.Path, "err": out.Err}).Error("process error")
			return
		}
		if out.Matched {
			stats.Matches.Add(1)
		}
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("pool: %w", err)
	}
	defer pool.Release()

	sc := bufio.NewScanner(input)
	for sc.Scan() {
		if ctx.Err() != nil {
			break
		}
		path := strings.TrimSpace(sc.Text())
		if path == "" {
			continue
		}
		stats.FilesFound.Add(1)
		wg.Add(1)
		if err := pool.Invoke(path); err != nil {
			wg.Done()
			wg.Wait()
			return ScanResult{}, fmt.Errorf("submit task: %w", err)
		}
	}

	// Full barrier: outcomes are read only after the pool drains.
	wg.Wait()

	if err := sc.Err(); err != nil {
		return ScanResult{}, fmt.Errorf("read file list: %w", err)
	}

	logrus.Debugf("Scan finished in %s: found=%d processed=%d matches=%d errors=%d",
		stats.Elapsed(), stats.FilesFound.Load(), stats.FilesProcessed.Load(), stats.Matches.Load(), stats.Errors.Load())

	return ScanResult{
		Matched: stats.Matches.Load() > 0,
		Files:   stats.FilesProcessed.Load(),
		Errors:  stats.Errors.Load(),
	}, nil
}
