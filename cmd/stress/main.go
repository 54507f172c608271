// FILE: cmd/stress/main.go

// Stress floods the pipeline from many producers through a deliberately
// small queue to exercise blocking backpressure and rotation, then verifies
// the drain-on-shutdown barrier by comparing counters.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/logix-io/logix"
)

const (
	numWorkers   = 64
	logsPerBurst = 500
	totalBursts  = 20
)

var produced atomic.Uint64

func randomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func burst(logger *logix.Logger) {
	for i := 0; i < logsPerBurst; i++ {
		switch rand.Intn(4) {
		case 0:
			logger.Debug(randomMessage(64))
		case 1:
			logger.Info(randomMessage(128))
		case 2:
			logger.Warn(randomMessage(256))
		default:
			logger.Error(randomMessage(512))
		}
		produced.Add(1)
	}
}

func main() {
	dir, err := os.MkdirTemp("", "logix-stress-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(dir, "stress.log")

	facade, err := logix.NewBuilder().
		Modes(logix.ModeFile).
		LevelString("debug").
		FilePath(path).
		FileSizeMB(1). // Force frequent rotation
		MaxLogFiles(3).
		BufferSize(256). // Small queue so producers actually block
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress: %v\n", err)
		os.Exit(1)
	}

	logger, err := facade.GetLogger("stress")
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := 0; b < totalBursts; b++ {
				burst(logger)
			}
		}()
	}
	wg.Wait()

	if err := facade.Shutdown(30 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "stress: shutdown: %v\n", err)
	}

	stats := facade.Stats()
	fmt.Printf("produced=%d processed=%d dropped=%d emit_errors=%d rotations=%d elapsed=%v\n",
		produced.Load(), stats.Processed, stats.Dropped, stats.EmitErrors, stats.Rotations,
		time.Since(start).Round(time.Millisecond))
	fmt.Printf("logs in %s\n", dir)
}
