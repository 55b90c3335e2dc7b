package runner

import (
	"context"
	"os"
	"time"
)

// MonitorConfig configures output monitoring for a running command.
type MonitorConfig struct {
	InactivityTimeout int           // seconds without new output before cancel
	HardCap           int           // absolute max seconds (default 7200)
	OutputPath        string        // file to watch for size changes
	TickInterval      time.Duration // check interval (default 2s, shortened in tests)
}

// MonitorOutput watches a command's output file and cancels the context when
// the file stops growing for InactivityTimeout seconds or total runtime
// exceeds HardCap. A validation suite that hangs mid-run produces no output,
// so size changes are a good liveness signal.
func MonitorOutput(ctx context.Context, cancel context.CancelFunc, cfg MonitorConfig) {
	if cfg.HardCap == 0 {
		cfg.HardCap = 7200
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = 2 * time.Second
	}

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	startTime := time.Now()
	lastSize := int64(0)
	lastChange := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if time.Since(startTime).Seconds() >= float64(cfg.HardCap) {
				cancel()
				return
			}

			info, err := os.Stat(cfg.OutputPath)
			if err != nil {
				// File not created yet; keep waiting.
				continue
			}

			if size := info.Size(); size != lastSize {
				lastSize = size
				lastChange = time.Now()
			}

			if cfg.InactivityTimeout > 0 && time.Since(lastChange).Seconds() >= float64(cfg.InactivityTimeout) {
				cancel()
				return
			}
		}
	}
}
