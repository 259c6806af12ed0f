// Package os
package os

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"

	"horizonx-sys/internal/domain"
	"horizonx-sys/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:      log,
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		hostname: os.Hostname,
		cpuCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
	}
}

// Collect never fails: an unresolvable hostname is left empty and a failed
// core count falls back to the Go runtime's view.
func (c *Collector) Collect(ctx context.Context) OSInfo {
	info := OSInfo{
		Name:   c.goos,
		Arch:   c.goarch,
		Family: family(c.goos),
	}

	hostname, err := c.hostname()
	if err != nil {
		c.log.Debug("failed to get hostname", "error", err)
	} else {
		info.Hostname = hostname
	}

	count, err := c.cpuCount(ctx)
	if err != nil || count <= 0 {
		c.log.Debug("falling back to runtime cpu count", "error", err, "count", count)
		count = runtime.NumCPU()
	}
	info.CPUCount = count

	return info
}

func family(goos string) string {
	switch goos {
	case "windows":
		return domain.FamilyWindows
	case "js", "wasip1":
		return domain.FamilyWasm
	default:
		return domain.FamilyUnix
	}
}
