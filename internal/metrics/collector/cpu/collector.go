// Package cpu
package cpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"

	"horizonx-sys/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:     log,
		counts:  cpu.CountsWithContext,
		percent: cpu.PercentWithContext,
	}
}

// Collect performs one CPU refresh. Per-core usage is measured against the
// previous sample gopsutil keeps at package level, so a call made right after
// process start can report 0% on every core.
func (c *Collector) Collect(ctx context.Context) (CPUInfo, error) {
	count, err := c.counts(ctx, true)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("count logical cores: %w", err)
	}

	perCore, err := c.percent(ctx, 0, true)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("read per-core usage: %w", err)
	}

	c.log.Debug("cpu refreshed", "count", count, "per_core", len(perCore))

	return CPUInfo{
		Count:   count,
		PerCore: perCore,
	}, nil
}
