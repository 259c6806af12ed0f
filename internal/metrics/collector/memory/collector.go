// Package memory
package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"horizonx-sys/internal/logger"
)

type Collector struct {
	log     logger.Logger
	virtual func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// MemoryInfo is in bytes, as the OS reports it.
type MemoryInfo struct {
	TotalBytes uint64
	FreeBytes  uint64
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:     log,
		virtual: mem.VirtualMemoryWithContext,
	}
}

// Collect performs one memory refresh.
func (c *Collector) Collect(ctx context.Context) (MemoryInfo, error) {
	vm, err := c.virtual(ctx)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("read virtual memory: %w", err)
	}

	c.log.Debug("memory refreshed", "total_bytes", vm.Total, "free_bytes", vm.Free)

	return MemoryInfo{
		TotalBytes: vm.Total,
		FreeBytes:  vm.Free,
	}, nil
}
