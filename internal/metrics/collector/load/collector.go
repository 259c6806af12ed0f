// Package load
package load

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/load"

	"horizonx-sys/internal/logger"
)

type Collector struct {
	log       logger.Logger
	supported bool
	avg       func(ctx context.Context) (*load.AvgStat, error)
}

type LoadInfo struct {
	One     float64
	Five    float64
	Fifteen float64
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:       log,
		supported: platformSupported,
		avg:       load.AvgWithContext,
	}
}

func (c *Collector) Supported() bool {
	return c.supported
}

// Collect returns a nil *LoadInfo when the platform has no load average.
func (c *Collector) Collect(ctx context.Context) (*LoadInfo, error) {
	if !c.supported {
		c.log.Debug("load average not supported on this platform")
		return nil, nil
	}

	avg, err := c.avg(ctx)
	if err != nil {
		return nil, fmt.Errorf("read load average: %w", err)
	}

	return &LoadInfo{
		One:     avg.Load1,
		Five:    avg.Load5,
		Fifteen: avg.Load15,
	}, nil
}
