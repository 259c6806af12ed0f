// Package metrics turns raw OS readings into domain snapshots.
package metrics

import (
	"context"
	"fmt"
	"math"

	"horizonx-sys/internal/domain"
	"horizonx-sys/internal/logger"
)

const bytesPerKB = 1024

type Collector struct {
	provider Provider
	log      logger.Logger
}

func NewCollector(provider Provider, log logger.Logger) *Collector {
	return &Collector{
		provider: provider,
		log:      log,
	}
}

// CollectIdentity always succeeds; fields the platform cannot resolve are
// left absent.
func (c *Collector) CollectIdentity(ctx context.Context) domain.HostIdentity {
	r := c.provider.QueryIdentity(ctx)

	return domain.HostIdentity{
		OS:       r.OS,
		Arch:     r.Arch,
		Family:   r.Family,
		Hostname: r.Hostname,
		CPUCount: r.CPUCount,
	}
}

// CollectResources runs one refresh pass through the provider and validates
// the result. Provider failures are wrapped in domain.ErrTelemetryUnavailable
// and never retried.
func (c *Collector) CollectResources(ctx context.Context) (domain.ResourceSnapshot, error) {
	r, err := c.provider.QueryResources(ctx)
	if err != nil {
		return domain.ResourceSnapshot{}, fmt.Errorf("%w: %w", domain.ErrTelemetryUnavailable, err)
	}

	if err := validate(r); err != nil {
		c.log.Debug("rejected resource reading", "error", err)
		return domain.ResourceSnapshot{}, err
	}

	totalKB := r.TotalMemory / bytesPerKB
	freeKB := r.FreeMemory / bytesPerKB

	snapshot := domain.ResourceSnapshot{
		CPUCount:      r.CPUCount,
		CPUUsage:      make([]float64, len(r.CPUUsage)),
		TotalMemoryKB: totalKB,
		FreeMemoryKB:  freeKB,
		UsedMemoryKB:  totalKB - freeKB,
	}

	for i, usage := range r.CPUUsage {
		// -0 renders as "-0.0"
		if usage == 0 {
			usage = 0
		}
		snapshot.CPUUsage[i] = usage
	}

	if r.Load != nil {
		snapshot.LoadAverage = &domain.LoadAverage{
			One:     r.Load.One,
			Five:    r.Load.Five,
			Fifteen: r.Load.Fifteen,
		}
	}

	c.log.Debug("resources collected",
		"cpu_count", snapshot.CPUCount,
		"total_kb", snapshot.TotalMemoryKB,
		"free_kb", snapshot.FreeMemoryKB,
		"load_average", snapshot.HasLoadAverage(),
	)

	return snapshot, nil
}

func validate(r ResourceReading) error {
	if r.FreeMemory > r.TotalMemory {
		return fmt.Errorf("%w: free memory %d bytes exceeds total %d bytes",
			domain.ErrInconsistentReading, r.FreeMemory, r.TotalMemory)
	}

	if r.CPUCount <= 0 {
		return fmt.Errorf("%w: cpu count %d", domain.ErrInconsistentReading, r.CPUCount)
	}

	if len(r.CPUUsage) != r.CPUCount {
		return fmt.Errorf("%w: %d per-core usage values for %d cores",
			domain.ErrInconsistentReading, len(r.CPUUsage), r.CPUCount)
	}

	for i, usage := range r.CPUUsage {
		if math.IsNaN(usage) || usage < 0 || usage > 100 {
			return fmt.Errorf("%w: cpu %d usage %v out of range",
				domain.ErrInconsistentReading, i, usage)
		}
	}

	if r.Load != nil {
		for _, v := range []float64{r.Load.One, r.Load.Five, r.Load.Fifteen} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%w: load average %v", domain.ErrInconsistentReading, v)
			}
		}
	}

	return nil
}
