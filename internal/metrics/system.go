package metrics

import (
	"context"
	"fmt"

	"horizonx-sys/internal/logger"
	"horizonx-sys/internal/metrics/collector/cpu"
	"horizonx-sys/internal/metrics/collector/load"
	"horizonx-sys/internal/metrics/collector/memory"
	"horizonx-sys/internal/metrics/collector/os"
)

type (
	identityCollector interface {
		Collect(ctx context.Context) os.OSInfo
	}
	memoryCollector interface {
		Collect(ctx context.Context) (memory.MemoryInfo, error)
	}
	cpuCollector interface {
		Collect(ctx context.Context) (cpu.CPUInfo, error)
	}
	loadCollector interface {
		Collect(ctx context.Context) (*load.LoadInfo, error)
	}
)

// SystemProvider reads the live host through the per-resource collectors.
type SystemProvider struct {
	os     identityCollector
	cpu    cpuCollector
	memory memoryCollector
	load   loadCollector

	log logger.Logger
}

func NewSystemProvider(log logger.Logger) *SystemProvider {
	return &SystemProvider{
		os:     os.NewCollector(log),
		cpu:    cpu.NewCollector(log),
		memory: memory.NewCollector(log),
		load:   load.NewCollector(log),

		log: log,
	}
}

func (p *SystemProvider) QueryIdentity(ctx context.Context) IdentityReading {
	info := p.os.Collect(ctx)

	return IdentityReading{
		OS:       info.Name,
		Arch:     info.Arch,
		Family:   info.Family,
		Hostname: info.Hostname,
		CPUCount: info.CPUCount,
	}
}

// QueryResources refreshes memory, then CPU, then load average, once each.
func (p *SystemProvider) QueryResources(ctx context.Context) (ResourceReading, error) {
	var reading ResourceReading

	memInfo, err := p.memory.Collect(ctx)
	if err != nil {
		p.log.Debug("collector failed", "name", "memory", "error", err)
		return ResourceReading{}, fmt.Errorf("memory: %w", err)
	}
	reading.TotalMemory = memInfo.TotalBytes
	reading.FreeMemory = memInfo.FreeBytes

	cpuInfo, err := p.cpu.Collect(ctx)
	if err != nil {
		p.log.Debug("collector failed", "name", "cpu", "error", err)
		return ResourceReading{}, fmt.Errorf("cpu: %w", err)
	}
	reading.CPUCount = cpuInfo.Count
	reading.CPUUsage = cpuInfo.PerCore

	loadInfo, err := p.load.Collect(ctx)
	if err != nil {
		p.log.Debug("collector failed", "name", "load", "error", err)
		return ResourceReading{}, fmt.Errorf("load: %w", err)
	}
	if loadInfo != nil {
		reading.Load = &LoadReading{
			One:     loadInfo.One,
			Five:    loadInfo.Five,
			Fifteen: loadInfo.Fifteen,
		}
	}

	return reading, nil
}
