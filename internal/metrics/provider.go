package metrics

import "context"

// Provider is the OS access the Collector depends on. Readings are raw: bytes
// and percentages exactly as the platform reports them.
type Provider interface {
	QueryIdentity(ctx context.Context) IdentityReading
	QueryResources(ctx context.Context) (ResourceReading, error)
}

type IdentityReading struct {
	OS       string
	Arch     string
	Family   string
	Hostname string
	CPUCount int
}

// ResourceReading carries one refresh pass. Load is nil when the platform has
// no load average.
type ResourceReading struct {
	CPUCount    int
	CPUUsage    []float64
	TotalMemory uint64
	FreeMemory  uint64
	Load        *LoadReading
}

type LoadReading struct {
	One     float64
	Five    float64
	Fifteen float64
}
