package domain

import "errors"

var (
	ErrTelemetryUnavailable = errors.New("telemetry unavailable")
	ErrInconsistentReading  = errors.New("inconsistent telemetry reading")
)

const (
	FamilyUnix    = "unix"
	FamilyWindows = "windows"
	FamilyWasm    = "wasm"
)

// HostIdentity holds the static facts about the host. Hostname is empty when
// the platform could not resolve one.
type HostIdentity struct {
	OS       string `json:"os" yaml:"os"`
	Arch     string `json:"arch" yaml:"arch"`
	Family   string `json:"family" yaml:"family"`
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	CPUCount int    `json:"cpu_count" yaml:"cpu_count"`
}

func (h HostIdentity) HasHostname() bool {
	return h.Hostname != ""
}

type LoadAverage struct {
	One     float64 `json:"one" yaml:"one"`
	Five    float64 `json:"five" yaml:"five"`
	Fifteen float64 `json:"fifteen" yaml:"fifteen"`
}

// ResourceSnapshot is a point-in-time capture of live utilization.
// LoadAverage is nil on platforms without the concept.
type ResourceSnapshot struct {
	CPUCount      int          `json:"cpu_count" yaml:"cpu_count"`
	CPUUsage      []float64    `json:"cpu_usage" yaml:"cpu_usage"`
	TotalMemoryKB uint64       `json:"total_memory_kb" yaml:"total_memory_kb"`
	FreeMemoryKB  uint64       `json:"free_memory_kb" yaml:"free_memory_kb"`
	UsedMemoryKB  uint64       `json:"used_memory_kb" yaml:"used_memory_kb"`
	LoadAverage   *LoadAverage `json:"load_average,omitempty" yaml:"load_average,omitempty"`
}

func (s ResourceSnapshot) HasLoadAverage() bool {
	return s.LoadAverage != nil
}
