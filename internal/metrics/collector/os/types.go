package os

import (
	"context"

	"horizonx-sys/internal/logger"
)

type Collector struct {
	log      logger.Logger
	goos     string
	goarch   string
	hostname func() (string, error)
	cpuCount func(ctx context.Context) (int, error)
}

// OSInfo is the raw identity reading. Hostname is empty when unresolved.
type OSInfo struct {
	Name     string
	Arch     string
	Family   string
	Hostname string
	CPUCount int
}
