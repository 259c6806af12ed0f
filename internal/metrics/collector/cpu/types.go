package cpu

import (
	"context"
	"time"

	"horizonx-sys/internal/logger"
)

type Collector struct {
	log     logger.Logger
	counts  func(ctx context.Context, logical bool) (int, error)
	percent func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
}

type CPUInfo struct {
	Count   int
	PerCore []float64
}
