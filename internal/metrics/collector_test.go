package metrics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horizonx-sys/internal/domain"
	"horizonx-sys/internal/logger"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) QueryIdentity(ctx context.Context) IdentityReading {
	args := m.Called(ctx)
	return args.Get(0).(IdentityReading)
}

func (m *mockProvider) QueryResources(ctx context.Context) (ResourceReading, error) {
	args := m.Called(ctx)
	return args.Get(0).(ResourceReading), args.Error(1)
}

func newCollector(t *testing.T, p *mockProvider) *Collector {
	t.Helper()
	t.Cleanup(func() { p.AssertExpectations(t) })
	return NewCollector(p, logger.NewNop())
}

func TestCollectIdentity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		reading IdentityReading
		want    domain.HostIdentity
	}{
		{
			name:    "with hostname",
			reading: IdentityReading{OS: "linux", Arch: "x86_64", Family: "unix", Hostname: "node1", CPUCount: 2},
			want:    domain.HostIdentity{OS: "linux", Arch: "x86_64", Family: "unix", Hostname: "node1", CPUCount: 2},
		},
		{
			name:    "without hostname",
			reading: IdentityReading{OS: "windows", Arch: "arm64", Family: "windows", CPUCount: 8},
			want:    domain.HostIdentity{OS: "windows", Arch: "arm64", Family: "windows", CPUCount: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockProvider{}
			p.On("QueryIdentity", ctx).Return(tt.reading).Once()

			got := newCollector(t, p).CollectIdentity(ctx)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reading.Hostname != "", got.HasHostname())
		})
	}
}

func TestCollectResources_Conversion(t *testing.T) {
	ctx := context.Background()
	p := &mockProvider{}
	p.On("QueryResources", ctx).Return(ResourceReading{
		CPUCount:    2,
		CPUUsage:    []float64{12.34, 56.78},
		TotalMemory: 4096*1024 + 1023,
		FreeMemory:  1024 * 1024,
	}, nil).Once()

	got, err := newCollector(t, p).CollectResources(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ResourceSnapshot{
		CPUCount:      2,
		CPUUsage:      []float64{12.34, 56.78},
		TotalMemoryKB: 4096,
		FreeMemoryKB:  1024,
		UsedMemoryKB:  3072,
	}, got)
	assert.False(t, got.HasLoadAverage())
}

func TestCollectResources_UsedMemoryInvariant(t *testing.T) {
	ctx := context.Background()

	readings := []struct{ total, free uint64 }{
		{0, 0},
		{1023, 1023},
		{2047 * 1024, 0},
		{16 << 30, 16 << 30},
		{16 << 30, 1},
		{8<<30 + 512, 3<<30 + 1000},
	}

	for _, r := range readings {
		p := &mockProvider{}
		p.On("QueryResources", ctx).Return(ResourceReading{
			CPUCount:    1,
			CPUUsage:    []float64{0},
			TotalMemory: r.total,
			FreeMemory:  r.free,
		}, nil).Once()

		got, err := newCollector(t, p).CollectResources(ctx)
		require.NoError(t, err)

		assert.Equal(t, got.TotalMemoryKB-got.FreeMemoryKB, got.UsedMemoryKB)
		assert.LessOrEqual(t, got.UsedMemoryKB, got.TotalMemoryKB)
		assert.Equal(t, r.total/1024, got.TotalMemoryKB)
		assert.Equal(t, r.free/1024, got.FreeMemoryKB)
	}
}

func TestCollectResources_LoadAverage(t *testing.T) {
	ctx := context.Background()

	platforms := []struct {
		name string
		load *LoadReading
		want *domain.LoadAverage
	}{
		{
			name: "linux",
			load: &LoadReading{One: 0.52, Five: 0.58, Fifteen: 0.59},
			want: &domain.LoadAverage{One: 0.52, Five: 0.58, Fifteen: 0.59},
		},
		{
			name: "windows",
		},
	}

	for _, tt := range platforms {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockProvider{}
			p.On("QueryResources", ctx).Return(ResourceReading{
				CPUCount:    1,
				CPUUsage:    []float64{5},
				TotalMemory: 1 << 20,
				FreeMemory:  1 << 19,
				Load:        tt.load,
			}, nil).Once()

			got, err := newCollector(t, p).CollectResources(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.LoadAverage)
			assert.Equal(t, tt.want != nil, got.HasLoadAverage())
		})
	}
}

func TestCollectResources_Unavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("sandbox denied /proc")

	p := &mockProvider{}
	p.On("QueryResources", ctx).Return(ResourceReading{}, cause).Once()

	_, err := newCollector(t, p).CollectResources(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTelemetryUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestCollectResources_Inconsistent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		reading ResourceReading
	}{
		{
			name:    "free exceeds total",
			reading: ResourceReading{CPUCount: 1, CPUUsage: []float64{1}, TotalMemory: 1024, FreeMemory: 2048},
		},
		{
			name:    "no cores",
			reading: ResourceReading{TotalMemory: 1024},
		},
		{
			name:    "per-core length mismatch",
			reading: ResourceReading{CPUCount: 4, CPUUsage: []float64{1, 2}, TotalMemory: 1024},
		},
		{
			name:    "usage above 100",
			reading: ResourceReading{CPUCount: 1, CPUUsage: []float64{100.5}, TotalMemory: 1024},
		},
		{
			name:    "usage NaN",
			reading: ResourceReading{CPUCount: 1, CPUUsage: []float64{math.NaN()}, TotalMemory: 1024},
		},
		{
			name: "negative load",
			reading: ResourceReading{
				CPUCount: 1, CPUUsage: []float64{1}, TotalMemory: 1024,
				Load: &LoadReading{One: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockProvider{}
			p.On("QueryResources", ctx).Return(tt.reading, nil).Once()

			got, err := newCollector(t, p).CollectResources(ctx)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInconsistentReading)
			assert.NotErrorIs(t, err, domain.ErrTelemetryUnavailable)
			assert.Zero(t, got)
		})
	}
}

func TestCollectResources_DoesNotAliasReading(t *testing.T) {
	ctx := context.Background()
	usage := []float64{10, 20}

	p := &mockProvider{}
	p.On("QueryResources", ctx).Return(ResourceReading{CPUCount: 2, CPUUsage: usage, TotalMemory: 1024}, nil).Once()

	got, err := newCollector(t, p).CollectResources(ctx)
	require.NoError(t, err)

	usage[0] = 99
	assert.Equal(t, []float64{10, 20}, got.CPUUsage)
}

func TestSystemProvider_QueryIdentity(t *testing.T) {
	c := NewCollector(NewSystemProvider(logger.NewNop()), logger.NewNop())

	id := c.CollectIdentity(context.Background())
	assert.NotEmpty(t, id.OS)
	assert.NotEmpty(t, id.Arch)
	assert.Contains(t, []string{domain.FamilyUnix, domain.FamilyWindows, domain.FamilyWasm}, id.Family)
	assert.Positive(t, id.CPUCount)
}

func TestCollectResources_NegativeZeroUsage(t *testing.T) {
	ctx := context.Background()

	p := &mockProvider{}
	p.On("QueryResources", ctx).Return(ResourceReading{
		CPUCount:    1,
		CPUUsage:    []float64{math.Copysign(0, -1)},
		TotalMemory: 1024,
	}, nil).Once()

	got, err := newCollector(t, p).CollectResources(ctx)
	require.NoError(t, err)
	assert.False(t, math.Signbit(got.CPUUsage[0]))
}
