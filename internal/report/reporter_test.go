package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"horizonx-sys/internal/domain"
)

var (
	testIdentity = domain.HostIdentity{OS: "linux", Arch: "x86_64", Family: "unix", Hostname: "node1", CPUCount: 2}
	testSnapshot = domain.ResourceSnapshot{
		CPUCount:      2,
		CPUUsage:      []float64{12.34, 56.78},
		TotalMemoryKB: 4096,
		FreeMemoryKB:  1024,
		UsedMemoryKB:  3072,
	}
)

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatText)

	require.NoError(t, r.Identity(testIdentity))
	require.NoError(t, r.Status(testSnapshot))

	assert.Equal(t, FormatIdentity(testIdentity)+FormatStatus(testSnapshot), buf.String())
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Status(testSnapshot))

	var got domain.ResourceSnapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSnapshot, got)
	assert.NotContains(t, buf.String(), "load_average")
}

func TestReporter_JSON_OmitsMissingHostname(t *testing.T) {
	var buf bytes.Buffer
	id := testIdentity
	id.Hostname = ""

	require.NoError(t, New(&buf, FormatJSON).Identity(id))
	assert.NotContains(t, buf.String(), "hostname")
	assert.Contains(t, buf.String(), `"cpu_count": 2`)
}

func TestReporter_YAML(t *testing.T) {
	var buf bytes.Buffer
	s := testSnapshot
	s.LoadAverage = &domain.LoadAverage{One: 1, Five: 2, Fifteen: 3}

	require.NoError(t, New(&buf, FormatYAML).Status(s))

	var got domain.ResourceSnapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s, got)
}

func TestReporter_UnknownFormat(t *testing.T) {
	err := New(&bytes.Buffer{}, Format("xml")).Identity(testIdentity)
	assert.EqualError(t, err, `report: unknown format "xml"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReporter_WriteError(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON} {
		assert.Error(t, New(failingWriter{}, f).Identity(testIdentity), f)
	}
}
