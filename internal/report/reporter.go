package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"horizonx-sys/internal/domain"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// Reporter writes info and status output to w. The structured formats encode
// the domain values directly, in raw KiB.
type Reporter struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, format: format}
}

func (r *Reporter) Identity(id domain.HostIdentity) error {
	return r.write(id, func() string { return FormatIdentity(id) })
}

func (r *Reporter) Status(s domain.ResourceSnapshot) error {
	return r.write(s, func() string { return FormatStatus(s) })
}

func (r *Reporter) write(v any, text func() string) error {
	switch r.format {
	case FormatText, "":
		_, err := io.WriteString(r.w, text())
		return err

	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		_, err = r.w.Write(append(data, '\n'))
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("report: unknown format %q", r.format)
	}
}
