// Package report renders collected telemetry for the terminal.
package report

import (
	"fmt"
	"strings"

	"horizonx-sys/internal/domain"
)

const kbPerMB = 1024

// FormatIdentity lists the host facts one per line. The Hostname line is left
// out entirely when the hostname is unknown.
func FormatIdentity(id domain.HostIdentity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "OS: %s\n", id.OS)
	fmt.Fprintf(&b, "Arch: %s\n", id.Arch)
	fmt.Fprintf(&b, "Family: %s\n", id.Family)
	if id.HasHostname() {
		fmt.Fprintf(&b, "Hostname: %s\n", id.Hostname)
	}
	fmt.Fprintf(&b, "CPU Count: %d\n", id.CPUCount)

	return b.String()
}

// FormatStatus renders live utilization. Memory is shown in whole MB,
// truncated.
func FormatStatus(s domain.ResourceSnapshot) string {
	var b strings.Builder

	if s.LoadAverage != nil {
		fmt.Fprintf(&b, "Load Average: %.2f %.2f %.2f\n",
			s.LoadAverage.One, s.LoadAverage.Five, s.LoadAverage.Fifteen)
	}

	b.WriteString("Memory:\n")
	fmt.Fprintf(&b, "  Total: %d MB\n", toMB(s.TotalMemoryKB))
	fmt.Fprintf(&b, "  Free: %d MB\n", toMB(s.FreeMemoryKB))
	fmt.Fprintf(&b, "  Used: %d MB\n", toMB(s.UsedMemoryKB))

	fmt.Fprintf(&b, "CPU Cores: %d\n", s.CPUCount)
	b.WriteString("CPU Usage:\n")
	for i, usage := range s.CPUUsage {
		fmt.Fprintf(&b, "  CPU %d: %.1f%%\n", i, usage)
	}

	return b.String()
}

func toMB(kb uint64) uint64 {
	return kb / kbPerMB
}
