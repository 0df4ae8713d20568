// Package report defines the versioned scan report, the contract with
// downstream consumers.
package report

import (
	"time"

	"github.com/vulnverified/prowl/internal/modules"
	"github.com/vulnverified/prowl/internal/profile"
)

// Protocol classifies what was found listening on a port.
type Protocol string

const (
	ProtocolTCP   Protocol = "tcp"
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// Port is an open port on a host. A port only appears when the TCP
// handshake completed within the scanner's timeout.
type Port struct {
	Port     uint16            `json:"port"`
	Protocol Protocol          `json:"protocol"`
	Findings []modules.Finding `json:"findings"`
}

// Host is a domain name discovered beneath the target, the target itself
// included. Domain names are unique within a report.
type Host struct {
	Domain   string   `json:"domain"`
	Resolves bool     `json:"resolves"`
	IPs      []string `json:"ips"`
	Ports    []Port   `json:"ports"`
}

// V1 is the first report schema. Timestamps are UTC; DurationMs is the
// elapsed time between them rounded to milliseconds. Both are set by the
// scanner, never by callers.
type V1 struct {
	Target      string          `json:"target"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
	DurationMs  uint64          `json:"duration_ms"`
	Profile     profile.Profile `json:"profile"`
	Hosts       []Host          `json:"hosts"`
}

// Report is the versioned envelope handed to consumers. Exactly one version
// field is set; new schema versions add fields alongside V1 so old consumers
// keep parsing the reports they understand.
type Report struct {
	V1 *V1 `json:"V1,omitempty"`
}
