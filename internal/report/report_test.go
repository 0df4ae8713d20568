package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnverified/prowl/internal/modules"
	"github.com/vulnverified/prowl/internal/profile"
)

func sampleReport() *Report {
	started := time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC)
	completed := started.Add(4250 * time.Millisecond)

	finding := modules.Finding{
		Module:        modules.HTTPGitHeadDisclosure,
		ModuleVersion: modules.NewGitHeadDisclosure().Version(),
		Severity:      modules.SeverityHigh,
		Result:        modules.ModuleResult{URL: "http://www.example.com:8080/.git/HEAD"},
	}

	return &Report{V1: &V1{
		Target:      "example.com",
		StartedAt:   started,
		CompletedAt: completed,
		DurationMs:  4250,
		Profile:     profile.Default(),
		Hosts: []Host{
			{
				Domain:   "www.example.com",
				Resolves: true,
				IPs:      []string{"192.0.2.10"},
				Ports: []Port{
					{Port: 8080, Protocol: ProtocolTCP, Findings: []modules.Finding{finding}},
				},
			},
			{
				Domain:   "old.example.com",
				Resolves: false,
				IPs:      []string{},
				Ports:    []Port{},
			},
		},
	}}
}

func TestReport_JSONRoundTrip(t *testing.T) {
	original := sampleReport()

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, original, &decoded)
}

func TestReport_EnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Contains(t, envelope, "V1")
	require.Len(t, envelope, 1)

	var v1 map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(envelope["V1"], &v1))
	for _, key := range []string{"target", "started_at", "completed_at", "duration_ms", "profile", "hosts"} {
		assert.Contains(t, v1, key)
	}
}

func TestReport_WireFormat(t *testing.T) {
	raw, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, `"module":"http/git_head_disclosure"`)
	assert.Contains(t, s, `"module_version":"1.0.0"`)
	assert.Contains(t, s, `"severity":"high"`)
	assert.Contains(t, s, `"result":{"Url":"http://www.example.com:8080/.git/HEAD"}`)
	assert.Contains(t, s, `"protocol":"tcp"`)
	assert.Contains(t, s, `"duration_ms":4250`)
}

func TestReport_DurationConsistency(t *testing.T) {
	rep := sampleReport().V1

	assert.False(t, rep.CompletedAt.Before(rep.StartedAt))

	elapsed := rep.CompletedAt.Sub(rep.StartedAt).Milliseconds()
	diff := int64(rep.DurationMs) - elapsed
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, int64(1))
}
