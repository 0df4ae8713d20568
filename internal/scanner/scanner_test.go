package scanner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnverified/prowl/internal/modules"
	"github.com/vulnverified/prowl/internal/profile"
	"github.com/vulnverified/prowl/internal/report"
)

// fakeResolver resolves only the hosts it was seeded with.
type fakeResolver struct {
	ips map[string][]string
}

func (r *fakeResolver) LookupIPs(ctx context.Context, host string) []string {
	return r.ips[host]
}

func testScanner(resolver Resolver) *Scanner {
	s := New()
	s.resolver = resolver
	return s
}

func TestNew_Budgets(t *testing.T) {
	s := New()

	assert.Equal(t, 20, s.subdomainsConcurrency)
	assert.Equal(t, 100, s.dnsConcurrency)
	assert.Equal(t, 200, s.portsConcurrency)
	assert.Equal(t, 20, s.vulnerabilitiesConcurrency)
	assert.Equal(t, 1, s.portScanConcurrency)
}

func TestNormalize(t *testing.T) {
	candidates := []string{
		"www.example.com",
		"api.example.com",
		"www.example.com", // duplicate
		"unrelated.org",   // not under the target
		"example.com",
	}

	hosts := normalize("example.com", candidates)

	require.Len(t, hosts, 3)
	assert.Equal(t, "www.example.com", hosts[0].Domain)
	assert.Equal(t, "api.example.com", hosts[1].Domain)
	assert.Equal(t, "example.com", hosts[2].Domain)

	for _, h := range hosts {
		assert.False(t, h.Resolves)
		assert.Empty(t, h.IPs)
		assert.Empty(t, h.Ports)
	}
}

func TestScan_EmptyEnumeration(t *testing.T) {
	// No modules enabled, target does not resolve: the report still carries
	// the target itself.
	s := testScanner(&fakeResolver{})
	prof := profile.Profile{Subdomains: true, Modules: nil}

	rep, err := s.Scan(context.Background(), "nonexistent.invalid", prof)
	require.NoError(t, err)
	require.NotNil(t, rep.V1)

	v1 := rep.V1
	assert.Equal(t, "nonexistent.invalid", v1.Target)
	require.Len(t, v1.Hosts, 1)

	host := v1.Hosts[0]
	assert.Equal(t, "nonexistent.invalid", host.Domain)
	assert.False(t, host.Resolves)
	assert.Empty(t, host.IPs)
	assert.Empty(t, host.Ports)

	assert.False(t, v1.CompletedAt.Before(v1.StartedAt))
	elapsed := v1.CompletedAt.Sub(v1.StartedAt).Milliseconds()
	diff := int64(v1.DurationMs) - elapsed
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, int64(1))
}

func TestScan_RecordsIPs(t *testing.T) {
	resolver := &fakeResolver{ips: map[string][]string{
		"resolving.invalid": {"192.0.2.1", "2001:db8::1"},
	}}

	s := testScanner(resolver)
	// Keep stage 4 off the network: a host that resolves would be port
	// scanned by Scan, so stage 3 is exercised on its own through
	// resolveHosts.
	hosts := []report.Host{
		{Domain: "resolving.invalid", IPs: []string{}, Ports: []report.Port{}},
		{Domain: "dead.invalid", IPs: []string{}, Ports: []report.Port{}},
	}

	s.resolveHosts(context.Background(), hosts)

	assert.True(t, hosts[0].Resolves)
	assert.Equal(t, []string{"192.0.2.1", "2001:db8::1"}, hosts[0].IPs)
	assert.False(t, hosts[1].Resolves)
	assert.Empty(t, hosts[1].IPs)
}

func TestScanVulnerabilities_AttachesFindings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/.git/HEAD" {
			w.Write([]byte("ref: refs/heads/master\n"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	portNum, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	hosts := []report.Host{{
		Domain:   u.Hostname(),
		Resolves: true,
		IPs:      []string{u.Hostname()},
		Ports: []report.Port{
			{Port: uint16(portNum), Protocol: report.ProtocolTCP, Findings: []modules.Finding{}},
		},
	}}

	s := testScanner(&fakeResolver{})
	prof := profile.Profile{Modules: []modules.ModuleName{modules.HTTPGitHeadDisclosure}}

	s.scanVulnerabilities(context.Background(), hosts, prof)

	require.Len(t, hosts[0].Ports[0].Findings, 1)
	finding := hosts[0].Ports[0].Findings[0]
	assert.Equal(t, modules.HTTPGitHeadDisclosure, finding.Module)
	assert.Equal(t, modules.SeverityHigh, finding.Severity)
	assert.Contains(t, finding.Result.URL, "/.git/HEAD")
}

func TestScanVulnerabilities_ModuleSelection(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	portNum, _ := strconv.Atoi(u.Port())

	hosts := []report.Host{{
		Domain:   u.Hostname(),
		Resolves: true,
		Ports: []report.Port{
			{Port: uint16(portNum), Protocol: report.ProtocolTCP, Findings: []modules.Finding{}},
		},
	}}

	s := testScanner(&fakeResolver{})
	prof := profile.Profile{Modules: []modules.ModuleName{modules.HTTPGitHeadDisclosure}}

	s.scanVulnerabilities(context.Background(), hosts, prof)

	// Exactly one probe per open port for a single-module profile.
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 1)
	assert.Equal(t, "/.git/HEAD", requests[0])
}

func TestScanVulnerabilities_RespectsBudget(t *testing.T) {
	var (
		mu      sync.Mutex
		current int
		peak    int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		current++
		if current > peak {
			peak = current
		}
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		current--
		mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	portNum, _ := strconv.Atoi(u.Port())

	hosts := []report.Host{{
		Domain:   u.Hostname(),
		Resolves: true,
		Ports: []report.Port{
			{Port: uint16(portNum), Protocol: report.ProtocolTCP, Findings: []modules.Finding{}},
		},
	}}

	s := testScanner(&fakeResolver{})
	s.vulnerabilitiesConcurrency = 2
	prof := profile.Profile{Modules: []modules.ModuleName{
		modules.HTTPGitHeadDisclosure,
		modules.HTTPGitConfigDisclosure,
		modules.HTTPGitDirectoryDisclosure,
		modules.HTTPDotenvDisclosure,
		modules.HTTPDsStoreDisclosure,
		modules.HTTPEtcdUnauthenticatedAccess,
	}}

	s.scanVulnerabilities(context.Background(), hosts, prof)

	mu.Lock()
	defer mu.Unlock()
	assert.Greater(t, peak, 0)
	assert.LessOrEqual(t, peak, 2, "probes in flight must not exceed the budget")
}
