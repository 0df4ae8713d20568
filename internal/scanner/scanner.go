// Package scanner drives the five-stage scan pipeline: subdomain
// enumeration, normalization, DNS filtering, port scanning and HTTP
// vulnerability probing.
package scanner

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/vulnverified/prowl/internal/modules"
	"github.com/vulnverified/prowl/internal/profile"
	"github.com/vulnverified/prowl/internal/report"
)

const httpRequestTimeout = 10 * time.Second

// Scanner owns the shared HTTP client and DNS resolver and the per-stage
// concurrency budgets. A Scanner is safe to reuse across scans.
type Scanner struct {
	httpClient *http.Client
	resolver   Resolver

	subdomainsConcurrency      int
	dnsConcurrency             int
	portsConcurrency           int
	vulnerabilitiesConcurrency int
	portScanConcurrency        int
}

// New builds a Scanner with the default budgets. Probe targets routinely
// present self-signed certificates, so TLS verification is off.
func New() *Scanner {
	return &Scanner{
		httpClient: &http.Client{
			Timeout: httpRequestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		resolver: newResolver(),

		subdomainsConcurrency:      20,
		dnsConcurrency:             100,
		portsConcurrency:           200,
		vulnerabilitiesConcurrency: 20,
		portScanConcurrency:        1,
	}
}

// Scan runs the full pipeline against target and returns the finished
// report. A failing module never aborts the scan; only cancellation
// surfaces as an error.
func (s *Scanner) Scan(ctx context.Context, target string, prof profile.Profile) (*report.Report, error) {
	rep := &report.V1{
		Target:    target,
		StartedAt: time.Now().UTC(),
		Profile:   prof,
	}

	log.Info().Str("target", target).Msg("starting scan")

	// Stage 1: fan out across the enabled subdomain modules.
	candidates := s.enumerateSubdomains(ctx, target, prof)
	candidates = append(candidates, target)

	// Stage 2: dedup and keep only names under the target.
	hosts := normalize(target, candidates)
	log.Info().Int("domains", len(hosts)).Msg("enumeration finished")

	// Stage 3: resolve every host; unresolved ones stay in the report.
	s.resolveHosts(ctx, hosts)

	// Stage 4: port scan resolving hosts, one host at a time.
	s.scanHostPorts(ctx, hosts)

	// Stage 5: run every enabled HTTP module against every open port.
	s.scanVulnerabilities(ctx, hosts, prof)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep.Hosts = hosts
	rep.CompletedAt = time.Now().UTC()
	rep.DurationMs = uint64(rep.CompletedAt.Sub(rep.StartedAt).Milliseconds())

	return &report.Report{V1: rep}, nil
}

func (s *Scanner) enumerateSubdomains(ctx context.Context, target string, prof profile.Profile) []string {
	subdomainModules := modules.GetSubdomainModules(prof.Modules)

	var (
		mu         sync.Mutex
		candidates []string
	)

	g := new(errgroup.Group)
	g.SetLimit(s.subdomainsConcurrency)
	for _, m := range subdomainModules {
		g.Go(func() error {
			names, err := m.Enumerate(ctx, target)
			if err != nil {
				log.Error().Err(err).Str("module", string(m.Name())).Msg("subdomain enumeration failed")
				return nil
			}
			mu.Lock()
			candidates = append(candidates, names...)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return candidates
}

// normalize dedups candidates by string equality and drops names that do not
// contain the target, guarding against modules returning unrelated domains.
// Hosts come out in first-seen order.
func normalize(target string, candidates []string) []report.Host {
	seen := make(map[string]bool, len(candidates))
	var hosts []report.Host

	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		if !strings.Contains(candidate, target) {
			continue
		}

		hosts = append(hosts, report.Host{
			Domain: candidate,
			IPs:    []string{},
			Ports:  []report.Port{},
		})
	}

	return hosts
}

func (s *Scanner) resolveHosts(ctx context.Context, hosts []report.Host) {
	g := new(errgroup.Group)
	g.SetLimit(s.dnsConcurrency)
	for i := range hosts {
		g.Go(func() error {
			ips := s.resolver.LookupIPs(ctx, hosts[i].Domain)
			hosts[i].Resolves = len(ips) > 0
			if len(ips) > 0 {
				hosts[i].IPs = ips
			}
			return nil
		})
	}
	g.Wait()
}

func (s *Scanner) scanHostPorts(ctx context.Context, hosts []report.Host) {
	g := new(errgroup.Group)
	g.SetLimit(s.portScanConcurrency)
	for i := range hosts {
		g.Go(func() error {
			if !hosts[i].Resolves {
				return nil
			}
			log.Info().Str("host", hosts[i].Domain).Msg("scanning ports")
			hosts[i] = ScanPorts(ctx, s.portsConcurrency, hosts[i])
			return nil
		})
	}
	g.Wait()
}

func (s *Scanner) scanVulnerabilities(ctx context.Context, hosts []report.Host, prof profile.Profile) {
	httpModules := modules.GetHTTPModules(prof.Modules)

	type probe struct {
		hostIdx  int
		portIdx  int
		module   modules.HTTPModule
		endpoint string
	}

	var probes []probe
	for hi := range hosts {
		for pi := range hosts[hi].Ports {
			endpoint := fmt.Sprintf("http://%s:%d", hosts[hi].Domain, hosts[hi].Ports[pi].Port)
			for _, m := range httpModules {
				probes = append(probes, probe{hostIdx: hi, portIdx: pi, module: m, endpoint: endpoint})
			}
		}
	}
	if len(probes) == 0 {
		return
	}

	log.Info().Int("probes", len(probes)).Msg("scanning vulnerabilities")

	type probeResult struct {
		hostIdx int
		portIdx int
		finding *modules.Finding
	}

	results := make(chan probeResult)
	go func() {
		g := new(errgroup.Group)
		g.SetLimit(s.vulnerabilitiesConcurrency)
		for _, p := range probes {
			g.Go(func() error {
				finding, err := p.module.Scan(ctx, s.httpClient, p.endpoint)
				if err != nil {
					log.Debug().Err(err).
						Str("module", string(p.module.Name())).
						Str("endpoint", p.endpoint).
						Msg("probe failed")
					return nil
				}
				if finding != nil {
					results <- probeResult{hostIdx: p.hostIdx, portIdx: p.portIdx, finding: finding}
				}
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	// Findings fold into the report on this goroutine only.
	for r := range results {
		port := &hosts[r.hostIdx].Ports[r.portIdx]
		port.Findings = append(port.Findings, *r.finding)

		log.Info().
			Str("module", string(r.finding.Module)).
			Str("severity", string(r.finding.Severity)).
			Str("url", r.finding.Result.URL).
			Msg("finding")
	}
}
