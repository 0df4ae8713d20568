package modules

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	crtshBaseURL = "https://crt.sh/?q=%%25.%s&output=json"
	crtshTimeout = 30 * time.Second
	crtshMaxBody = 50 * 1024 * 1024 // 50MB
)

type crtshEntry struct {
	NameValue string `json:"name_value"`
}

// Crtsh enumerates subdomains from the crt.sh Certificate Transparency logs.
type Crtsh struct{}

// NewCrtsh returns the crt.sh subdomain module.
func NewCrtsh() *Crtsh {
	return &Crtsh{}
}

func (m *Crtsh) Name() ModuleName {
	return SubdomainsCrtsh
}

func (m *Crtsh) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *Crtsh) Description() string {
	return "Enumerate subdomains from crt.sh Certificate Transparency logs"
}

func (m *Crtsh) IsAggressive() bool {
	return false
}

func (m *Crtsh) Severity() Severity {
	return SeverityInformative
}

// Enumerate queries crt.sh and returns the discovered hostnames, lowercased
// and deduplicated, wildcards stripped.
func (m *Crtsh) Enumerate(ctx context.Context, domain string) ([]string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, crtshTimeout)
	defer cancel()

	body, err := fetchSource(reqCtx, fmt.Sprintf(crtshBaseURL, domain), crtshMaxBody)
	if err != nil {
		return nil, fmt.Errorf("crt.sh fetch for %s: %w", domain, err)
	}

	return parseCrtshResponse(body, domain)
}

func parseCrtshResponse(body []byte, domain string) ([]string, error) {
	var entries []crtshEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("crt.sh JSON parse for %s: %w", domain, err)
	}

	seen := make(map[string]bool)
	var hosts []string

	for _, entry := range entries {
		// name_value can contain multiple names separated by newlines.
		for _, name := range strings.Split(entry.NameValue, "\n") {
			name = strings.TrimSpace(strings.ToLower(name))
			if name == "" {
				continue
			}
			name = strings.TrimPrefix(name, "*.")
			if !strings.HasSuffix(name, "."+domain) && name != domain {
				continue
			}
			if !seen[name] {
				seen[name] = true
				hosts = append(hosts, name)
			}
		}
	}

	return hosts, nil
}
