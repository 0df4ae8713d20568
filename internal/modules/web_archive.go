package modules

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	webArchiveBaseURL = "https://web.archive.org/cdx/search/cdx?url=*.%s/*&output=json&fl=original&collapse=urlkey"
	webArchiveTimeout = 15 * time.Second
	webArchiveMaxBody = 10 * 1024 * 1024 // 10MB
)

// WebArchive enumerates subdomains from the Wayback Machine's CDX index of
// archived URLs.
type WebArchive struct{}

// NewWebArchive returns the web archive subdomain module.
func NewWebArchive() *WebArchive {
	return &WebArchive{}
}

func (m *WebArchive) Name() ModuleName {
	return SubdomainsWebArchive
}

func (m *WebArchive) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *WebArchive) Description() string {
	return "Enumerate subdomains from the Internet Archive's indexed URLs"
}

func (m *WebArchive) IsAggressive() bool {
	return false
}

func (m *WebArchive) Severity() Severity {
	return SeverityInformative
}

// Enumerate queries the CDX API and returns the hostnames of every archived
// URL under domain, lowercased and deduplicated.
func (m *WebArchive) Enumerate(ctx context.Context, domain string) ([]string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, webArchiveTimeout)
	defer cancel()

	body, err := fetchSource(reqCtx, fmt.Sprintf(webArchiveBaseURL, domain), webArchiveMaxBody)
	if err != nil {
		return nil, fmt.Errorf("web archive fetch for %s: %w", domain, err)
	}

	return parseWebArchiveResponse(body, domain)
}

// parseWebArchiveResponse parses the CDX JSON format: an array of rows where
// the first row is the column header and each following row holds one
// original URL.
func parseWebArchiveResponse(body []byte, domain string) ([]string, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var rows [][]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &InvalidHTTPResponseError{Endpoint: fmt.Sprintf("web archive cdx for %s", domain)}
	}
	if len(rows) < 2 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var hosts []string

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		parsed, err := url.Parse(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		host := strings.ToLower(parsed.Hostname())
		if host == "" {
			continue
		}
		if !seen[host] {
			seen[host] = true
			hosts = append(hosts, host)
		}
	}

	return hosts, nil
}
