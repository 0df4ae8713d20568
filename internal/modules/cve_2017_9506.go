package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Cve2017_9506 checks for the Jira OAuth plugin SSRF (CVE-2017-9506) by
// asking the icon-uri servlet to proxy a well-known external document.
type Cve2017_9506 struct{}

func NewCve2017_9506() *Cve2017_9506 {
	return &Cve2017_9506{}
}

func (m *Cve2017_9506) Name() ModuleName {
	return HTTPCve2017_9506
}

func (m *Cve2017_9506) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *Cve2017_9506) Description() string {
	return "Check for CVE-2017-9506 (SSRF)"
}

func (m *Cve2017_9506) IsAggressive() bool {
	return false
}

func (m *Cve2017_9506) Severity() Severity {
	return SeverityMedium
}

func (m *Cve2017_9506) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/plugins/servlet/oauth/users/icon-uri?consumerUri=https://google.com/robots.txt"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	body = strings.ToLower(body)
	if strings.Contains(body, "user-agent: *") && strings.Contains(body, "disallow") {
		return newFinding(m, url), nil
	}

	return nil, nil
}
