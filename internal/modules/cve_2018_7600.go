package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Cve2018_7600 checks for Drupalgeddon 2 (CVE-2018-7600) by requesting the
// registration form through the unpatched AJAX renderer. A vulnerable
// instance replies with render-array commands for the injected element.
type Cve2018_7600 struct{}

func NewCve2018_7600() *Cve2018_7600 {
	return &Cve2018_7600{}
}

func (m *Cve2018_7600) Name() ModuleName {
	return HTTPCve2018_7600
}

func (m *Cve2018_7600) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *Cve2018_7600) Description() string {
	return "Check for CVE-2018-7600 (Drupal remote code execution)"
}

func (m *Cve2018_7600) IsAggressive() bool {
	return false
}

func (m *Cve2018_7600) Severity() Severity {
	return SeverityHigh
}

func (m *Cve2018_7600) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/user/register?element_parents=account/mail/%23value&ajax_form=1&_wrapper_format=drupal_ajax"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if strings.Contains(body, `"command":"insert"`) && strings.Contains(body, `"settings"`) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
