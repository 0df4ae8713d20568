package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// KibanaUnauthenticatedAccess checks for a Kibana instance reachable without
// authentication. The markers cover the loading pages of the 5.x, 6.x and
// 7.x generations.
type KibanaUnauthenticatedAccess struct{}

func NewKibanaUnauthenticatedAccess() *KibanaUnauthenticatedAccess {
	return &KibanaUnauthenticatedAccess{}
}

func (m *KibanaUnauthenticatedAccess) Name() ModuleName {
	return HTTPKibanaUnauthenticatedAccess
}

func (m *KibanaUnauthenticatedAccess) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *KibanaUnauthenticatedAccess) Description() string {
	return "Check for Kibana Unauthenticated Access"
}

func (m *KibanaUnauthenticatedAccess) IsAggressive() bool {
	return false
}

func (m *KibanaUnauthenticatedAccess) Severity() Severity {
	return SeverityHigh
}

var kibanaMarkers = []string{
	`</head><body kbn-chrome id="kibana-body"><kbn-initial-state`,
	`<div class="ui-app-loading"><h1><strong>Kibana</strong><small>&nbsp;is loading.`,
	`<div class="kibanaWelcomeLogo"></div></div></div><div class="kibanaWelcomeText">Loading Kibana</div></div>`,
}

func (m *KibanaUnauthenticatedAccess) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	body, ok, err := httpGet(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	for _, marker := range kibanaMarkers {
		if strings.Contains(body, marker) {
			return newFinding(m, endpoint), nil
		}
	}

	return nil, nil
}
