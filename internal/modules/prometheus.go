package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// PrometheusDashboardUnauthenticatedAccess checks for a Prometheus web UI
// reachable without authentication.
type PrometheusDashboardUnauthenticatedAccess struct{}

func NewPrometheusDashboardUnauthenticatedAccess() *PrometheusDashboardUnauthenticatedAccess {
	return &PrometheusDashboardUnauthenticatedAccess{}
}

func (m *PrometheusDashboardUnauthenticatedAccess) Name() ModuleName {
	return HTTPPrometheusDashboardUnauthenticatedAccess
}

func (m *PrometheusDashboardUnauthenticatedAccess) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *PrometheusDashboardUnauthenticatedAccess) Description() string {
	return "Check for Prometheus Dashboard Unauthenticated Access"
}

func (m *PrometheusDashboardUnauthenticatedAccess) IsAggressive() bool {
	return false
}

func (m *PrometheusDashboardUnauthenticatedAccess) Severity() Severity {
	return SeverityHigh
}

func (m *PrometheusDashboardUnauthenticatedAccess) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	body, ok, err := httpGet(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if strings.Contains(body, "<title>Prometheus Time Series Collection and Processing Server</title>") {
		return newFinding(m, endpoint), nil
	}

	return nil, nil
}
