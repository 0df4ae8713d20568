package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// TraefikDashboardUnauthenticatedAccess checks for a Traefik dashboard
// reachable without authentication.
type TraefikDashboardUnauthenticatedAccess struct{}

func NewTraefikDashboardUnauthenticatedAccess() *TraefikDashboardUnauthenticatedAccess {
	return &TraefikDashboardUnauthenticatedAccess{}
}

func (m *TraefikDashboardUnauthenticatedAccess) Name() ModuleName {
	return HTTPTraefikDashboardUnauthenticatedAccess
}

func (m *TraefikDashboardUnauthenticatedAccess) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *TraefikDashboardUnauthenticatedAccess) Description() string {
	return "Check for Traefik Dashboard Unauthenticated Access"
}

func (m *TraefikDashboardUnauthenticatedAccess) IsAggressive() bool {
	return false
}

func (m *TraefikDashboardUnauthenticatedAccess) Severity() Severity {
	return SeverityHigh
}

func (m *TraefikDashboardUnauthenticatedAccess) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	body, ok, err := httpGet(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	// Old (v1) and current dashboard markups.
	oldDashboard := strings.Contains(body, `ng-app="traefik"`) &&
		strings.Contains(body, `href="https://docs.traefik.io"`) &&
		strings.Contains(body, `href="https://traefik.io"`)
	newDashboard := strings.Contains(body, `fixed-top"><head><meta charset="utf-8"><title>Traefik</title><base`)

	if oldDashboard || newDashboard {
		return newFinding(m, endpoint), nil
	}

	return nil, nil
}
