package modules

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
)

// EtcdUnauthenticatedAccess checks for an etcd version endpoint answering
// without authentication.
type EtcdUnauthenticatedAccess struct{}

func NewEtcdUnauthenticatedAccess() *EtcdUnauthenticatedAccess {
	return &EtcdUnauthenticatedAccess{}
}

func (m *EtcdUnauthenticatedAccess) Name() ModuleName {
	return HTTPEtcdUnauthenticatedAccess
}

func (m *EtcdUnauthenticatedAccess) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *EtcdUnauthenticatedAccess) Description() string {
	return "Check for CoreOS' etcd Unauthenticated Access"
}

func (m *EtcdUnauthenticatedAccess) IsAggressive() bool {
	return false
}

func (m *EtcdUnauthenticatedAccess) Severity() Severity {
	return SeverityHigh
}

func (m *EtcdUnauthenticatedAccess) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/version"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	// The length bound rules out pages that merely mention etcd.
	if strings.Contains(body, `"etcdserver"`) &&
		strings.Contains(body, `"etcdcluster"`) &&
		utf8.RuneCountInString(body) < 200 {
		return newFinding(m, url), nil
	}

	return nil, nil
}
