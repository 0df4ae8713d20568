package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GitlabOpenRegistration checks whether a GitLab instance accepts
// self-service account registration.
type GitlabOpenRegistration struct{}

func NewGitlabOpenRegistration() *GitlabOpenRegistration {
	return &GitlabOpenRegistration{}
}

func (m *GitlabOpenRegistration) Name() ModuleName {
	return HTTPGitlabOpenRegistration
}

func (m *GitlabOpenRegistration) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *GitlabOpenRegistration) Description() string {
	return "Check if the GitLab instance is open to registrations"
}

func (m *GitlabOpenRegistration) IsAggressive() bool {
	return false
}

func (m *GitlabOpenRegistration) Severity() Severity {
	return SeverityHigh
}

func (m *GitlabOpenRegistration) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	body, ok, err := httpGet(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if strings.Contains(strings.ToLower(body), "gitlab") && strings.Contains(body, "Register") {
		return newFinding(m, endpoint), nil
	}

	return nil, nil
}
