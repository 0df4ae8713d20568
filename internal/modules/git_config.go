package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GitConfigDisclosure checks for an exposed .git/config file, which leaks
// remote URLs and sometimes embedded credentials.
type GitConfigDisclosure struct{}

func NewGitConfigDisclosure() *GitConfigDisclosure {
	return &GitConfigDisclosure{}
}

func (m *GitConfigDisclosure) Name() ModuleName {
	return HTTPGitConfigDisclosure
}

func (m *GitConfigDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *GitConfigDisclosure) Description() string {
	return "Check for .git/config file disclosure"
}

func (m *GitConfigDisclosure) IsAggressive() bool {
	return false
}

func (m *GitConfigDisclosure) Severity() Severity {
	return SeverityHigh
}

func (m *GitConfigDisclosure) isConfigFile(content string) bool {
	return strings.Contains(content, "[core]")
}

func (m *GitConfigDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/.git/config"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if m.isConfigFile(body) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
