package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GitHeadDisclosure checks for an exposed .git/HEAD file.
type GitHeadDisclosure struct{}

func NewGitHeadDisclosure() *GitHeadDisclosure {
	return &GitHeadDisclosure{}
}

func (m *GitHeadDisclosure) Name() ModuleName {
	return HTTPGitHeadDisclosure
}

func (m *GitHeadDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *GitHeadDisclosure) Description() string {
	return "Check for .git/HEAD file disclosure"
}

func (m *GitHeadDisclosure) IsAggressive() bool {
	return false
}

func (m *GitHeadDisclosure) Severity() Severity {
	return SeverityHigh
}

// isHeadFile reports whether content looks like a git HEAD file: a symbolic
// reference as its first token.
func (m *GitHeadDisclosure) isHeadFile(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(content)), "ref:")
}

func (m *GitHeadDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/.git/HEAD"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if m.isHeadFile(body) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
