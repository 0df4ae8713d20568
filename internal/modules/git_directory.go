package modules

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GitDirectoryDisclosure checks for a browsable .git/ directory.
type GitDirectoryDisclosure struct{}

func NewGitDirectoryDisclosure() *GitDirectoryDisclosure {
	return &GitDirectoryDisclosure{}
}

func (m *GitDirectoryDisclosure) Name() ModuleName {
	return HTTPGitDirectoryDisclosure
}

func (m *GitDirectoryDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *GitDirectoryDisclosure) Description() string {
	return "Check for .git/ directory disclosure"
}

func (m *GitDirectoryDisclosure) IsAggressive() bool {
	return false
}

func (m *GitDirectoryDisclosure) Severity() Severity {
	return SeverityHigh
}

// isGitDirectoryListing requires the HEAD, refs, config, index and objects
// entries of a working-tree .git directory.
func (m *GitDirectoryDisclosure) isGitDirectoryListing(content string) bool {
	return strings.Contains(content, "HEAD") &&
		strings.Contains(content, "refs") &&
		strings.Contains(content, "config") &&
		strings.Contains(content, "index") &&
		strings.Contains(content, "objects")
}

func (m *GitDirectoryDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/.git/"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if m.isGitDirectoryListing(body) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
