package modules

import (
	"context"
	"net/http"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// DirectoryListingDisclosure checks whether the web server has directory
// listing enabled, which often leaks information.
type DirectoryListingDisclosure struct {
	listingRegex *regexp.Regexp
}

func NewDirectoryListingDisclosure() *DirectoryListingDisclosure {
	return &DirectoryListingDisclosure{
		listingRegex: regexp.MustCompile(`<title>Index of .*</title>`),
	}
}

func (m *DirectoryListingDisclosure) Name() ModuleName {
	return HTTPDirectoryListingDisclosure
}

func (m *DirectoryListingDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *DirectoryListingDisclosure) Description() string {
	return "Check for enabled directory listing, which often leaks information"
}

func (m *DirectoryListingDisclosure) IsAggressive() bool {
	return false
}

func (m *DirectoryListingDisclosure) Severity() Severity {
	return SeverityMedium
}

func (m *DirectoryListingDisclosure) isDirectoryListing(body string) bool {
	return m.listingRegex.MatchString(body)
}

func (m *DirectoryListingDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if m.isDirectoryListing(body) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
