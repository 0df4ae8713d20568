package modules

import (
	"context"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// DotEnvDisclosure checks for an exposed .env file.
type DotEnvDisclosure struct{}

func NewDotEnvDisclosure() *DotEnvDisclosure {
	return &DotEnvDisclosure{}
}

func (m *DotEnvDisclosure) Name() ModuleName {
	return HTTPDotenvDisclosure
}

func (m *DotEnvDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *DotEnvDisclosure) Description() string {
	return "Check for a .env file disclosure"
}

func (m *DotEnvDisclosure) IsAggressive() bool {
	return false
}

func (m *DotEnvDisclosure) Severity() Severity {
	return SeverityHigh
}

func (m *DotEnvDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/.env"

	_, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if ok {
		return newFinding(m, url), nil
	}

	return nil, nil
}
