package modules

import (
	"context"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// DsStoreDisclosure checks for an exposed macOS .DS_Store file, which leaks
// directory contents.
type DsStoreDisclosure struct{}

func NewDsStoreDisclosure() *DsStoreDisclosure {
	return &DsStoreDisclosure{}
}

func (m *DsStoreDisclosure) Name() ModuleName {
	return HTTPDsStoreDisclosure
}

func (m *DsStoreDisclosure) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *DsStoreDisclosure) Description() string {
	return "Check for a .DS_Store file disclosure"
}

func (m *DsStoreDisclosure) IsAggressive() bool {
	return false
}

func (m *DsStoreDisclosure) Severity() Severity {
	return SeverityMedium
}

// isDsStoreFile matches the Bud1 allocator magic at the start of the file.
func (m *DsStoreDisclosure) isDsStoreFile(content []byte) bool {
	if len(content) < 8 {
		return false
	}

	signature := []byte{0x0, 0x0, 0x0, 0x1, 0x42, 0x75, 0x64, 0x31}
	for i, b := range signature {
		if content[i] != b {
			return false
		}
	}
	return true
}

func (m *DsStoreDisclosure) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	url := endpoint + "/.DS_Store"

	body, ok, err := httpGet(ctx, client, url)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if m.isDsStoreFile([]byte(body)) {
		return newFinding(m, url), nil
	}

	return nil, nil
}
