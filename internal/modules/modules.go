// Package modules implements the built-in discovery and detection modules
// together with the registry used to select them by profile.
package modules

import (
	"context"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// ModuleName identifies a built-in module. The value is the canonical
// "<family>/<short_name>" form used in reports and profiles, stable
// across releases.
type ModuleName string

const (
	SubdomainsCrtsh      ModuleName = "subdomains/crtsh"
	SubdomainsWebArchive ModuleName = "subdomains/web_archive"

	HTTPCve2017_9506                             ModuleName = "http/cve_2017_9506"
	HTTPCve2018_7600                             ModuleName = "http/cve_2018_7600"
	HTTPDirectoryListingDisclosure               ModuleName = "http/directory_listing_disclosure"
	HTTPDotenvDisclosure                         ModuleName = "http/dotenv_disclosure"
	HTTPDsStoreDisclosure                        ModuleName = "http/ds_store_disclosure"
	HTTPElasticsearchUnauthenticatedAccess       ModuleName = "http/elasticsearch_unauthenticated_access"
	HTTPEtcdUnauthenticatedAccess                ModuleName = "http/etcd_unauthenticated_access"
	HTTPGitConfigDisclosure                      ModuleName = "http/git_config_disclosure"
	HTTPGitDirectoryDisclosure                   ModuleName = "http/git_directory_disclosure"
	HTTPGitHeadDisclosure                        ModuleName = "http/git_head_disclosure"
	HTTPGitlabOpenRegistration                   ModuleName = "http/gitlab_open_registration"
	HTTPKibanaUnauthenticatedAccess              ModuleName = "http/kibana_unauthenticated_access"
	HTTPPrometheusDashboardUnauthenticatedAccess ModuleName = "http/prometheus_dashboard_unauthenticated_access"
	HTTPTraefikDashboardUnauthenticatedAccess    ModuleName = "http/traefik_dashboard_unauthenticated_access"
)

// Severity ranks how serious a finding is.
type Severity string

const (
	SeverityInformative Severity = "informative"
	SeverityLow         Severity = "low"
	SeverityMedium      Severity = "medium"
	SeverityHigh        Severity = "high"
)

var severityRank = map[Severity]int{
	SeverityInformative: 0,
	SeverityLow:         1,
	SeverityMedium:      2,
	SeverityHigh:        3,
}

// Less reports whether s ranks strictly below other.
func (s Severity) Less(other Severity) bool {
	return severityRank[s] < severityRank[other]
}

// ModuleResult carries the module-specific payload of a finding. Url is the
// only variant today; new variants add optional fields alongside it.
type ModuleResult struct {
	URL string `json:"Url"`
}

// Finding is a positive detection emitted by an HTTP module.
type Finding struct {
	Module        ModuleName      `json:"module"`
	ModuleVersion *semver.Version `json:"module_version"`
	Severity      Severity        `json:"severity"`
	Result        ModuleResult    `json:"result"`
}

// Module is the capability shared by every built-in. Modules are immutable
// after construction and safe for concurrent use.
type Module interface {
	Name() ModuleName
	Version() *semver.Version
	Description() string
	IsAggressive() bool
	Severity() Severity
}

// SubdomainModule discovers candidate names under a domain from an external
// open-data source.
type SubdomainModule interface {
	Module
	Enumerate(ctx context.Context, domain string) ([]string, error)
}

// HTTPModule probes a single endpoint for one recognizable misconfiguration
// or vulnerability. endpoint is the base URL "http://host:port" without a
// trailing slash. A nil Finding with a nil error means nothing was detected.
type HTTPModule interface {
	Module
	Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error)
}

// newFinding assembles a Finding for the module that produced it.
func newFinding(m Module, url string) *Finding {
	return &Finding{
		Module:        m.Name(),
		ModuleVersion: m.Version(),
		Severity:      m.Severity(),
		Result:        ModuleResult{URL: url},
	}
}
