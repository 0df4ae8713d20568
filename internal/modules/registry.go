package modules

// AllHTTPModules returns the full built-in HTTP catalogue in registration
// order. Every call constructs fresh instances; construction is cheap and
// any regex compilation happens once per instance.
func AllHTTPModules() []HTTPModule {
	return []HTTPModule{
		NewDsStoreDisclosure(),
		NewDotEnvDisclosure(),
		NewDirectoryListingDisclosure(),
		NewTraefikDashboardUnauthenticatedAccess(),
		NewPrometheusDashboardUnauthenticatedAccess(),
		NewKibanaUnauthenticatedAccess(),
		NewGitlabOpenRegistration(),
		NewGitHeadDisclosure(),
		NewGitDirectoryDisclosure(),
		NewGitConfigDisclosure(),
		NewEtcdUnauthenticatedAccess(),
		NewCve2017_9506(),
		NewCve2018_7600(),
		NewElasticsearchUnauthenticatedAccess(),
	}
}

// AllSubdomainModules returns the full built-in subdomain catalogue in
// registration order.
func AllSubdomainModules() []SubdomainModule {
	return []SubdomainModule{
		NewCrtsh(),
		NewWebArchive(),
	}
}

// GetHTTPModules filters the HTTP catalogue down to the selected names,
// preserving catalogue order.
func GetHTTPModules(selected []ModuleName) []HTTPModule {
	want := nameSet(selected)

	var out []HTTPModule
	for _, m := range AllHTTPModules() {
		if _, ok := want[m.Name()]; ok {
			out = append(out, m)
		}
	}
	return out
}

// GetSubdomainModules filters the subdomain catalogue down to the selected
// names, preserving catalogue order.
func GetSubdomainModules(selected []ModuleName) []SubdomainModule {
	want := nameSet(selected)

	var out []SubdomainModule
	for _, m := range AllSubdomainModules() {
		if _, ok := want[m.Name()]; ok {
			out = append(out, m)
		}
	}
	return out
}

func nameSet(names []ModuleName) map[ModuleName]struct{} {
	set := make(map[ModuleName]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
