// Package profile declares which modules a scan runs.
package profile

import "github.com/vulnverified/prowl/internal/modules"

// Profile is the declarative selection of enabled modules. Profiles are
// cheap value types; the constructors enumerate the registry at call time.
type Profile struct {
	Subdomains        bool                 `json:"subdomains"`
	AggressiveModules bool                 `json:"aggressive_modules"`
	Modules           []modules.ModuleName `json:"modules"`
}

// Default returns the profile used when no flag is given: every registered
// module whose IsAggressive reports false.
func Default() Profile {
	var names []modules.ModuleName
	for _, m := range modules.AllSubdomainModules() {
		if !m.IsAggressive() {
			names = append(names, m.Name())
		}
	}
	for _, m := range modules.AllHTTPModules() {
		if !m.IsAggressive() {
			names = append(names, m.Name())
		}
	}

	return Profile{
		Subdomains:        true,
		AggressiveModules: false,
		Modules:           names,
	}
}

// Aggressive returns the profile enabling every registered module,
// aggressive ones included.
func Aggressive() Profile {
	var names []modules.ModuleName
	for _, m := range modules.AllSubdomainModules() {
		names = append(names, m.Name())
	}
	for _, m := range modules.AllHTTPModules() {
		names = append(names, m.Name())
	}

	return Profile{
		Subdomains:        true,
		AggressiveModules: true,
		Modules:           names,
	}
}
