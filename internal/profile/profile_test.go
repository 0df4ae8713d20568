package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnverified/prowl/internal/modules"
)

func aggressiveNames() map[modules.ModuleName]bool {
	names := make(map[modules.ModuleName]bool)
	for _, m := range modules.AllSubdomainModules() {
		names[m.Name()] = m.IsAggressive()
	}
	for _, m := range modules.AllHTTPModules() {
		names[m.Name()] = m.IsAggressive()
	}
	return names
}

func TestDefault(t *testing.T) {
	prof := Default()

	assert.True(t, prof.Subdomains)
	assert.False(t, prof.AggressiveModules)

	byName := aggressiveNames()
	for _, name := range prof.Modules {
		isAggressive, registered := byName[name]
		require.True(t, registered, "unregistered module %q in default profile", name)
		assert.False(t, isAggressive, "aggressive module %q in default profile", name)
	}
}

func TestAggressive(t *testing.T) {
	prof := Aggressive()

	assert.True(t, prof.Subdomains)
	assert.True(t, prof.AggressiveModules)

	// Every registered module exactly once.
	counts := make(map[modules.ModuleName]int)
	for _, name := range prof.Modules {
		counts[name]++
	}

	registered := aggressiveNames()
	require.Len(t, counts, len(registered))
	for name := range registered {
		assert.Equal(t, 1, counts[name], "module %q", name)
	}
}

func TestDefault_SubsetOfAggressive(t *testing.T) {
	aggressive := make(map[modules.ModuleName]bool)
	for _, name := range Aggressive().Modules {
		aggressive[name] = true
	}

	for _, name := range Default().Modules {
		assert.True(t, aggressive[name], "module %q missing from aggressive profile", name)
	}
}
