package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	def, ok := GetByCode(CodeConfigOrder)
	require.True(t, ok)
	assert.Equal(t, "ER027", def.Code)
	assert.Equal(t, GroupBuildCfg, def.Group)
	assert.Equal(t, SeverityError, def.Severity)

	_, ok = GetByCode("ER999")
	assert.False(t, ok)
	assert.True(t, Known(CodeIDEProjectMissing))
	assert.False(t, Known("bogus"))
}

func TestRegistrySortedAndComplete(t *testing.T) {
	all := GetAll()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}

	// Every code constant resolves.
	for _, code := range []string{
		CodeStaleSubProject, CodeProjectMissing, CodeIOCUnlinked,
		CodeSecureChildMissing, CodeNonSecureChildMissing,
		CodeLinkHidesResources, CodeNoOptimizationLevel, CodeIDEProjectMissing,
	} {
		assert.True(t, Known(code), code)
	}
}

func TestFindingSeverityAndAdvisory(t *testing.T) {
	f := Finding{Code: CodeLinkTypeUnvalidated, Message: "m", Path: "/p/"}
	assert.Equal(t, SeverityWarning, f.Severity())
	assert.True(t, f.Advisory())

	g := Finding{Code: CodeLinkMissing, Message: "m", Path: "/p/"}
	assert.Equal(t, SeverityError, g.Severity())
	assert.False(t, g.Advisory())

	assert.Equal(t, SeverityInfo, Finding{Code: CodeIncludeUnverifiable}.Severity())
	assert.Equal(t, "ER053: /p/: m", g.String())
}

func TestGetByGroup(t *testing.T) {
	scripts := GetByGroup(GroupScript)
	require.NotEmpty(t, scripts)
	for _, def := range scripts {
		assert.Equal(t, GroupScript, def.Group)
	}
}
