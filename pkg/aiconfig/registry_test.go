package aiconfig

import (
	"testing"

	"ai-support-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func testProfiles() []config.ProfileConfig {
	return []config.ProfileConfig{
		{Key: "default", Name: "Standard", Provider: "gemini", Model: "gemini-1.5-flash-latest", SystemPromptRef: "support-system-prompt"},
		{Key: "gemini-pro", Name: "Advanced", Provider: "gemini", Model: "gemini-1.5-pro-latest", SystemPromptRef: "support-system-prompt"},
	}
}

func TestResolveKnownKey(t *testing.T) {
	r := NewRegistry(testProfiles())
	assert.NoError(t, r.Validate())

	p, fellBack := r.Resolve("gemini-pro")
	assert.False(t, fellBack)
	assert.Equal(t, "gemini-1.5-pro-latest", p.Model)
}

func TestResolveUnknownKeyFallsBackToDefault(t *testing.T) {
	r := NewRegistry(testProfiles())

	p, fellBack := r.Resolve("does-not-exist")
	assert.True(t, fellBack)
	assert.Equal(t, "default", p.Key)
}

func TestMissingDefaultProfile(t *testing.T) {
	r := NewRegistry([]config.ProfileConfig{
		{Key: "gemini-pro", Provider: "gemini", Model: "gemini-1.5-pro-latest"},
	})

	assert.Error(t, r.Validate())

	p, fellBack := r.Resolve("nope")
	assert.True(t, fellBack)
	assert.Nil(t, p)
	assert.Nil(t, r.Default())
}

func TestAllPreservesDeclarationOrder(t *testing.T) {
	r := NewRegistry(testProfiles())

	all := r.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "default", all[0].Key)
	assert.Equal(t, "gemini-pro", all[1].Key)
}
