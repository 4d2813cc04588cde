package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRendersEmbeddedTemplates(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, ref := range []string{"support-system-prompt", "support-system-prompt-experimental"} {
		out, err := r.Render(ref)
		require.NoError(t, err, ref)
		assert.NotEmpty(t, out, ref)
	}
}

func TestRegistryUnknownRef(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Render("no-such-template")
	assert.Error(t, err)
}
