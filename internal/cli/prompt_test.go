package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	result, err := confirm("anything")

	require.NoError(t, err)
	assert.True(t, result)
}

func TestPromptConstructors(t *testing.T) {
	assert.NotNil(t, NewConfirmFunc())
	assert.NotNil(t, NewSelectFunc())
}
