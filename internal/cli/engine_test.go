package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEngineDefaultsConfigWhenNoneExists(t *testing.T) {
	defer func() { flags = rootFlags{} }()
	flags = rootFlags{root: t.TempDir()}

	eng, err := openEngine()
	require.NoError(t, err)
	defer eng.Close()

	assert.NotEmpty(t, eng.Config.Name)
}

func TestExitCodeForErrNil(t *testing.T) {
	assert.NoError(t, exitCodeForErr(nil))
}

func TestExitCodeForErrUnclassified(t *testing.T) {
	err := exitCodeForErr(assertError("boom"))
	var ec *exitCodeErr
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 1, ec.code)
}

type assertError string

func (e assertError) Error() string { return string(e) }
