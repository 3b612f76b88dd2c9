package introduced_test

import (
	"testing"

	"github.com/fwojciec/introduced"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := introduced.Errorf(introduced.ENOTFOUND, "function %q not found", "bogus")

	assert.Equal(t, introduced.ENOTFOUND, introduced.ErrorCode(err))
	assert.Equal(t, "function \"bogus\" not found", introduced.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, introduced.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, introduced.ErrorMessage(nil))
}
