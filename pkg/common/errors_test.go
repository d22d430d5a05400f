package common

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrCheck(t *testing.T) {
	assert.NotPanics(t, func() { ErrCheck(nil) })
	assert.Panics(t, func() { ErrCheck(errors.New("broken")) })
}
