package common

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrCheck panics when err is non-nil. It is used for errors that can only
// occur when an internal invariant has been broken.
func ErrCheck(err error) {
	if err != nil {
		log.Panic().Stack().Err(errors.WithStack(err)).Msgf("error: [%T] %q", err, err)
	}
}
