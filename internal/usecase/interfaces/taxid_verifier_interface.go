package interfaces

import (
	"context"
	"errors"
)

// ErrVerifierUnavailable signals the external validation service could not
// be reached in time. Callers treat it like a disabled feature flag: the
// local checksum result stands.
var ErrVerifierUnavailable = errors.New("tax id verifier unavailable")

// ITaxIDVerifier is the optional external CPF validation service. Best
// effort only; it must never block the registration critical path.

type ITaxIDVerifier interface {
	Verify(ctx context.Context, taxID string) (bool, error)
}
