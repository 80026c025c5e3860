//go:build !windows

package envpath

import (
	"github.com/zov-lang/zov/pkg/errors"
)

// NewRegistryStore returns the platform store for the given scope. On
// non-Windows platforms there is no persistent machine PATH store, so every
// operation fails with an UNSUPPORTED error.
func NewRegistryStore(scope Scope) Store {
	return unsupportedStore{scope: scope}
}

type unsupportedStore struct {
	scope Scope
}

func (s unsupportedStore) Read() (string, bool, error) {
	return "", false, errors.Newf(errors.ErrUnsupported,
		"persistent %s PATH store is only available on windows", s.scope)
}

func (s unsupportedStore) Write(string) error {
	return errors.Newf(errors.ErrUnsupported,
		"persistent %s PATH store is only available on windows", s.scope)
}
