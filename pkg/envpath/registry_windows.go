//go:build windows

package envpath

import (
	"golang.org/x/sys/windows/registry"

	"github.com/zov-lang/zov/pkg/errors"
	"github.com/zov-lang/zov/pkg/logging"
)

const (
	machineEnvKey = `System\CurrentControlSet\Control\Session Manager\Environment`
	userEnvKey    = `Environment`
	pathValueName = "Path"
)

// RegistryStore persists PATH in the Windows registry, at the conventional
// location for the chosen scope.
type RegistryStore struct {
	scope Scope
}

// NewRegistryStore returns the platform store for the given scope.
func NewRegistryStore(scope Scope) Store {
	return &RegistryStore{scope: scope}
}

func (s *RegistryStore) location() (registry.Key, string) {
	if s.scope == ScopeMachine {
		return registry.LOCAL_MACHINE, machineEnvKey
	}
	return registry.CURRENT_USER, userEnvKey
}

// Read implements Store. A missing Path value is reported as absent, not as
// an error.
func (s *RegistryStore) Read() (string, bool, error) {
	root, keyPath := s.location()
	k, err := registry.OpenKey(root, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrEnvRead, "open %s environment key", s.scope)
	}
	defer k.Close()

	value, _, err := k.GetStringValue(pathValueName)
	if err == registry.ErrNotExist {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrEnvRead, "query Path value")
	}
	return value, true, nil
}

// Write implements Store. The value is written as REG_EXPAND_SZ so that
// %VAR% references embedded in other segments keep expanding for new
// processes, then a settings-change broadcast lets running shells know.
func (s *RegistryStore) Write(value string) error {
	root, keyPath := s.location()
	k, err := registry.OpenKey(root, keyPath, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "open %s environment key for writing", s.scope)
	}
	defer k.Close()

	if err := k.SetExpandStringValue(pathValueName, value); err != nil {
		return errors.Wrap(err, errors.ErrEnvWrite, "set Path value")
	}

	broadcastEnvironmentChange()
	logging.GetLogger("envpath.registry").Debug().
		Str("scope", s.scope.String()).
		Msg("persisted Path value")
	return nil
}
