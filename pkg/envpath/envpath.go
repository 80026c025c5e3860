// Package envpath decides and applies idempotent additions to PATH-style
// environment values. The decision logic is pure; persistence goes through an
// injected Store so machine state never leaks into tests.
package envpath

import (
	"strings"
	"unicode/utf16"

	"github.com/zov-lang/zov/pkg/errors"
	"github.com/zov-lang/zov/pkg/logging"
)

// Delimiter separating segments in a PATH-style value.
const Delimiter = ";"

// maxValueLen is the hard cap Windows places on a single environment
// variable, in UTF-16 code units. Values that would exceed it are refused
// rather than silently truncated.
const maxValueLen = 32766

// NeedsAppend reports whether target must be appended to current.
// Segments are compared case-insensitively, and current is wrapped in
// delimiters before searching so that a segment which is a prefix or suffix
// of another segment is never falsely matched.
//
// An empty current means the variable is absent and the target must be added.
func NeedsAppend(target, current string) bool {
	if current == "" {
		return true
	}
	needle := Delimiter + strings.ToUpper(target) + Delimiter
	haystack := Delimiter + strings.ToUpper(current) + Delimiter
	return !strings.Contains(haystack, needle)
}

// Append returns current with target appended as a new segment. When current
// is empty the result is target alone, with no delimiter artifacts.
func Append(current, target string) string {
	if current == "" {
		return target
	}
	return current + Delimiter + target
}

// RemoveSegment returns current with every segment equal to target (ignoring
// case) removed. Other segments keep their order. Removing from a value that
// does not contain target returns it unchanged.
func RemoveSegment(current, target string) string {
	if current == "" {
		return current
	}
	segments := strings.Split(current, Delimiter)
	kept := segments[:0]
	for _, seg := range segments {
		if strings.EqualFold(seg, target) {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, Delimiter)
}

// Registrar applies PATH additions to a persistent Store.
type Registrar struct {
	store Store
}

// NewRegistrar creates a Registrar backed by the given store.
func NewRegistrar(store Store) *Registrar {
	return &Registrar{store: store}
}

// Ensure makes sure target is present in the stored PATH value exactly once.
// It reports whether a write happened.
//
// A failed read is treated as an absent variable: appending to nothing is
// always safe, so the check fails open. A failed write is returned as an
// ENV_WRITE error; callers are expected to surface it as a warning rather
// than abort whatever operation triggered the registration.
func (r *Registrar) Ensure(target string) (bool, error) {
	logger := logging.GetLogger("envpath")

	if target == "" {
		return false, errors.New(errors.ErrInvalidInput, "target directory must not be empty")
	}

	current, ok, err := r.store.Read()
	if err != nil {
		logger.Warn().Err(err).Msg("could not read current PATH value, treating as absent")
		current, ok = "", false
	}
	if !ok {
		current = ""
	}

	if !NeedsAppend(target, current) {
		logger.Debug().Str("target", target).Msg("already registered in PATH")
		return false, nil
	}

	next := Append(current, target)
	if n := len(utf16.Encode([]rune(next))); n > maxValueLen {
		return false, errors.Newf(errors.ErrEnvTooLong,
			"updated PATH would be %d UTF-16 units, above the %d limit", n, maxValueLen)
	}

	if err := r.store.Write(next); err != nil {
		return false, errors.Wrapf(err, errors.ErrEnvWrite, "append %q to PATH", target)
	}

	logger.Info().Str("target", target).Msg("registered in PATH")
	return true, nil
}

// Remove deletes target from the stored PATH value if present. It reports
// whether a write happened. The install flow never calls this; it exists for
// symmetry and external callers.
func (r *Registrar) Remove(target string) (bool, error) {
	if target == "" {
		return false, errors.New(errors.ErrInvalidInput, "target directory must not be empty")
	}

	current, ok, err := r.store.Read()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrEnvRead, "read current PATH value")
	}
	if !ok {
		return false, nil
	}

	next := RemoveSegment(current, target)
	if next == current {
		return false, nil
	}
	if err := r.store.Write(next); err != nil {
		return false, errors.Wrapf(err, errors.ErrEnvWrite, "remove %q from PATH", target)
	}
	return true, nil
}
