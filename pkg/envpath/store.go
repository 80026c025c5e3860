package envpath

// Scope selects which environment block a store operates on.
type Scope int

const (
	// ScopeUser targets the per-user environment (no elevation needed).
	ScopeUser Scope = iota
	// ScopeMachine targets the machine-wide environment.
	ScopeMachine
)

// String returns the scope name used in configuration and flags.
func (s Scope) String() string {
	if s == ScopeMachine {
		return "machine"
	}
	return "user"
}

// ParseScope converts a configuration string into a Scope.
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "user", "":
		return ScopeUser, true
	case "machine", "system":
		return ScopeMachine, true
	}
	return ScopeUser, false
}

// Store is the persistent home of a PATH-style value. Read reports the value
// and whether it exists at all; a store may also fail outright, which callers
// treat as the value being absent. Write commits a full replacement value;
// the backing platform guarantees a single-value write is atomic.
type Store interface {
	Read() (value string, ok bool, err error)
	Write(value string) error
}

// MemoryStore is an in-process Store used by tests. The zero value behaves as
// an absent variable.
type MemoryStore struct {
	Value  string
	Exists bool

	// ReadErr and WriteErr, when set, are returned by the corresponding
	// operation to simulate permission or availability failures.
	ReadErr  error
	WriteErr error

	// Writes counts successful Write calls.
	Writes int
}

// Read implements Store.
func (m *MemoryStore) Read() (string, bool, error) {
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	return m.Value, m.Exists, nil
}

// Write implements Store.
func (m *MemoryStore) Write(value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Value = value
	m.Exists = true
	m.Writes++
	return nil
}
