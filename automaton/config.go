package automaton

// Config controls resource limits during automaton construction.
type Config struct {
	// MaxStates bounds how many states CompileDFA or CompileTNFA may
	// allocate before giving up with ErrStateLimitExceeded. This guards
	// against runaway state explosion on pathological patterns. A
	// worklist that keeps discovering new canonical expressions indicates
	// either a very large pattern or a normalisation bug.
	//
	// Default: 10,000 states.
	MaxStates uint32
}

// DefaultConfig returns a Config with sensible defaults for interactive use.
func DefaultConfig() Config {
	return Config{MaxStates: 10_000}
}

// Validate reports whether c is usable, returning an *BuildError otherwise.
func (c Config) Validate() error {
	if c.MaxStates == 0 {
		return &BuildError{Kind: InvalidConfig, Message: "MaxStates must be > 0"}
	}
	return nil
}

// WithMaxStates returns a copy of c with MaxStates set to n.
func (c Config) WithMaxStates(n uint32) Config {
	c.MaxStates = n
	return c
}
