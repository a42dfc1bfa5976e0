package automaton

import "github.com/brzozowski/boolregex/expr"

// dfaEdge is an explicit (non-default) transition key.
type dfaEdge struct {
	state StateID
	b     byte
}

// DFA is a deterministic automaton compiled from a Boolean-closed regular
// expression by CompileDFA. It has no capture bindings: it can only answer
// whether a byte string is in the expression's language.
type DFA struct {
	// byteTrans holds transitions that diverge from their state's default.
	byteTrans map[dfaEdge]StateID
	// defaultTrans[s] is the transition taken by every byte without an
	// entry in byteTrans. Unused (never looked up) when every byte has an
	// explicit entry.
	defaultTrans []StateID
	accepting    []bool
}

// NumStates returns the number of states DFA allocated.
func (d *DFA) NumStates() int { return len(d.accepting) }

// Accepting reports whether state s is an accepting state.
func (d *DFA) Accepting(s StateID) bool { return d.accepting[s] }

// Step returns the state reached from s on byte b.
func (d *DFA) Step(s StateID, b byte) StateID {
	if next, ok := d.byteTrans[dfaEdge{s, b}]; ok {
		return next
	}
	return d.defaultTrans[s]
}

// CompileDFA builds the DFA matching exactly the byte strings e matches.
// e must contain no Group nodes; capture-aware matching goes through
// CompileTNFA instead.
func CompileDFA(e *expr.Expression, cfg Config) (*DFA, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	in := newInterner()
	startID, _ := in.intern(expr.Normalised(e))
	if startID != 0 {
		panic("automaton: start state did not intern to 0")
	}

	d := &DFA{byteTrans: make(map[dfaEdge]StateID)}
	queue := []StateID{startID}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		ce := in.expression(curr)

		d.accepting = append(d.accepting, expr.IsNullable(ce))
		d.defaultTrans = append(d.defaultTrans, 0)

		partitions := expr.Partitions(ce)
		defaultKnown := false
		var defaultNext StateID
		for i, block := range partitions {
			rep, ok := representativeByte(partitions, i)
			if !ok {
				continue
			}
			next := expr.Normalised(expr.Derivative(ce, rep))
			nextID, isNew := in.intern(next)
			if isNew {
				if uint32(in.len()) > cfg.MaxStates {
					return nil, 0, ErrStateLimitExceeded
				}
				queue = append(queue, nextID)
			}

			if i == 0 {
				d.defaultTrans[curr] = nextID
				defaultKnown, defaultNext = true, nextID
				continue
			}
			for b := 0; b < 256; b++ {
				if !block.Test(byte(b)) {
					continue
				}
				if defaultKnown && nextID == defaultNext {
					continue
				}
				d.byteTrans[dfaEdge{curr, byte(b)}] = nextID
			}
		}
	}
	return d, d.NumStates(), nil
}

// Transition is one collapsed byte-range edge in a Transitions dump: every
// byte in [Lo, Hi] steps from From to To.
type Transition struct {
	From   StateID
	Lo, Hi byte
	To     StateID
}

// Transitions dumps d's transition table as a sequence of contiguous
// byte-range edges per state, for use in table-driven tests that want to
// diff a DFA's shape with cmp.Diff rather than poke it byte by byte.
func (d *DFA) Transitions() []Transition {
	var out []Transition
	for s := StateID(0); int(s) < d.NumStates(); s++ {
		var runLo, runHi byte
		var runTo StateID
		open := false
		flush := func() {
			if open {
				out = append(out, Transition{From: s, Lo: runLo, Hi: runHi, To: runTo})
				open = false
			}
		}
		for b := 0; b < 256; b++ {
			to := d.Step(s, byte(b))
			if open && to == runTo && byte(b) == runHi+1 {
				runHi = byte(b)
				continue
			}
			flush()
			runLo, runHi, runTo, open = byte(b), byte(b), to, true
		}
		flush()
	}
	return out
}

// MatchDFA reports whether s is in the language D was compiled from.
func MatchDFA(d *DFA, s []byte) bool {
	curr := StateID(0)
	for _, b := range s {
		curr = d.Step(curr, b)
	}
	return d.Accepting(curr)
}
