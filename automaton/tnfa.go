package automaton

import (
	"github.com/brzozowski/boolregex/expr"
	"github.com/brzozowski/boolregex/internal/conv"
	"github.com/brzozowski/boolregex/internal/sparse"
)

// tnfaArrow is one edge leaving a TNFA state: the target state and the
// bindings to apply to a path's offset vector if this edge is taken.
type tnfaArrow struct {
	target   StateID
	bindings expr.BindingList
}

// TNFA is a tagged automaton compiled from a Boolean-closed regular
// expression with capturing groups by CompileTNFA. Unlike DFA it is
// nondeterministic: a state may have more than one arrow for the same byte,
// each carrying distinct bindings, because Antimirov partial derivatives
// (unlike Brzozowski derivatives) do not collapse alternatives into one.
type TNFA struct {
	byteTrans    map[dfaEdge][]tnfaArrow
	defaultTrans [][]tnfaArrow
	accepting    []bool
	final        []expr.BindingList
	modes        []expr.Mode
	captures     []int
	// errorState is the state whose expression is structurally EmptySet():
	// every path that lands there can never become accepting again. It is
	// always interned, even if unreachable, so MatchTNFA always has one to
	// compare against.
	errorState StateID
}

// NumStates returns the number of states TNFA allocated.
func (t *TNFA) NumStates() int { return len(t.accepting) }

func (t *TNFA) arrowsFor(s StateID, b byte) []tnfaArrow {
	if arrows, ok := t.byteTrans[dfaEdge{s, b}]; ok {
		return arrows
	}
	return t.defaultTrans[s]
}

func bindingsEqual(a, b expr.BindingList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CompileTNFA builds the tagged automaton matching e, tracking one capture
// slot pair per entry of modes (group k's offsets live at index 2k/2k+1 of
// every path's offset vector, so e's Group nodes must be numbered densely
// from 0). captures selects, and orders, which group numbers MatchTNFA
// reports in its output vector.
func CompileTNFA(e *expr.Expression, modes []expr.Mode, captures []int, cfg Config) (*TNFA, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	in := newInterner()
	startID, _ := in.intern(expr.Normalised(e))
	if startID != 0 {
		panic("automaton: start state did not intern to 0")
	}

	t := &TNFA{
		byteTrans: make(map[dfaEdge][]tnfaArrow),
		modes:     modes,
		captures:  captures,
	}
	queue := []StateID{startID}

	errorID, isNewErr := in.intern(expr.EmptySet())
	t.errorState = errorID
	if isNewErr {
		if uint32(in.len()) > cfg.MaxStates {
			return nil, 0, ErrStateLimitExceeded
		}
		queue = append(queue, errorID)
	}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		ce := in.expression(curr)

		nullable := expr.IsNullable(ce)
		t.accepting = append(t.accepting, nullable)
		if nullable {
			t.final = append(t.final, expr.EpsilonBindings(ce))
		} else {
			t.final = append(t.final, nil)
		}
		t.defaultTrans = append(t.defaultTrans, nil)

		partitions := expr.Partitions(ce)
		for i, block := range partitions {
			rep, ok := representativeByte(partitions, i)
			if !ok {
				continue
			}

			outer := expr.Partial(ce, rep)
			var arrows []tnfaArrow
			for _, alt := range outer {
				next := expr.Normalised(alt.Exp)
				nextID, isNew := in.intern(next)
				if isNew {
					if uint32(in.len()) > cfg.MaxStates {
						return nil, 0, ErrStateLimitExceeded
					}
					queue = append(queue, nextID)
				}

				dup := false
				for _, a := range arrows {
					if a.target == nextID && bindingsEqual(a.bindings, alt.Bindings) {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				arrows = append(arrows, tnfaArrow{target: nextID, bindings: alt.Bindings})
			}

			if i == 0 {
				t.defaultTrans[curr] = arrows
				continue
			}
			for b := 0; b < 256; b++ {
				if block.Test(byte(b)) {
					t.byteTrans[dfaEdge{curr, byte(b)}] = arrows
				}
			}
		}
	}
	return t, t.NumStates(), nil
}

// applyBindings mutates v in place, applying each binding in bl in order
// at byte position pos: Cancel clears a participating group, Epsilon sets
// an unset group to the empty span at pos, and Append starts a group at
// pos if unset or extends its end by one byte if already set.
func applyBindings(bl expr.BindingList, pos int, v offsets) {
	for _, bd := range bl {
		k := bd.Group
		switch bd.Action {
		case expr.Cancel:
			if v[2*k] != -1 {
				v[2*k] = -1
				v[2*k+1] = -1
			}
		case expr.Epsilon:
			if v[2*k] == -1 {
				v[2*k] = pos
				v[2*k+1] = pos
			}
		case expr.Append:
			if v[2*k] == -1 {
				v[2*k] = pos
				v[2*k+1] = pos
			}
			v[2*k+1]++
		}
	}
}

// livePath is one candidate path through a TNFA during a MatchTNFA run.
type livePath struct {
	state StateID
	v     offsets
}

// Precedes reports whether x is strictly preferred over y given the group
// preference modes. A Passive group never influences the comparison
// beyond participation (−1 vs. not); Minimal and Maximal groups
// additionally prefer a shorter or longer span once their start positions
// tie.
//
// Precedes is not a total order in the usual sense: it can return false
// for both orderings of a pair (a tie, or a pair where no group
// decisively favors either side). That makes it a strict weak order
// instead, which is exactly what is needed here: ties are left in
// whatever order they already had.
func Precedes(x, y offsets, modes []expr.Mode) bool {
	for k, m := range modes {
		xs, xe := x[2*k], x[2*k+1]
		ys, ye := y[2*k], y[2*k+1]

		switch {
		case xs == -1 && ys == -1:
			continue
		case xs == -1:
			return false
		case ys == -1:
			return true
		}

		if m == expr.Passive {
			continue
		}
		if xs < ys {
			return true
		}
		if xs > ys {
			return false
		}
		if xe < ye {
			return m == expr.Minimal
		}
		if xe > ye {
			return m == expr.Maximal
		}
	}
	return false
}

// sortByPrecedes sorts cands in place, most preferred first, using Precedes
// as a strict weak order. A simple insertion sort is enough: cands is one
// source path's handful of successor candidates, never more than the
// branching factor of one Partial call.
func sortByPrecedes(cands []livePath, modes []expr.Mode) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && Precedes(cands[j].v, cands[j-1].v, modes); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

// MatchTNFA reports whether s is in the language t was compiled from and,
// if so, the capture offsets of the leftmost match under t's group
// preference modes.
func MatchTNFA(t *TNFA, s []byte) (bool, []int) {
	numGroups := len(t.modes)
	live := []livePath{{state: 0, v: newOffsets(numGroups)}}

	for pos, b := range s {
		var next []livePath
		for _, p := range live {
			arrows := t.arrowsFor(p.state, b)
			var cands []livePath
			for _, a := range arrows {
				if a.target == t.errorState {
					continue
				}
				v := p.v.clone()
				applyBindings(a.bindings, pos, v)
				cands = append(cands, livePath{state: a.target, v: v})
			}
			sortByPrecedes(cands, t.modes)
			next = append(next, cands...)
		}

		seen := sparse.NewSparseSet(conv.IntToUint32(t.NumStates()))
		deduped := next[:0]
		for _, p := range next {
			if !seen.Insert(uint32(p.state)) {
				continue
			}
			deduped = append(deduped, p)
		}
		live = deduped
	}

	for _, p := range live {
		if !t.accepting[p.state] {
			continue
		}
		v := p.v.clone()
		applyBindings(t.final[p.state], len(s), v)
		out := make([]int, 2*len(t.captures))
		for i, g := range t.captures {
			out[2*i] = v[2*g]
			out[2*i+1] = v[2*g+1]
		}
		return true, out
	}
	return false, nil
}
