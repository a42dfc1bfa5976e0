// Package boolregex documents a regular expression core closed under
// disjunction, conjunction and complement in addition to the usual
// Kleene-algebra operations, matching UTF-8 byte strings with optional
// capture-group offsets.
//
// There is no surface-syntax parser: callers build an *expr.Expression
// tree directly (expr.Byte, expr.Concatenation, expr.Conjunction,
// expr.Complement, expr.Group, and friends), then hand it to
// automaton.CompileDFA for plain matching or automaton.CompileTNFA when
// capture offsets are needed:
//
//	e := expr.Concatenation(expr.Byte('a'), expr.AnyByte())
//	d, _, err := automaton.CompileDFA(e, automaton.DefaultConfig())
//	if err != nil {
//		// handle err
//	}
//	automaton.MatchDFA(d, []byte("ab")) // true
//
// expr.Match(e, s) runs the same algorithm online, one Brzozowski
// derivative per byte, without building an automaton first. That is
// useful for a one-shot match where compiling a reusable DFA/TNFA would
// be wasted work.
//
// Boolean closure means conjunction and complement compose with every
// other operator: expr.Conjunction(a, b) matches strings a and b both
// match, and expr.Complement(a) matches every string a does not.
// Normalised flattens, sorts and de-duplicates disjunction alternatives, so
// that equivalent derivatives reach one canonical expression, which is what
// lets the derivative and partial-derivative engines identify states by
// structural comparison instead of running a subset construction.
package boolregex
