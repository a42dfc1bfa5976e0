package automaton

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brzozowski/boolregex/expr"
)

func mustCompileDFA(t *testing.T, e *expr.Expression) *DFA {
	t.Helper()
	d, _, err := CompileDFA(e, DefaultConfig())
	if err != nil {
		t.Fatalf("CompileDFA: %v", err)
	}
	return d
}

func TestCompileDFA_MatchScenarios(t *testing.T) {
	// Scenario 1: a*b
	aStarB := expr.Concatenation(expr.KleeneClosure(expr.Byte('a')), expr.Byte('b'))
	d := mustCompileDFA(t, aStarB)
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"", false},
		{"b", true},
		{"ab", true},
		{"aaab", true},
		{"aaa", false},
	} {
		if got := MatchDFA(d, []byte(tt.s)); got != tt.want {
			t.Errorf("MatchDFA(a*b, %q) = %v, want %v", tt.s, got, tt.want)
		}
	}

	// Scenario 2: a.&.b, conjunction of "starts with a" and "ends with b"
	startsWithA := expr.Concatenation(expr.Byte('a'), expr.AnyByte())
	endsWithB := expr.Concatenation(expr.AnyByte(), expr.Byte('b'))
	conj := mustCompileDFA(t, expr.Conjunction(startsWithA, endsWithB))
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"ab", true},
		{"aa", false},
		{"ba", false},
		{"bb", false},
	} {
		if got := MatchDFA(conj, []byte(tt.s)); got != tt.want {
			t.Errorf("MatchDFA(a.&.b, %q) = %v, want %v", tt.s, got, tt.want)
		}
	}

	// Scenario 3: !a, complement of the single byte 'a'
	notA := mustCompileDFA(t, expr.Complement(expr.Byte('a')))
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"", true},
		{"a", false},
		{"aa", true},
	} {
		if got := MatchDFA(notA, []byte(tt.s)); got != tt.want {
			t.Errorf("MatchDFA(!a, %q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestCompileDFA_TransitionsCollapseByteRuns(t *testing.T) {
	// a*b interns three states in construction order: the start state (0),
	// the dead state reached by any byte other than a/b (1), and the
	// accepting state reached by b (2). 'a' loops back to state 0.
	d := mustCompileDFA(t, expr.Concatenation(expr.KleeneClosure(expr.Byte('a')), expr.Byte('b')))

	got := d.Transitions()
	want := []Transition{
		{From: 0, Lo: 0, Hi: 'a' - 1, To: 1},
		{From: 0, Lo: 'a', Hi: 'a', To: 0},
		{From: 0, Lo: 'b', Hi: 'b', To: 2},
		{From: 0, Lo: 'b' + 1, Hi: 255, To: 1},
		{From: 1, Lo: 0, Hi: 255, To: 1},
		{From: 2, Lo: 0, Hi: 255, To: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transitions() mismatch (-want +got):\n%s", diff)
	}
	if d.Accepting(0) || d.Accepting(1) || !d.Accepting(2) {
		t.Errorf("accepting = [%v %v %v], want [false false true]", d.Accepting(0), d.Accepting(1), d.Accepting(2))
	}
}

func TestCompileDFA_TrivialExpressionStateCounts(t *testing.T) {
	// ∅ steps to itself; ε steps to the ∅ sink; AnyByte steps to ε and then
	// to the ∅ sink. Each distinct derivative is its own state.
	for _, tt := range []struct {
		e    *expr.Expression
		want int
	}{
		{expr.EmptySet(), 1},
		{expr.EmptyString(), 2},
		{expr.AnyByte(), 3},
	} {
		d := mustCompileDFA(t, tt.e)
		if d.NumStates() != tt.want {
			t.Errorf("CompileDFA(%v) has %d states, want %d", tt.e, d.NumStates(), tt.want)
		}
	}
}

func TestCompileDFA_StateLimitExceeded(t *testing.T) {
	// A concatenation chain of n distinct byte literals produces exactly
	// n+2 states (one per position 0..n plus the error sink reached on
	// mismatch), comfortably exceeding a MaxStates of 1.
	e := expr.Concatenation(expr.Byte('a'), expr.Byte('b'), expr.Byte('c'), expr.Byte('d'))
	_, _, err := CompileDFA(e, DefaultConfig().WithMaxStates(1))
	if err == nil {
		t.Fatal("expected ErrStateLimitExceeded, got nil")
	}
	if bErr, ok := err.(*BuildError); !ok || bErr.Kind != StateLimitExceeded {
		t.Errorf("err = %v, want a StateLimitExceeded BuildError", err)
	}
}

func TestCompileDFA_InvalidConfig(t *testing.T) {
	_, _, err := CompileDFA(expr.AnyByte(), Config{MaxStates: 0})
	if err == nil {
		t.Fatal("expected an error for MaxStates == 0")
	}
}
