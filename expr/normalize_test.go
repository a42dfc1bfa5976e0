package expr

import "testing"

func TestNormalised_Idempotent(t *testing.T) {
	exprs := []*Expression{
		EmptySet(),
		EmptyString(),
		KleeneClosure(KleeneClosure(Byte('a'))),
		KleeneClosure(EmptySet()),
		KleeneClosure(EmptyString()),
		KleeneClosure(AnyByte()),
		KleeneClosure(AnyCharacter()),
		Concatenation(Concatenation(Byte('a'), Byte('b')), Byte('c')),
		Concatenation(EmptySet(), Byte('a')),
		Concatenation(Byte('a'), EmptySet()),
		Concatenation(EmptyString(), Byte('a')),
		Concatenation(Byte('a'), EmptyString()),
		Complement(Complement(Byte('a'))),
		Conjunction(Byte('a'), Byte('a'), Byte('b')),
		Conjunction(EmptySet(), Byte('a')),
		Conjunction(Complement(EmptySet()), Byte('a')),
		Disjunction(Byte('a'), Byte('a'), Byte('b')),
		Disjunction(EmptySet(), Byte('a')),
		Disjunction(Complement(EmptySet()), Byte('a')),
		Group(1, EmptySet(), Maximal, true),
		Group(1, EmptyString(), Maximal, true),
		Group(1, Byte('a'), Maximal, true),
	}
	for _, e := range exprs {
		n1 := Normalised(e)
		n2 := Normalised(n1)
		if !Equal(n1, n2) {
			t.Errorf("Normalised not idempotent: Normalised(%v) = %v, Normalised(that) = %v", e, n1, n2)
		}
		if !n1.Norm() {
			t.Errorf("Normalised(%v) = %v does not report Norm() == true", e, n1)
		}
	}
}

func TestNormalised_KleeneClosureRules(t *testing.T) {
	tests := []struct {
		name string
		e    *Expression
		want *Expression
	}{
		{"(r*)* = r*", KleeneClosure(KleeneClosure(Byte('a'))), KleeneClosure(Byte('a'))},
		{"∅* = ε", KleeneClosure(EmptySet()), EmptyString()},
		{"ε* = ε", KleeneClosure(EmptyString()), EmptyString()},
		{"\\C* = ¬∅", KleeneClosure(AnyByte()), Complement(EmptySet())},
		{".* = ¬∅", KleeneClosure(AnyCharacter()), Complement(EmptySet())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalised(tt.e)
			want := Normalised(tt.want)
			if !Equal(got, want) {
				t.Errorf("Normalised(%v) = %v, want %v", tt.e, got, want)
			}
		})
	}
}

func TestNormalised_ConcatenationIdentities(t *testing.T) {
	if !Equal(Normalised(Concatenation(EmptySet(), Byte('a'))), EmptySet()) {
		t.Error("∅·r should normalise to ∅")
	}
	if !Equal(Normalised(Concatenation(Byte('a'), EmptySet())), EmptySet()) {
		t.Error("r·∅ should normalise to ∅")
	}
	if !Equal(Normalised(Concatenation(EmptyString(), Byte('a'))), Byte('a')) {
		t.Error("ε·r should normalise to r")
	}
	if !Equal(Normalised(Concatenation(Byte('a'), EmptyString())), Byte('a')) {
		t.Error("r·ε should normalise to r")
	}
}

func TestNormalised_ConcatenationRightAssociates(t *testing.T) {
	left := Concatenation(Concatenation(Byte('a'), Byte('b')), Byte('c'))
	right := Concatenation(Byte('a'), Concatenation(Byte('b'), Byte('c')))
	if !Equal(Normalised(left), Normalised(right)) {
		t.Error("(a·b)·c should normalise the same as a·(b·c)")
	}
	got := Normalised(left)
	if got.Kind() != KindConcatenation || got.Head().Kind() != KindByte {
		t.Errorf("normalised concatenation should be right-associated, got %v", got)
	}
}

func TestNormalised_ComplementDoubleNegation(t *testing.T) {
	if !Equal(Normalised(Complement(Complement(Byte('a')))), Byte('a')) {
		t.Error("¬¬r should normalise to r")
	}
}

func TestNormalised_ConjunctionAbsorbing(t *testing.T) {
	if !Equal(Normalised(Conjunction(EmptySet(), Byte('a'))), EmptySet()) {
		t.Error("∅ & r should normalise to ∅")
	}
	if !Equal(Normalised(Conjunction(Complement(EmptySet()), Byte('a'))), Byte('a')) {
		t.Error("¬∅ & r should normalise to r")
	}
	if !Equal(Normalised(Conjunction(Byte('a'), Byte('a'), Byte('b'))), Normalised(Conjunction(Byte('a'), Byte('b')))) {
		t.Error("duplicate conjuncts should be eliminated")
	}
}

func TestNormalised_DisjunctionAbsorbing(t *testing.T) {
	if !Equal(Normalised(Disjunction(Complement(EmptySet()), Byte('a'))), Complement(EmptySet())) {
		t.Error("¬∅ + r should normalise to ¬∅")
	}
	if !Equal(Normalised(Disjunction(EmptySet(), Byte('a'))), Byte('a')) {
		t.Error("∅ + r should normalise to r")
	}
	if !Equal(Normalised(Disjunction(Byte('a'), Byte('a'), Byte('b'))), Normalised(Disjunction(Byte('a'), Byte('b')))) {
		t.Error("duplicate disjuncts should be eliminated")
	}
}

func TestNormalised_GroupCollapsesOnAbsorbingChild(t *testing.T) {
	if !Equal(Normalised(Group(1, EmptySet(), Maximal, true)), EmptySet()) {
		t.Error("Group wrapping ∅ should collapse to ∅")
	}
	if !Equal(Normalised(Group(1, EmptyString(), Maximal, true)), EmptyString()) {
		t.Error("Group wrapping ε should collapse to ε")
	}
	g := Normalised(Group(1, Byte('a'), Maximal, true))
	if g.Kind() != KindGroup {
		t.Error("Group wrapping a non-absorbing child should be preserved")
	}
}

func TestNormalised_SortingIsCommutative(t *testing.T) {
	a := Normalised(Disjunction(Byte('b'), Byte('a')))
	b := Normalised(Disjunction(Byte('a'), Byte('b')))
	if !Equal(a, b) {
		t.Error("disjunction should be canonicalised the same way regardless of input order")
	}
}
