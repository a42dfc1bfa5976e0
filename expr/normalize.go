package expr

import "sort"

// Normalised returns an equivalent expression in canonical form: Kleene and
// Boolean identities applied fixed-point, bottom-up, with Conjunction and
// Disjunction children flattened, sorted by Compare and de-duplicated.
//
// Canonicalisation is what makes repeated differentiation terminate on a
// finite set of state classes (see automaton.CompileDFA/CompileTNFA): without
// it, derivatives of the same language keep producing distinct-looking but
// equivalent trees forever.
func Normalised(e *Expression) *Expression {
	if e.norm {
		return e
	}
	switch e.kind {
	case KindEmptySet, KindEmptyString, KindAnyByte, KindByte, KindByteRange:
		// Atoms are always constructed with norm = true; unreachable.
		return e

	case KindKleeneClosure:
		return normaliseKleeneClosure(e)

	case KindConcatenation:
		return normaliseConcatenation(e)

	case KindComplement:
		return normaliseComplement(e)

	case KindConjunction:
		return normaliseConjunction(e)

	case KindDisjunction:
		return normaliseDisjunction(e)

	case KindGroup:
		return normaliseGroup(e)
	}
	panic("expr: Normalised: unreachable kind " + e.kind.String())
}

func normaliseKleeneClosure(e *Expression) *Expression {
	sub := Normalised(e.subs[0])
	switch {
	case sub.kind == KindKleeneClosure:
		// (r*)* ≈ r*
		return sub
	case sub.kind == KindEmptySet:
		// ∅* ≈ ε
		return EmptyString()
	case sub.kind == KindEmptyString:
		// ε* ≈ ε
		return EmptyString()
	case sub.kind == KindAnyByte:
		// \C* ≈ ¬∅
		return rawComplement(EmptySet(), true)
	case Equal(sub, anyCharacter):
		// .* ≈ ¬∅
		// Not strictly correct: this treats any byte string as a match,
		// even one that is not valid UTF-8, since nothing here enforces
		// structural UTF-8 validity of the input.
		return rawComplement(EmptySet(), true)
	}
	return rawKleeneClosure(sub, true)
}

func normaliseConcatenation(e *Expression) *Expression {
	head := Normalised(e.subs[0])
	tail := e.subs[1]
	// (r · s) · t ≈ r · (s · t)
	for head.kind == KindConcatenation {
		tail = rawConcatenation(head.subs[1], tail, false)
		head = head.subs[0]
	}
	tail = Normalised(tail)
	switch {
	case head.kind == KindEmptySet:
		// ∅ · r ≈ ∅
		return head
	case tail.kind == KindEmptySet:
		// r · ∅ ≈ ∅
		return tail
	case head.kind == KindEmptyString:
		// ε · r ≈ r
		return tail
	case tail.kind == KindEmptyString:
		// r · ε ≈ r
		return head
	}
	return rawConcatenation(head, tail, true)
}

func normaliseComplement(e *Expression) *Expression {
	sub := Normalised(e.subs[0])
	if sub.kind == KindComplement {
		// ¬(¬r) ≈ r
		return sub.subs[0]
	}
	return rawComplement(sub, true)
}

func isComplementOfEmptySet(e *Expression) bool {
	return e.kind == KindComplement && e.subs[0].kind == KindEmptySet
}

func normaliseConjunction(e *Expression) *Expression {
	var subs []*Expression
	for _, sub := range e.subs {
		sub = Normalised(sub)
		if sub.kind == KindEmptySet {
			// ∅ & r ≈ ∅, r & ∅ ≈ ∅
			return sub
		}
		if sub.kind == KindConjunction {
			// (r & s) & t ≈ r & (s & t)
			subs = append(subs, sub.subs...)
		} else {
			subs = append(subs, sub)
		}
	}
	// r & s ≈ s & r
	sort.Slice(subs, func(i, j int) bool { return Compare(subs[i], subs[j]) < 0 })
	// r & r ≈ r
	subs = dedupeSorted(subs)
	// ¬∅ & r ≈ r, r & ¬∅ ≈ r
	if len(subs) > 1 {
		subs = removeIf(subs, isComplementOfEmptySet)
	}
	if len(subs) == 1 {
		return subs[0]
	}
	return rawConjunction(subs, true)
}

func normaliseDisjunction(e *Expression) *Expression {
	var subs []*Expression
	for _, sub := range e.subs {
		sub = Normalised(sub)
		if isComplementOfEmptySet(sub) {
			// ¬∅ + r ≈ ¬∅, r + ¬∅ ≈ ¬∅
			return sub
		}
		if sub.kind == KindDisjunction {
			// (r + s) + t ≈ r + (s + t)
			subs = append(subs, sub.subs...)
		} else {
			subs = append(subs, sub)
		}
	}
	// r + s ≈ s + r
	sort.Slice(subs, func(i, j int) bool { return Compare(subs[i], subs[j]) < 0 })
	// r + r ≈ r
	subs = dedupeSorted(subs)
	// ∅ + r ≈ r, r + ∅ ≈ r
	if len(subs) > 1 {
		subs = removeIf(subs, func(e *Expression) bool { return e.kind == KindEmptySet })
	}
	if len(subs) == 1 {
		return subs[0]
	}
	return rawDisjunction(subs, true)
}

func normaliseGroup(e *Expression) *Expression {
	sub := Normalised(e.subs[0])
	if sub.kind == KindEmptySet || sub.kind == KindEmptyString {
		return sub
	}
	return &Expression{kind: KindGroup, norm: true, num: e.num, subs: []*Expression{sub}, mode: e.mode, capture: e.capture}
}

// dedupeSorted removes adjacent structural duplicates from a Compare-sorted
// slice, preserving order.
func dedupeSorted(subs []*Expression) []*Expression {
	if len(subs) < 2 {
		return subs
	}
	out := subs[:1]
	for _, s := range subs[1:] {
		if !Equal(out[len(out)-1], s) {
			out = append(out, s)
		}
	}
	return out
}

// removeIf drops every element for which drop(e) is true, preserving order.
func removeIf(subs []*Expression, drop func(*Expression) bool) []*Expression {
	out := subs[:0]
	for _, s := range subs {
		if !drop(s) {
			out = append(out, s)
		}
	}
	return out
}
