package expr

// Derivative returns ∂_b e, the Brzozowski derivative of e with respect to
// byte b: an expression whose language is exactly { w : b·w ∈ L(e) }.
//
// A Group node reaching Derivative is a programmer error: groups are
// capture annotations meant for the partial-derivative/TNFA pipeline
// (Partial, automaton.CompileTNFA), and the capture-less DFA pipeline
// (automaton.CompileDFA) only accepts Group-free expressions; nothing here
// strips them. Brzozowski derivation has no defined meaning for them, so
// this panics rather than guessing.
func Derivative(e *Expression, b byte) *Expression {
	switch e.kind {
	case KindEmptySet:
		// ∂a∅ = ∅
		return EmptySet()

	case KindEmptyString:
		// ∂aε = ∅
		return EmptySet()

	case KindAnyByte:
		// ∂a. = ε
		return EmptyString()

	case KindByte:
		// ∂aa = ε; ∂ab = ∅ for b ≠ a
		if e.lo == b {
			return EmptyString()
		}
		return EmptySet()

	case KindByteRange:
		// ∂aS = ε if a ∈ S, ∅ otherwise
		if e.lo <= b && b <= e.hi {
			return EmptyString()
		}
		return EmptySet()

	case KindKleeneClosure:
		// ∂a(r*) = ∂ar · r*
		return rawConcatenation(Derivative(e.subs[0], b), e, false)

	case KindConcatenation:
		head, tail := e.subs[0], e.subs[1]
		// ∂a(r · s) = ∂ar · s + (ν(r) ? ∂as : ∅)
		if IsNullable(head) {
			return rawDisjunction([]*Expression{
				rawConcatenation(Derivative(head, b), tail, false),
				Derivative(tail, b),
			}, false)
		}
		return rawConcatenation(Derivative(head, b), tail, false)

	case KindComplement:
		// ∂a(¬r) = ¬(∂ar)
		return rawComplement(Derivative(e.subs[0], b), false)

	case KindConjunction:
		// ∂a(r & s & ...) = ∂ar & ∂as & ...
		subs := make([]*Expression, len(e.subs))
		for i, sub := range e.subs {
			subs[i] = Derivative(sub, b)
		}
		return rawConjunction(subs, false)

	case KindDisjunction:
		// ∂a(r + s + ...) = ∂ar + ∂as + ...
		subs := make([]*Expression, len(e.subs))
		for i, sub := range e.subs {
			subs[i] = Derivative(sub, b)
		}
		return rawDisjunction(subs, false)

	case KindGroup:
		panic("expr: Derivative: unexpected Group node; strip groups before Brzozowski derivation")
	}
	panic("expr: Derivative: unreachable kind " + e.kind.String())
}

// Match reports whether s is in L(e), by repeatedly taking the Brzozowski
// derivative of e with respect to each byte of s (normalising after every
// step so the expression doesn't grow without bound) and testing
// nullability at the end.
//
// This is the derivative algebra's native, automaton-free way to match a
// single string; automaton.CompileDFA exists because it amortises the
// normalisation work across many matches against the same expression, not
// because Match is incorrect or incomplete on its own.
func Match(e *Expression, s []byte) bool {
	for _, b := range s {
		e = Normalised(Derivative(e, b))
	}
	return IsNullable(e)
}
