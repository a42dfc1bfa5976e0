package expr

// Alt is one alternative of an OuterSet: an expression paired with the
// bindings to apply, in order, when the byte that produced this alternative
// is consumed.
//
// Conceptually an OuterSet is a Disjunction of Alts, and each Alt's
// expression is conceptually a Conjunction of terms (an "InnerSet"); rather
// than introduce a separate InnerSet type, a multi-term Alt is represented
// directly as a Conjunction-kinded Expression (see terms below), the same
// economy of representation the algebra it was adapted from uses.
type Alt struct {
	Exp      *Expression
	Bindings BindingList
}

// OuterSet is the result of a partial derivative: a list of alternatives,
// each a candidate successor expression plus the binding actions that fire
// if that alternative is the one taken.
type OuterSet []Alt

// terms returns the conjunction terms of e: e's own children if e is a
// Conjunction, or the single-element list [e] otherwise. It is how
// PartialComplement treats every Alt uniformly as an AND of one or more
// terms.
func terms(e *Expression) []*Expression {
	if e.Kind() == KindConjunction {
		return e.Subs()
	}
	return []*Expression{e}
}

// disjunctionOf builds the disjunction of terms, collapsing to the single
// term itself when there is only one.
func disjunctionOf(terms []*Expression) *Expression {
	if len(terms) == 1 {
		return terms[0]
	}
	return rawDisjunction(terms, false)
}

// conjunctionOf builds the conjunction of terms, collapsing to the single
// term itself when there is only one.
func conjunctionOf(terms []*Expression) *Expression {
	if len(terms) == 1 {
		return terms[0]
	}
	return rawConjunction(terms, false)
}

// PartialConcatenation implements the PartialConcatenation(X, tail, initial)
// helper: for every alternative (e, β) in X it replaces e with
// Concatenation(e, tail), wrapped in a singleton Conjunction so that a
// later PartialComplement sees a uniform list of terms regardless of how
// many terms an alternative started with, and prepends initial to β.
func PartialConcatenation(x OuterSet, tail *Expression, initial BindingList) OuterSet {
	out := make(OuterSet, len(x))
	for i, alt := range x {
		wrapped := rawConjunction([]*Expression{Concatenation(alt.Exp, tail)}, false)
		out[i] = Alt{Exp: wrapped, Bindings: alt.Bindings.Prepend(initial)}
	}
	return out
}

// PartialComplement implements the De Morgan dual used by Partial's
// Complement rule. X represents a disjunction of conjunctions
// (∪ᵢ ⋂ⱼ tᵢⱼ); its complement is ⋂ᵢ ⋃ⱼ ¬tᵢⱼ, a single new alternative with
// no bindings. Complement never binds a capture.
func PartialComplement(x OuterSet) OuterSet {
	conjuncts := make([]*Expression, len(x))
	for i, alt := range x {
		ts := terms(alt.Exp)
		negated := make([]*Expression, len(ts))
		for j, t := range ts {
			negated[j] = rawComplement(t, false)
		}
		conjuncts[i] = disjunctionOf(negated)
	}
	return OuterSet{{Exp: conjunctionOf(conjuncts), Bindings: nil}}
}

// PartialConjunction implements the cross-product used by Partial's
// Conjunction rule: every pair of alternatives from x and y becomes one
// alternative ANDing their expressions and concatenating their bindings.
func PartialConjunction(x, y OuterSet) OuterSet {
	out := make(OuterSet, 0, len(x)*len(y))
	for _, xa := range x {
		for _, ya := range y {
			out = append(out, Alt{
				Exp:      rawConjunction([]*Expression{xa.Exp, ya.Exp}, false),
				Bindings: xa.Bindings.Concat(ya.Bindings),
			})
		}
	}
	return out
}

// PartialDisjunction implements the union used by Partial's Disjunction
// rule: the alternatives of x followed by the alternatives of y.
func PartialDisjunction(x, y OuterSet) OuterSet {
	out := make(OuterSet, 0, len(x)+len(y))
	out = append(out, x...)
	out = append(out, y...)
	return out
}

// Partial returns the Antimirov partial derivative of e with respect to
// byte b: a disjunction-of-conjunctions of successor expressions, each
// paired with the BindingList to apply to a TNFA path's offset vector if
// that alternative is the one taken (see automaton.MatchTNFA).
func Partial(e *Expression, b byte) OuterSet {
	switch e.kind {
	case KindEmptySet, KindEmptyString:
		return OuterSet{{Exp: EmptySet()}}

	case KindAnyByte:
		return OuterSet{{Exp: EmptyString()}}

	case KindByte:
		if e.lo == b {
			return OuterSet{{Exp: EmptyString()}}
		}
		return OuterSet{{Exp: EmptySet()}}

	case KindByteRange:
		if e.lo <= b && b <= e.hi {
			return OuterSet{{Exp: EmptyString()}}
		}
		return OuterSet{{Exp: EmptySet()}}

	case KindGroup:
		num, sub, mode, capture := e.Group()
		alts := Partial(sub, b)
		out := make(OuterSet, len(alts))
		for i, alt := range alts {
			out[i] = Alt{
				Exp:      Group(num, alt.Exp, mode, capture),
				Bindings: alt.Bindings.Concat(BindingList{{Group: num, Action: Append}}),
			}
		}
		return out

	case KindKleeneClosure:
		sub := e.subs[0]
		cancel := CancelBindings(sub)
		return PartialConcatenation(Partial(sub, b), e, cancel)

	case KindConcatenation:
		head, tail := e.subs[0], e.subs[1]
		result := PartialConcatenation(Partial(head, b), tail, nil)
		if IsNullable(head) {
			fromTail := PartialConcatenation(Partial(tail, b), EmptyString(), EpsilonBindings(head))
			result = PartialDisjunction(result, fromTail)
		}
		return result

	case KindComplement:
		return PartialComplement(Partial(e.subs[0], b))

	case KindConjunction:
		result := Partial(e.subs[0], b)
		for _, sub := range e.subs[1:] {
			result = PartialConjunction(result, Partial(sub, b))
		}
		return result

	case KindDisjunction:
		result := Partial(e.subs[0], b)
		for _, sub := range e.subs[1:] {
			result = PartialDisjunction(result, Partial(sub, b))
		}
		return result
	}
	panic("expr: Partial: unreachable kind " + e.kind.String())
}
