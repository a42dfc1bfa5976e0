package expr

import "github.com/brzozowski/boolregex/internal/bitset256"

// Partitions returns a partition of the 256-byte alphabet such that, within
// any one block, every byte yields the same Normalised(Derivative(e, ·))
// (or the same partial derivative: the partition only depends on which
// bytes are distinguishable to e, not on which derivative flavour is
// taken).
//
// The first block returned is "Σ-based": it is interpreted as the bytes
// that should be excluded from the implicit default block, not as a
// positive set in its own right. Every other block is "∅-based": a plain
// positive set of bytes that behave alike. This convention (not a tag per
// block, just position 0 versus the rest) is load-bearing in Intersection
// below and in automaton construction's choice of a representative byte
// per block (see automaton.CompileDFA/CompileTNFA).
func Partitions(e *Expression) []bitset256.Set {
	switch e.kind {
	case KindEmptySet, KindEmptyString, KindAnyByte:
		// C(∅) = C(ε) = C(.) = {Σ}
		return []bitset256.Set{{}}

	case KindByte:
		// C(a) = {Σ \ a, a}: both entries store the same literal set;
		// position 0 carries the "exclude from Σ" meaning, position 1 the
		// "this is its own block" meaning.
		bs := bitset256.Of(e.lo)
		return []bitset256.Set{bs, bs}

	case KindByteRange:
		// C(S) = {Σ \ S, S}
		bs := bitset256.Range(e.lo, e.hi)
		return []bitset256.Set{bs, bs}

	case KindKleeneClosure, KindComplement:
		// C(r*) = C(¬r) = C(r)
		return Partitions(e.subs[0])

	case KindGroup:
		// C(Group(_, r, _, _)) = C(r): a group has no byte-class identity
		// of its own, it only marks r for capture bookkeeping.
		return Partitions(e.subs[0])

	case KindConcatenation:
		head, tail := e.subs[0], e.subs[1]
		if IsNullable(head) {
			// C(r · s) = C(r) ∧ C(s) if ν(r) = ε
			return Intersection(Partitions(head), Partitions(tail))
		}
		// C(r · s) = C(r) if ν(r) = ∅
		return Partitions(head)

	case KindConjunction, KindDisjunction:
		// C(r & s & ...) = C(r + s + ...) = C(r) ∧ C(s) ∧ ...
		result := Partitions(e.subs[0])
		for _, sub := range e.subs[1:] {
			result = Intersection(result, Partitions(sub))
		}
		return result
	}
	panic("expr: Partitions: unreachable kind " + e.kind.String())
}

// Intersection combines two partitions, respecting the Σ-based/∅-based
// convention documented on Partitions: x[0] and y[0] are Σ-based, the rest
// are ∅-based.
func Intersection(x, y []bitset256.Set) []bitset256.Set {
	var z []bitset256.Set
	for i, xi := range x {
		for j, yj := range y {
			switch {
			case i == 0 && j == 0:
				// Both Σ-based: union, always emitted even if empty.
				z = append(z, xi.Union(yj))
			case i == 0:
				// xi Σ-based, yj ∅-based: set difference.
				if bs := yj.Difference(xi); bs.Any() {
					z = append(z, bs)
				}
			case j == 0:
				// xi ∅-based, yj Σ-based: set difference.
				if bs := xi.Difference(yj); bs.Any() {
					z = append(z, bs)
				}
			default:
				// Both ∅-based: intersection.
				if bs := xi.Intersect(yj); bs.Any() {
					z = append(z, bs)
				}
			}
		}
	}
	return z
}
