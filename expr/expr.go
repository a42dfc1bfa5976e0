// Package expr implements the Boolean-closed regular expression algebra:
// immutable expression trees, structural comparison, canonicalisation,
// nullability, Brzozowski derivatives and Antimirov partial derivatives with
// capture bindings, and the byte-alphabet partition engine that automaton
// construction needs to terminate.
//
// The package deliberately has no string syntax of its own. Callers (a
// surface parser, a test, another package) build Expression trees directly
// with the constructors below, the same way callers of regexp/syntax build
// *syntax.Regexp trees by hand when they aren't parsing source text.
package expr

// Kind identifies the shape of an Expression node.
type Kind uint8

const (
	KindEmptySet Kind = iota
	KindEmptyString
	KindAnyByte
	KindByte
	KindByteRange
	KindKleeneClosure
	KindConcatenation
	KindComplement
	KindConjunction
	KindDisjunction
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindEmptySet:
		return "EmptySet"
	case KindEmptyString:
		return "EmptyString"
	case KindAnyByte:
		return "AnyByte"
	case KindByte:
		return "Byte"
	case KindByteRange:
		return "ByteRange"
	case KindKleeneClosure:
		return "KleeneClosure"
	case KindConcatenation:
		return "Concatenation"
	case KindComplement:
		return "Complement"
	case KindConjunction:
		return "Conjunction"
	case KindDisjunction:
		return "Disjunction"
	case KindGroup:
		return "Group"
	default:
		return "Kind(?)"
	}
}

// Mode is the capture-preference mode of a Group.
type Mode uint8

const (
	// Minimal groups prefer the shortest span that still lets the whole
	// match succeed.
	Minimal Mode = iota
	// Passive groups have no preference over the spans they might take;
	// Precedes never looks at their end position.
	Passive
	// Maximal groups prefer the longest span.
	Maximal
)

func (m Mode) String() string {
	switch m {
	case Minimal:
		return "Minimal"
	case Passive:
		return "Passive"
	case Maximal:
		return "Maximal"
	default:
		return "Mode(?)"
	}
}

// Expression is an immutable node in the regular expression algebra.
//
// Like regexp/syntax.Regexp, it is one struct shared by every Kind rather
// than a separate Go type per kind: the payload fields actually in use
// depend on Kind(), and calling an accessor for the wrong kind panics (see
// the accessor methods below). Expressions are never mutated after
// construction, so a single *Expression can and should be shared by many
// parents: the derivative and partial-derivative engines depend on this
// structural sharing to stay cheap.
type Expression struct {
	kind Kind
	norm bool

	// byte payload: used by KindByte (lo == hi == the byte value) and
	// KindByteRange (lo, hi are the inclusive bounds).
	lo, hi byte

	// subs holds the children, interpreted per kind:
	//   KindKleeneClosure, KindComplement, KindGroup: subs[0] is "the" child
	//   KindConcatenation:                            subs[0], subs[1] are head, tail
	//   KindConjunction, KindDisjunction:              subs is the full child list (len >= 2)
	subs []*Expression

	// group payload, used only by KindGroup.
	num     int
	mode    Mode
	capture bool
}

// Kind returns the node's kind.
func (e *Expression) Kind() Kind { return e.kind }

// Norm reports whether the node asserts it is already in canonical form.
// See Normalised.
func (e *Expression) Norm() bool { return e.norm }

// Byte returns the byte matched by a KindByte expression.
// Panics if e is not KindByte.
func (e *Expression) Byte() byte {
	if e.kind != KindByte {
		panic("expr: Byte() called on a " + e.kind.String() + " expression")
	}
	return e.lo
}

// ByteRange returns the inclusive bounds matched by a KindByteRange
// expression. Panics if e is not KindByteRange.
func (e *Expression) ByteRange() (lo, hi byte) {
	if e.kind != KindByteRange {
		panic("expr: ByteRange() called on a " + e.kind.String() + " expression")
	}
	return e.lo, e.hi
}

// Sub returns the single child of a KleeneClosure, Complement or Group
// expression. Panics for any other kind.
func (e *Expression) Sub() *Expression {
	switch e.kind {
	case KindKleeneClosure, KindComplement, KindGroup:
		return e.subs[0]
	default:
		panic("expr: Sub() called on a " + e.kind.String() + " expression")
	}
}

// Head returns the first operand of a Concatenation. Panics otherwise.
func (e *Expression) Head() *Expression {
	if e.kind != KindConcatenation {
		panic("expr: Head() called on a " + e.kind.String() + " expression")
	}
	return e.subs[0]
}

// Tail returns the second operand of a Concatenation. Panics otherwise.
// By convention tail is itself usually a Concatenation when more than two
// expressions were concatenated, since Concatenation is right-associated
// once normalised.
func (e *Expression) Tail() *Expression {
	if e.kind != KindConcatenation {
		panic("expr: Tail() called on a " + e.kind.String() + " expression")
	}
	return e.subs[1]
}

// Subs returns the children of a Conjunction or Disjunction expression, in
// the order they were stored. Panics otherwise.
func (e *Expression) Subs() []*Expression {
	switch e.kind {
	case KindConjunction, KindDisjunction:
		return e.subs
	default:
		panic("expr: Subs() called on a " + e.kind.String() + " expression")
	}
}

// Group returns the group payload of a KindGroup expression: its numeric
// id, child, preference mode and whether it captures. Panics otherwise.
func (e *Expression) Group() (num int, sub *Expression, mode Mode, capture bool) {
	if e.kind != KindGroup {
		panic("expr: Group() called on a " + e.kind.String() + " expression")
	}
	return e.num, e.subs[0], e.mode, e.capture
}

// atom builds a zero-payload, always-canonical node (EmptySet, EmptyString,
// AnyByte).
func atom(k Kind) *Expression {
	return &Expression{kind: k, norm: true}
}

// EmptySet returns the expression matching no string.
func EmptySet() *Expression { return atom(KindEmptySet) }

// EmptyString returns the expression matching only the empty string.
func EmptyString() *Expression { return atom(KindEmptyString) }

// AnyByte returns the expression matching any single byte.
func AnyByte() *Expression { return atom(KindAnyByte) }

// Byte returns the expression matching exactly the byte b.
func Byte(b byte) *Expression {
	return &Expression{kind: KindByte, norm: true, lo: b, hi: b}
}

// ByteRange returns the expression matching any single byte in [lo, hi].
func ByteRange(lo, hi byte) *Expression {
	return &Expression{kind: KindByteRange, norm: true, lo: lo, hi: hi}
}

// rawKleeneClosure builds a KleeneClosure node with an explicit norm flag,
// for use by the normaliser and derivative engines, which know exactly when
// the result they're building is already canonical.
func rawKleeneClosure(sub *Expression, norm bool) *Expression {
	return &Expression{kind: KindKleeneClosure, norm: norm, subs: []*Expression{sub}}
}

// KleeneClosure returns the expression matching zero or more concatenated
// matches of sub.
func KleeneClosure(sub *Expression) *Expression {
	return rawKleeneClosure(sub, false)
}

func rawConcatenation(head, tail *Expression, norm bool) *Expression {
	return &Expression{kind: KindConcatenation, norm: norm, subs: []*Expression{head, tail}}
}

// Concatenation returns the expression matching x followed by y followed
// by each of rest, in order. It folds pairwise from the right, the same way
// the algebra's own right-associativity normal form does:
// Concatenation(a, b, c) builds a·(b·c).
func Concatenation(x, y *Expression, rest ...*Expression) *Expression {
	if len(rest) == 0 {
		return rawConcatenation(x, y, false)
	}
	return rawConcatenation(x, Concatenation(y, rest[0], rest[1:]...), false)
}

func rawComplement(sub *Expression, norm bool) *Expression {
	return &Expression{kind: KindComplement, norm: norm, subs: []*Expression{sub}}
}

// Complement returns the expression matching every byte string that sub
// does not match.
func Complement(sub *Expression) *Expression {
	return rawComplement(sub, false)
}

func rawConjunction(subs []*Expression, norm bool) *Expression {
	return &Expression{kind: KindConjunction, norm: norm, subs: subs}
}

// Conjunction returns the expression matching every string matched by all
// of x, y and rest.
func Conjunction(x, y *Expression, rest ...*Expression) *Expression {
	subs := make([]*Expression, 0, 2+len(rest))
	subs = append(subs, x, y)
	subs = append(subs, rest...)
	return rawConjunction(subs, false)
}

func rawDisjunction(subs []*Expression, norm bool) *Expression {
	return &Expression{kind: KindDisjunction, norm: norm, subs: subs}
}

// Disjunction returns the expression matching any string matched by x, y or
// one of rest.
func Disjunction(x, y *Expression, rest ...*Expression) *Expression {
	subs := make([]*Expression, 0, 2+len(rest))
	subs = append(subs, x, y)
	subs = append(subs, rest...)
	return rawDisjunction(subs, false)
}

// Group returns the expression marking sub as capture/ordering group num
// with the given preference mode; capture marks whether the group is a
// capturing one. MatchTNFA does not read this flag: it reports the groups
// listed in the captures argument of CompileTNFA.
func Group(num int, sub *Expression, mode Mode, capture bool) *Expression {
	return &Expression{kind: KindGroup, norm: false, num: num, subs: []*Expression{sub}, mode: mode, capture: capture}
}

// Compare returns -1, 0 or +1 when x is less than, equal to or greater than
// y under the total order used to canonicalise Conjunction/Disjunction
// children and to key automaton states. It compares kinds first, then
// payload, then children lexicographically.
func Compare(x, y *Expression) int {
	if x.kind != y.kind {
		if x.kind < y.kind {
			return -1
		}
		return +1
	}
	switch x.kind {
	case KindEmptySet, KindEmptyString, KindAnyByte:
		return 0

	case KindByte:
		return compareByte(x.lo, y.lo)

	case KindByteRange:
		if c := compareByte(x.lo, y.lo); c != 0 {
			return c
		}
		return compareByte(x.hi, y.hi)

	case KindKleeneClosure, KindComplement:
		return Compare(x.subs[0], y.subs[0])

	case KindConcatenation:
		if c := Compare(x.subs[0], y.subs[0]); c != 0 {
			return c
		}
		return Compare(x.subs[1], y.subs[1])

	case KindConjunction, KindDisjunction:
		return compareSubs(x.subs, y.subs)

	case KindGroup:
		if x.num < y.num {
			return -1
		}
		if x.num > y.num {
			return +1
		}
		if c := Compare(x.subs[0], y.subs[0]); c != 0 {
			return c
		}
		if x.mode != y.mode {
			if x.mode < y.mode {
				return -1
			}
			return +1
		}
		if x.capture != y.capture {
			if !x.capture {
				return -1
			}
			return +1
		}
		return 0
	}
	panic("expr: Compare: unreachable kind " + x.kind.String())
}

func compareByte(x, y byte) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// compareSubs performs a lexicographical compare for multi-child kinds:
// compare elementwise, and if one list is a strict prefix of the other,
// the shorter list is less.
func compareSubs(xs, ys []*Expression) int {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if c := Compare(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(xs) < len(ys):
		return -1
	case len(xs) > len(ys):
		return +1
	default:
		return 0
	}
}

// Equal reports whether x and y are structurally equal.
func Equal(x, y *Expression) bool { return Compare(x, y) == 0 }
