// Package automaton builds deterministic and tagged-NFA automata from the
// Boolean-closed regular expression algebra in package expr, and matches
// byte strings against them.
//
// Construction follows one worklist shape shared by both passes (see dfa.go,
// tnfa.go): start from the normalised expression, assign it state 0, and
// repeatedly derive successors along each block of expr.Partitions until no
// new canonical expression is discovered. The DFA pass transitions on
// expr.Normalised(expr.Derivative(e, b)); the TNFA pass transitions on the
// alternatives of expr.Partial(e, b), each carrying an expr.BindingList.
package automaton

import (
	"hash/fnv"
	"io"

	"github.com/brzozowski/boolregex/expr"
	"github.com/brzozowski/boolregex/internal/bitset256"
	"github.com/brzozowski/boolregex/internal/conv"
)

// StateID indexes a state in a compiled automaton. State 0 is always the
// start state: the already-normalised expression construction began from.
type StateID uint32

// stateKey is a hash fingerprint of a canonical expression, used to give
// the worklist O(1) average lookup when deciding whether an expression has
// already been assigned a state. A hash collision never produces a wrong
// answer: interner.intern always confirms with expr.Equal before reusing an
// id.
type stateKey uint64

func computeStateKey(e *expr.Expression) stateKey {
	h := fnv.New64a()
	writeExprKey(h, e)
	return stateKey(h.Sum64())
}

// writeExprKey never fails: hash.Hash.Write never returns an error per its
// documented contract, so every write below discards the result.
func writeExprKey(w io.Writer, e *expr.Expression) {
	_, _ = w.Write([]byte{byte(e.Kind())})
	switch e.Kind() {
	case expr.KindEmptySet, expr.KindEmptyString, expr.KindAnyByte:
	case expr.KindByte:
		_, _ = w.Write([]byte{e.Byte()})
	case expr.KindByteRange:
		lo, hi := e.ByteRange()
		_, _ = w.Write([]byte{lo, hi})
	case expr.KindKleeneClosure, expr.KindComplement:
		writeExprKey(w, e.Sub())
	case expr.KindConcatenation:
		writeExprKey(w, e.Head())
		writeExprKey(w, e.Tail())
	case expr.KindConjunction, expr.KindDisjunction:
		for _, sub := range e.Subs() {
			writeExprKey(w, sub)
		}
	case expr.KindGroup:
		num, sub, mode, capture := e.Group()
		b := byte(0)
		if capture {
			b = 1
		}
		_, _ = w.Write([]byte{byte(num), byte(num >> 8), byte(num >> 16), byte(num >> 24), byte(mode), b})
		writeExprKey(w, sub)
	}
}

// interner assigns stable, dense StateIDs to canonical expressions by
// structural content rather than pointer identity. That is the same "many
// derivation paths, one shared destination state" requirement that makes
// the construction worklist terminate on a finite pattern.
type interner struct {
	byKey map[stateKey][]StateID
	exprs []*expr.Expression
}

func newInterner() *interner {
	return &interner{byKey: make(map[stateKey][]StateID)}
}

// intern returns the id for e, allocating a new one if no structurally
// equal expression has been interned yet, and reports whether the id is
// newly allocated (so callers know whether to enqueue it).
func (in *interner) intern(e *expr.Expression) (StateID, bool) {
	k := computeStateKey(e)
	for _, id := range in.byKey[k] {
		if expr.Equal(in.exprs[id], e) {
			return id, false
		}
	}
	id := StateID(conv.IntToUint32(len(in.exprs)))
	in.exprs = append(in.exprs, e)
	in.byKey[k] = append(in.byKey[k], id)
	return id, true
}

func (in *interner) expression(id StateID) *expr.Expression {
	return in.exprs[id]
}

func (in *interner) len() int {
	return len(in.exprs)
}

// representativeByte picks the byte used to compute a block's successor
// expression, per the Σ-based/∅-based convention of expr.Partitions: block
// 0's actual membership is the complement of what it stores, so its
// representative is the lowest byte in that complement; every other block
// is a positive set and its representative is its own lowest byte.
//
// ok is false when the block has no member to pick from. For block 0 this
// means every byte already belongs to some more specific block, so the
// default transition is unreachable and need not be computed.
func representativeByte(blocks []bitset256.Set, i int) (b byte, ok bool) {
	if i == 0 {
		return blocks[0].Complement().Min()
	}
	return blocks[i].Min()
}
