package expr

// BindingType is the action a Binding applies to a capture slot when its
// edge is taken during TNFA matching (see automaton.MatchTNFA).
type BindingType uint8

const (
	// Cancel clears group num's offsets: a previous tentative match of the
	// group is being abandoned (e.g. starting a fresh Kleene iteration).
	Cancel BindingType = iota
	// Epsilon records that group num matched empty at the current position,
	// without having consumed the byte that triggered this transition.
	Epsilon
	// Append records that the current byte extended (or started) group
	// num's match.
	Append
)

func (t BindingType) String() string {
	switch t {
	case Cancel:
		return "Cancel"
	case Epsilon:
		return "Epsilon"
	case Append:
		return "Append"
	default:
		return "BindingType(?)"
	}
}

// Binding is one action against capture slot Group.
type Binding struct {
	Group  int
	Action BindingType
}

// BindingList is an ordered sequence of Bindings, applied left to right.
type BindingList []Binding

// Clone returns an independent copy of bl.
func (bl BindingList) Clone() BindingList {
	if len(bl) == 0 {
		return nil
	}
	out := make(BindingList, len(bl))
	copy(out, bl)
	return out
}

// Concat returns a new BindingList with other appended after bl, without
// modifying either argument.
func (bl BindingList) Concat(other BindingList) BindingList {
	if len(bl) == 0 {
		return other.Clone()
	}
	if len(other) == 0 {
		return bl.Clone()
	}
	out := make(BindingList, 0, len(bl)+len(other))
	out = append(out, bl...)
	out = append(out, other...)
	return out
}

// Prepend returns a new BindingList with prefix appended before bl.
func (bl BindingList) Prepend(prefix BindingList) BindingList {
	return prefix.Concat(bl)
}

// CancelBindings walks e post-order and emits a (num, Cancel) binding for
// every Group node entered. It is used by Partial's KleeneClosure rule: one
// more iteration of r* means any nested group's previous match, if any, no
// longer applies.
func CancelBindings(e *Expression) BindingList {
	var out BindingList
	collectCancel(e, &out)
	return out
}

func collectCancel(e *Expression, out *BindingList) {
	switch e.kind {
	case KindEmptySet, KindEmptyString, KindAnyByte, KindByte, KindByteRange:
		return
	case KindKleeneClosure, KindComplement:
		collectCancel(e.subs[0], out)
	case KindConcatenation:
		collectCancel(e.subs[0], out)
		collectCancel(e.subs[1], out)
	case KindConjunction, KindDisjunction:
		for _, sub := range e.subs {
			collectCancel(sub, out)
		}
	case KindGroup:
		collectCancel(e.subs[0], out)
		*out = append(*out, Binding{Group: e.num, Action: Cancel})
	default:
		panic("expr: collectCancel: unreachable kind " + e.kind.String())
	}
}

// EpsilonBindings walks e post-order like CancelBindings, but emits
// (num, Epsilon) bindings, and for a Disjunction only recurses into the
// first nullable alternative, the leftmost one. That is what determines
// leftmost-match preference when several alternatives could all match
// empty.
func EpsilonBindings(e *Expression) BindingList {
	var out BindingList
	collectEpsilon(e, &out)
	return out
}

func collectEpsilon(e *Expression, out *BindingList) {
	switch e.kind {
	case KindEmptySet, KindEmptyString, KindAnyByte, KindByte, KindByteRange:
		return
	case KindKleeneClosure, KindComplement:
		collectEpsilon(e.subs[0], out)
	case KindConcatenation:
		collectEpsilon(e.subs[0], out)
		collectEpsilon(e.subs[1], out)
	case KindConjunction:
		for _, sub := range e.subs {
			collectEpsilon(sub, out)
		}
	case KindDisjunction:
		for _, sub := range e.subs {
			if IsNullable(sub) {
				collectEpsilon(sub, out)
				break
			}
		}
	case KindGroup:
		collectEpsilon(e.subs[0], out)
		*out = append(*out, Binding{Group: e.num, Action: Epsilon})
	default:
		panic("expr: collectEpsilon: unreachable kind " + e.kind.String())
	}
}
