package expr

// IsNullable reports whether e matches the empty string.
func IsNullable(e *Expression) bool {
	switch e.kind {
	case KindEmptySet:
		return false
	case KindEmptyString:
		return true
	case KindAnyByte, KindByte, KindByteRange:
		return false
	case KindKleeneClosure:
		return true
	case KindConcatenation:
		return IsNullable(e.subs[0]) && IsNullable(e.subs[1])
	case KindComplement:
		return !IsNullable(e.subs[0])
	case KindConjunction:
		for _, sub := range e.subs {
			if !IsNullable(sub) {
				return false
			}
		}
		return true
	case KindDisjunction:
		for _, sub := range e.subs {
			if IsNullable(sub) {
				return true
			}
		}
		return false
	case KindGroup:
		return IsNullable(e.subs[0])
	}
	panic("expr: IsNullable: unreachable kind " + e.kind.String())
}
