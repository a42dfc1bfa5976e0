package automaton

// offsets is a capture offset vector: index 2k and 2k+1 hold the start and
// end byte position of group k, or -1 if the group has not participated.
//
// This mirrors a flattened, sentinel-valued slot layout: "-1 means not
// set", one flat []int rather than a [][2]int of pointers. But each TNFA
// path owns its own small vector instead of sharing rows of one big
// per-state table, since a TNFA path's capture state is carried on the
// path, not pinned to a state id.
type offsets []int

// newOffsets returns an offsets vector of length 2*numGroups, every slot
// unset.
func newOffsets(numGroups int) offsets {
	v := make(offsets, 2*numGroups)
	for i := range v {
		v[i] = -1
	}
	return v
}

// clone returns an independent copy of v.
func (v offsets) clone() offsets {
	out := make(offsets, len(v))
	copy(out, v)
	return out
}
