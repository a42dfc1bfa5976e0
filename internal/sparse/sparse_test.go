package sparse

import "testing"

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSparseSet_SizeMatchesLen(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	if s.Size() != s.Len() {
		t.Errorf("Size() = %d, Len() = %d, want equal", s.Size(), s.Len())
	}
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSparseSet_Remove(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after remove")
	}
	if s.Len() != 2 {
		t.Errorf("len should be 2 after remove, got %d", s.Len())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}
}

func TestSparseSet_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Remove(5)
	if s.Len() != 1 || !s.Contains(1) {
		t.Error("removing an absent value should not disturb the set")
	}
}

func TestSparseSet_ClearPreservesCapacity(t *testing.T) {
	s := NewSparseSet(100)
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	s.Clear()

	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	if s.Len() != 50 {
		t.Errorf("len should be 50, got %d", s.Len())
	}
}

func TestSparseSet_CrossValidation(t *testing.T) {
	// Stale entries left behind in sparse after Clear must not cause false
	// positives once size has been reset to 0.
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not contain old values")
	}

	s.Insert(3)
	if !s.Contains(3) {
		t.Error("should contain 3")
	}
	if s.Contains(5) || s.Contains(10) {
		t.Error("should not contain old values")
	}
}

func TestSparseSet_ContainsOutOfRange(t *testing.T) {
	s := NewSparseSet(10)
	if s.Contains(10) {
		t.Error("value at or beyond capacity should never be contained")
	}
}

func TestSparseSet_Iter(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)

	var seen []uint32
	s.Iter(func(v uint32) { seen = append(seen, v) })
	if len(seen) != 3 {
		t.Fatalf("Iter visited %d values, want 3", len(seen))
	}
	for _, want := range []uint32{3, 1, 2} {
		found := false
		for _, v := range seen {
			if v == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Iter never visited %d", want)
		}
	}
}

func BenchmarkSparseSet_Insert(b *testing.B) {
	s := NewSparseSet(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for j := uint32(0); j < 100; j++ {
			s.Insert(j)
		}
	}
}

func BenchmarkSparseSet_Contains(b *testing.B) {
	s := NewSparseSet(1000)
	for j := uint32(0); j < 100; j++ {
		s.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < 100; j++ {
			s.Contains(j)
		}
	}
}
