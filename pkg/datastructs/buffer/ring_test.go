package buffer

import (
	"slices"
	"testing"
)

// =============================================================================
// Method: NewRing()
// =============================================================================

func TestRing_NewRing(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		wantCap int
	}{
		{"exact_3", 3, 3},
		{"not_rounded_5", 5, 5},
		{"one", 1, 1},
		{"zero", 0, 0},
		{"negative_clamped", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing[int](tt.cap)
			if r.Cap() != tt.wantCap {
				t.Errorf("NewRing(%d) Cap = %d; want %d", tt.cap, r.Cap(), tt.wantCap)
			}
			if r.Len() != 0 {
				t.Errorf("NewRing Len = %d; want 0", r.Len())
			}
			if !r.IsEmpty() {
				t.Error("new ring should be empty")
			}
			if r.Slice() != nil {
				t.Error("Slice() on new ring should be nil")
			}
			if r.Available() != tt.wantCap {
				t.Errorf("Available() = %d; want %d", r.Available(), tt.wantCap)
			}
		})
	}
}

func TestRing_ZeroCapacity(t *testing.T) {
	r := NewRing[int](0)
	if !r.IsFull() {
		t.Error("zero capacity ring should report full")
	}
	if r.PushBack(1) {
		t.Error("PushBack on zero capacity ring should fail")
	}
}

// =============================================================================
// Method: PushBack()
// =============================================================================

func TestRing_PushBack(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		items    []int
		wantOk   []bool
	}{
		{"single_item", 3, []int{42}, []bool{true}},
		{"fill_to_capacity", 3, []int{1, 2, 3}, []bool{true, true, true}},
		{"exceed_capacity", 3, []int{1, 2, 3, 4}, []bool{true, true, true, false}},
		{"zero_value", 2, []int{0, 0}, []bool{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing[int](tt.capacity)
			for i, item := range tt.items {
				if got := r.PushBack(item); got != tt.wantOk[i] {
					t.Errorf("PushBack(%d) = %v; want %v", item, got, tt.wantOk[i])
				}
			}
		})
	}
}

func TestRing_PushBack_FullLeavesContent(t *testing.T) {
	r := NewRing[int](2)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)

	if got := r.Slice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Slice() = %v; want [1 2]", got)
	}
}

// =============================================================================
// Method: PopFront() / PopBack()
// =============================================================================

func TestRing_PopFront(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := NewRing[int](3)
		v, ok := r.PopFront()
		if ok || v != 0 {
			t.Errorf("PopFront() = (%d, %v); want (0, false)", v, ok)
		}
	})

	t.Run("fifo_order", func(t *testing.T) {
		r := NewRing[int](3)
		for i := 1; i <= 3; i++ {
			r.PushBack(i)
		}
		for i := 1; i <= 3; i++ {
			v, ok := r.PopFront()
			if !ok || v != i {
				t.Errorf("PopFront() = (%d, %v); want (%d, true)", v, ok, i)
			}
		}
		if !r.IsEmpty() {
			t.Error("ring should be empty after draining")
		}
	})
}

func TestRing_PopBack(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := NewRing[string](3)
		v, ok := r.PopBack()
		if ok || v != "" {
			t.Errorf("PopBack() = (%q, %v); want (\"\", false)", v, ok)
		}
	})

	t.Run("lifo_order", func(t *testing.T) {
		r := NewRing[int](3)
		for i := 1; i <= 3; i++ {
			r.PushBack(i)
		}
		for i := 3; i >= 1; i-- {
			v, ok := r.PopBack()
			if !ok || v != i {
				t.Errorf("PopBack() = (%d, %v); want (%d, true)", v, ok, i)
			}
		}
	})
}

func TestRing_WrapAround(t *testing.T) {
	r := NewRing[int](3)
	// { 1, 2, 3 }
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	// { 2, 3 }
	r.PopFront()
	// { 2, 3, 4 } with 4 stored at index 0
	if !r.PushBack(4) {
		t.Fatal("PushBack after PopFront should succeed")
	}

	if got := r.Slice(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("Slice() = %v; want [2 3 4]", got)
	}

	if v, _ := r.Front(); v != 2 {
		t.Errorf("Front() = %d; want 2", v)
	}
	if v, _ := r.Back(); v != 4 {
		t.Errorf("Back() = %d; want 4", v)
	}

	// PopBack across the wrapped boundary
	if v, ok := r.PopBack(); !ok || v != 4 {
		t.Errorf("PopBack() = (%d, %v); want (4, true)", v, ok)
	}
	if got := r.Slice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Slice() = %v; want [2 3]", got)
	}
}

func TestRing_FillDrainRefill(t *testing.T) {
	r := NewRing[int](4)

	for round := 0; round < 3; round++ {
		for i := 0; i < 4; i++ {
			if !r.PushBack(round*10 + i) {
				t.Fatalf("round %d: PushBack(%d) failed", round, i)
			}
		}
		if !r.IsFull() {
			t.Fatalf("round %d: ring should be full", round)
		}
		for i := 0; i < 4; i++ {
			v, ok := r.PopFront()
			if !ok || v != round*10+i {
				t.Errorf("round %d: PopFront() = (%d, %v); want (%d, true)", round, v, ok, round*10+i)
			}
		}
	}
}

// =============================================================================
// Method: Front() / Back()
// =============================================================================

func TestRing_Peek(t *testing.T) {
	r := NewRing[int](2)
	if _, ok := r.Front(); ok {
		t.Error("Front() on empty ring should fail")
	}
	if _, ok := r.Back(); ok {
		t.Error("Back() on empty ring should fail")
	}

	r.PushBack(7)
	f, _ := r.Front()
	b, _ := r.Back()
	if f != 7 || b != 7 {
		t.Errorf("Front/Back = %d/%d; want 7/7", f, b)
	}
	if r.Len() != 1 {
		t.Errorf("peek must not consume, Len = %d", r.Len())
	}
}

// =============================================================================
// Method: Slice() / Reset()
// =============================================================================

func TestRing_SliceIsCopy(t *testing.T) {
	r := NewRing[int](3)
	r.PushBack(1)
	r.PushBack(2)

	s := r.Slice()
	s[0] = 99

	if v, _ := r.Front(); v != 1 {
		t.Errorf("mutating Slice() result changed ring front to %d", v)
	}
}

func TestRing_Reset(t *testing.T) {
	r := NewRing[int](3)
	r.PushBack(1)
	r.PushBack(2)
	r.PopFront()
	r.Reset()

	if !r.IsEmpty() || r.Len() != 0 {
		t.Error("ring should be empty after Reset")
	}
	if r.Available() != 3 {
		t.Errorf("Available() = %d; want 3", r.Available())
	}
	r.PushBack(5)
	if got := r.Slice(); !slices.Equal(got, []int{5}) {
		t.Errorf("Slice() = %v; want [5]", got)
	}
}
