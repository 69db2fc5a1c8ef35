// SPDX-License-Identifier: EPL-2.0

package ring

import (
	"slices"
	"testing"
)

func TestFixed_PushEvictsOldest(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2, 3})

	for i, want := range []int{0, 1, 2, 3, 4} {
		if got := rb.Push(4 + i); got != want {
			t.Errorf("Push(%d) = %d, want %d", 4+i, got, want)
		}
		if rb.Len() != 4 {
			t.Fatalf("Len() = %d after push, want 4", rb.Len())
		}
	}

	got := []int{rb.Get(0), rb.Get(1), rb.Get(2), rb.Get(3)}
	if !slices.Equal(got, []int{5, 6, 7, 8}) {
		t.Errorf("logical contents = %v, want [5 6 7 8]", got)
	}
}

func TestFixed_LenInvariant(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 7; size++ {
		rb := FixedFrom(Alloc[int](size))
		for i := range 100 {
			rb.Push(i)
			if rb.Len() != size {
				t.Fatalf("size %d: Len() = %d after %d pushes", size, rb.Len(), i+1)
			}
			// The newest element is always at logical index Len()-1.
			if got := rb.Get(size - 1); got != i {
				t.Fatalf("size %d: newest = %d, want %d", size, got, i)
			}
			// The oldest element is always the one pushed Len()-1 times ago.
			if want := i - size + 1; want >= 0 && rb.Get(0) != want {
				t.Fatalf("size %d: oldest = %d, want %d", size, rb.Get(0), want)
			}
		}
	}
}

func TestFixed_GetWraps(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2})

	tests := []struct {
		index int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 0}, {4, 1}, {5, 2}, {300, 0},
	}

	for _, tt := range tests {
		if got := rb.Get(tt.index); got != tt.want {
			t.Errorf("Get(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestFixed_SetAndRef(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2, 3})
	rb.Push(9) // logical: 1 2 3 9

	rb.Set(5, 50) // wraps to logical 1
	*rb.Ref(0) = 10

	if got := slices.Collect(rb.Values()); !slices.Equal(got, []int{10, 50, 3, 9}) {
		t.Errorf("Values() = %v, want [10 50 3 9]", got)
	}
}

func TestFixed_SetFirst(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2, 3})
	if rb.Get(0) != 0 {
		t.Fatalf("Get(0) = %d, want 0", rb.Get(0))
	}

	rb.SetFirst(2)
	if rb.Get(0) != 2 {
		t.Errorf("after SetFirst(2): Get(0) = %d, want 2", rb.Get(0))
	}

	rb.SetFirst(5)
	if rb.Get(0) != 1 {
		t.Errorf("after SetFirst(5): Get(0) = %d, want 1", rb.Get(0))
	}

	for _, tt := range []struct{ first, want int }{{-1, 3}, {-4, 0}, {-6, 2}} {
		rb.SetFirst(tt.first)
		if first, _ := rb.RawParts(); first != tt.want {
			t.Fatalf("after SetFirst(%d): first = %d, want %d", tt.first, first, tt.want)
		}
	}

	// The buffer stays usable after a negative SetFirst.
	rb.SetFirst(-1)
	if old := rb.Push(9); old != 3 {
		t.Errorf("Push(9) evicted %d, want 3", old)
	}
	if got := slices.Collect(rb.Values()); !slices.Equal(got, []int{0, 1, 2, 9}) {
		t.Errorf("Values() = %v, want [0 1 2 9]", got)
	}
}

func TestFixed_NegativeIndex(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2, 3})
	rb.Push(4) // logical: 1 2 3 4

	tests := []struct {
		index, want int
	}{
		{-1, 4}, {-2, 3}, {-4, 1}, {-5, 4}, {-400, 1},
	}
	for _, tt := range tests {
		if got := rb.Get(tt.index); got != tt.want {
			t.Errorf("Get(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}

	rb.Set(-1, 40)
	*rb.Ref(-4) = 10
	if got := slices.Collect(rb.Values()); !slices.Equal(got, []int{10, 2, 3, 40}) {
		t.Errorf("Values() = %v, want [10 2 3 40]", got)
	}
}

func TestFixed_Slices(t *testing.T) {
	t.Parallel()

	rb := FixedFrom(Alloc[int](4))

	front, back := rb.Slices()
	if !slices.Equal(front, []int{0, 0, 0, 0}) || len(back) != 0 {
		t.Fatalf("Slices() = %v, %v, want [0 0 0 0], []", front, back)
	}

	rb.Push(1)
	rb.Push(2)
	front, back = rb.Slices()
	if !slices.Equal(front, []int{0, 0}) || !slices.Equal(back, []int{1, 2}) {
		t.Errorf("Slices() = %v, %v, want [0 0], [1 2]", front, back)
	}

	rb.Push(3)
	rb.Push(4)
	front, back = rb.Slices()
	if !slices.Equal(front, []int{1, 2, 3, 4}) || len(back) != 0 {
		t.Errorf("Slices() = %v, %v, want [1 2 3 4], []", front, back)
	}
}

func TestFixed_IterationOrder(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]int{0, 1, 2, 3, 4})
	for i := 5; i < 8; i++ {
		rb.Push(i)
	}

	want := []int{3, 4, 5, 6, 7}
	if got := slices.Collect(rb.Values()); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	for i, v := range rb.All() {
		if v != rb.Get(i) {
			t.Errorf("All() yielded (%d, %d), Get(%d) = %d", i, v, i, rb.Get(i))
		}
	}

	var looped []int
	for v := range rb.Loop() {
		looped = append(looped, v)
		if len(looped) == 12 {
			break
		}
	}
	wantLoop := []int{3, 4, 5, 6, 7, 3, 4, 5, 6, 7, 3, 4}
	if !slices.Equal(looped, wantLoop) {
		t.Errorf("Loop() = %v, want %v", looped, wantLoop)
	}
}

func TestFixed_Fill(t *testing.T) {
	t.Parallel()

	rb := NewFixed([]float32{1, 2, 3})
	rb.Push(4)
	rb.Fill(0)

	for i, v := range rb.All() {
		if v != 0 {
			t.Errorf("element %d = %v after Fill(0)", i, v)
		}
	}
}

func TestFixed_RawParts(t *testing.T) {
	t.Parallel()

	rb := FixedFromRawParts(2, []int{10, 11, 12})
	if rb.Get(0) != 12 || rb.Get(1) != 10 {
		t.Errorf("Get(0), Get(1) = %d, %d, want 12, 10", rb.Get(0), rb.Get(1))
	}

	rb.Push(13)
	first, data := rb.RawParts()
	if first != 0 || !slices.Equal(data, []int{10, 11, 13}) {
		t.Errorf("RawParts() = %d, %v, want 0, [10 11 13]", first, data)
	}

	unchecked := FixedFromRawPartsUnchecked(1, data)
	if unchecked.Get(0) != 11 {
		t.Errorf("unchecked Get(0) = %d, want 11", unchecked.Get(0))
	}
}

func TestFixed_BorrowedStorageIsAliased(t *testing.T) {
	t.Parallel()

	var backing [3]int
	rb := FixedFrom(Buffer[int](backing[:]))
	rb.Push(7)

	if backing[0] != 7 {
		t.Errorf("backing[0] = %d, want 7", backing[0])
	}
}

func TestFixed_InvalidConstructionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty data", func() { NewFixed([]int{}) }},
		{"nil data", func() { NewFixed[int](nil) }},
		{"first equals len", func() { FixedFromRawParts(3, []int{1, 2, 3}) }},
		{"negative first", func() { FixedFromRawParts(-1, []int{1, 2, 3}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestFixed_PushZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	rb := FixedFrom(Alloc[[2]float32](64))
	frame := [2]float32{0.5, -0.5}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = rb.Push(frame)
	})

	if allocs > 0 {
		t.Errorf("Fixed.Push allocated %v times, want 0", allocs)
	}
}

func BenchmarkFixed_Push(b *testing.B) {
	rb := FixedFrom(Alloc[float32](1024))

	b.ReportAllocs()
	b.ResetTimer()

	var v float32
	for b.Loop() {
		_ = rb.Push(v)
		v++
	}
}
