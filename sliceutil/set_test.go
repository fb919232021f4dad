package sliceutil_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/sliceutil"
)

type User struct {
	ID   int
	Name string
}

func TestUniqueLast(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"KeepsLastOccurrence", []int{1, 2, 1, 3, 2}, []int{1, 3, 2}},
		{"NoDuplicates", []int{4, 5, 6}, []int{4, 5, 6}},
		{"AllSame", []int{7, 7, 7}, []int{7}},
		{"Empty", []int{}, []int{}},
		{"Nil", nil, []int{}},
		{"TrailingRepeat", []int{1, 2, 3, 1}, []int{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.UniqueLast(tt.input))
		})
	}
}

func TestUniqueLast_DoesNotMutate(t *testing.T) {
	input := []string{"a", "b", "a"}
	orig := slices.Clone(input)

	got := sliceutil.UniqueLast(input)

	assert.Equal(t, []string{"b", "a"}, got)
	assert.Equal(t, orig, input)
}

func TestUniqueLastBy(t *testing.T) {
	u1 := User{1, "Alice"}
	u2 := User{2, "Bob"}
	u1b := User{1, "Alicia"}

	got := sliceutil.UniqueLastBy([]User{u1, u2, u1b}, func(u User) int { return u.ID })
	assert.Equal(t, []User{u2, u1b}, got)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"Normal", []int{1, 2, 3}, []int{2, 4}, []int{1, 3, 2, 4}},
		{"EmptyA", []int{}, []int{1, 2}, []int{1, 2}},
		{"EmptyB", []int{1, 2}, []int{}, []int{1, 2}},
		{"BothEmpty", []int{}, []int{}, []int{}},
		{"DuplicatesInAKept", []int{1, 1, 2}, []int{2}, []int{1, 1, 2}},
		{"DuplicatesInBKept", []int{1, 2}, []int{3, 3}, []int{1, 2, 3, 3}},
		{"ASubsetOfB", []int{1, 2}, []int{2, 1}, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Update(tt.a, tt.b))

			eq := func(x, y int) bool { return x == y }
			assert.Equal(t, tt.want, sliceutil.UpdateFunc(tt.a, tt.b, eq))
		})
	}
}

func TestUpdate_TailIsB(t *testing.T) {
	a := []string{"x", "y", "z", "y"}
	b := []string{"y", "w"}

	got := sliceutil.Update(a, b)

	assert.Equal(t, b, got[len(got)-len(b):])
	for _, v := range got[:len(got)-len(b)] {
		assert.NotContains(t, b, v)
	}
}

func TestDifferenceUpdate(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"Normal", []int{1, 2, 3}, []int{2, 3, 4}, []int{1}},
		{"NoOverlap", []int{1, 2}, []int{3, 4}, []int{1, 2}},
		{"EmptyA", []int{}, []int{1, 2}, []int{}},
		{"EmptyB", []int{1, 2}, []int{}, []int{1, 2}},
		{"DuplicatesInAKept", []int{1, 2, 1, 3}, []int{3}, []int{1, 2, 1}},
		{"DuplicatesInB", []int{1, 2}, []int{2, 2, 3}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.DifferenceUpdate(tt.a, tt.b))
		})
	}
}

func TestDifferenceUpdateFunc(t *testing.T) {
	// Slices are not comparable, so this exercises the equality-scan path.
	a := [][]int{{1}, {2, 3}, {4}}
	b := [][]int{{2, 3}}

	got := sliceutil.DifferenceUpdateFunc(a, b, slices.Equal[[]int])
	assert.Equal(t, [][]int{{1}, {4}}, got)

	merged := sliceutil.UpdateFunc(a, [][]int{{4}, {5}}, slices.Equal[[]int])
	assert.Equal(t, [][]int{{1}, {2, 3}, {4}, {5}}, merged)
}
