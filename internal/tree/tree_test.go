package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type insertCase struct {
	key     string
	success bool
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []insertCase
		post    func(t *testing.T, tr *Tree[string])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[string]) {
				assert.Nil(t, tr.root)
				assert.Equal(t, 0, tr.Len())
			},
		},
		{
			name:    "one",
			inserts: []insertCase{{key: "m", success: true}},
			post: func(t *testing.T, tr *Tree[string]) {
				require.NotNil(t, tr.root)
				assert.Equal(t, "m", tr.root.key)
				assert.Nil(t, tr.root.left)
				assert.Nil(t, tr.root.right)
				assert.Nil(t, tr.root.parent)
			},
		},
		{
			name: "one duplicate",
			inserts: []insertCase{
				{key: "m", success: true},
				{key: "m", success: false},
			},
			post: func(t *testing.T, tr *Tree[string]) {
				require.NotNil(t, tr.root)
				assert.Equal(t, "m", tr.root.key)
				assert.Nil(t, tr.root.left)
				assert.Nil(t, tr.root.right)
				assert.Equal(t, 1, tr.Len())
			},
		},
		{
			name: "left",
			inserts: []insertCase{
				{key: "m", success: true},
				{key: "a", success: true},
			},
			post: func(t *testing.T, tr *Tree[string]) {
				require.NotNil(t, tr.root.left)
				assert.Nil(t, tr.root.right)
				assert.Equal(t, "a", tr.root.left.key)
				assert.Equal(t, tr.root, tr.root.left.parent)
			},
		},
		{
			name: "right",
			inserts: []insertCase{
				{key: "m", success: true},
				{key: "z", success: true},
			},
			post: func(t *testing.T, tr *Tree[string]) {
				assert.Nil(t, tr.root.left)
				require.NotNil(t, tr.root.right)
				assert.Equal(t, "z", tr.root.right.key)
				assert.Equal(t, tr.root, tr.root.right.parent)
			},
		},
		{
			name: "byte-wise order puts upper case first",
			inserts: []insertCase{
				{key: "b", success: true},
				{key: "B", success: true},
			},
			post: func(t *testing.T, tr *Tree[string]) {
				require.NotNil(t, tr.root.left)
				assert.Equal(t, "B", tr.root.left.key)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[string]{}

			for _, k := range tt.inserts {
				assert.Equal(t, k.success, tr.Insert(k.key), "insert %q", k.key)
			}

			tt.post(t, &tr)
		})
	}
}

func TestTree_Contains(t *testing.T) {
	tr := Tree[int]{}
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(k)
	}

	for k := 1; k <= 7; k++ {
		assert.True(t, tr.Contains(k), "contains %d", k)
	}
	assert.False(t, tr.Contains(0))
	assert.False(t, tr.Contains(8))
}

func TestTree_InOrder(t *testing.T) {
	tr := Tree[int]{}
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(k)
	}

	var visited []int
	tr.InOrder(func(k int) bool {
		visited = append(visited, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 2, 3}, visited, "iteration stops once f returns false")

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.Keys())
}

func TestTree_Keys_empty(t *testing.T) {
	tr := Tree[string]{}
	assert.Empty(t, tr.Keys())
	assert.NotNil(t, tr.Keys())
}

func TestTree_Keys_degenerate(t *testing.T) {
	tr := Tree[int]{}
	for k := range 5 {
		tr.Insert(4 - k)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tr.Keys(), "a left spine is walked without recursion")
}

func TestTree_NaN(t *testing.T) {
	tr := Tree[float64]{}
	for _, k := range []float64{2, 1, 3} {
		tr.Insert(k)
	}
	assert.False(t, tr.Contains(math.NaN()), "NaN was never inserted")

	require.True(t, tr.Insert(math.NaN()))
	assert.False(t, tr.Insert(math.NaN()), "NaN is a single key")
	assert.True(t, tr.Contains(math.NaN()))
	assert.Equal(t, 4, tr.Len())

	keys := tr.Keys()
	require.Len(t, keys, 4)
	assert.True(t, math.IsNaN(keys[0]), "NaN sorts first")
	assert.Equal(t, []float64{1, 2, 3}, keys[1:])
}

func TestInOrderIterator(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		want    []int
	}{
		{name: "empty"},
		{name: "one", inserts: []int{1}, want: []int{1}},
		{name: "height=2", inserts: []int{4, 2, 6, 1, 3, 5, 7}, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "left spine", inserts: []int{3, 2, 1}, want: []int{1, 2, 3}},
		{name: "right spine", inserts: []int{1, 2, 3}, want: []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[int]{}
			for _, k := range tt.inserts {
				tr.Insert(k)
			}

			var got []int
			i := tr.InOrderIterator()
			for i.Next() {
				got = append(got, i.Item())
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, i.Next(), "exhausted iterator stays exhausted")
		})
	}
}
