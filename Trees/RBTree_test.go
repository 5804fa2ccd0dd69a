package Trees

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNode[T Number](t *testing.T, n *Node[T], v T, c Color) {
	t.Helper()
	require.NotNil(t, n)
	assert.Equal(t, v, n.Value())
	assert.Equal(t, c, n.Color(), "color of %v", v)
}

func TestRBTree_ThreeNodes(t *testing.T) {
	tree, err := RBTreeFrom([]int{15, 5, 1})
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	assert.True(t, tree.IsBalanced())
	assert.Equal(t, uint(3), tree.Size())

	root := tree.Root()
	assertNode(t, root, 5, Black)
	assert.Nil(t, root.Parent())
	assertNode(t, root.Left(), 1, Red)
	assert.True(t, root.Left().IsLeaf())
	assertNode(t, root.Right(), 15, Red)
	assert.True(t, root.Right().IsLeaf())
}

func TestRBTree_NineNodes(t *testing.T) {
	tree := NewRBTree[int]()
	for _, v := range []int{8, 5, 15, 12, 19, 9, 13, 23, 10} {
		require.NoError(t, tree.Insert(v))
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, uint(9), tree.Size())
	assert.True(t, tree.IsBalanced())

	root := tree.Root()
	assertNode(t, root, 12, Black)

	l := root.Left()
	assertNode(t, l, 8, Red)
	assertNode(t, l.Left(), 5, Black)
	assert.True(t, l.Left().IsLeaf())
	assertNode(t, l.Right(), 9, Black)
	assert.Nil(t, l.Right().Left())
	assertNode(t, l.Right().Right(), 10, Red)
	assert.True(t, l.Right().Right().IsLeaf())

	r := root.Right()
	assertNode(t, r, 15, Red)
	assertNode(t, r.Left(), 13, Black)
	assert.True(t, r.Left().IsLeaf())
	assertNode(t, r.Right(), 19, Black)
	assert.Nil(t, r.Right().Left())
	assertNode(t, r.Right().Right(), 23, Red)
	assert.True(t, r.Right().Right().IsLeaf())

	h, ok := tree.BlackHeight()
	assert.True(t, ok)
	assert.Equal(t, 2, h)
	assert.Equal(t, []int{5, 8, 9, 10, 12, 13, 15, 19, 23}, tree.Values())
}

func TestRBTree_RemoveRoot(t *testing.T) {
	tree, err := RBTreeFrom([]int{8, 5, 15, 12, 19, 9, 13, 23, 10})
	require.NoError(t, err)
	// 12 has a right child, so its successor 13, a black leaf, is unlinked.
	require.NoError(t, tree.Remove(12))
	require.NoError(t, tree.Check())
	assert.Equal(t, 13, tree.Root().Value())
	assert.Equal(t, []int{5, 8, 9, 10, 13, 15, 19, 23}, tree.Values())
	for _, v := range []int{13, 8, 23, 5, 15, 10, 9, 19} {
		require.NoError(t, tree.Remove(v))
		require.NoError(t, tree.Check(), "after removing %d", v)
	}
	assert.True(t, tree.Empty())
	assert.Equal(t, uint(0), tree.Size())
}

func TestRBTree_RemoveRedLeaf(t *testing.T) {
	tree, err := RBTreeFrom([]int{15, 5, 1})
	require.NoError(t, err)
	require.NoError(t, tree.Remove(1))
	require.NoError(t, tree.Check())
	assertNode(t, tree.Root(), 5, Black)
	assert.Nil(t, tree.Root().Left())
	assertNode(t, tree.Root().Right(), 15, Red)
}

func TestRBTree_RemoveMissing(t *testing.T) {
	log, hook := test.NewNullLogger()
	tree, err := RBTreeFrom([]int{8, 5, 15, 12, 19, 9, 13, 23, 10}, WithLogger(log), WithName("nine"))
	require.NoError(t, err)
	before := tree.LevelNodes()
	colors := make(map[int]Color)
	for _, l := range before {
		for _, n := range l {
			colors[n.Value()] = n.Color()
		}
	}

	err = tree.Remove(11)
	var nf *NotFoundError[int]
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 11, nf.V)
	assert.Equal(t, uint(9), tree.Size())
	assert.Equal(t, [][]int{{12}, {8, 15}, {5, 9, 13, 19}, {10, 23}}, tree.Levels())
	for _, l := range tree.LevelNodes() {
		for _, n := range l {
			assert.Equal(t, colors[n.Value()], n.Color())
		}
	}

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "remove", hook.LastEntry().Data["op"])
	assert.Equal(t, 11, hook.LastEntry().Data["value"])
	assert.Equal(t, "nine", hook.LastEntry().Data["tree"])
}

func TestRBTree_Duplicate(t *testing.T) {
	log, hook := test.NewNullLogger()
	tree := NewRBTree[int](WithLogger(log))
	require.NoError(t, tree.Insert(3))
	require.NoError(t, tree.Insert(4))
	err := tree.Insert(3)
	var dup *DuplicateValueError[int]
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 3, dup.V)
	assert.Equal(t, uint(2), tree.Size())
	assert.NoError(t, tree.Check())
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "insert", hook.LastEntry().Data["op"])
}

func TestRBTree_FromSkipsDuplicates(t *testing.T) {
	tree, err := RBTreeFrom([]int{4, 2, 4, 6, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, tree.Values())

	empty, err := RBTreeFrom[int](nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestRBTree_InvalidValues(t *testing.T) {
	for _, v := range []float64{nan(), inf(1), inf(-1)} {
		tree, err := RBTreeFrom([]float64{1, 2, v, 3})
		var inv *InvalidValueError[float64]
		require.ErrorAs(t, err, &inv)
		assert.Nil(t, tree)

		tree = NewRBTree[float64]()
		require.NoError(t, tree.Insert(1))
		require.ErrorAs(t, tree.Insert(v), &inv)
		assert.Equal(t, "insert", inv.Op)
		require.ErrorAs(t, tree.Remove(v), &inv)
		assert.Equal(t, "remove", inv.Op)
		assert.Equal(t, uint(1), tree.Size())
		assert.False(t, tree.Has(v))
	}
}

func TestRBTree_Empty(t *testing.T) {
	tree := NewRBTree[int64]()
	var empty *EmptyTreeError
	_, err := tree.Minimum()
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "minimum", empty.Op)
	_, err = tree.Maximum()
	require.ErrorAs(t, err, &empty)
	require.ErrorAs(t, tree.Remove(1), &empty)
	assert.Nil(t, tree.Search(1))
	assert.True(t, tree.IsBalanced())
	assert.NoError(t, tree.Check())
	assert.Empty(t, tree.Values())
	_, ok := tree.InOrder()()
	assert.False(t, ok)
}

func TestRBTree_MinMax(t *testing.T) {
	tree, err := RBTreeFrom([]uint8{200, 3, 77, 255, 0, 19})
	require.NoError(t, err)
	mn, err := tree.Minimum()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), mn)
	mx, err := tree.Maximum()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), mx)
	assert.True(t, tree.Has(77))
	assert.False(t, tree.Has(78))
}

func TestRBTree_WithCheck(t *testing.T) {
	tree := NewRBTree[int](WithCheck(true))
	for i := range 300 {
		require.NotPanics(t, func() {
			tree.Insert((i * 37) % 301)
		})
	}
	for i := range 150 {
		require.NotPanics(t, func() {
			tree.Remove((i * 37) % 301)
		})
	}
	assert.Equal(t, uint(150), tree.Size())
}

func TestRBTree_CheckDetectsCorruption(t *testing.T) {
	tree, err := RBTreeFrom([]int{8, 5, 15, 12, 19, 9, 13, 23, 10})
	require.NoError(t, err)

	tree.root.c = Red
	var inv *InvariantError[int]
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropRootBlack, inv.Property)
	tree.root.c = Black

	tree.root.l.c = Black
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropBlackHeight, inv.Property)
	assert.False(t, tree.IsBalanced())
	tree.root.l.c = Red

	tree.root.l.r.c = Red // 9, parent 8 is red
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropRedRed, inv.Property)
	tree.root.l.r.c = Black

	tree.root.r.l.v = 7
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropOrder, inv.Property)
	assert.True(t, tree.Corrupt())
	tree.root.r.l.v = 13

	tree.root.r.r.p = tree.root
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropParent, inv.Property)
	tree.root.r.r.p = tree.root.r

	tree.sz++
	require.ErrorAs(t, tree.Check(), &inv)
	assert.Equal(t, PropSize, inv.Property)
	tree.sz--

	assert.False(t, tree.Corrupt())
}

func TestRBTree_NeighboursOfInvalid(t *testing.T) {
	tree, err := RBTreeFrom([]float64{-2, 0.5, 7})
	require.NoError(t, err)
	for _, v := range []float64{nan(), inf(1), inf(-1)} {
		_, ok := tree.Predecessor(v)
		assert.False(t, ok, "predecessor of %v", v)
		_, ok = tree.Successor(v)
		assert.False(t, ok, "successor of %v", v)
	}
	p, ok := tree.Predecessor(0.5)
	assert.True(t, ok)
	assert.Equal(t, -2.0, p)
}

func TestRBTreeFrom_WithCheck(t *testing.T) {
	vs := make([]int, 0, 500)
	for i := range 500 {
		vs = append(vs, (i*131)%499)
	}
	require.NotPanics(t, func() {
		tree, err := RBTreeFrom(vs, WithCheck(true))
		require.NoError(t, err)
		assert.Equal(t, uint(499), tree.Size())
	})
	require.NotPanics(t, func() {
		tree, err := BSTreeFrom(vs[:50], WithCheck(true))
		require.NoError(t, err)
		assert.Equal(t, uint(50), tree.Size())
	})
}
