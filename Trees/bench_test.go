package Trees

import (
	"testing"
)

var (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

func BenchmarkRBTree_Insert(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewRBTree[int]()
		for _, v := range vs {
			tree.Insert(v)
		}
	}
}

func BenchmarkRBTree_InsertSorted(b *testing.B) {
	for range b.N {
		tree := NewRBTree[int]()
		for i := range bAddN {
			tree.Insert(i)
		}
	}
}

func BenchmarkBSTree_Insert(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewBSTree[int]()
		for _, v := range vs {
			tree.Insert(v)
		}
	}
}

func create(b *testing.B, vs []int) *RBTree[int] {
	b.Helper()
	tree, err := RBTreeFrom(vs)
	if err != nil {
		b.Fatal(err)
	}
	return tree
}

func BenchmarkRBTree_Remove(b *testing.B) {
	vs := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, vs)
		b.StartTimer()
		for _, v := range vs {
			tree.Remove(v)
		}
	}
}

var sideEff bool

func BenchmarkRBTree_Has(b *testing.B) {
	vs := rg.Perm(bAddN)
	tree := create(b, vs[:bQryN])
	b.ResetTimer()
	for range b.N {
		for _, v := range vs {
			sideEff = tree.Has(v)
		}
	}
}
