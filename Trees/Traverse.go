package Trees

import (
	"github.com/g-m-twostay/go-trees/Queues"
)

// Height is the number of edges on the longest path from the root down to a
// leaf. 0 for both an empty tree and a single node.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Height() int {
	h := 0
	u.levels(func(d int, _ *Node[T]) {
		h = d
	})
	return h
}

// Count the nodes reachable from the root. Equals Size() unless the tree is corrupt.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Count() uint {
	c := uint(0)
	u.preOrder(func(*Node[T]) {
		c++
	})
	return c
}

// Levels returns the values of the tree level by level, left to right.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Levels() [][]T {
	var ls [][]T
	u.levels(func(d int, n *Node[T]) {
		if d == len(ls) {
			ls = append(ls, nil)
		}
		ls[d] = append(ls[d], n.v)
	})
	return ls
}

// LevelNodes is Levels with the nodes themselves, for callers that need colors.
func (u *BSTree[T]) LevelNodes() [][]*Node[T] {
	var ls [][]*Node[T]
	u.levels(func(d int, n *Node[T]) {
		if d == len(ls) {
			ls = append(ls, nil)
		}
		ls[d] = append(ls[d], n)
	})
	return ls
}

// PreOrder values, node before its children.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrder() []T {
	vs := make([]T, 0, u.sz)
	u.preOrder(func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// PostOrder values, children before their node.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrder() []T {
	vs := make([]T, 0, u.sz)
	var last *Node[T]
	st := make([]*Node[T], 0, 16)
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
		} else if top := st[len(st)-1]; top.r != nil && top.r != last {
			cur = top.r
		} else {
			vs = append(vs, top.v)
			last = top
			st = st[:len(st)-1]
		}
	}
	return vs
}

func (u *BSTree[T]) preOrder(f func(*Node[T])) {
	if u.root == nil {
		return
	}
	st := make([]*Node[T], 1, 16)
	st[0] = u.root
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		f(n)
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
	}
}

// levels is a breadth first walk calling f with the depth of each node.
func (u *BSTree[T]) levels(f func(int, *Node[T])) {
	if u.root == nil {
		return
	}
	type item struct {
		n *Node[T]
		d int
	}
	q := Queues.MakeArrayQueue[item](16)
	q.Push(item{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		f(it.d, it.n)
		if it.n.l != nil {
			q.Push(item{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(item{it.n.r, it.d + 1})
		}
	}
}
