package Trees

import (
	"math"

	"github.com/sirupsen/logrus"
)

// BSTree is a binary search tree with no repeated values. It doesn't
// balance itself, so D, the depth of the tree, is O(n) in the worst case.
// The node links are the only storage: l and r own the children, p points
// back to the parent. BSTree also owns the rotations that RBTree balances
// with.
// The zero value isn't usable, create it with NewBSTree or BSTreeFrom.
type BSTree[T Number] struct {
	root *Node[T]
	sz   uint
	cfg  config
}

// splice describes the node physically unlinked by remove, and the slot it
// left behind. child took the slot, it may be nil, so the slot is also
// given as parent and side. parent is nil when the slot is the root.
type splice[T Number] struct {
	removed *Node[T]
	child   *Node[T]
	parent  *Node[T]
	left    bool
}

// NewBSTree returns an empty BSTree.
func NewBSTree[T Number](opts ...Option) *BSTree[T] {
	return &BSTree[T]{cfg: newConfig("bst", opts)}
}

// BSTreeFrom inserts vs in order into a new BSTree. Duplicates are skipped
// with a warning; an invalid value aborts and returns its *InvalidValueError.
// Time: O(n*D)
func BSTreeFrom[T Number](vs []T, opts ...Option) (*BSTree[T], error) {
	u := NewBSTree[T](opts...)
	for _, v := range vs {
		if _, err := u.insert(v); err != nil {
			if _, dup := err.(*DuplicateValueError[T]); !dup {
				return nil, err
			}
		} else if u.cfg.check {
			mustHold(u.Check())
		}
	}
	return u, nil
}

func finite[T Number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (u *BSTree[T]) warn(op string, v T, msg string) {
	u.cfg.log.WithFields(logrus.Fields{"op": op, "value": v}).Warn(msg)
}

// Root of the tree, nil if empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear drops every node.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Search [OrderedTree.Search]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Search(v T) *Node[T] {
	cur := u.root
	for cur != nil {
		if v < cur.v {
			if cur.l == nil {
				break
			}
			cur = cur.l
		} else if v == cur.v {
			break
		} else {
			if cur.r == nil {
				break
			}
			cur = cur.r
		}
	}
	return cur
}

// Has [OrderedTree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	n := u.Search(v)
	return n != nil && n.v == v
}

// insert attaches a new leaf holding v and returns it. Nothing is touched
// when an error is returned.
// Time: O(D)
func (u *BSTree[T]) insert(v T) (*Node[T], error) {
	if !finite(v) {
		return nil, &InvalidValueError[T]{"insert", v}
	}
	n := &Node[T]{v: v}
	if cur := u.Search(v); cur == nil {
		u.root = n
	} else if v == cur.v {
		u.warn("insert", v, "value already exists")
		return nil, &DuplicateValueError[T]{v}
	} else if v < cur.v {
		cur.setLeft(n)
	} else {
		cur.setRight(n)
	}
	u.sz++
	return n, nil
}

// Insert [OrderedTree.Insert]
// Time: O(D)
func (u *BSTree[T]) Insert(v T) error {
	_, err := u.insert(v)
	if err == nil && u.cfg.check {
		mustHold(u.Check())
	}
	return err
}

// remove v. The node holding v takes the value of its replacement, the
// in-order successor if it has a right child, else the in-order
// predecessor if it has a left child, else itself. The replacement has at
// most one child, and it is the node that gets unlinked.
// Time: O(D)
func (u *BSTree[T]) remove(v T) (splice[T], error) {
	if u.root == nil {
		return splice[T]{}, &EmptyTreeError{"remove"}
	} else if !finite(v) {
		return splice[T]{}, &InvalidValueError[T]{"remove", v}
	}
	n := u.Search(v)
	if n.v != v {
		u.warn("remove", v, "value not found")
		return splice[T]{parent: n}, &NotFoundError[T]{v}
	}
	rep := n
	if n.r != nil {
		rep = minNode(n.r)
	} else if n.l != nil {
		rep = maxNode(n.l)
	}
	n.v = rep.v
	s := splice[T]{removed: rep, child: rep.l, parent: rep.p}
	if s.child == nil {
		s.child = rep.r
	}
	if rep.p != nil {
		s.left = rep.isLeft()
	}
	u.replaceChild(rep.p, rep, s.child)
	rep.l, rep.r, rep.p = nil, nil, nil
	u.sz--
	return s, nil
}

// Remove [OrderedTree.Remove]
// Time: O(D)
func (u *BSTree[T]) Remove(v T) error {
	_, err := u.remove(v)
	if err == nil && u.cfg.check {
		mustHold(u.Check())
	}
	return err
}

// Minimum [OrderedTree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"minimum"}
	}
	return minNode(u.root).v, nil
}

// Maximum [OrderedTree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"maximum"}
	}
	return maxNode(u.root).v, nil
}

// Predecessor [OrderedTree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	if !finite(v) {
		return *new(T), false
	}
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [OrderedTree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	if !finite(v) {
		return *new(T), false
	}
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// InOrder [OrderedTree.InOrder]
// It walks the parent links, so the tree isn't modified during iteration.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var cur *Node[T]
	if u.root != nil {
		cur = minNode(u.root)
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = next(cur)
		return
	}
}

// Values [OrderedTree.Values]
// Time: O(n)
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for f := u.InOrder(); ; {
		v, ok := f()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Check [OrderedTree.Check]. Verifies ordering, parent links and size.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Check() error {
	return checkLinks(u.root, u.sz)
}

// Corrupt [OrderedTree.Corrupt]
func (u *BSTree[T]) Corrupt() bool {
	return u.Check() != nil
}

// replaceChild puts c in the slot of old under p, or makes c the root when
// p is nil. c may be nil.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) replaceChild(p, old, c *Node[T]) {
	if p == nil {
		u.root = c
		if c != nil {
			c.p = nil
		}
	} else if p.l == old {
		p.setLeft(c)
	} else {
		p.setRight(c)
	}
}

// rotateLeft x. y=x.r takes the place of x, x.r becomes y.l, and y.l
// becomes x. Returns y, the new root of the subtree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) rotateLeft(x *Node[T]) *Node[T] {
	y := x.r
	if y == nil {
		panic(&RotationError[T]{"rotate left", x.v})
	}
	u.replaceChild(x.p, x, y)
	x.setRight(y.l)
	y.setLeft(x)
	return y
}

// rotateRight is the mirror image of rotateLeft.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) rotateRight(x *Node[T]) *Node[T] {
	y := x.l
	if y == nil {
		panic(&RotationError[T]{"rotate right", x.v})
	}
	u.replaceChild(x.p, x, y)
	x.setLeft(y.r)
	y.setRight(x)
	return y
}

// rotateLeftRight rotates x.l left, then x right. The middle node, x.l.r
// before the call, ends up in the place of x and is returned.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) rotateLeftRight(x *Node[T]) *Node[T] {
	if x.l == nil || x.l.r == nil {
		panic(&RotationError[T]{"rotate left-right", x.v})
	}
	u.rotateLeft(x.l)
	return u.rotateRight(x)
}

// rotateRightLeft is the mirror image of rotateLeftRight.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) rotateRightLeft(x *Node[T]) *Node[T] {
	if x.r == nil || x.r.l == nil {
		panic(&RotationError[T]{"rotate right-left", x.v})
	}
	u.rotateRight(x.r)
	return u.rotateLeft(x)
}

func mustHold(err error) {
	if err != nil {
		panic(err)
	}
}
