package Trees

// RBTree is a BSTree kept balanced by coloring every node red or black:
//  1. the root is black;
//  2. a red node has no red child;
//  3. every path from a node to a nil leaf passes the same number of black nodes.
//
// Insert and Remove restore these bottom up with recolors and the rotations
// of BSTree, so D is at most 2*log2(n+1).
// The zero value isn't usable, create it with NewRBTree or RBTreeFrom.
type RBTree[T Number] struct {
	BSTree[T]
}

// NewRBTree returns an empty RBTree.
func NewRBTree[T Number](opts ...Option) *RBTree[T] {
	return &RBTree[T]{BSTree[T]{cfg: newConfig("rbtree", opts)}}
}

// RBTreeFrom is the RBTree equivalence of BSTreeFrom.
// Time: O(n*log n)
func RBTreeFrom[T Number](vs []T, opts ...Option) (*RBTree[T], error) {
	u := NewRBTree[T](opts...)
	for _, v := range vs {
		if n, err := u.insert(v); err == nil {
			u.insertFixup(n)
			if u.cfg.check {
				mustHold(u.Check())
			}
		} else if _, dup := err.(*DuplicateValueError[T]); !dup {
			return nil, err
		}
	}
	return u, nil
}

// Insert [OrderedTree.Insert]. The new leaf starts red.
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) error {
	n, err := u.insert(v)
	if err != nil {
		return err
	}
	u.insertFixup(n)
	if u.cfg.check {
		mustHold(u.Check())
	}
	return nil
}

// insertFixup climbs from the red node z while its parent is red too.
// A red uncle is solved by recoloring and moves z to its grandparent.
// Otherwise one rotation for an outer z, or a double rotation for an inner
// z, ends the walk.
// Time: O(log n); at most 2 rotations.
func (u *RBTree[T]) insertFixup(z *Node[T]) {
	for z.p != nil && z.p.c == Red {
		// z.p is red so it isn't the root, g exists.
		p, g := z.p, z.grandparent()
		if y := z.uncle(); colorOf(y) == Red {
			p.c, y.c, g.c = Black, Black, Red
			z = g
			continue
		}
		var m *Node[T]
		if p.isLeft() {
			if z.isLeft() {
				m = u.rotateRight(g)
			} else {
				m = u.rotateLeftRight(g)
			}
		} else {
			if z.isLeft() {
				m = u.rotateRightLeft(g)
			} else {
				m = u.rotateLeft(g)
			}
		}
		m.c, g.c = Black, Red
		break
	}
	u.root.c = Black
}

// Remove [OrderedTree.Remove]
// Time: O(log n)
func (u *RBTree[T]) Remove(v T) error {
	s, err := u.remove(v)
	if err != nil {
		return err
	}
	if s.removed.c == Black {
		u.removeFixup(s.child, s.parent, s.left)
	}
	if u.cfg.check {
		mustHold(u.Check())
	}
	return nil
}

// removeFixup gives back the black lost when a black node was unlinked
// from the left (left==true) or right slot of p, now holding x. x may be nil.
// Time: O(log n); at most 3 rotations.
func (u *RBTree[T]) removeFixup(x, p *Node[T], left bool) {
	for x != u.root && colorOf(x) == Black {
		if left {
			s := p.r
			if s.c == Red {
				s.c, p.c = Black, Red
				u.rotateLeft(p)
				s = p.r
			}
			if colorOf(s.l) == Black && colorOf(s.r) == Black {
				s.c = Red
				if x, p = p, p.p; p != nil {
					left = x.isLeft()
				}
				continue
			}
			if colorOf(s.r) == Black {
				s.l.c, s.c = Black, Red
				u.rotateRight(s)
				s = p.r
			}
			s.c, p.c, s.r.c = p.c, Black, Black
			u.rotateLeft(p)
		} else {
			s := p.l
			if s.c == Red {
				s.c, p.c = Black, Red
				u.rotateRight(p)
				s = p.l
			}
			if colorOf(s.l) == Black && colorOf(s.r) == Black {
				s.c = Red
				if x, p = p, p.p; p != nil {
					left = x.isLeft()
				}
				continue
			}
			if colorOf(s.l) == Black {
				s.r.c, s.c = Black, Red
				u.rotateLeft(s)
				s = p.l
			}
			s.c, p.c, s.l.c = p.c, Black, Black
			u.rotateRight(p)
		}
		x = u.root
	}
	if x != nil {
		x.c = Black
	}
}

// IsBalanced reports whether every path from the root to a nil leaf passes
// the same number of black nodes.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) IsBalanced() bool {
	_, ok := blackHeight(u.root)
	return ok
}

// BlackHeight is the number of black nodes on a path from the root to a nil
// leaf, the root included. ok is false when paths disagree.
func (u *RBTree[T]) BlackHeight() (h int, ok bool) {
	return blackHeight(u.root)
}

// Check [OrderedTree.Check]. Adds the red-black properties to BSTree.Check.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) Check() error {
	if err := u.BSTree.Check(); err != nil {
		return err
	}
	return checkColors(u.root)
}

// Corrupt [OrderedTree.Corrupt]
func (u *RBTree[T]) Corrupt() bool {
	return u.Check() != nil
}
