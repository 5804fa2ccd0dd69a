package Trees

// checkLinks walks the subtree rooting at root with an explicit stack and
// returns the first broken ordering, parent link or size property.
// lo and hi are the nearest ancestors bounding each node from below and above.
// Time: O(n); Space: O(D)
func checkLinks[T Number](root *Node[T], sz uint) error {
	type frame struct {
		n, lo, hi *Node[T]
	}
	if root == nil {
		if sz != 0 {
			return &InvariantError[T]{PropSize, 0}
		}
		return nil
	}
	if root.p != nil {
		return &InvariantError[T]{PropParent, root.v}
	}
	count := uint(0)
	for st := []frame{{root, nil, nil}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		n := f.n
		if count++; count > sz {
			return &InvariantError[T]{PropSize, n.v}
		}
		if (f.lo != nil && n.v <= f.lo.v) || (f.hi != nil && n.v >= f.hi.v) {
			return &InvariantError[T]{PropOrder, n.v}
		}
		if n.l != nil {
			if n.l.p != n {
				return &InvariantError[T]{PropParent, n.l.v}
			}
			st = append(st, frame{n.l, f.lo, n})
		}
		if n.r != nil {
			if n.r.p != n {
				return &InvariantError[T]{PropParent, n.r.v}
			}
			st = append(st, frame{n.r, n, f.hi})
		}
	}
	if count != sz {
		return &InvariantError[T]{PropSize, root.v}
	}
	return nil
}

// checkColors verifies the red-black properties: black root, no red node
// with a red child, and the same number of black nodes on every path from
// root to a nil leaf.
// Time: O(n); Space: O(D)
func checkColors[T Number](root *Node[T]) error {
	type frame struct {
		n      *Node[T]
		blacks int
	}
	if root == nil {
		return nil
	} else if root.c != Black {
		return &InvariantError[T]{PropRootBlack, root.v}
	}
	height := -1
	for st := []frame{{root, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		n := f.n
		if n.c == Black {
			f.blacks++
		} else if colorOf(n.l) == Red || colorOf(n.r) == Red {
			return &InvariantError[T]{PropRedRed, n.v}
		}
		if n.l == nil || n.r == nil {
			if height < 0 {
				height = f.blacks
			} else if height != f.blacks {
				return &InvariantError[T]{PropBlackHeight, n.v}
			}
		}
		if n.l != nil {
			st = append(st, frame{n.l, f.blacks})
		}
		if n.r != nil {
			st = append(st, frame{n.r, f.blacks})
		}
	}
	return nil
}

// blackHeight counts the black nodes on the left most path of root, then
// compares it against every other path to a nil leaf.
// Time: O(n); Space: O(D)
func blackHeight[T Number](root *Node[T]) (int, bool) {
	h := 0
	for n := root; n != nil; n = n.l {
		if n.c == Black {
			h++
		}
	}
	type frame struct {
		n      *Node[T]
		blacks int
	}
	for st := []frame{{root, 0}}; root != nil && len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n.c == Black {
			f.blacks++
		}
		if (f.n.l == nil || f.n.r == nil) && f.blacks != h {
			return h, false
		}
		if f.n.l != nil {
			st = append(st, frame{f.n.l, f.blacks})
		}
		if f.n.r != nil {
			st = append(st, frame{f.n.r, f.blacks})
		}
	}
	return h, true
}
