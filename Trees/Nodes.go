package Trees

// Color of a node in a RBTree. Nodes of a BSTree are left Red and the color
// carries no meaning there.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "BLACK"
	}
	return "RED"
}

// Node in a BSTree or RBTree.
// The tree owns its nodes through the child links; p is only a back
// reference for walking upwards. l.p==n and r.p==n always hold for non nil
// children, and every mutator below keeps it that way.
type Node[T Number] struct {
	v       T
	l, r, p *Node[T]
	c       Color
}

func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Parent returns nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

func (n *Node[T]) Color() Color {
	return n.c
}

func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}

// colorOf treats a missing child as a black leaf.
func colorOf[T Number](n *Node[T]) Color {
	if n == nil {
		return Black
	}
	return n.c
}

// isLeft reports whether n is the left child of its parent. n must have a parent.
func (n *Node[T]) isLeft() bool {
	return n.p.l == n
}

func (n *Node[T]) grandparent() *Node[T] {
	if n.p == nil {
		return nil
	}
	return n.p.p
}

func (n *Node[T]) sibling() *Node[T] {
	if n.p == nil {
		return nil
	} else if n.isLeft() {
		return n.p.r
	}
	return n.p.l
}

func (n *Node[T]) uncle() *Node[T] {
	if n.p == nil {
		return nil
	}
	return n.p.sibling()
}

// setLeft links c as the left child of n, c may be nil.
// Time: O(1); Space: O(1)
func (n *Node[T]) setLeft(c *Node[T]) {
	n.l = c
	if c != nil {
		c.p = n
	}
}

// setRight links c as the right child of n, c may be nil.
// Time: O(1); Space: O(1)
func (n *Node[T]) setRight(c *Node[T]) {
	n.r = c
	if c != nil {
		c.p = n
	}
}

// minNode is the left most node of the subtree rooting at n.
func minNode[T Number](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode is the right most node of the subtree rooting at n.
func maxNode[T Number](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next node in in-order, nil after the maximum. Uses parent links only.
func next[T Number](n *Node[T]) *Node[T] {
	if n.r != nil {
		return minNode(n.r)
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}
