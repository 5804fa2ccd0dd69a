package Trees

import "golang.org/x/exp/constraints"

// Number is the set of value types the trees accept. Values are ordered by
// < and ==, so NaN and infinities are rejected on insertion.
type Number interface {
	constraints.Integer | constraints.Float
}

// OrderedTree represents an ordered set of numbers stored in linked nodes.
// Mutating receivers return nil on success and one of the error types in
// Errors.go otherwise; a returned error means the tree wasn't touched.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined.
// None of the implementations are safe for concurrent use. Callers sharing
// a tree between goroutines must serialize all access to it.
// Methods are implemented iteratively unless noted otherwise.
type OrderedTree[T Number] interface {
	//Insert v to the tree. A duplicate v leaves the tree unchanged and
	//returns *DuplicateValueError.
	Insert(v T) error
	//Remove v from the tree. Returns *EmptyTreeError on an empty tree and
	//*NotFoundError when v isn't present.
	Remove(v T) error
	//Has element v.
	Has(v T) bool
	//Search returns the node holding v, or the last node visited on the
	//way down when v is absent. Returns nil on an empty tree.
	Search(v T) *Node[T]
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v. NaN and
	//infinities have no neighbours.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Empty is true when Size()==0.
	Empty() bool
	//InOrder returns a closure acting like an iterator over the values in
	//ascending order. val, valid=f(); val is meaningful only if valid is
	//true. The tree must not be modified while f is in use.
	InOrder() func() (T, bool)
	//Values in ascending order.
	Values() []T
	//Check returns an *InvariantError describing the first broken property.
	Check() error
	//Corrupt returns whether the tree has corrupt structures.
	Corrupt() bool
}

var (
	_ OrderedTree[int]     = (*BSTree[int])(nil)
	_ OrderedTree[float64] = (*RBTree[float64])(nil)
)
