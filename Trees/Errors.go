package Trees

import "fmt"

// InvalidValueError is returned when a value can't be ordered: NaN, +Inf or -Inf.
type InvalidValueError[T Number] struct {
	Op string
	V  T
}

func (e *InvalidValueError[T]) Error() string {
	return fmt.Sprintf("%s: invalid value %v, only finite numbers are accepted", e.Op, e.V)
}

// DuplicateValueError is returned by Insert when V is already in the tree.
// It is a warning: the tree is unchanged and stays usable.
type DuplicateValueError[T Number] struct {
	V T
}

func (e *DuplicateValueError[T]) Error() string {
	return fmt.Sprintf("insert: %v already exists", e.V)
}

// NotFoundError is returned by Remove when V isn't in the tree. The tree is unchanged.
type NotFoundError[T Number] struct {
	V T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("remove: couldn't find %v", e.V)
}

// EmptyTreeError is returned by operations that have no result on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return e.Op + ": tree is empty"
}

// RotationError is the panic value of a rotation around a node that lacks
// the child the rotation needs. It can only happen on an already corrupt tree.
type RotationError[T Number] struct {
	Op string
	V  T
}

func (e *RotationError[T]) Error() string {
	return fmt.Sprintf("%s: node %v lacks the required child", e.Op, e.V)
}

// InvariantError names the first broken property found by Check and the
// value of the node where it was found.
type InvariantError[T Number] struct {
	Property string
	V        T
}

func (e *InvariantError[T]) Error() string {
	return fmt.Sprintf("invariant %q broken at %v", e.Property, e.V)
}

// Properties reported by InvariantError.
const (
	PropOrder       = "bst order"
	PropParent      = "parent link"
	PropSize        = "size"
	PropRootBlack   = "root is black"
	PropRedRed      = "red node has red child"
	PropBlackHeight = "black height"
)
