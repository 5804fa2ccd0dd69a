package TreeSet

import (
	"github.com/g-m-twostay/go-trees/Sets"
	"github.com/g-m-twostay/go-trees/Trees"
)

// TreeSet is an ordered set of numbers backed by a Trees.RBTree. Range
// visits elements in ascending order and Take returns the minimum.
// It isn't safe for concurrent use.
type TreeSet[E Trees.Number] struct {
	t *Trees.RBTree[E]
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)

// New TreeSet holding es. Invalid numbers (NaN, infinities) in es are dropped.
func New[E Trees.Number](es ...E) *TreeSet[E] {
	u := &TreeSet[E]{Trees.NewRBTree[E](Trees.WithName("treeset"))}
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put e in the set. Returns false if e was already present or isn't a finite number.
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	return u.t.Insert(e) == nil
}

// Has e.
// Time: O(log n)
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e. Returns false if e wasn't present.
// Time: O(log n)
func (u *TreeSet[E]) Remove(e E) bool {
	if !u.t.Has(e) {
		return false
	}
	return u.t.Remove(e) == nil
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take returns the smallest element, zero value if the set is empty.
func (u *TreeSet[E]) Take() E {
	e, _ := u.t.Minimum()
	return e
}

// Range over elements in ascending order. Stops when f returns false.
// The set mustn't be modified by f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for it := u.t.InOrder(); ; {
		e, ok := it()
		if !ok || !f(e) {
			return
		}
	}
}

// Values in ascending order.
func (u *TreeSet[E]) Values() []E {
	return u.t.Values()
}

// PutAll elements of s, returns how many were new.
func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of s, returns how many were present.
func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	for _, e := range collect(s) {
		if u.Remove(e) {
			n++
		}
	}
	return
}

// Eq is true when both sets hold the same elements.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

// Union puts every element of s in u.
func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	for _, e := range u.t.Values() {
		if !s.Has(e) {
			u.Remove(e)
		}
	}
}

// Filter returns a new TreeSet of the elements for which f is true.
func (u *TreeSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	r := New[E]()
	u.Range(func(e E) bool {
		if f(e) {
			r.Put(e)
		}
		return true
	})
	return r
}

// collect s first so that s may be u itself.
func collect[E any](s Sets.Set[E]) []E {
	es := make([]E, 0, s.Size())
	s.Range(func(e E) bool {
		es = append(es, e)
		return true
	})
	return es
}
