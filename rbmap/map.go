package rbmap

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/mikenye/rbtree/rbtree"
)

// These "connectors" are used for the Map.String method when drawing the
// tree, carried over unchanged from the bst package this one descends
// from.
const (
	connectorLeft     = " ╭── "
	connectorRight    = " ╰── "
	connectorVertical = " │   "
	connectorSpace    = "     "
)

// LessFunc is a comparison function used to define the ordering of keys
// in a Map. It should return true if a is less than b, and false
// otherwise, and must define a consistent and transitive ordering: for
// any a, b, c, if a < b and b < c then a < c.
type LessFunc[K any] func(a, b K) bool

// Entry is a single key-value pair stored in a Map.
//
// Entry embeds [rbtree.Node] as its first field so that a *Entry can be
// recovered from the *rbtree.Node the tree operations hand back, via the
// same container-of technique the C original this is all grounded on
// uses pervasively. Callers never construct an Entry directly; Map.Insert
// does that and returns a pointer to it.
type Entry[K, V any] struct {
	rbtree.Node
	Key   K
	Value V
}

// entryOf recovers the *Entry[K, V] that owns n. This relies on Node
// being Entry's first field, which the Go spec guarantees places it at
// offset 0 — the only unsafe.Pointer use in this package.
func entryOf[K, V any](n *rbtree.Node) *Entry[K, V] {
	return (*Entry[K, V])(unsafe.Pointer(n))
}

// Map is a generic, ordered key-value map backed by a [rbtree.Tree].
//
// The zero value is not usable; construct one with [New]. A Map stores
// its entries directly inside the tree's nodes — there is no separate
// hash table or slice, so iteration in key order costs no more than an
// ordinary in-order tree walk.
type Map[K, V any] struct {
	tree rbtree.Tree
	less LessFunc[K]
	size int
}

// New creates an empty Map ordered by less.
//
// Example usage:
//
//	m := rbmap.New[int, string](func(a, b int) bool { return a < b })
//	m.Insert(10, "ten")
func New[K, V any](less LessFunc[K]) *Map[K, V] {
	return &Map[K, V]{less: less}
}

func (m *Map[K, V]) keyEq(a, b K) bool {
	return !m.less(a, b) && !m.less(b, a)
}

// Size returns the number of entries currently in the map.
func (m *Map[K, V]) Size() int {
	return m.size
}

// search performs the comparator-driven descent [rbtree.Tree] itself does
// not know how to do, returning the matching node (if any) plus the
// parent and side a new node would be linked at if it does not.
func (m *Map[K, V]) search(key K) (match, parent *rbtree.Node, side rbtree.Side) {
	cur := m.tree.Root()
	for cur != nil {
		e := entryOf[K, V](cur)
		switch {
		case m.keyEq(key, e.Key):
			return cur, nil, rbtree.LeftSide
		case m.less(key, e.Key):
			parent, side, cur = cur, rbtree.LeftSide, cur.Left()
		default:
			parent, side, cur = cur, rbtree.RightSide, cur.Right()
		}
	}
	return nil, parent, side
}

// Search looks up key and reports whether it is present.
func (m *Map[K, V]) Search(key K) (value V, ok bool) {
	n, _, _ := m.search(key)
	if n == nil {
		return value, false
	}
	return entryOf[K, V](n).Value, true
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	n, _, _ := m.search(key)
	return n != nil
}

// Insert adds key with the given value, or overwrites the value of an
// existing entry for key. Returns the entry and true if a new entry was
// created, or the existing entry and false if key was already present.
func (m *Map[K, V]) Insert(key K, value V) (*Entry[K, V], bool) {
	n, parent, side := m.search(key)
	if n != nil {
		e := entryOf[K, V](n)
		e.Value = value
		return e, false
	}

	e := &Entry[K, V]{Key: key, Value: value}
	m.tree.Add(parent, side, &e.Node)
	m.size++
	return e, true
}

// Delete removes key from the map, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	n, _, _ := m.search(key)
	if n == nil {
		return false
	}
	m.tree.RemoveInit(n)
	m.size--
	return true
}

// Min returns the entry with the smallest key, or nil if the map is
// empty.
func (m *Map[K, V]) Min() *Entry[K, V] {
	return asEntry[K, V](m.tree.First())
}

// Max returns the entry with the largest key, or nil if the map is
// empty.
func (m *Map[K, V]) Max() *Entry[K, V] {
	return asEntry[K, V](m.tree.Last())
}

// Successor returns the entry whose key is the smallest key greater than
// e's, or nil if e holds the largest key in the map.
func (m *Map[K, V]) Successor(e *Entry[K, V]) *Entry[K, V] {
	return asEntry[K, V](e.Node.Next())
}

// Predecessor returns the entry whose key is the largest key smaller
// than e's, or nil if e holds the smallest key in the map.
func (m *Map[K, V]) Predecessor(e *Entry[K, V]) *Entry[K, V] {
	return asEntry[K, V](e.Node.Prev())
}

// Floor returns the entry with the largest key less than or equal to
// key, or nil if every key in the map is greater than key.
func (m *Map[K, V]) Floor(key K) *Entry[K, V] {
	var candidate *rbtree.Node
	cur := m.tree.Root()
	for cur != nil {
		e := entryOf[K, V](cur)
		switch {
		case m.keyEq(key, e.Key):
			return e
		case m.less(key, e.Key):
			cur = cur.Left()
		default:
			candidate = cur
			cur = cur.Right()
		}
	}
	return asEntry[K, V](candidate)
}

// Ceiling returns the entry with the smallest key greater than or equal
// to key, or nil if every key in the map is less than key.
func (m *Map[K, V]) Ceiling(key K) *Entry[K, V] {
	var candidate *rbtree.Node
	cur := m.tree.Root()
	for cur != nil {
		e := entryOf[K, V](cur)
		switch {
		case m.keyEq(key, e.Key):
			return e
		case m.less(key, e.Key):
			candidate = cur
			cur = cur.Left()
		default:
			cur = cur.Right()
		}
	}
	return asEntry[K, V](candidate)
}

func asEntry[K, V any](n *rbtree.Node) *Entry[K, V] {
	if n == nil {
		return nil
	}
	return entryOf[K, V](n)
}

// Keys returns every key in the map in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for n := m.tree.First(); n != nil; n = n.Next() {
		out = append(out, entryOf[K, V](n).Key)
	}
	return out
}

// Range calls fn for every entry in ascending key order, stopping early
// if fn returns false.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for n := m.tree.First(); n != nil; n = n.Next() {
		e := entryOf[K, V](n)
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// IsValid checks that the map's underlying tree satisfies every
// red-black invariant [rbtree.Tree.IsValid] checks, plus the one thing
// that package cannot check on its own: that an in-order traversal
// yields strictly ascending keys.
func (m *Map[K, V]) IsValid() error {
	if err := m.tree.IsValid(); err != nil {
		return err
	}
	var prev *K
	for n := m.tree.First(); n != nil; n = n.Next() {
		k := entryOf[K, V](n).Key
		if prev != nil && !m.less(*prev, k) {
			return fmt.Errorf("rbmap: keys out of order at %v", k)
		}
		prev = &k
	}
	return nil
}

// String returns a visual representation of the map's tree, descended
// from bst.Tree.String: nodes are drawn with connectors showing their
// relationships, in ascending order with the minimum entry on the first
// line. Returns "Empty Map" if the map has no entries.
func (m *Map[K, V]) String() string {
	root := m.tree.Root()
	if root == nil {
		return "Empty Map"
	}

	builder := strings.Builder{}
	verticalLineHeights := make(map[int]bool)

	var walk func(n *rbtree.Node, depth int)
	walk = func(n *rbtree.Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Left(), depth+1)

		for j := 0; j < depth-1; j++ {
			if verticalLineHeights[j+1] {
				builder.WriteString(connectorVertical)
			} else {
				builder.WriteString(connectorSpace)
			}
		}

		parent := n.Parent()
		if parent != nil && parent.Left() == n {
			builder.WriteString(connectorLeft)
		} else if parent != nil && parent.Right() == n {
			builder.WriteString(connectorRight)
		}

		e := entryOf[K, V](n)
		builder.WriteString(entryString(e.Key, e.Value))
		builder.WriteString("\n")

		if parent != nil && parent.Left() == n {
			verticalLineHeights[depth] = true
		}
		if parent != nil && parent.Right() == n {
			verticalLineHeights[depth] = false
		}
		if n.Right() != nil {
			verticalLineHeights[depth+1] = true
		} else {
			verticalLineHeights[depth+1] = false
		}

		walk(n.Right(), depth+1)
	}

	walk(root, 0)
	return builder.String()
}

func entryString[K, V any](key K, value V) string {
	b := new(strings.Builder)
	if s, ok := any(key).(fmt.Stringer); ok {
		b.WriteString(s.String())
	} else {
		fmt.Fprintf(b, "%v", key)
	}
	b.WriteString(": ")
	if s, ok := any(value).(fmt.Stringer); ok {
		b.WriteString(s.String())
	} else {
		fmt.Fprintf(b, "%v", value)
	}
	return b.String()
}
