// Package rbmap provides a generic, ordered key-value map built on top of
// github.com/mikenye/rbtree/rbtree's intrusive Red-Black Tree.
//
// Where rbtree asks every caller to embed a [rbtree.Node] in their own
// struct and drive comparisons themselves, rbmap does that work once: it
// owns the [Entry] allocations, supplies the comparator, and exposes the
// ordinary ordered-map operations — Insert, Search, Delete, Min, Max,
// Successor, Predecessor, Floor, Ceiling — that most callers actually
// want. Reach for rbtree directly only when a payload cannot afford the
// extra Entry allocation rbmap introduces.
//
// # Ordering
//
// Keys must have strict weak ordering, exactly as bst.Tree requires in
// the repo this package is descended from: for a [LessFunc] less and any
// keys a, b, c, if less(a, b) and less(b, c) then less(a, c) must also
// hold. An inconsistent comparator produces undefined behavior.
//
// # Concurrency
//
// Map is not safe for concurrent use by multiple goroutines unless all of
// them are calling read-only methods and none is calling Insert or
// Delete. This is stricter than the single-writer, many-lockless-readers
// contract rbtree.Tree documents: read methods such as Keys, Range,
// Successor and Predecessor follow parent links, and Size reads a plain
// counter, so none of them may run alongside an Insert or Delete.
package rbmap
