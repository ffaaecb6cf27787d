// Package rbtree provides an embeddable, intrusive Red-Black Tree.
//
// Unlike a conventional container, this package does not store keys or
// values. Callers embed a [Node] into their own payload structs and hand
// the package only topology: child links, a parent back-reference, and a
// single color bit. The package owns the rebalancing machinery — the
// insertion paint/fix-up algorithm, the deletion rebalance algorithm, and
// the successor-splice case — and nothing else. It performs no allocation,
// no key comparison, and no hashing.
//
// # Key Features
//   - Self-Balancing: red-black invariants bound tree height to
//     O(log n), so insert/delete/search stay O(log n).
//   - Intrusive: the caller's struct embeds [Node] directly; no
//     separate allocation per element.
//   - Lockless reads: any number of readers may traverse [Node.Left] and
//     [Node.Right] concurrently with a single writer's [Tree.Add] or
//     [Tree.Remove], without synchronization, and are guaranteed to
//     terminate without observing a cycle. See the package-level note on
//     concurrency below.
//
// # Usage Example
//
// A caller drives its own comparator-based search to find the insertion
// point, then hands the result to [Tree.Add]:
//
//	type item struct {
//		link rbtree.Node
//		key  int
//	}
//
//	var t rbtree.Tree
//	n := &item{key: 7}
//
//	parent, side, existing := (*rbtree.Node)(nil), rbtree.LeftSide, (*item)(nil)
//	cur := t.Root()
//	for cur != nil {
//		c := (*item)(unsafe.Pointer(cur))
//		switch {
//		case n.key < c.key:
//			parent, side, cur = cur, rbtree.LeftSide, cur.Left()
//		case n.key > c.key:
//			parent, side, cur = cur, rbtree.RightSide, cur.Right()
//		default:
//			existing = c
//			cur = nil
//		}
//	}
//	if existing == nil {
//		t.Add(parent, side, &n.link)
//	}
//
// Callers who don't want to write this loop by hand can use the generic
// [github.com/mikenye/rbtree/rbmap] package, which implements exactly this
// pattern for ordinary key/value maps.
//
// # Concurrency
//
//   - Writers (Add, Remove, RemoveInit) are not safe to call concurrently
//     with each other or with themselves; the caller must serialize all
//     mutating calls, typically with a mutex held only across the call.
//   - Readers may call [Node.Left], [Node.Right], and anything built only
//     from those (traversal, search) at any time, without holding any
//     lock, concurrently with a single writer. A reader may see a stale or
//     partially-rotated view of the tree, may miss a node that was being
//     inserted, or may visit a node twice during a rotation window, but it
//     will never loop forever or dereference a torn pointer.
//   - [Node.Parent] is not part of the lockless-read contract: it exists
//     for writer-side rebalancing and for [Node.Next]/[Node.Prev] in
//     single-threaded contexts. A lockless concurrent reader must stick to
//     [Node.Left]/[Node.Right] and must not call Parent, Next, or Prev
//     while a writer may be mutating the tree.
package rbtree
