package rbtree

import "go.uber.org/atomic"

// Color represents the color of a node in a Red-Black Tree.
//
// Nodes are either Red (not counted toward black-height) or Black
// (counted toward black-height). An absent child counts
// as black for the purposes of every invariant in this package.
type Color uint8

const (
	// Red marks a node that is not counted toward black-height; a red
	// node may never have a red child.
	Red Color = iota
	// Black marks a node as counted toward every path's black-height.
	Black
)

// String returns "Red" or "Black".
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// Node is the link record callers embed in their own payload structs.
//
// A zero-value Node is a valid, unlinked-but-uninitialized node: [Tree.Add]
// accepts it directly. Call [Node.Init] first only if you need
// [Node.IsLinked] to report false before the node is ever linked.
//
// Node's left and right children are stored behind [atomic.Pointer] so
// that concurrent lockless readers (see the package doc) observe each
// child-pointer update as a single, ordered word store. The parent/color
// pair is not subject to that contract — it is written only by the single
// writer and must never be read by a lockless concurrent reader.
type Node struct {
	left, right atomic.Pointer[Node]
	pc          parentColor
}

// parentColor packs what the C original packs into the low bit of the
// parent pointer. Go does not allow bit-punning a pointer's alignment bits
// portably, so this is the "accept the extra word" substitute spec.md's
// design notes call out explicitly.
type parentColor struct {
	parent *Node
	color  Color
}

// Init marks n as initialized-but-unlinked: a node whose parent slot
// points to itself. This state is distinguishable from any linked state
// (a linked node's parent is either absent or a different node) and from
// a root (whose parent is absent).
//
// Init is optional — [Tree.Add] does not require a node to be initialized
// first — but calling it lets [Node.IsLinked] and the traversal primitives
// be called safely on a node that has not yet been linked into any tree.
func (n *Node) Init() {
	n.setLeft(nil)
	n.setRight(nil)
	n.pc = parentColor{parent: n, color: Red}
}

// IsLinked reports whether n is currently linked into some tree.
//
// IsLinked returns false for a nil node and for a node in the
// initialized-but-unlinked state produced by [Node.Init]. It returns true
// for a node that has neither been linked nor initialized: that node's
// zero-value parent is nil, and nil != n.
func (n *Node) IsLinked() bool {
	return n != nil && n.pc.parent != n
}

// Parent returns n's parent, or nil if n is the root or is not linked.
//
// Parent is writer-only: see the package doc's concurrency note. Do not
// call this from a lockless concurrent reader.
func (n *Node) Parent() *Node {
	if !n.IsLinked() {
		return nil
	}
	return n.pc.parent
}

// Left returns n's left child, or nil. Safe to call from a lockless
// concurrent reader.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left.Load()
}

// Right returns n's right child, or nil. Safe to call from a lockless
// concurrent reader.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right.Load()
}

// color returns n's color. An absent (nil) node is always black.
func (n *Node) color() Color {
	if n == nil {
		return Black
	}
	return n.pc.color
}

// isRed reports whether n is non-nil and colored red.
func isRed(n *Node) bool {
	return n != nil && n.pc.color == Red
}

// isBlack reports whether n is nil or colored black.
func isBlack(n *Node) bool {
	return n == nil || n.pc.color == Black
}

// setParentAndColor writes both fields of the parent/color pair at once,
// mirroring c_rbnode_set_parent_and_color in the C original this package
// is grounded on. p must not be n unless n is meant to become the
// unlinked sentinel state.
func (n *Node) setParentAndColor(p *Node, c Color) {
	n.pc.parent, n.pc.color = p, c
}

// setParent rewrites n's parent while preserving its current color.
func (n *Node) setParent(p *Node) {
	n.pc.parent = p
}

// setLeft publishes a new left child. This is an ordered store: a
// concurrent lockless reader calling [Node.Left] will observe either the
// old or the new value, never a torn one.
func (n *Node) setLeft(v *Node) {
	n.left.Store(v)
}

// setRight publishes a new right child. See setLeft.
func (n *Node) setRight(v *Node) {
	n.right.Store(v)
}
