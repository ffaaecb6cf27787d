package rbtree

import "go.uber.org/atomic"

// Side identifies which child slot of a parent an insertion targets.
//
// This is the Go stand-in for the C original's CRBNode** slot argument:
// since Go has no portable way to take "the address of either t.root or
// parent.left/parent.right, typed generically", Add instead takes the
// parent (nil meaning "there is no parent, use the root slot") and a Side
// telling it which of the parent's two children to replace.
type Side bool

const (
	// LeftSide selects the parent's left child.
	LeftSide Side = false
	// RightSide selects the parent's right child.
	RightSide Side = true
)

// Tree is a Red-Black Tree root. The zero value is an empty tree, ready
// to use.
//
// Tree owns no payload memory: it holds only the root reference. Callers
// own the structs their [Node]s are embedded in and are responsible for
// freeing them after [Tree.Remove] or [Tree.RemoveInit].
type Tree struct {
	root atomic.Pointer[Node]
}

// Root returns the tree's root node, or nil if the tree is empty. Safe to
// call from a lockless concurrent reader: the root slot is published with
// the same ordered-store discipline as child pointers.
func (t *Tree) Root() *Node {
	return t.root.Load()
}

func (t *Tree) setRoot(n *Node) {
	t.root.Store(n)
}

// First returns the logically first (smallest) node in the tree, or nil
// if the tree is empty.
func (t *Tree) First() *Node {
	return t.Root().Leftmost()
}

// Last returns the logically last (largest) node in the tree, or nil if
// the tree is empty.
func (t *Tree) Last() *Node {
	return t.Root().Rightmost()
}

// FirstPostorder returns the first node of a left-to-right post-order
// traversal of the tree: its left-deepest node. Returns nil for an empty
// tree.
func (t *Tree) FirstPostorder() *Node {
	return t.Root().Leftdeepest()
}

// LastPostorder returns the last node of a left-to-right post-order
// traversal: always the root, or nil for an empty tree.
func (t *Tree) LastPostorder() *Node {
	return t.Root()
}

// swapChild repoints the slot that currently holds old so that it holds
// new instead: either p's matching child, or the tree root if p is nil.
// It does not touch new's parent pointer; the caller must set that
// separately. Mirrors c_rbtree_swap_child in the C original.
func (t *Tree) swapChild(p, old, new *Node) {
	if p == nil {
		t.setRoot(new)
		return
	}
	if p.Left() == old {
		p.setLeft(new)
	} else {
		p.setRight(new)
	}
}

// Add links n into the tree as the child of parent on the given side, and
// restores the red-black invariants.
//
// Preconditions: if parent is nil, n becomes the new root (the tree must
// currently be empty); otherwise parent's side child must currently be
// absent. n need not be initialized via [Node.Init] first — Add
// overwrites n's links and color unconditionally. Violating either
// precondition is a programming error; this package does not validate it.
//
// The caller is expected to have already located the insertion point with
// its own comparator-driven search, as the package doc's example shows.
func (t *Tree) Add(parent *Node, side Side, n *Node) {
	n.setParentAndColor(parent, Red)
	n.setLeft(nil)
	n.setRight(nil)

	if parent == nil {
		t.setRoot(n)
	} else if side == LeftSide {
		parent.setLeft(n)
	} else {
		parent.setRight(n)
	}

	t.paint(n)
}
