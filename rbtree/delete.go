package rbtree

// Remove unlinks n from the tree and restores the red-black invariants.
//
// Precondition: n must be linked into t. Remove does not modify n's own
// left/right/parent fields on return — n still points at its former
// neighbors, which is why it is safe to read n's old position right
// after removing it, but unsafe to treat n as available for reuse
// without calling [Node.Init] (or using [Tree.RemoveInit] instead).
//
// Three cases, same as any BST deletion:
//   - n has no left child: splice in n's right child.
//   - n has no right child: splice in n's left child (mirror).
//   - n has two children: swap n with its in-order successor, which by
//     construction has no left child, then splice as above.
//
// Whichever node is physically removed from its slot, if it was black and
// no red child takes its place (a red child is simply repainted black),
// the tree loses a black node on that path and [Tree.rebalance] is invoked
// at the location of the deficit.
func (t *Tree) Remove(n *Node) {
	var p, next *Node
	var c Color

	switch {
	case n.Left() == nil:
		// No left child: splice in the right child (absent, or — since a
		// black node with only one child must have a red child with no
		// children of its own — a red leaf that simply gets recolored).
		p = n.Parent()
		c = n.color()
		t.swapChild(p, n, n.Right())
		if r := n.Right(); r != nil {
			r.setParentAndColor(p, c)
		} else if c == Black {
			next = p
		}

	case n.Right() == nil:
		// Mirror: splice in the left child. A node with a left child but
		// no right child is always black with a single red left child,
		// so recoloring that child always restores the invariant — no
		// rebalance is ever needed here (spec scenario 6).
		p = n.Parent()
		c = n.color()
		t.swapChild(p, n, n.Left())
		n.Left().setParentAndColor(p, c)

	default:
		// Two children: swap with the in-order successor s = leftmost of
		// n's right subtree, then remove as above. s cannot have a left
		// child (it is the leftmost node of the subtree), so this always
		// reduces to the no-left-child case for s itself.
		var gc *Node
		s := n.Right()
		if s.Left() == nil {
			// s is n's immediate right child: no grandchild splice
			// needed, s moves directly into n's slot.
			p = s
			gc = s.Right()
		} else {
			s = s.Leftmost()
			p = s.Parent()
			gc = s.Right()
			p.setLeft(gc)
			s.setRight(n.Right())
			n.Right().setParent(s)
		}

		s.setLeft(n.Left())
		n.Left().setParent(s)

		np := n.Parent()
		c = n.color()
		t.swapChild(np, n, s)
		if gc != nil {
			// s had a red right child in its old slot: that child
			// absorbs the deficit by turning black, no rebalance.
			gc.setParentAndColor(p, Black)
		} else if isBlack(s) {
			next = p
		}
		s.setParentAndColor(np, c)
	}

	if next != nil {
		t.rebalance(next)
	}
}

// RemoveInit removes n from the tree if it is linked, then re-initializes
// it via [Node.Init] so [Node.IsLinked] reports false. If n is nil or in
// the unlinked state set by [Node.Init], RemoveInit is a no-op. A
// zero-value Node that was never initialized is not in that state (see
// [Node.IsLinked]), so RemoveInit treats it as linked and removes it.
func (t *Tree) RemoveInit(n *Node) {
	if n.IsLinked() {
		t.Remove(n)
		n.Init()
	}
}

// rebalance restores the black-height invariant after a black node was
// physically removed from under p, leaving that side one black node
// short. It walks up the tree, applying [Tree.rebalanceOne] at each
// level, until the deficit is absorbed.
func (t *Tree) rebalance(p *Node) {
	var n *Node
	for {
		n = t.rebalanceOne(p, n)
		if n == nil {
			return
		}
		parent := n.Parent()
		if parent == nil {
			return
		}
		p = parent
	}
}

// rebalanceOne handles one level of the deletion rebalance. p is the
// parent whose n-side subtree is one black node short; n identifies which
// child (possibly absent) is short — the comparisons below rely on
// pointer identity, including nil, to tell left-deficit from
// right-deficit. s is n's sibling, guaranteed to exist because the
// sibling's subtree has strictly greater black-height.
//
// As with [Tree.paintOne], every case is hard-coded with its own store
// order rather than routed through a shared rotate helper, to preserve
// the lockless-read contract.
//
// Returns the next node to re-examine if the deficit propagates up
// (case 2, sibling recolored red with no red children and a black parent
// pushed the deficit higher), or nil once balance is restored.
func (t *Tree) rebalanceOne(p, n *Node) *Node {
	if n == p.Left() {
		s := p.Right()

		if isRed(s) {
			// Case 1: red sibling. Rotate it onto our side so the new
			// sibling (s's old left child, non-nil and black because s is
			// red and its subtree carries the extra black node) can later
			// be recolored, gaining the
			// black node we need. Falls through to cases 2-4 with the
			// rotated tree.
			g := p.Parent()
			x := s.Left()
			p.setRight(x)
			s.setLeft(p)
			x.setParentAndColor(p, Black)
			s.setParentAndColor(g, p.color())
			p.setParentAndColor(s, Red)
			t.swapChild(g, p, s)
			s = x
		}

		x := s.Right()
		if isBlack(x) {
			y := s.Left()
			if isBlack(y) {
				// Case 2: sibling is black with two black (or absent)
				// children. Recolor it red, which removes one black
				// node from both paths through s — if p was red, paint
				// it black to absorb the deficit; otherwise the deficit
				// has moved up to p.
				s.setParentAndColor(p, Red)
				if isBlack(p) {
					return p
				}
				p.setParentAndColor(p.Parent(), Black)
				return nil
			}

			// Case 3: sibling's near (left) child is red, far (right)
			// child is black. Rotate right at the sibling so the red
			// near child becomes the new sibling, with the former
			// sibling as its far child, then fall through to case 4.
			x = y.Right()
			s.setLeft(x)
			y.setRight(s)
			p.setRight(y)
			if x != nil {
				x.setParentAndColor(s, Black)
			}
			x = s
			s = y
		}

		// Case 4: sibling's far (right) child is red. Rotate left at p;
		// the new subtree root (s) takes p's color, p and the former far
		// child both become black. This gains back the missing black
		// node and terminates the rebalance.
		g := p.Parent()
		y := s.Left()
		p.setRight(y)
		s.setLeft(p)
		x.setParentAndColor(s, Black)
		if y != nil {
			y.setParent(p)
		}
		s.setParentAndColor(g, p.color())
		p.setParentAndColor(s, Black)
		t.swapChild(g, p, s)
		return nil
	}

	// Mirror: n is the right child (or absent with p.Right() nil).
	s := p.Left()

	if isRed(s) {
		g := p.Parent()
		x := s.Right()
		p.setLeft(x)
		s.setRight(p)
		x.setParentAndColor(p, Black)
		s.setParentAndColor(g, p.color())
		p.setParentAndColor(s, Red)
		t.swapChild(g, p, s)
		s = x
	}

	x := s.Left()
	if isBlack(x) {
		y := s.Right()
		if isBlack(y) {
			s.setParentAndColor(p, Red)
			if isBlack(p) {
				return p
			}
			p.setParentAndColor(p.Parent(), Black)
			return nil
		}

		x = y.Left()
		s.setRight(x)
		y.setLeft(s)
		p.setLeft(y)
		if x != nil {
			x.setParentAndColor(s, Black)
		}
		x = s
		s = y
	}

	g := p.Parent()
	y := s.Right()
	p.setLeft(y)
	s.setRight(p)
	x.setParentAndColor(s, Black)
	if y != nil {
		y.setParent(p)
	}
	s.setParentAndColor(g, p.color())
	p.setParentAndColor(s, Black)
	t.swapChild(g, p, s)
	return nil
}
