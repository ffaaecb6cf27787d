package rbtree

// paint drives the insertion fix-up loop: repeatedly call paintOne until
// it reports there is nothing left to do.
func (t *Tree) paint(n *Node) {
	for n != nil {
		n = t.paintOne(n)
	}
}

// paintOne restores red-black invariants after n was linked in red by
// [Tree.Add]. n must already be linked and colored red.
//
// Each case is written with its own direct pointer stores rather than
// through a shared rotate helper, and the store order within a case
// matters: it is chosen so that a concurrent lockless reader never
// observes a cycle through Left/Right at any intermediate point. Do not
// refactor this into a generic rotate(x) call without re-deriving that
// ordering.
//
// Returns the node to re-examine on the next iteration (case 3's
// recursive recolor), or nil once the tree is balanced.
func (t *Tree) paintOne(n *Node) *Node {
	p := n.Parent()

	switch {
	case p == nil:
		// Case 1: n is the root. Paint it black; every path still shares
		// the root, so black-height is unaffected.
		n.setParentAndColor(nil, Black)
		return nil

	case isBlack(p):
		// Case 2: parent is black. n is red with no red child (it was
		// either just linked with absent children, or is a grandparent
		// whose children case 3 painted black), so nothing is broken.
		return nil

	case p == p.Parent().Left():
		g := p.Parent()
		gg := g.Parent()
		u := g.Right()

		if isRed(u) {
			// Case 3: parent and uncle are both red, so grandparent must
			// be black. Push the red up to the grandparent and recurse
			// there.
			p.setParentAndColor(g, Black)
			u.setParentAndColor(g, Black)
			g.setParentAndColor(gg, Red)
			return g
		}

		if n == p.Right() {
			// Case 4: n is the inner (right) child of a left parent.
			// Rotate left at parent so n becomes the outer child, then
			// fall through to case 5 with the former parent playing the
			// role of n.
			x := n.Left()
			p.setRight(x)
			n.setLeft(p)
			if x != nil {
				x.setParentAndColor(p, Black)
			}
			p.setParentAndColor(n, Red)
			p = n
		}

		// Case 5: n (or the rotated former parent) is the outer (left)
		// child of a left parent. Rotate right at the grandparent and
		// swap parent/grandparent colors.
		x := p.Right()
		g.setLeft(x)
		p.setRight(g)
		if x != nil {
			x.setParentAndColor(g, Black)
		}
		p.setParentAndColor(gg, Black)
		g.setParentAndColor(p, Red)
		t.swapChild(gg, g, p)
		return nil

	default:
		// Mirror of the above: parent is a right child.
		g := p.Parent()
		gg := g.Parent()
		u := g.Left()

		if isRed(u) {
			p.setParentAndColor(g, Black)
			u.setParentAndColor(g, Black)
			g.setParentAndColor(gg, Red)
			return g
		}

		if n == p.Left() {
			x := n.Right()
			p.setLeft(x)
			n.setRight(p)
			if x != nil {
				x.setParentAndColor(p, Black)
			}
			p.setParentAndColor(n, Red)
			p = n
		}

		x := p.Left()
		g.setRight(x)
		p.setLeft(g)
		if x != nil {
			x.setParentAndColor(g, Black)
		}
		p.setParentAndColor(gg, Black)
		g.setParentAndColor(p, Red)
		t.swapChild(gg, g, p)
		return nil
	}
}
