package rbtree

import "fmt"

// IsValid checks the structural red-black invariants from spec P1-P4:
// the root is black (or the tree is empty), no red node has a red child,
// every root-to-nil path has the same black-height, and every linked
// node's parent correctly lists it as a child.
//
// IsValid has nothing to say about key ordering (P6) — the core tree has
// no notion of keys. Callers with keys should use [rbmap.Map.IsValid]
// instead, which checks ordering in addition to everything IsValid checks
// here.
//
// This mirrors the teacher's bst.Tree.IsTreeValid / rbtree.Tree.IsTreeValid
// shape (recursive black-height check via a single traversal), adapted
// since this package's nodes carry no key to walk in order.
func (t *Tree) IsValid() error {
	root := t.Root()
	if isRed(root) {
		return fmt.Errorf("rbtree: root node is not black")
	}
	_, err := checkSubtree(root)
	return err
}

// checkSubtree returns the black-height of the subtree rooted at n, or an
// error describing the first invariant violation found.
func checkSubtree(n *Node) (int, error) {
	if n == nil {
		return 0, nil
	}

	l, r := n.Left(), n.Right()

	if isRed(n) && (isRed(l) || isRed(r)) {
		return 0, fmt.Errorf("rbtree: red node has a red child")
	}

	if l != nil {
		if lp := l.Parent(); lp != n {
			return 0, fmt.Errorf("rbtree: left child's parent is not its parent")
		}
	}
	if r != nil {
		if rp := r.Parent(); rp != n {
			return 0, fmt.Errorf("rbtree: right child's parent is not its parent")
		}
	}

	lh, err := checkSubtree(l)
	if err != nil {
		return 0, err
	}
	rh, err := checkSubtree(r)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("rbtree: black-height mismatch (%d vs %d)", lh, rh)
	}

	if isBlack(n) {
		lh++
	}
	return lh, nil
}
