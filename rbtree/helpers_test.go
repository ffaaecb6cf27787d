package rbtree

import (
	"math/rand"
	"unsafe"
)

// tnode is a minimal intrusive payload used throughout this package's
// tests: Node is embedded as the first field, so a *Node returned from any
// Tree operation can be recovered as a *tnode via unsafe.Pointer. This is
// the same container-of pattern [rbmap.Entry] uses in production code.
type tnode struct {
	Node
	key int
}

func keyOf(n *Node) int {
	return (*tnode)(unsafe.Pointer(n)).key
}

// treeInsert performs a caller-driven comparator search and links a new
// tnode with the given key, exactly as the package doc's example shows.
// It returns false without modifying the tree if key is already present.
func treeInsert(tr *Tree, key int) bool {
	var parent *Node
	side := LeftSide
	cur := tr.Root()
	for cur != nil {
		ck := keyOf(cur)
		switch {
		case key < ck:
			parent, side, cur = cur, LeftSide, cur.Left()
		case key > ck:
			parent, side, cur = cur, RightSide, cur.Right()
		default:
			return false
		}
	}
	tr.Add(parent, side, &(&tnode{key: key}).Node)
	return true
}

func treeSearch(tr *Tree, key int) *Node {
	cur := tr.Root()
	for cur != nil {
		ck := keyOf(cur)
		switch {
		case key < ck:
			cur = cur.Left()
		case key > ck:
			cur = cur.Right()
		default:
			return cur
		}
	}
	return nil
}

func treeDelete(tr *Tree, key int) bool {
	n := treeSearch(tr, key)
	if n == nil {
		return false
	}
	tr.Remove(n)
	return true
}

func collectInOrder(tr *Tree) []int {
	var out []int
	for n := tr.First(); n != nil; n = n.Next() {
		out = append(out, keyOf(n))
	}
	return out
}

// height returns the number of edges on the longest root-to-nil path.
func height(n *Node) int {
	if n == nil {
		return 0
	}
	l, r := height(n.Left()), height(n.Right())
	if l > r {
		return l + 1
	}
	return r + 1
}

// shuffled returns a deterministic pseudo-random permutation of
// [0, n), seeded for reproducibility across test runs.
func shuffled(n int, seed int64) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
