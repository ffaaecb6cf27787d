package rbtree

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// BenchmarkTree_Insert measures inserting n keys into an initially empty
// tree, comparator search and one node allocation per key included.
func BenchmarkTree_Insert(b *testing.B) {
	const n = 4096
	keys := shuffled(n, 42)

	for b.Loop() {
		var tr Tree
		for _, k := range keys {
			treeInsert(&tr, k)
		}
	}
}

// BenchmarkGodsRedBlackTree_Insert is the same workload against
// github.com/emirpasic/gods' owning red-black tree, kept as a reference
// point for the overhead an intrusive, allocation-free container removes.
func BenchmarkGodsRedBlackTree_Insert(b *testing.B) {
	const n = 4096
	keys := shuffled(n, 42)

	for b.Loop() {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkTree_Search(b *testing.B) {
	const n = 4096
	var tr Tree
	for _, k := range shuffled(n, 42) {
		treeInsert(&tr, k)
	}
	keys := shuffled(n, 99)

	b.ResetTimer()
	for b.Loop() {
		for _, k := range keys {
			treeSearch(&tr, k)
		}
	}
}

func BenchmarkTree_InOrderTraversal(b *testing.B) {
	const n = 4096
	var tr Tree
	for _, k := range shuffled(n, 42) {
		treeInsert(&tr, k)
	}

	b.ResetTimer()
	for b.Loop() {
		sum := 0
		for n := tr.First(); n != nil; n = n.Next() {
			sum += keyOf(n)
		}
	}
}
