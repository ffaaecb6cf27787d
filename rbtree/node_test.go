package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Black", Black.String())
}

func TestNode_NilSafety(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.False(t, n.IsLinked())
	assert.Nil(t, n.Leftmost())
	assert.Nil(t, n.Rightmost())
	assert.Nil(t, n.Leftdeepest())
	assert.Nil(t, n.Rightdeepest())
	assert.Nil(t, n.Next())
	assert.Nil(t, n.Prev())
}

func TestNode_Init(t *testing.T) {
	tn := &tnode{key: 1}
	tn.Init()
	require.False(t, tn.IsLinked())
	assert.Nil(t, tn.Left())
	assert.Nil(t, tn.Right())
}

func TestNode_IsLinked(t *testing.T) {
	var tr Tree
	a := &tnode{key: 1}
	a.Init()
	assert.False(t, a.IsLinked())

	tr.Add(nil, LeftSide, &a.Node)
	assert.True(t, a.IsLinked())

	tr.RemoveInit(&a.Node)
	assert.False(t, a.IsLinked())
}

func TestIsRedIsBlack_NilCountsBlack(t *testing.T) {
	assert.False(t, isRed(nil))
	assert.True(t, isBlack(nil))
}
