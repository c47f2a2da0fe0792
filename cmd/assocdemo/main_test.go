package main

import (
	"testing"

	"github.com/kesimo/assocstore/bst"
	"github.com/kesimo/assocstore/hashtable"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePut(t *testing.T) {
	key, value, err := parsePut("a=1.5")
	require.NoError(t, err)
	assert.Equal(t, "a", key)
	assert.Equal(t, 1.5, value)

	_, _, err = parsePut("x=y= 2")
	assert.Error(t, err)

	key, value, err = parsePut("=3")
	require.NoError(t, err)
	assert.Equal(t, "", key)
	assert.Equal(t, 3.0, value)

	_, _, err = parsePut("novalue")
	assert.ErrorContains(t, err, "missing '='")
	_, _, err = parsePut("k=abc")
	assert.Error(t, err)
}

func TestTreeNode(t *testing.T) {
	tr := bst.NewIterative()
	for i, k := range []byte("MDTA") {
		tr.Insert(k, i)
	}
	got := treeNode(tr.Root(), "")
	assert.Equal(t, pterm.TreeNode{
		Text: "M=0",
		Children: []pterm.TreeNode{
			{Text: "L D=1", Children: []pterm.TreeNode{{Text: "L A=3"}}},
			{Text: "R T=2"},
		},
	}, got)
	assert.Equal(t, "A, D, M, T", traversalLine(tr, bst.Inorder))
	assert.Equal(t, "A, D, T, M", traversalLine(tr, bst.Postorder))
}

func TestChainItemsAndMatchTable(t *testing.T) {
	tbl, err := hashtable.New(7)
	require.NoError(t, err)
	tbl.Insert("a", 1)
	tbl.Insert("h", 2.5)
	tbl.Insert("b", 3)

	assert.Equal(t, []pterm.BulletListItem{
		{Level: 0, Text: "bucket 0 (2)"},
		{Level: 1, Text: `"h" = 2.5`},
		{Level: 1, Text: `"a" = 1`},
		{Level: 0, Text: "bucket 1 (1)"},
		{Level: 1, Text: `"b" = 3`},
	}, chainItems(tbl))

	assert.Equal(t, pterm.TableData{
		{"key", "value"},
		{"a", "1"},
		{"b", "3"},
		{"h", "2.5"},
	}, matchTable(tbl, "*"))
	assert.Len(t, matchTable(tbl, "z*"), 1)
}
