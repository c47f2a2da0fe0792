package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kesimo/assocstore/bst"
	"github.com/kesimo/assocstore/hashtable"
	"github.com/pterm/pterm"
)

// treeNode converts the subtree at n into a pterm tree. side labels the link
// n hangs from.
func treeNode(n *bst.Node, side string) pterm.TreeNode {
	tn := pterm.TreeNode{Text: fmt.Sprintf("%s%c=%d", side, n.Key(), n.Value())}
	if n.Left() != nil {
		tn.Children = append(tn.Children, treeNode(n.Left(), "L "))
	}
	if n.Right() != nil {
		tn.Children = append(tn.Children, treeNode(n.Right(), "R "))
	}
	return tn
}

func traversalLine(t bst.Tree, order bst.Order) string {
	keys := bst.Keys(t, order)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string([]byte{k})
	}
	return strings.Join(parts, ", ")
}

// chainItems lists every non-empty bucket followed by its chain, head first.
func chainItems(tbl *hashtable.Table) []pterm.BulletListItem {
	var items []pterm.BulletListItem
	for i, n := range tbl.Distribution() {
		if n == 0 {
			continue
		}
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("bucket %d (%d)", i, n),
		})
		for _, e := range tbl.Chain(i) {
			items = append(items, pterm.BulletListItem{
				Level: 1,
				Text:  fmt.Sprintf("%q = %s", e.Key(), formatValue(e.Value())),
			})
		}
	}
	return items
}

// matchTable returns a header row plus one row per key matching pattern,
// in key order.
func matchTable(tbl *hashtable.Table, pattern string) pterm.TableData {
	data := pterm.TableData{{"key", "value"}}
	tbl.AscendKeys(pattern, func(key string, value float64) bool {
		data = append(data, []string{key, formatValue(value)})
		return true
	})
	return data
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
