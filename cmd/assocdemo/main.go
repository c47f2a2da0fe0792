package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kesimo/assocstore/bst"
	"github.com/kesimo/assocstore/hashtable"
	"github.com/kesimo/assocstore/internal/config"
	"github.com/kesimo/assocstore/internal/logging"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	cmd := config.CreateCommand(runTree, runTable, version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func runTree(_ context.Context, cfg *config.Config, cmd *cli.Command) error {
	logger := logging.NewLogger(os.Stderr, cfg.Level())
	t := cfg.NewTree(bst.WithLogger(logging.WithScope(logger, "TREE")))
	defer t.Dispose()

	keys := cmd.String("keys")
	for i := 0; i < len(keys); i++ {
		t.Insert(keys[i], i)
	}
	logger.Info().Str("variant", cfg.Variant).Int("nodes", t.Len()).Int("height", t.Height()).Msg("tree built")
	if err := printTree(t, cfg.TraversalOrder()); err != nil {
		return err
	}

	deletes := cmd.StringSlice("delete")
	if len(deletes) == 0 {
		return nil
	}
	for _, d := range deletes {
		for i := 0; i < len(d); i++ {
			t.Delete(d[i])
		}
	}
	logger.Info().Strs("deleted", deletes).Int("nodes", t.Len()).Msg("keys deleted")
	return printTree(t, cfg.TraversalOrder())
}

func printTree(t bst.Tree, order bst.Order) error {
	pterm.DefaultSection.Printfln("%d nodes, height %d", t.Len(), t.Height())
	if root := t.Root(); root != nil {
		if err := pterm.DefaultTree.WithRoot(treeNode(root, "")).Render(); err != nil {
			return err
		}
	}
	for _, o := range []bst.Order{bst.Preorder, bst.Inorder, bst.Postorder} {
		line := fmt.Sprintf("%-9s : %s", o, traversalLine(t, o))
		if o == order {
			pterm.Info.Println(line)
		} else {
			pterm.DefaultBasicText.Println(line)
		}
	}
	return nil
}

func runTable(_ context.Context, cfg *config.Config, cmd *cli.Command) error {
	logger := logging.NewLogger(os.Stderr, cfg.Level())
	tbl, err := cfg.NewTable(hashtable.WithLogger(logging.WithScope(logger, "TABLE")))
	if err != nil {
		return err
	}
	defer tbl.DeleteAll()

	for _, kv := range cmd.StringSlice("put") {
		key, value, err := parsePut(kv)
		if err != nil {
			return err
		}
		tbl.Insert(key, value)
	}
	for _, key := range cmd.StringSlice("delete") {
		tbl.Delete(key)
	}
	logger.Info().Str("hash", cfg.Hash).Int("capacity", tbl.Capacity()).Int("entries", tbl.Len()).Msg("table filled")

	pterm.DefaultSection.Printfln("%d entries in %d buckets (%s hash)", tbl.Len(), tbl.Capacity(), cfg.Hash)
	if items := chainItems(tbl); len(items) > 0 {
		if err := pterm.DefaultBulletList.WithItems(items).Render(); err != nil {
			return err
		}
	}
	data := matchTable(tbl, cmd.String("match"))
	if len(data) == 1 {
		pterm.Warning.Printfln("no key matches %q", cmd.String("match"))
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// parsePut splits a "key=value" argument.
func parsePut(kv string) (string, float64, error) {
	key, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("put %q: missing '='", kv)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("put %q: %w", kv, err)
	}
	return key, value, nil
}
