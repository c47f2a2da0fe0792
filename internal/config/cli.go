package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

const (
	configEnvVar    = "ASSOCSTORE_CONFIG"
	defaultFileName = "assocstore.toml"
)

// ActionFunc runs a subcommand with the merged configuration.
type ActionFunc func(ctx context.Context, cfg *Config, cmd *cli.Command) error

// CreateCommand builds the assocdemo command line. Global flags override the
// values read from the TOML file; both are merged before an action runs.
func CreateCommand(treeAction, tableAction ActionFunc, version string) *cli.Command {
	return &cli.Command{
		Name:    "assocdemo",
		Usage:   "exercise the ordered store and the chained hash store",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Custom location of the config file to load. Options given through the command
				line flags override the options set in this file.`,
				Sources: cli.EnvVars(configEnvVar),
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "number of hash table buckets (default: 101)",
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: `hash strategy, "sum" or "fnv" (default: sum)`,
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: `tree variant, "recursive" or "iterative" (default: iterative)`,
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: `traversal order, "preorder", "inorder" or "postorder" (default: inorder)`,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: trace, debug, info, warn, error (default: info)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "tree",
				Usage: "build an ordered store from a key sequence and print its traversals",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "keys",
						Usage: "characters to insert, in order; each gets its position as value",
						Value: "MDTAGPZ",
					},
					&cli.StringSliceFlag{
						Name:  "delete",
						Usage: "characters to delete after insertion",
					},
				},
				Action: withConfig(treeAction),
			},
			{
				Name:  "table",
				Usage: "fill a chained hash store and print its buckets",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "put",
						Usage: "key=value pair to insert",
					},
					&cli.StringSliceFlag{
						Name:  "delete",
						Usage: "key to delete after insertion",
					},
					&cli.StringFlag{
						Name:  "match",
						Usage: "glob pattern selecting the keys to list",
						Value: "*",
					},
				},
				Action: withConfig(tableAction),
			},
		},
	}
}

func withConfig(fn ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := Load(cmd)
		if err != nil {
			return err
		}
		if fn == nil {
			return nil
		}
		return fn(ctx, cfg, cmd)
	}
}

// Load reads the TOML file named by --config, or the first default file
// found, applies the flags that were set and validates the result.
func Load(cmd *cli.Command) (*Config, error) {
	path, err := searchTomlFile(cmd.String("config"), defaultLookupPaths())
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if path != "" {
		if cfg, err = fromTomlFile(path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyFlags(cfg, cmd)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *Config, cmd *cli.Command) {
	if cmd.IsSet("capacity") {
		cfg.Capacity = int(cmd.Int("capacity"))
		cfg.capacitySet = true
	}
	if cmd.IsSet("hash") {
		cfg.Hash = cmd.String("hash")
	}
	if cmd.IsSet("variant") {
		cfg.Variant = cmd.String("variant")
	}
	if cmd.IsSet("order") {
		cfg.Order = cmd.String("order")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
}

func defaultLookupPaths() []string {
	paths := []string{defaultFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "assocstore", defaultFileName))
	}
	return paths
}
