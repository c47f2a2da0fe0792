package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kesimo/assocstore/bst"
	"github.com/kesimo/assocstore/hashtable"
	"github.com/kesimo/assocstore/internal/logging"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidHash is returned for an unknown hash strategy name.
	ErrInvalidHash = errors.New("invalid hash strategy")

	// ErrInvalidVariant is returned for an unknown tree variant name.
	ErrInvalidVariant = errors.New("invalid tree variant")
)

const (
	HashSum = "sum"
	HashFNV = "fnv"

	VariantRecursive = "recursive"
	VariantIterative = "iterative"
)

// Config holds the demo driver settings. Zero fields are filled with defaults
// by Normalize, except a capacity that was set explicitly by the file or a
// flag.
type Config struct {
	Capacity int    `toml:"capacity"`
	Hash     string `toml:"hash"`
	Variant  string `toml:"variant"`
	Order    string `toml:"order"`
	LogLevel string `toml:"log-level"`

	capacitySet bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Capacity: hashtable.DefaultCapacity,
		Hash:     HashSum,
		Variant:  VariantIterative,
		Order:    bst.Inorder.String(),
		LogLevel: "info",
	}
}

// Normalize lower-cases names and fills empty fields from Default. An
// explicitly set capacity is kept as is, so Validate rejects a set 0.
func (c *Config) Normalize() {
	def := Default()
	if c.Capacity == 0 && !c.capacitySet {
		c.Capacity = def.Capacity
	}
	c.Hash = orDefault(c.Hash, def.Hash)
	c.Variant = orDefault(c.Variant, def.Variant)
	c.Order = orDefault(c.Order, def.Order)
	c.LogLevel = orDefault(c.LogLevel, def.LogLevel)
}

func orDefault(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("field %q: %w: %d", "capacity", hashtable.ErrInvalidCapacity, c.Capacity)
	}
	switch c.Hash {
	case HashSum, HashFNV:
	default:
		return fmt.Errorf("field %q: %w: %q", "hash", ErrInvalidHash, c.Hash)
	}
	switch c.Variant {
	case VariantRecursive, VariantIterative:
	default:
		return fmt.Errorf("field %q: %w: %q", "variant", ErrInvalidVariant, c.Variant)
	}
	if _, err := bst.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("field %q: %w", "order", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("field %q: %w", "log-level", err)
	}
	return nil
}

// HashFunc returns the configured hash strategy.
func (c *Config) HashFunc() hashtable.HashFunc {
	if c.Hash == HashFNV {
		return hashtable.FNVHash
	}
	return hashtable.SumHash
}

// NewTree returns an empty tree of the configured variant.
func (c *Config) NewTree(opts ...bst.Option) bst.Tree {
	if c.Variant == VariantRecursive {
		return bst.NewRecursive(opts...)
	}
	return bst.NewIterative(opts...)
}

// NewTable returns an empty table with the configured capacity and hash.
func (c *Config) NewTable(opts ...hashtable.Option) (*hashtable.Table, error) {
	opts = append([]hashtable.Option{hashtable.WithHashFunc(c.HashFunc())}, opts...)
	return hashtable.New(c.Capacity, opts...)
}

// TraversalOrder returns the configured order, Inorder if it does not parse.
func (c *Config) TraversalOrder() bst.Order {
	o, err := bst.ParseOrder(c.Order)
	if err != nil {
		return bst.Inorder
	}
	return o
}

// Level returns the configured log level, info if it does not parse.
func (c *Config) Level() zerolog.Level {
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
