// Package bst implements an ordered key/value store on an unbalanced binary
// search tree. Keys are single bytes, values are ints.
//
// Two interchangeable variants are provided. Recursive expresses every
// operation as structural recursion over link slots; its call depth equals
// the tree height. Iterative performs the same operations with a cursor over
// link slots and an explicit stack, so a degenerate tree of any size can be
// walked without growing the call stack. Both produce identical visit
// sequences for preorder, inorder and postorder traversal.
//
// The tree is never rebalanced, and neither variant is safe for concurrent
// use.
package bst

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrUnknownOrder is returned by ParseOrder for an unrecognized name.
var ErrUnknownOrder = errors.New("unknown traversal order")

// VisitFunc is invoked once per node during a traversal. It must not mutate
// the tree it is visiting.
type VisitFunc func(key byte, value int)

// Tree is the contract shared by the Recursive and Iterative stores.
type Tree interface {
	Init()
	Search(key byte) (value int, found bool)
	Insert(key byte, value int)
	Delete(key byte)
	Dispose()
	Preorder(fn VisitFunc)
	Inorder(fn VisitFunc)
	Postorder(fn VisitFunc)
	Len() int
	Height() int
	Root() *Node
}

var (
	_ Tree = (*Recursive)(nil)
	_ Tree = (*Iterative)(nil)
)

// Node is a single key/value pair of the tree. Every node is owned by exactly
// one link: its parent's child field or the tree's root.
type Node struct {
	key   byte
	value int
	left  *Node
	right *Node
}

func newNode(key byte, value int) *Node {
	return &Node{key: key, value: value}
}

// Key returns the node's key.
func (n *Node) Key() byte { return n.key }

// Value returns the node's value.
func (n *Node) Value() int { return n.value }

// Left returns the root of the left subtree, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the root of the right subtree, or nil.
func (n *Node) Right() *Node { return n.right }

// release detaches a removed node from the subtrees it used to own.
func (n *Node) release() {
	n.left = nil
	n.right = nil
}

// Order selects a depth-first traversal.
type Order int

const (
	Preorder Order = iota
	Inorder
	Postorder
)

var orderNames = [...]string{
	Preorder:  "preorder",
	Inorder:   "inorder",
	Postorder: "postorder",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder converts a case-insensitive order name to an Order.
func ParseOrder(name string) (Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("bst: %w: %q", ErrUnknownOrder, name)
}

// Walk runs the traversal selected by order over t.
func Walk(t Tree, order Order, fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	switch order {
	case Preorder:
		t.Preorder(fn)
	case Inorder:
		t.Inorder(fn)
	case Postorder:
		t.Postorder(fn)
	}
}

// Keys returns the keys of t in the given traversal order.
func Keys(t Tree, order Order) []byte {
	var keys []byte
	if t != nil {
		keys = make([]byte, 0, t.Len())
	}
	Walk(t, order, func(key byte, _ int) {
		keys = append(keys, key)
	})
	return keys
}

// Option configures a tree at construction.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger that receives debug events about structural
// changes. Trees log nothing by default.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func keyString(key byte) string {
	return string([]byte{key})
}
