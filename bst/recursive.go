package bst

import "github.com/rs/zerolog"

// Recursive is the recursive variant of the ordered store.
// The zero value is an empty tree that logs nothing.
type Recursive struct {
	root  *Node
	count int
	log   zerolog.Logger
}

// NewRecursive returns an empty recursive tree.
func NewRecursive(opts ...Option) *Recursive {
	o := buildOptions(opts)
	return &Recursive{log: o.log}
}

// Init resets the tree to empty. Nodes still attached are dropped, not
// released; use Dispose to release them.
func (t *Recursive) Init() {
	if t == nil {
		return
	}
	t.root = nil
	t.count = 0
}

// Root returns the root node, or nil when the tree is empty.
func (t *Recursive) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Recursive) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Search returns the value stored under key.
func (t *Recursive) Search(key byte) (value int, found bool) {
	if t == nil {
		return 0, false
	}
	return search(t.root, key)
}

func search(n *Node, key byte) (int, bool) {
	if n == nil {
		return 0, false
	}
	switch {
	case key < n.key:
		return search(n.left, key)
	case key > n.key:
		return search(n.right, key)
	}
	return n.value, true
}

// Insert stores value under key, overwriting the value of an existing key.
func (t *Recursive) Insert(key byte, value int) {
	if t == nil {
		return
	}
	t.insert(&t.root, key, value)
}

func (t *Recursive) insert(link **Node, key byte, value int) {
	n := *link
	if n == nil {
		*link = newNode(key, value)
		t.count++
		t.log.Debug().Str("key", keyString(key)).Int("value", value).Msg("node inserted")
		return
	}
	switch {
	case key < n.key:
		t.insert(&n.left, key, value)
	case key > n.key:
		t.insert(&n.right, key, value)
	default:
		n.value = value
	}
}

// Delete removes key from the tree. A node with two children takes over the
// key and value of the rightmost node of its left subtree, which is removed
// in its place.
func (t *Recursive) Delete(key byte) {
	if t == nil {
		return
	}
	t.delete(&t.root, key)
}

func (t *Recursive) delete(link **Node, key byte) {
	n := *link
	if n == nil {
		return
	}
	switch {
	case key < n.key:
		t.delete(&n.left, key)
		return
	case key > n.key:
		t.delete(&n.right, key)
		return
	}
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		t.replaceByRightmost(n, &n.left)
		return
	}
	n.release()
	t.count--
	t.log.Debug().Str("key", keyString(key)).Msg("node deleted")
}

// replaceByRightmost moves the key and value of the rightmost node below
// link into target and unlinks that node, handing its left subtree to its
// parent.
func (t *Recursive) replaceByRightmost(target *Node, link **Node) {
	if target == nil || link == nil || *link == nil {
		return
	}
	n := *link
	if n.right != nil {
		t.replaceByRightmost(target, &n.right)
		return
	}
	t.log.Debug().
		Str("key", keyString(target.key)).
		Str("replacement", keyString(n.key)).
		Msg("node replaced by rightmost")
	target.key, target.value = n.key, n.value
	*link = n.left
	n.release()
	t.count--
}

// Dispose releases every node. The tree ends up as if freshly initialized.
func (t *Recursive) Dispose() {
	if t == nil {
		return
	}
	released := dispose(t.root)
	t.root = nil
	t.count = 0
	t.log.Debug().Int("released", released).Msg("tree disposed")
}

func dispose(n *Node) int {
	if n == nil {
		return 0
	}
	released := dispose(n.left) + dispose(n.right)
	n.release()
	return released + 1
}

// Height returns the number of nodes on the longest path from the root.
func (t *Recursive) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Preorder visits each node before its left and right subtrees.
func (t *Recursive) Preorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	preorder(t.root, fn)
}

func preorder(n *Node, fn VisitFunc) {
	if n == nil {
		return
	}
	fn(n.key, n.value)
	preorder(n.left, fn)
	preorder(n.right, fn)
}

// Inorder visits the nodes in ascending key order.
func (t *Recursive) Inorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	inorder(t.root, fn)
}

func inorder(n *Node, fn VisitFunc) {
	if n == nil {
		return
	}
	inorder(n.left, fn)
	fn(n.key, n.value)
	inorder(n.right, fn)
}

// Postorder visits each node after both of its subtrees.
func (t *Recursive) Postorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	postorder(t.root, fn)
}

func postorder(n *Node, fn VisitFunc) {
	if n == nil {
		return
	}
	postorder(n.left, fn)
	postorder(n.right, fn)
	fn(n.key, n.value)
}
