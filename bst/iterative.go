package bst

import (
	"github.com/kesimo/assocstore/internal/stack"
	"github.com/rs/zerolog"
)

// Iterative is the non-recursive variant of the ordered store. Lookups and
// mutations walk a cursor over link slots; disposal, height and the
// traversals simulate recursion with an explicit stack.
// The zero value is an empty tree that logs nothing.
type Iterative struct {
	root  *Node
	count int
	log   zerolog.Logger
}

// NewIterative returns an empty iterative tree.
func NewIterative(opts ...Option) *Iterative {
	o := buildOptions(opts)
	return &Iterative{log: o.log}
}

// Init resets the tree to empty. Nodes still attached are dropped, not
// released; use Dispose to release them.
func (t *Iterative) Init() {
	if t == nil {
		return
	}
	t.root = nil
	t.count = 0
}

// Root returns the root node, or nil when the tree is empty.
func (t *Iterative) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Iterative) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Search returns the value stored under key.
func (t *Iterative) Search(key byte) (value int, found bool) {
	if t == nil {
		return 0, false
	}
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	return 0, false
}

// Insert stores value under key, overwriting the value of an existing key.
func (t *Iterative) Insert(key byte, value int) {
	if t == nil {
		return
	}
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			n.value = value
			return
		}
	}
	*link = newNode(key, value)
	t.count++
	t.log.Debug().Str("key", keyString(key)).Int("value", value).Msg("node inserted")
}

// Delete removes key from the tree. A node with two children takes over the
// key and value of the rightmost node of its left subtree, which is removed
// in its place.
func (t *Iterative) Delete(key byte) {
	if t == nil {
		return
	}
	link := &t.root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	n := *link
	if n == nil {
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
func (t *Iterative) replaceByRightmost(target *Node, link **Node) {
	if target == nil || link == nil || *link == nil {
		return
	}
	for (*link).right != nil {
		link = &(*link).right
	}
	n := *link
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
//
// It walks down left links releasing each node on the way and parks right
// subtrees on a stack until the left walk runs out.
func (t *Iterative) Dispose() {
	if t == nil || t.root == nil {
		return
	}
	var pending stack.Stack[*Node]
	released := 0
	n := t.root
	for n != nil || !pending.IsEmpty() {
		if n == nil {
			n = pending.Pop()
			continue
		}
		if n.right != nil {
			pending.Push(n.right)
		}
		left := n.left
		n.release()
		released++
		n = left
	}
	t.root = nil
	t.count = 0
	t.log.Debug().Int("released", released).Msg("tree disposed")
}

// Height returns the number of nodes on the longest path from the root.
func (t *Iterative) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	var (
		nodes  stack.Stack[*Node]
		depths stack.Stack[int]
		h      int
	)
	nodes.Push(t.root)
	depths.Push(1)
	for !nodes.IsEmpty() {
		n, d := nodes.Pop(), depths.Pop()
		h = max(h, d)
		if n.left != nil {
			nodes.Push(n.left)
			depths.Push(d + 1)
		}
		if n.right != nil {
			nodes.Push(n.right)
			depths.Push(d + 1)
		}
	}
	return h
}

// leftmostPreorder visits every node on the left spine of n and pushes it.
func leftmostPreorder(n *Node, toVisit *stack.Stack[*Node], fn VisitFunc) {
	for ; n != nil; n = n.left {
		fn(n.key, n.value)
		toVisit.Push(n)
	}
}

// Preorder visits each node before its left and right subtrees.
func (t *Iterative) Preorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	var toVisit stack.Stack[*Node]
	leftmostPreorder(t.root, &toVisit, fn)
	for !toVisit.IsEmpty() {
		n := toVisit.Pop()
		leftmostPreorder(n.right, &toVisit, fn)
	}
}

// leftmostInorder pushes every node on the left spine of n.
func leftmostInorder(n *Node, toVisit *stack.Stack[*Node]) {
	for ; n != nil; n = n.left {
		toVisit.Push(n)
	}
}

// Inorder visits the nodes in ascending key order.
func (t *Iterative) Inorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	var toVisit stack.Stack[*Node]
	leftmostInorder(t.root, &toVisit)
	for !toVisit.IsEmpty() {
		n := toVisit.Pop()
		fn(n.key, n.value)
		leftmostInorder(n.right, &toVisit)
	}
}

// phase records how far a stacked node is through a postorder walk.
type phase uint8

const (
	// descendedLeft: the left subtree is done, the right one is unexplored.
	descendedLeft phase = iota
	// descendedRight: both subtrees are done, the node is due for a visit.
	descendedRight
)

// leftmostPostorder pushes every node on the left spine of n, each marked
// as having just finished its left descent.
func leftmostPostorder(n *Node, toVisit *stack.Stack[*Node], phases *stack.Stack[phase]) {
	for ; n != nil; n = n.left {
		toVisit.Push(n)
		phases.Push(descendedLeft)
	}
}

// Postorder visits each node after both of its subtrees.
//
// A node on top of the stack is reached twice: once coming back from its
// left subtree and once coming back from its right subtree. The parallel
// phase stack tells the two apart; only the second one visits.
func (t *Iterative) Postorder(fn VisitFunc) {
	if t == nil || fn == nil {
		return
	}
	var (
		toVisit stack.Stack[*Node]
		phases  stack.Stack[phase]
	)
	leftmostPostorder(t.root, &toVisit, &phases)
	for !toVisit.IsEmpty() {
		n := toVisit.Top()
		if phases.Pop() == descendedLeft {
			phases.Push(descendedRight)
			leftmostPostorder(n.right, &toVisit, &phases)
			continue
		}
		toVisit.Pop()
		fn(n.key, n.value)
	}
}
