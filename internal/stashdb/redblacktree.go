package stashdb

import (
	"fmt"
)

type color bool

const (
	black, red color = true, false
)

// redBlackTree ordered index id -> Record
//
// IMPORTANT: redBlackTree does not provide thread safety
type redBlackTree struct {
	root *redBlackNode
	size int
}

// redBlackNode is a tree element
type redBlackNode struct {
	id     uint64
	rec    Record
	color  color
	left   *redBlackNode
	right  *redBlackNode
	parent *redBlackNode
}

func newRedBlackTree() *redBlackTree {
	return &redBlackTree{}
}

// put inserts the record into the tree, an existing record with the same id is replaced
func (t *redBlackTree) put(rec Record) {
	var insertedNode *redBlackNode
	if t.root == nil {
		t.root = &redBlackNode{id: rec.ID, rec: rec, color: red}
		insertedNode = t.root
	} else {
		curNode := t.root
		for insertedNode == nil {
			switch {
			case rec.ID == curNode.id:
				curNode.rec = rec
				return
			case rec.ID < curNode.id:
				if curNode.left == nil {
					curNode.left = &redBlackNode{id: rec.ID, rec: rec, color: red, parent: curNode}
					insertedNode = curNode.left
				} else {
					curNode = curNode.left
				}
			default:
				if curNode.right == nil {
					curNode.right = &redBlackNode{id: rec.ID, rec: rec, color: red, parent: curNode}
					insertedNode = curNode.right
				} else {
					curNode = curNode.right
				}
			}
		}
	}
	t.insertCase1(insertedNode)
	t.size++
}

// get searches the node in the tree, nil not found
func (t *redBlackTree) get(id uint64) *redBlackNode {
	curNode := t.root
	for curNode != nil {
		switch {
		case id == curNode.id:
			return curNode
		case id < curNode.id:
			curNode = curNode.left
		default:
			curNode = curNode.right
		}
	}
	return nil
}

// remove the node from the tree and return its record
func (t *redBlackTree) remove(id uint64) (Record, bool) {
	delNode := t.get(id)
	if delNode == nil {
		return Record{}, false
	}
	removed := delNode.rec

	if delNode.left != nil && delNode.right != nil {
		replacementNode := delNode.left.maximumNode()
		delNode.id = replacementNode.id
		delNode.rec = replacementNode.rec
		delNode = replacementNode
	}

	var childNode *redBlackNode
	if delNode.right == nil {
		childNode = delNode.left
	} else {
		childNode = delNode.right
	}
	if delNode.color == black {
		delNode.color = nodeColor(childNode)
		t.deleteCase1(delNode)
	}
	t.replaceNode(delNode, childNode)
	if delNode.parent == nil && childNode != nil {
		childNode.color = black
	}

	t.size--
	return removed, true
}

// last the node with the largest id, nil if the tree is empty
func (t *redBlackTree) last() *redBlackNode {
	if t.root == nil {
		return nil
	}
	return t.root.maximumNode()
}

// sizeof returns number of nodes
func (t *redBlackTree) sizeof() int {
	return t.size
}

// sizeof returns the number of elements in the subtree.
func (n *redBlackNode) sizeof() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.sizeof() + n.right.sizeof()
}

// String implements Stringer interface
func (t *redBlackTree) String() string {
	str := "redBlackTree\n"
	if t.root != nil {
		output(t.root, "", true, &str)
	}
	return str
}

func (n *redBlackNode) String() string {
	c := "R"
	if n.color == black {
		c = "B"
	}
	return fmt.Sprintf("%s %d", c, n.id)
}

func output(node *redBlackNode, prefix string, isTail bool, str *string) {
	if node.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		output(node.right, newPrefix, false, str)
	}

	*str += prefix
	if isTail {
		*str += "└── "
	} else {
		*str += "┌── "
	}

	*str += node.String() + "\n"
	if node.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		output(node.left, newPrefix, true, str)
	}
}

func (n *redBlackNode) grandparent() *redBlackNode {
	if n != nil && n.parent != nil {
		return n.parent.parent
	}
	return nil
}

func (n *redBlackNode) uncle() *redBlackNode {
	if n == nil || n.parent == nil || n.parent.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

func (n *redBlackNode) sibling() *redBlackNode {
	if n == nil || n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

func (n *redBlackNode) maximumNode() *redBlackNode {
	curNode := n
	for curNode.right != nil {
		curNode = curNode.right
	}
	return curNode
}

func (t *redBlackTree) rotateLeft(node *redBlackNode) {
	right := node.right
	t.replaceNode(node, right)
	node.right = right.left
	if right.left != nil {
		right.left.parent = node
	}
	right.left = node
	node.parent = right
}

func (t *redBlackTree) rotateRight(node *redBlackNode) {
	left := node.left
	t.replaceNode(node, left)
	node.left = left.right
	if left.right != nil {
		left.right.parent = node
	}
	left.right = node
	node.parent = left
}

func (t *redBlackTree) replaceNode(old *redBlackNode, new *redBlackNode) {
	if old.parent == nil {
		t.root = new
	} else {
		if old == old.parent.left {
			old.parent.left = new
		} else {
			old.parent.right = new
		}
	}
	if new != nil {
		new.parent = old.parent
	}
}

func (t *redBlackTree) insertCase1(node *redBlackNode) {
	if node.parent == nil {
		node.color = black
	} else {
		t.insertCase2(node)
	}
}

func (t *redBlackTree) insertCase2(node *redBlackNode) {
	if nodeColor(node.parent) == black {
		return
	}
	t.insertCase3(node)
}

func (t *redBlackTree) insertCase3(node *redBlackNode) {
	uncleNode := node.uncle()
	if nodeColor(uncleNode) == red {
		node.parent.color = black
		uncleNode.color = black
		node.grandparent().color = red
		t.insertCase1(node.grandparent())
	} else {
		t.insertCase4(node)
	}
}

func (t *redBlackTree) insertCase4(node *redBlackNode) {
	grandparentNode := node.grandparent()
	if node == node.parent.right && node.parent == grandparentNode.left {
		t.rotateLeft(node.parent)
		node = node.left
	} else if node == node.parent.left && node.parent == grandparentNode.right {
		t.rotateRight(node.parent)
		node = node.right
	}
	t.insertCase5(node)
}

func (t *redBlackTree) insertCase5(node *redBlackNode) {
	node.parent.color = black
	grandparentNode := node.grandparent()
	grandparentNode.color = red
	if node == node.parent.left && node.parent == grandparentNode.left {
		t.rotateRight(grandparentNode)
	} else if node == node.parent.right && node.parent == grandparentNode.right {
		t.rotateLeft(grandparentNode)
	}
}

func (t *redBlackTree) deleteCase1(node *redBlackNode) {
	if node.parent == nil {
		return
	}
	t.deleteCase2(node)
}

func (t *redBlackTree) deleteCase2(node *redBlackNode) {
	siblingNode := node.sibling()
	if nodeColor(siblingNode) == red {
		node.parent.color = red
		siblingNode.color = black
		if node == node.parent.left {
			t.rotateLeft(node.parent)
		} else {
			t.rotateRight(node.parent)
		}
	}
	t.deleteCase3(node)
}

func (t *redBlackTree) deleteCase3(node *redBlackNode) {
	siblingNode := node.sibling()
	if nodeColor(node.parent) == black &&
		nodeColor(siblingNode) == black &&
		nodeColor(siblingNode.left) == black &&
		nodeColor(siblingNode.right) == black {
		siblingNode.color = red
		t.deleteCase1(node.parent)
	} else {
		t.deleteCase4(node)
	}
}

func (t *redBlackTree) deleteCase4(node *redBlackNode) {
	siblingNode := node.sibling()
	if nodeColor(node.parent) == red &&
		nodeColor(siblingNode) == black &&
		nodeColor(siblingNode.left) == black &&
		nodeColor(siblingNode.right) == black {
		siblingNode.color = red
		node.parent.color = black
	} else {
		t.deleteCase5(node)
	}
}

func (t *redBlackTree) deleteCase5(node *redBlackNode) {
	siblingNode := node.sibling()
	if node == node.parent.left &&
		nodeColor(siblingNode) == black &&
		nodeColor(siblingNode.left) == red &&
		nodeColor(siblingNode.right) == black {
		siblingNode.color = red
		siblingNode.left.color = black
		t.rotateRight(siblingNode)
	} else if node == node.parent.right &&
		nodeColor(siblingNode) == black &&
		nodeColor(siblingNode.right) == red &&
		nodeColor(siblingNode.left) == black {
		siblingNode.color = red
		siblingNode.right.color = black
		t.rotateLeft(siblingNode)
	}
	t.deleteCase6(node)
}

func (t *redBlackTree) deleteCase6(node *redBlackNode) {
	siblingNode := node.sibling()
	siblingNode.color = nodeColor(node.parent)
	node.parent.color = black
	if node == node.parent.left && nodeColor(siblingNode.right) == red {
		siblingNode.right.color = black
		t.rotateLeft(node.parent)
	} else if nodeColor(siblingNode.left) == red {
		siblingNode.left.color = black
		t.rotateRight(node.parent)
	}
}

func nodeColor(node *redBlackNode) color {
	if node == nil {
		return black
	}
	return node.color
}
