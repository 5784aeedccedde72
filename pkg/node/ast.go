package node

// Node is the polymorphic tree value the evaluator consumes and rewrites.
// It is a pointer type: copying a Node value copies the pointer, so
// binding a Node into an Environment frame and later mutating its child
// slice through the tree is visible through the binding too, matching
// the aliasing contract in spec §9. Deep independence (e.g. per mixin
// expansion) is obtained only through Factory.Clone.
type Node struct {
	Path string
	Line int

	Variant  Variant
	Children []*Node

	Token *Token

	NumberValue float64
	BoolValue   bool
	Unit        string

	// ShouldEval is set by the parser collaborator on list/term nodes to
	// suppress re-evaluation of already-reduced subtrees (spec §3.1).
	ShouldEval bool

	backrefCache *bool
}

// Append adds children in order and returns the node, mirroring the
// source's `<<` builder idiom.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Splice appends another selector node's children flat into n's child
// list instead of nesting it as a single child, matching the `+=`
// flattening the selector expander relies on (spec §4.4).
func (n *Node) Splice(other *Node) *Node {
	if other.Variant == Selector {
		n.Children = append(n.Children, other.Children...)
	} else {
		n.Children = append(n.Children, other)
	}
	return n
}

// PopBack removes the last child, mirroring the source's `pop_back()`.
func (n *Node) PopBack() {
	if len(n.Children) == 0 {
		return
	}
	n.Children = n.Children[:len(n.Children)-1]
}

// Back returns the last child.
func (n *Node) Back() *Node {
	return n.Children[len(n.Children)-1]
}

// SetChildren wholesale-replaces the child list. Used by expansion
// handling to splice in an applicator result after clearing the name and
// argument children (spec §4.1, mixin expansion).
func (n *Node) SetChildren(children []*Node) {
	n.Children = children
}

// IsNumeric reports whether the node is a single-valued reduced numeric.
func (n *Node) IsNumeric() bool {
	return n.Variant.IsNumeric()
}

// NumericValue returns the node's scalar numeric payload. Meaningful for
// number, numeric_percentage, and numeric_dimension; for any other
// variant it returns NumberValue as stored, without checking the variant.
func (n *Node) NumericValue() float64 {
	return n.NumberValue
}

// HasBackref reports whether a backref node appears anywhere in n's
// subtree, memoizing the result on first computation per spec §9 ("the
// selector back-ref detection" note): expand_selector consults this
// before picking an expansion strategy, so it must not re-walk the tree
// on every call.
func (n *Node) HasBackref() bool {
	if n.backrefCache != nil {
		return *n.backrefCache
	}
	found := n.computeHasBackref()
	n.backrefCache = &found
	return found
}

func (n *Node) computeHasBackref() bool {
	if n.Variant == Backref {
		return true
	}
	for _, c := range n.Children {
		if c.computeHasBackref() {
			return true
		}
	}
	return false
}
