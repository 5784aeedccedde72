package node

// Factory is a monotonic arena that owns all node storage for one
// evaluation run (spec §3.4). The zero value is ready to use: unlike a
// real bump allocator, Casper's Factory only needs to provide constructors
// and a deep-clone operation, since Go's garbage collector retires the
// backing storage once the last *Node reference drops.
type Factory struct {
	allocations int
}

// Allocations returns the number of nodes constructed by this factory,
// useful for tests asserting that mixin expansion clones rather than
// aliases a body.
func (f *Factory) Allocations() int {
	return f.allocations
}

func (f *Factory) alloc(path string, line int, variant Variant) *Node {
	f.allocations++
	return &Node{Path: path, Line: line, Variant: variant}
}

// New constructs a bare node of the given variant with no children.
func (f *Factory) New(path string, line int, variant Variant) *Node {
	return f.alloc(path, line, variant)
}

// NewWithChildren constructs a node of the given variant with children.
func (f *Factory) NewWithChildren(path string, line int, variant Variant, children ...*Node) *Node {
	n := f.alloc(path, line, variant)
	n.Children = children
	return n
}

// NewNumber constructs a reduced dimensionless number.
func (f *Factory) NewNumber(path string, line int, value float64) *Node {
	n := f.alloc(path, line, Number)
	n.NumberValue = value
	return n
}

// NewPercentage constructs a reduced numeric_percentage.
func (f *Factory) NewPercentage(path string, line int, value float64) *Node {
	n := f.alloc(path, line, NumericPercentage)
	n.NumberValue = value
	return n
}

// NewDimension constructs a reduced numeric_dimension. unit must be
// non-empty per the invariant in spec §3.6.
func (f *Factory) NewDimension(path string, line int, value float64, unit string) *Node {
	n := f.alloc(path, line, NumericDimension)
	n.NumberValue = value
	n.Unit = unit
	return n
}

// NewColor constructs a reduced numeric_color with exactly four numeric
// children in red, green, blue, alpha order, per spec §3.1.
func (f *Factory) NewColor(path string, line int, r, g, b, a float64) *Node {
	n := f.alloc(path, line, NumericColor)
	n.Children = []*Node{
		f.NewNumber(path, line, r),
		f.NewNumber(path, line, g),
		f.NewNumber(path, line, b),
		f.NewNumber(path, line, a),
	}
	return n
}

// NewBoolean constructs a reduced boolean literal.
func (f *Factory) NewBoolean(path string, line int, value bool) *Node {
	n := f.alloc(path, line, Boolean)
	n.BoolValue = value
	return n
}

// NewString constructs a reduced string_constant carrying tok's text.
func (f *Factory) NewString(path string, line int, tok Token) *Node {
	n := f.alloc(path, line, StringConstant)
	n.Token = &tok
	return n
}

// NewVariable constructs a variable reference node carrying the
// variable's name token, including its leading sigil.
func (f *Factory) NewVariable(path string, line int, tok Token) *Node {
	n := f.alloc(path, line, VariableRef)
	n.Token = &tok
	return n
}

// NewNone constructs the sentinel none node used as an absent outer
// selector for the root of a stylesheet (spec §4.4).
func (f *Factory) NewNone() *Node {
	return f.alloc("", 0, None)
}

// Clone deep-copies a subtree, giving each copy independent child
// storage while the leaf tokens remain shared (they reference the
// immutable source buffer, spec §5). Used whenever a mixin body is
// instantiated so each expansion owns its own children (spec §4.5.1).
func (f *Factory) Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	f.allocations++
	clone := &Node{
		Path:        n.Path,
		Line:        n.Line,
		Variant:     n.Variant,
		Token:       n.Token,
		NumberValue: n.NumberValue,
		BoolValue:   n.BoolValue,
		Unit:        n.Unit,
		ShouldEval:  n.ShouldEval,
	}
	if n.Children != nil {
		clone.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = f.Clone(c)
		}
	}
	return clone
}
