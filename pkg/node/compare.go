package node

// Equal implements the `relation` node's eq/neq dispatch (spec §4.1).
// Numeric variants compare by value regardless of unit/percent framing;
// strings and variable tokens compare by text; booleans by value.
func Equal(a, b *Node) bool {
	if a.Variant.IsNumeric() && b.Variant.IsNumeric() {
		return a.NumberValue == b.NumberValue
	}
	if a.Variant == NumericColor && b.Variant == NumericColor {
		for i := range a.Children {
			if a.Children[i].NumberValue != b.Children[i].NumberValue {
				return false
			}
		}
		return true
	}
	if a.Variant != b.Variant {
		return false
	}
	switch a.Variant {
	case Boolean:
		return a.BoolValue == b.BoolValue
	case StringConstant, VariableRef:
		if a.Token == nil || b.Token == nil {
			return a.Token == b.Token
		}
		return a.Token.Unquote().Equal(b.Token.Unquote())
	default:
		return a == b
	}
}

// Less implements ordering for gt/gte/lt/lte. Only numeric variants are
// ordered; anything else compares as not-less, mirroring the source's
// reliance on the arithmetic accumulator having already reduced operands
// to numbers before a relation is reached in practice.
func Less(a, b *Node) bool {
	if !a.Variant.IsNumeric() || !b.Variant.IsNumeric() {
		return false
	}
	return a.NumberValue < b.NumberValue
}
