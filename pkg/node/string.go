package node

import (
	"strconv"
	"strings"
)

// String renders a node's textual form. It is not a full CSS emitter
// (that collaborator is out of scope per spec §1) but it is the method
// selector_schema evaluation calls on non-string children before
// re-parsing (spec §4.1), and it doubles as the CLI's debug output.
func (n *Node) String() string {
	switch n.Variant {
	case StringConstant:
		if n.Token != nil {
			return n.Token.Unquote().Text
		}
		return ""
	case VariableRef:
		if n.Token != nil {
			return n.Token.Text
		}
		return ""
	case Number, TextualNumber:
		return formatFloat(n.NumberValue)
	case NumericPercentage, TextualPercentage:
		return formatFloat(n.NumberValue) + "%"
	case NumericDimension, TextualDimension:
		return formatFloat(n.NumberValue) + n.Unit
	case NumericColor:
		return n.colorString()
	case Boolean:
		if n.BoolValue {
			return "true"
		}
		return "false"
	case Backref:
		return "&"
	case SimpleSelectorSequence:
		return n.joinChildren("")
	case Selector:
		return n.joinChildren(" ")
	case SelectorGroup:
		return n.joinChildren(", ")
	case CommaList:
		return n.joinChildren(", ")
	case SpaceList, ValueSchema, StringSchema:
		return n.joinChildren(" ")
	default:
		if n.Token != nil {
			return n.Token.Text
		}
		return n.joinChildren(" ")
	}
}

func (n *Node) joinChildren(sep string) string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}

func (n *Node) colorString() string {
	r := int(n.Children[0].NumberValue)
	g := int(n.Children[1].NumberValue)
	b := int(n.Children[2].NumberValue)
	a := n.Children[3].NumberValue
	if a == 1 {
		return "#" + hexByte(r) + hexByte(g) + hexByte(b)
	}
	return "rgba(" + strconv.Itoa(r) + ", " + strconv.Itoa(g) + ", " + strconv.Itoa(b) + ", " + formatFloat(a) + ")"
}

func hexByte(v int) string {
	s := strconv.FormatInt(int64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
