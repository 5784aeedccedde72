package eval

import (
	"github.com/caspercss/casper/pkg/evalerr"
	"github.com/caspercss/casper/pkg/node"
)

// Accumulate updates acc's last child in place by combining it with rhs
// under op, implementing the combination table in spec §4.3. Mixed or
// unsupported pairings append rhs to acc instead of erroring, leaving
// the expression "unreduced" per spec §7.
func Accumulate(op node.Variant, acc *node.Node, rhs *node.Node, f *node.Factory) error {
	lhs := acc.Back()

	switch {
	case lhs.Variant == node.Number && rhs.Variant == node.Number:
		result := f.NewNumber(acc.Path, acc.Line, Operate(op, lhs.NumericValue(), rhs.NumericValue()))
		acc.PopBack()
		acc.Append(result)

	case lhs.Variant == node.Number && rhs.Variant == node.NumericDimension:
		result := f.NewDimension(acc.Path, acc.Line, Operate(op, lhs.NumericValue(), rhs.NumericValue()), rhs.Unit)
		acc.PopBack()
		acc.Append(result)

	case lhs.Variant == node.NumericDimension && rhs.Variant == node.Number:
		result := f.NewDimension(acc.Path, acc.Line, Operate(op, lhs.NumericValue(), rhs.NumericValue()), lhs.Unit)
		acc.PopBack()
		acc.Append(result)

	case lhs.Variant == node.NumericDimension && rhs.Variant == node.NumericDimension:
		// Unit mismatch is not checked; the left-hand unit silently wins
		// on anything but division, matching spec §9's open question.
		var result *node.Node
		if op == node.Div {
			result = f.NewNumber(acc.Path, acc.Line, Operate(op, lhs.NumericValue(), rhs.NumericValue()))
		} else {
			result = f.NewDimension(acc.Path, acc.Line, Operate(op, lhs.NumericValue(), rhs.NumericValue()), lhs.Unit)
		}
		acc.PopBack()
		acc.Append(result)

	case lhs.Variant == node.Number && rhs.Variant == node.NumericColor:
		if op != node.Sub && op != node.Div {
			r := Operate(op, lhs.NumericValue(), rhs.Children[0].NumericValue())
			g := Operate(op, lhs.NumericValue(), rhs.Children[1].NumericValue())
			b := Operate(op, lhs.NumericValue(), rhs.Children[2].NumericValue())
			a := rhs.Children[3].NumericValue()
			acc.PopBack()
			acc.Append(f.NewColor(acc.Path, acc.Line, r, g, b, a))
		} else {
			// Deliberate non-combination: surface the operator and the
			// color as extra list elements instead of reducing
			// (spec §4.3, §9).
			acc.Append(f.New(acc.Path, acc.Line, op))
			acc.Append(rhs)
		}

	case lhs.Variant == node.NumericColor && rhs.Variant == node.Number:
		r := Operate(op, lhs.Children[0].NumericValue(), rhs.NumericValue())
		g := Operate(op, lhs.Children[1].NumericValue(), rhs.NumericValue())
		b := Operate(op, lhs.Children[2].NumericValue(), rhs.NumericValue())
		a := lhs.Children[3].NumericValue()
		acc.PopBack()
		acc.Append(f.NewColor(acc.Path, acc.Line, r, g, b, a))

	case lhs.Variant == node.NumericColor && rhs.Variant == node.NumericColor:
		if lhs.Children[3].NumericValue() != rhs.Children[3].NumericValue() {
			return evalerr.New(evalerr.KindColorAlphaMismatch, lhs.Path, lhs.Line,
				"alpha channels must be equal for "+lhs.String()+" + "+rhs.String())
		}
		r := Operate(op, lhs.Children[0].NumericValue(), rhs.Children[0].NumericValue())
		g := Operate(op, lhs.Children[1].NumericValue(), rhs.Children[1].NumericValue())
		b := Operate(op, lhs.Children[2].NumericValue(), rhs.Children[2].NumericValue())
		a := lhs.Children[3].NumericValue()
		acc.PopBack()
		acc.Append(f.NewColor(acc.Path, acc.Line, r, g, b, a))

	default:
		acc.Append(rhs)
	}

	return nil
}

// Operate is elementary double arithmetic for add/sub/mul/div; any other
// operator yields zero, matching the source's default case.
func Operate(op node.Variant, l, r float64) float64 {
	switch op {
	case node.Add:
		return l + r
	case node.Sub:
		return l - r
	case node.Mul:
		return l * r
	case node.Div:
		return l / r
	default:
		return 0
	}
}
