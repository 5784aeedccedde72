package eval

import (
	"testing"

	"github.com/caspercss/casper/pkg/node"
)

func TestOperate(t *testing.T) {
	tests := []struct {
		op   node.Variant
		l, r float64
		want float64
	}{
		{node.Add, 2, 3, 5},
		{node.Sub, 5, 3, 2},
		{node.Mul, 4, 3, 12},
		{node.Div, 10, 2, 5},
	}
	for _, tt := range tests {
		if got := Operate(tt.op, tt.l, tt.r); got != tt.want {
			t.Errorf("Operate(%v, %v, %v) = %v, want %v", tt.op, tt.l, tt.r, got, tt.want)
		}
	}
}

func TestAccumulateNumberAndNumber(t *testing.T) {
	f := &node.Factory{}
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewNumber("t", 1, 2))
	if err := Accumulate(node.Add, acc, f.NewNumber("t", 1, 3), f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	if got := acc.Back(); got.Variant != node.Number || got.NumberValue != 5 {
		t.Errorf("acc.Back() = %+v, want number(5)", got)
	}
}

func TestAccumulateDimensionAndNumber(t *testing.T) {
	f := &node.Factory{}
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewDimension("t", 1, 10, "px"))
	if err := Accumulate(node.Sub, acc, f.NewNumber("t", 1, 4), f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	got := acc.Back()
	if got.Variant != node.NumericDimension || got.NumberValue != 6 || got.Unit != "px" {
		t.Errorf("acc.Back() = %+v, want dimension 6px", got)
	}
}

func TestAccumulateDimensionDivisionDropsUnit(t *testing.T) {
	f := &node.Factory{}
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewDimension("t", 1, 4, "px"))
	if err := Accumulate(node.Div, acc, f.NewDimension("t", 1, 2, "px"), f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	got := acc.Back()
	if got.Variant != node.Number || got.NumberValue != 2 {
		t.Errorf("acc.Back() = %+v, want number(2)", got)
	}
}

func TestAccumulateDimensionMulKeepsLeftUnit(t *testing.T) {
	f := &node.Factory{}
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewDimension("t", 1, 4, "px"))
	if err := Accumulate(node.Mul, acc, f.NewDimension("t", 1, 2, "em"), f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	got := acc.Back()
	if got.Variant != node.NumericDimension || got.NumberValue != 8 || got.Unit != "px" {
		t.Errorf("acc.Back() = %+v, want dimension 8px (left unit wins)", got)
	}
}

func TestAccumulateNumberSubColorIsNonCombining(t *testing.T) {
	f := &node.Factory{}
	color := f.NewColor("t", 1, 10, 20, 30, 1)
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewNumber("t", 1, 5))
	if err := Accumulate(node.Sub, acc, color, f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	if len(acc.Children) != 3 {
		t.Fatalf("expected non-combination to append op and rhs as extra elements, got %d children", len(acc.Children))
	}
	if acc.Children[1].Variant != node.Sub {
		t.Errorf("expected operator node to be appended, got %v", acc.Children[1].Variant)
	}
	if acc.Children[2] != color {
		t.Error("expected the color itself to be appended unchanged")
	}
}

func TestAccumulateNumberAddColorCombines(t *testing.T) {
	f := &node.Factory{}
	color := f.NewColor("t", 1, 10, 20, 30, 0.5)
	acc := f.NewWithChildren("t", 1, node.Expression, f.NewNumber("t", 1, 5))
	if err := Accumulate(node.Add, acc, color, f); err != nil {
		t.Fatalf("Accumulate returned error: %v", err)
	}
	got := acc.Back()
	if got.Variant != node.NumericColor {
		t.Fatalf("expected a combined color, got %v", got.Variant)
	}
	want := []float64{15, 25, 35, 0.5}
	for i, w := range want {
		if got.Children[i].NumberValue != w {
			t.Errorf("channel %d = %v, want %v", i, got.Children[i].NumberValue, w)
		}
	}
}
