package node

import "testing"

func TestVariantStringRoundTrip(t *testing.T) {
	tests := []Variant{
		Root, Block, Ruleset, Selector, SelectorGroup, Backref,
		Mixin, Expansion, FunctionCall, Assignment,
		Number, NumericDimension, NumericColor, Boolean, StringConstant,
		Add, Sub, Mul, Div, Eq, Neq, Gt, Gte, Lt, Lte, None,
	}
	for _, v := range tests {
		t.Run(v.String(), func(t *testing.T) {
			s := v.String()
			if s == "unknown" {
				t.Fatalf("variant %d has no name", v)
			}
			got, ok := ParseVariant(s)
			if !ok {
				t.Fatalf("ParseVariant(%q) not found", s)
			}
			if got != v {
				t.Errorf("ParseVariant(%q) = %v, want %v", s, got, v)
			}
		})
	}
}

func TestParseVariantUnknown(t *testing.T) {
	if _, ok := ParseVariant("not_a_real_variant"); ok {
		t.Error("expected ok=false for unknown variant tag")
	}
}

func TestIsNumeric(t *testing.T) {
	numeric := []Variant{Number, NumericPercentage, NumericDimension}
	for _, v := range numeric {
		if !v.IsNumeric() {
			t.Errorf("%v.IsNumeric() = false, want true", v)
		}
	}
	notNumeric := []Variant{NumericColor, Boolean, StringConstant, Selector}
	for _, v := range notNumeric {
		if v.IsNumeric() {
			t.Errorf("%v.IsNumeric() = true, want false", v)
		}
	}
}
