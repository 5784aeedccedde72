package node

import "testing"

func TestStringNumberAndDimension(t *testing.T) {
	f := &Factory{}
	if got := f.NewNumber("x", 1, 3).String(); got != "3" {
		t.Errorf("Number.String() = %q, want %q", got, "3")
	}
	if got := f.NewDimension("x", 1, 3, "px").String(); got != "3px" {
		t.Errorf("Dimension.String() = %q, want %q", got, "3px")
	}
	if got := f.NewPercentage("x", 1, 50).String(); got != "50%" {
		t.Errorf("Percentage.String() = %q, want %q", got, "50%")
	}
}

func TestStringColorHexWhenOpaque(t *testing.T) {
	f := &Factory{}
	c := f.NewColor("x", 1, 255, 0, 16, 1)
	if got, want := c.String(), "#ff0010"; got != want {
		t.Errorf("opaque color String() = %q, want %q", got, want)
	}
}

func TestStringColorRGBAWhenTranslucent(t *testing.T) {
	f := &Factory{}
	c := f.NewColor("x", 1, 255, 0, 16, 0.5)
	if got, want := c.String(), "rgba(255, 0, 16, 0.5)"; got != want {
		t.Errorf("translucent color String() = %q, want %q", got, want)
	}
}

func TestStringBoolean(t *testing.T) {
	f := &Factory{}
	if got := f.NewBoolean("x", 1, true).String(); got != "true" {
		t.Errorf("Boolean.String() = %q, want true", got)
	}
	if got := f.NewBoolean("x", 1, false).String(); got != "false" {
		t.Errorf("Boolean.String() = %q, want false", got)
	}
}

func TestStringSelectorGroupJoin(t *testing.T) {
	f := &Factory{}
	a := f.New("x", 1, Selector)
	a.Append(f.NewString("x", 1, NewToken(".a")))
	b := f.New("x", 1, Selector)
	b.Append(f.NewString("x", 1, NewToken(".b")))
	group := f.New("x", 1, SelectorGroup)
	group.Append(a, b)

	if got, want := group.String(), ".a, .b"; got != want {
		t.Errorf("SelectorGroup.String() = %q, want %q", got, want)
	}
}

func TestStringBackref(t *testing.T) {
	f := &Factory{}
	if got := f.New("x", 1, Backref).String(); got != "&" {
		t.Errorf("Backref.String() = %q, want %q", got, "&")
	}
}

func TestStringStringConstantUnquotes(t *testing.T) {
	f := &Factory{}
	n := f.NewString("x", 1, NewToken(`"hello"`))
	if got := n.String(); got != "hello" {
		t.Errorf("StringConstant.String() = %q, want %q", got, "hello")
	}
}
