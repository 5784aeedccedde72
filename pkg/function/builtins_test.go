package function

import (
	"testing"

	"github.com/caspercss/casper/pkg/node"
)

func TestRgbBuiltin(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)

	fn, ok := r.Lookup("rgb", 3)
	if !ok {
		t.Fatal("expected rgb/3 to be registered")
	}
	bindings := map[string]*node.Node{
		"red":   f.NewNumber("", 0, 255),
		"green": f.NewNumber("", 0, 0),
		"blue":  f.NewNumber("", 0, 16),
	}
	result, err := fn.Run(bindings, f)
	if err != nil {
		t.Fatalf("rgb() returned error: %v", err)
	}
	if got, want := result.String(), "#ff0010"; got != want {
		t.Errorf("rgb(255,0,16) = %q, want %q", got, want)
	}
}

func TestRgbaBuiltinAlpha(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	fn, _ := r.Lookup("rgba", 4)

	bindings := map[string]*node.Node{
		"red":   f.NewNumber("", 0, 10),
		"green": f.NewNumber("", 0, 20),
		"blue":  f.NewNumber("", 0, 30),
		"alpha": f.NewNumber("", 0, 0.5),
	}
	result, err := fn.Run(bindings, f)
	if err != nil {
		t.Fatalf("rgba() returned error: %v", err)
	}
	if got, want := result.String(), "rgba(10, 20, 30, 0.5)"; got != want {
		t.Errorf("rgba() = %q, want %q", got, want)
	}
}

func TestRgbClampsOutOfRangeChannels(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	fn, _ := r.Lookup("rgb", 3)

	bindings := map[string]*node.Node{
		"red":   f.NewNumber("", 0, 300),
		"green": f.NewNumber("", 0, -10),
		"blue":  f.NewNumber("", 0, 0),
	}
	result, _ := fn.Run(bindings, f)
	if result.Children[0].NumberValue != 255 {
		t.Errorf("red channel = %v, want clamped to 255", result.Children[0].NumberValue)
	}
	if result.Children[1].NumberValue != 0 {
		t.Errorf("green channel = %v, want clamped to 0", result.Children[1].NumberValue)
	}
}

func TestPercentageBuiltin(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	fn, _ := r.Lookup("percentage", 1)

	result, err := fn.Run(map[string]*node.Node{"number": f.NewNumber("", 0, 0.5)}, f)
	if err != nil {
		t.Fatalf("percentage() returned error: %v", err)
	}
	if got, want := result.String(), "50%"; got != want {
		t.Errorf("percentage(0.5) = %q, want %q", got, want)
	}
}

func TestRoundBuiltin(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	fn, _ := r.Lookup("round", 1)

	result, err := fn.Run(map[string]*node.Node{"number": f.NewNumber("", 0, 2.6)}, f)
	if err != nil {
		t.Fatalf("round() returned error: %v", err)
	}
	if result.NumberValue != 3 {
		t.Errorf("round(2.6) = %v, want 3", result.NumberValue)
	}
}

func TestLightenAndDarken(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	lighten, _ := r.Lookup("lighten", 2)
	darken, _ := r.Lookup("darken", 2)

	color := f.NewColor("", 0, 100, 100, 100, 1)
	lightened, err := lighten.Run(map[string]*node.Node{"color": color, "amount": f.NewNumber("", 0, 10)}, f)
	if err != nil {
		t.Fatalf("lighten() returned error: %v", err)
	}
	if lightened.Children[0].NumberValue <= 100 {
		t.Errorf("lighten should raise channel value, got %v", lightened.Children[0].NumberValue)
	}

	darkened, err := darken.Run(map[string]*node.Node{"color": color, "amount": f.NewNumber("", 0, 10)}, f)
	if err != nil {
		t.Fatalf("darken() returned error: %v", err)
	}
	if darkened.Children[0].NumberValue >= 100 {
		t.Errorf("darken should lower channel value, got %v", darkened.Children[0].NumberValue)
	}
	if darkened.Children[3].NumberValue != 1 {
		t.Errorf("darken should preserve alpha, got %v", darkened.Children[3].NumberValue)
	}
}

func TestLightenClampsAtWhite(t *testing.T) {
	f := &node.Factory{}
	r := NewRegistry()
	RegisterBuiltins(r)
	lighten, _ := r.Lookup("lighten", 2)

	color := f.NewColor("", 0, 250, 250, 250, 1)
	result, _ := lighten.Run(map[string]*node.Node{"color": color, "amount": f.NewNumber("", 0, 50)}, f)
	if result.Children[0].NumberValue != 255 {
		t.Errorf("lighten should clamp at 255, got %v", result.Children[0].NumberValue)
	}
}
