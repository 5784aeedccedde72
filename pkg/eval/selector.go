package eval

import "github.com/caspercss/casper/pkg/node"

// ExpandSelector combines an inner selector sel with an outer selector
// pre (spec §4.4). pre.Variant == none means "no outer context" (the
// stylesheet root), in which case sel passes through unchanged.
func ExpandSelector(sel *node.Node, pre *node.Node, f *node.Factory) (*node.Node, error) {
	if pre.Variant == node.None {
		return sel, nil
	}

	if sel.HasBackref() {
		return expandWithBackref(sel, pre, f)
	}
	return expandDescendant(sel, pre, f)
}

func expandWithBackref(sel *node.Node, pre *node.Node, f *node.Factory) (*node.Node, error) {
	preGroup := pre.Variant == node.SelectorGroup
	selGroup := sel.Variant == node.SelectorGroup

	switch {
	case preGroup && selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, p := range pre.Children {
			for _, s := range sel.Children {
				group.Append(ExpandBackref(f.Clone(s), p))
			}
		}
		return group, nil

	case preGroup && !selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, p := range pre.Children {
			group.Append(ExpandBackref(f.Clone(sel), p))
		}
		return group, nil

	case !preGroup && selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, s := range sel.Children {
			group.Append(ExpandBackref(f.Clone(s), pre))
		}
		return group, nil

	default:
		return ExpandBackref(f.Clone(sel), pre), nil
	}
}

func expandDescendant(sel *node.Node, pre *node.Node, f *node.Factory) (*node.Node, error) {
	preGroup := pre.Variant == node.SelectorGroup
	selGroup := sel.Variant == node.SelectorGroup

	switch {
	case preGroup && selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, p := range pre.Children {
			for _, s := range sel.Children {
				group.Append(combine(p, s, f))
			}
		}
		return group, nil

	case preGroup && !selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, p := range pre.Children {
			group.Append(combine(p, sel, f))
		}
		return group, nil

	case !preGroup && selGroup:
		group := f.New(sel.Path, sel.Line, node.SelectorGroup)
		for _, s := range sel.Children {
			group.Append(combine(pre, s, f))
		}
		return group, nil

	default:
		return combine(pre, sel, f), nil
	}
}

// combine builds a new selector node out of pre then sel, splicing
// either side flat into it when that side is itself a `selector` node
// rather than nesting it as a single child (spec §4.4, the `+=`
// variant), so descendant combination concatenates component lists.
func combine(pre *node.Node, sel *node.Node, f *node.Factory) *node.Node {
	result := f.New(sel.Path, sel.Line, node.Selector)
	result.Splice(pre)
	result.Splice(sel)
	return result
}

// ExpandBackref substitutes every backref node in sel's subtree with pre
// (spec §4.4.1). Call sites must pass an already-cloned sel so that each
// cross-product pairing owns independent storage.
func ExpandBackref(sel *node.Node, pre *node.Node) *node.Node {
	switch sel.Variant {
	case node.Backref:
		return pre
	case node.Selector, node.SimpleSelectorSequence:
		for i, c := range sel.Children {
			sel.Children[i] = ExpandBackref(c, pre)
		}
		return sel
	default:
		return sel
	}
}
