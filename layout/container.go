package layout

import (
	"fmt"

	"github.com/sap-lang/sap/hyph"
	"github.com/sap-lang/sap/interp"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// Engine bundles the collaborators the layout pass needs beyond the tree
// itself: a font resolver (spec §4.2), an optional hyphenator (spec
// §4.1; nil disables hyphenation), and the interpreter collaborator
// (spec §4.9).
type Engine struct {
	Fonts      FontResolver
	Hyphenator *hyph.Hyphenator
	Interp     interp.Interpreter
	Log        observability.Logger
}

// log returns e.Log, or a NopLogger if the caller never set one.
func (e *Engine) log() observability.Logger {
	if e.Log == nil {
		return observability.NopLogger{}
	}
	return e.Log
}

// CreateLayoutObject converts a single BlockObject into a positioned-size
// (but not yet positioned) Object, recursing into children (spec §4.5).
// availableWidth is the space remaining at the current cursor; the
// result's Size().Width never exceeds it, except that images and raw
// blocks (and containers holding them) take their own declared width.
func (e *Engine) CreateLayoutObject(node tree.BlockObject, parentStyle style.Style, availableWidth units.Length) (Object, error) {
	switch n := node.(type) {
	case *tree.Paragraph:
		return e.layoutParagraph(n, parentStyle, availableWidth)
	case *tree.WrappedLine:
		return e.layoutWrappedLine(n, parentStyle, availableWidth)
	case *tree.Container:
		return e.layoutContainer(n, parentStyle, availableWidth)
	case *tree.Image:
		return e.layoutImage(n, parentStyle)
	case *tree.Spacer:
		sp := &Spacer{}
		sp.setFromNode(n)
		sp.size = units.LayoutSize{Width: availableWidth, Ascent: units.Length(n.Size)}
		return sp, nil
	case *tree.RawBlock:
		rb := &Container{RawBytes: n.ContentStream}
		rb.setFromNode(n)
		rb.size = units.LayoutSize{Width: units.Length(n.Width), Ascent: units.Length(n.Height)}
		return rb, nil
	case *tree.DeferredBlock:
		child, err := n.Generate()
		if err != nil {
			return nil, fmt.Errorf("layout: deferred block: %w", err)
		}
		return e.CreateLayoutObject(child, parentStyle, availableWidth)
	case *tree.ScriptBlock:
		val, err := e.Interp.Evaluate(n.Call)
		if err != nil {
			return nil, fmt.Errorf("layout: script block: %w", err)
		}
		if val.Kind == interp.VTreeBlock && val.TreeBlock != nil {
			return e.CreateLayoutObject(val.TreeBlock, parentStyle, availableWidth)
		}
		return &Spacer{}, nil
	default:
		return nil, fmt.Errorf("layout: unknown block object %T", node)
	}
}

func effectiveStyle(node tree.Node, parent style.Style, interpCurrent style.Style) style.Style {
	return node.Style().UseDefaultsFrom(parent).UseDefaultsFrom(interpCurrent)
}

func (e *Engine) layoutParagraph(p *tree.Paragraph, parentStyle style.Style, availableWidth units.Length) (Object, error) {
	eff := effectiveStyle(p, parentStyle, e.Interp.CurrentStyle())

	children := append([]tree.InlineObject(nil), p.Children...)
	if eff.EnableSmartQuotes() {
		ApplySmartQuotes(children)
	}
	children = NormaliseSeparators(children, e.Hyphenator)
	leaves, _ := tree.FlattenInline(children)

	lm, err := ComputeLineMetrics(e.Fonts, e.log(), leaves, func(o tree.InlineObject) style.Style {
		return effectiveStyle(o, eff, style.Empty())
	})
	if err != nil {
		return nil, fmt.Errorf("layout: paragraph metrics: %w", err)
	}

	breaks := BreakLines(lm, availableWidth)
	container := &Container{Direction: tree.Vertical}
	container.setFromNode(p)
	var totalHeight units.Length
	maxWidth := availableWidth
	for _, lb := range breaks {
		line := RenderLine(lm, lb, eff, availableWidth)
		container.Children = append(container.Children, line)
		totalHeight = totalHeight.Add(line.Size().TotalHeight())
	}
	container.size = units.LayoutSize{Width: maxWidth, Ascent: totalHeight}
	return container, nil
}

func (e *Engine) layoutWrappedLine(w *tree.WrappedLine, parentStyle style.Style, availableWidth units.Length) (Object, error) {
	eff := effectiveStyle(w, parentStyle, e.Interp.CurrentStyle())
	leaves, _ := tree.FlattenInline(w.Children)
	lm, err := ComputeLineMetrics(e.Fonts, e.log(), leaves, func(o tree.InlineObject) style.Style {
		return effectiveStyle(o, eff, style.Empty())
	})
	if err != nil {
		return nil, fmt.Errorf("layout: wrapped line metrics: %w", err)
	}
	// a single unbreakable line: one edge spanning the whole piece range.
	lb := LineBreak{StartPiece: 0, EndPiece: len(lm.Pieces), IsFirst: true, IsLast: true}
	line := RenderLine(lm, lb, eff, availableWidth)
	line.setFromNode(w)
	return line, nil
}

func (e *Engine) layoutContainer(c *tree.Container, parentStyle style.Style, availableWidth units.Length) (Object, error) {
	eff := effectiveStyle(c, parentStyle, e.Interp.CurrentStyle())

	pad := c.Border.Padding
	innerWidth := availableWidth - units.Length(pad.Left) - units.Length(pad.Right)
	if c.Border.Left != nil {
		innerWidth -= units.Length(c.Border.Left.LineWidth)
	}
	if c.Border.Right != nil {
		innerWidth -= units.Length(c.Border.Right.LineWidth)
	}

	out := &Container{Direction: c.ContainerDirection, Border: c.Border, AbsoluteOverride: c.AbsolutePosition}
	out.setFromNode(c)
	if c.ContainerDirection == tree.Vertical {
		out.Spacing = eff.ParagraphSpacing()
	}
	var totalW, totalH units.Length
	prevVisible := false

	for _, child := range c.Children {
		childObj, err := e.CreateLayoutObject(child, eff, innerWidth)
		if err != nil {
			return nil, err
		}
		if child.Phantom() {
			out.Children = append(out.Children, childObj)
			continue
		}
		sz := childObj.Size()
		switch c.ContainerDirection {
		case tree.Vertical:
			if prevVisible {
				totalH = totalH.Add(eff.ParagraphSpacing())
			}
			totalH = totalH.Add(sz.TotalHeight())
			totalW = units.Max(totalW, sz.Width)
		case tree.Horizontal:
			totalW = totalW.Add(sz.Width)
			totalH = units.Max(totalH, sz.TotalHeight())
			innerWidth -= sz.Width
		default: // None: z-stack, pointwise max
			totalW = units.Max(totalW, sz.Width)
			totalH = units.Max(totalH, sz.TotalHeight())
		}
		prevVisible = true
		out.Children = append(out.Children, childObj)
	}

	totalW = totalW + units.Length(pad.Left) + units.Length(pad.Right)
	totalH = totalH + units.Length(pad.Top) + units.Length(pad.Bottom)
	if c.Border.Left != nil {
		totalW += units.Length(c.Border.Left.LineWidth)
	}
	if c.Border.Right != nil {
		totalW += units.Length(c.Border.Right.LineWidth)
	}

	out.size = units.LayoutSize{Width: totalW, Ascent: totalH}
	out.BorderObjects = buildBorderPaths(c.Border, totalW, totalH)
	return out, nil
}

func (e *Engine) layoutImage(img *tree.Image, parentStyle style.Style) (Object, error) {
	out := &Image{SourceRef: img.SourceRef}
	out.setFromNode(img)
	w, h := units.Length(100), units.Length(100) // fallback natural size; real decode happens in builder
	if img.Width != nil {
		w = units.Length(*img.Width)
	}
	if img.Height != nil {
		h = units.Length(*img.Height)
	}
	out.size = units.LayoutSize{Width: w, Ascent: h}
	return out, nil
}

// buildBorderPaths constructs the four border Path objects as tight
// lines along the edges of the content bounding box, in points relative
// to the container's origin (spec §4.5: "built here but positioned later
// in compute_position").
func buildBorderPaths(b tree.BorderStyle, w, h units.Length) []*Path {
	if !b.HasAnyBorder() {
		return nil
	}
	var paths []*Path
	addEdge := func(ps *tree.PathStyle, x0, y0, x1, y1 float64) {
		if ps == nil {
			return
		}
		p := &Path{Segments: []PathSegment{{Kind: SegMoveTo, X: x0, Y: y0}, {Kind: SegLineTo, X: x1, Y: y1}}, Style: *ps}
		paths = append(paths, p)
	}
	wp, hp := w.Pt(), h.Pt()
	addEdge(b.Top, 0, 0, wp, 0)
	addEdge(b.Bottom, 0, hp, wp, hp)
	addEdge(b.Left, 0, 0, 0, hp)
	addEdge(b.Right, wp, 0, wp, hp)
	return paths
}
