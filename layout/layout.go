package layout

import (
	"context"
	"fmt"

	"github.com/sap-lang/sap/interp"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// maxLayoutPasses bounds the request_layout() convergence loop (spec
// §5: "no fixed iteration cap is mandated; implementations should warn
// after e.g. 8 passes").
const maxLayoutPasses = 8

// Document drives the whole tree-to-PDF-ready-layout pipeline for one
// compiled document: a root sequence of block objects laid out onto a
// PageLayout, with the interpreter's hook phases run around each pass
// (spec §2, §4.9, §5).
type Document struct {
	Engine *Engine
	Pages  *PageLayout
	Log    observability.Logger
	Tracer observability.Tracer
}

// NewDocument constructs a Document with the given font resolver,
// hyphenator, interpreter and page geometry.
func NewDocument(engine *Engine, pages *PageLayout, log observability.Logger) *Document {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Document{Engine: engine, Pages: pages, Log: log, Tracer: observability.NopTracer()}
}

// Run lays out roots (the document's top-level block objects) to
// completion: it runs Preamble hooks once, then repeats
// Layout→Position→PostLayout passes until no pass requests another (or
// maxLayoutPasses is hit), then runs Finalise hooks once. Each pass
// (spec §5's convergence loop) is wrapped in its own span, the layout
// counterpart to the writer's per-phase spans in pdfwriter.Writer.Write.
func (d *Document) Run(roots []tree.BlockObject) ([]Object, error) {
	tracer := d.Tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	ctx := context.Background()

	ip := d.Engine.Interp
	if err := ip.RunHooks(interp.Preamble); err != nil {
		return nil, fmt.Errorf("layout: preamble hooks: %w", err)
	}

	var objs []Object
	for pass := 1; pass <= maxLayoutPasses; pass++ {
		_, passSpan := tracer.StartSpan(ctx, "layout.pass")
		passSpan.SetTag("pass", pass)

		ip.ClearLayoutRequest()
		state := ip.State()
		state.LayoutPass = pass
		ip.SetState(state)

		var err error
		objs, err = d.layoutPass(roots)
		if err != nil {
			passSpan.SetError(err)
			passSpan.Finish()
			return nil, fmt.Errorf("layout: pass %d: %w", pass, err)
		}

		if err := ip.RunHooks(interp.Layout); err != nil {
			passSpan.SetError(err)
			passSpan.Finish()
			return nil, fmt.Errorf("layout: layout hooks: %w", err)
		}

		if err := d.positionPass(roots, objs); err != nil {
			passSpan.SetError(err)
			passSpan.Finish()
			return nil, fmt.Errorf("layout: pass %d: %w", pass, err)
		}
		passSpan.Finish()

		if err := ip.RunHooks(interp.Position); err != nil {
			return nil, fmt.Errorf("layout: position hooks: %w", err)
		}

		for _, req := range ip.DrainAbsoluteRequests() {
			childObj, err := d.Engine.CreateLayoutObject(req.Block, d.Engine.Interp.CurrentStyle(), d.Pages.contentWidth())
			if err != nil {
				return nil, fmt.Errorf("layout: absolute block: %w", err)
			}
			abs := AbsolutePagePos{PageIndex: req.PageIndex, Position: units.Position{X: units.Length(req.X), Y: units.Length(req.Y)}}
			if c, ok := childObj.(*Container); ok {
				c.AbsoluteOverride = &tree.AbsolutePos{PageIndex: req.PageIndex, X: req.X, Y: req.Y}
			}
			ComputePosition(childObj, d.Pages.NewCursorAtPosition(abs))
			objs = append(objs, childObj)
		}

		if err := ip.RunHooks(interp.PostLayout); err != nil {
			return nil, fmt.Errorf("layout: post_layout hooks: %w", err)
		}

		if !ip.LayoutRequested() {
			break
		}
		if pass == maxLayoutPasses {
			d.Log.Warn("layout: giving up after max passes without convergence",
				observability.Int("max_passes", maxLayoutPasses))
		}
	}

	if err := ip.RunHooks(interp.Finalise); err != nil {
		return nil, fmt.Errorf("layout: finalise hooks: %w", err)
	}
	return objs, nil
}

func (d *Document) layoutPass(roots []tree.BlockObject) (objs []Object, err error) {
	defer recoverLayoutPanic("layout", &err)
	cursor := d.Pages.NewCursor()
	prevVisible := false
	for _, root := range roots {
		obj, err := d.Engine.CreateLayoutObject(root, d.Engine.Interp.CurrentStyle(), cursor.WidthAtCursor())
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
		if root.Phantom() {
			continue
		}
		if prevVisible {
			cursor = cursor.MoveDown(effectiveStyle(root, d.Engine.Interp.CurrentStyle(), d.Engine.Interp.CurrentStyle()).ParagraphSpacing())
		}
		sz := obj.Size()
		cursor = cursor.MoveDown(sz.TotalHeight())
		prevVisible = true
	}
	return objs, nil
}

func (d *Document) positionPass(roots []tree.BlockObject, objs []Object) (err error) {
	defer recoverLayoutPanic("position", &err)
	cursor := d.Pages.NewCursor()
	prevVisible := false
	for i, obj := range objs {
		if prevVisible && i < len(roots) {
			cursor = cursor.MoveDown(effectiveStyle(roots[i], d.Engine.Interp.CurrentStyle(), d.Engine.Interp.CurrentStyle()).ParagraphSpacing())
		}
		ComputePosition(obj, cursor)
		if c, ok := obj.(*Container); ok && c.AbsoluteOverride != nil {
			continue
		}
		isPhantom := i < len(roots) && roots[i].Phantom()
		if !isPhantom {
			cursor = cursor.MoveDown(obj.Size().TotalHeight())
			prevVisible = true
		}
	}
	return nil
}
