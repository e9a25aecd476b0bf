package layout

import (
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// ComputePosition implements the depth-first position-computation walk
// described in spec §4.6. It places obj (recording either the cursor's
// current position or, for an absolutely-positioned Container, its
// AbsoluteOverride) and recurses into children; advancement between
// siblings is the caller's responsibility (computeContainerChildren),
// since only a container knows its own stacking direction.
func ComputePosition(obj Object, cursor PageCursor) {
	if c, ok := obj.(*Container); ok && c.AbsoluteOverride != nil {
		placeAbsolute(c, cursor)
		return
	}

	obj.SetPosition(Pos{AbsolutePagePos: cursor.Absolute()})

	switch o := obj.(type) {
	case *Container:
		computeContainerChildren(o, cursor)
	case *Line:
		computeLineChildren(o, cursor)
	case *LayoutSpan:
		computeSpanChildren(o, cursor)
	}
}

func placeAbsolute(c *Container, cursor PageCursor) {
	abs := AbsolutePagePos{PageIndex: c.AbsoluteOverride.PageIndex, Position: units.Position{
		X: units.Length(c.AbsoluteOverride.X), Y: units.Length(c.AbsoluteOverride.Y),
	}}
	c.SetPosition(Pos{AbsolutePagePos: abs, IsOverride: true})
	childCursor := cursor.layout.NewCursorAtPosition(abs)
	computeContainerChildren(c, childCursor)
}

// computeContainerChildren threads a running cursor through c's
// children, advancing between them according to c.Direction (spec
// §4.6): Vertical inserts c.Spacing between non-phantom siblings and
// advances by each child's TotalHeight; Horizontal advances by width;
// None (z-stack) does not advance at all. c's border paths are placed at
// c's own origin.
func computeContainerChildren(c *Container, cursor PageCursor) {
	for _, b := range c.BorderObjects {
		b.SetPosition(Pos{AbsolutePagePos: cursor.Absolute()})
	}
	cur := cursor
	first := true
	for _, child := range c.Children {
		if isAbsoluteContainer(child) {
			ComputePosition(child, cur)
			continue
		}
		if !first {
			switch c.Direction {
			case tree.Vertical:
				cur = cur.MoveDown(c.Spacing)
			}
		}
		ComputePosition(child, cur)

		sz := child.Size()
		switch c.Direction {
		case tree.Vertical:
			cur = cur.MoveDown(sz.TotalHeight())
		case tree.Horizontal:
			cur = cur.MoveRight(sz.Width)
		}
		first = false
	}
}

func computeLineChildren(l *Line, cursor PageCursor) {
	cur := cursor
	for _, child := range l.Children {
		if w, ok := child.(*Word); ok {
			cur = cursor.MoveRight(w.RelativeOffset.DX)
		}
		ComputePosition(child, cur)
	}
}

func computeSpanChildren(s *LayoutSpan, cursor PageCursor) {
	for _, child := range s.Children {
		ComputePosition(child, cursor)
	}
}

func isAbsoluteContainer(o Object) bool {
	c, ok := o.(*Container)
	return ok && c.AbsoluteOverride != nil
}
