package layout

import (
	"math"

	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// badnessScale weights the quadratic deviation-from-1.0 stretch term
// (spec §4.4.2's "badness term quadratic in the deviation of required
// glue stretch from 1.0").
const badnessScale = 100.0

// widowOrphanPenalty is added to the last line's cost if its natural
// stretch falls outside a small tolerance band (spec §4.4.2).
const widowOrphanPenalty = 50.0

// lineCost computes the edge cost for a candidate line spanning pieces
// (fromPiece, toPiece] (fromPiece == -1 means "start of paragraph").
// ok is false when the line is overfull beyond any possible shrink,
// disqualifying this edge from the shortest-path search.
func lineCost(lm LineMetrics, fromPiece, toPiece int, availableWidth units.Length, isLast bool) (cost float64, ok bool) {
	start := fromPiece + 1
	var wordW, spaceW units.Length
	for i := start; i < toPiece; i++ {
		p := lm.Pieces[i]
		switch p.kind {
		case kindSpace, kindSentenceEnd:
			spaceW = spaceW.Add(p.width)
		default:
			wordW = wordW.Add(p.width)
		}
	}

	width := float64(availableWidth)
	totalWord := float64(wordW)
	totalSpace := float64(spaceW)

	if totalSpace == 0 {
		if totalWord > width {
			return 0, false
		}
		// a line with no glue cannot stretch to fill the measure, so an
		// underfull one gets a very large badness (finite, so that a
		// paragraph of a single word still has a path).
		const unstretchableBadness = 1e10
		if totalWord < width {
			cost = unstretchableBadness
		}
	} else {
		stretch := (width - totalWord) / totalSpace
		if stretch < 0 {
			return 0, false
		}
		dev := stretch - 1.0
		cost = dev * dev * badnessScale
		if isLast && (stretch > 1.5 || stretch < -0.5) {
			cost += widowOrphanPenalty
		}
	}

	if toPiece < len(lm.Pieces) {
		if sep, ok2 := lm.Pieces[toPiece].obj.(*tree.Separator); ok2 && sep.Kind == tree.HyphenationPoint {
			cost += float64(sep.HyphenationCost)
		}
	}
	return cost, true
}

// LineBreak is one line of the break-search result: the half-open range
// of lm.Pieces it covers and the natural stretch factor used to render
// it (spec §4.4.3).
type LineBreak struct {
	StartPiece, EndPiece int
	Stretch              float64
	IsFirst, IsLast      bool
}

// BreakLines runs the shortest-path line breaker over lm (spec §4.4.2):
// vertices are -1 (paragraph start), every non-word piece index, and
// len(lm.Pieces) (paragraph end); edges are candidate lines, weighted by
// lineCost.
func BreakLines(lm LineMetrics, availableWidth units.Length) []LineBreak {
	n := len(lm.Pieces)
	candidates := []int{-1}
	for i, p := range lm.Pieces {
		if p.kind != kindWord {
			candidates = append(candidates, i)
		}
	}
	candidates = append(candidates, n)

	dist := make([]float64, len(candidates))
	prev := make([]int, len(candidates))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[0] = 0

	for i := 0; i < len(candidates); i++ {
		if math.IsInf(dist[i], 1) {
			continue
		}
		for j := i + 1; j < len(candidates); j++ {
			from, to := candidates[i], candidates[j]
			isLast := to == n
			cost, ok := lineCost(lm, from, to, availableWidth, isLast)
			if !ok {
				if to != n {
					break // strictly worse the further we extend; stop growing this start
				}
				continue
			}
			if nd := dist[i] + cost; nd < dist[j] {
				dist[j] = nd
				prev[j] = i
			}
		}
	}

	var order []int
	for at := len(candidates) - 1; at >= 0; at = prev[at] {
		order = append([]int{at}, order...)
		if at == 0 {
			break
		}
	}

	var breaks []LineBreak
	for k := 1; k < len(order); k++ {
		fromPiece, toPiece := candidates[order[k-1]], candidates[order[k]]
		start := fromPiece + 1
		isLast := toPiece == n
		stretch := computeStretch(lm, start, toPiece, availableWidth)
		breaks = append(breaks, LineBreak{
			StartPiece: start, EndPiece: toPiece, Stretch: stretch,
			IsFirst: k == 1, IsLast: isLast,
		})
	}
	return breaks
}

func computeStretch(lm LineMetrics, start, end int, availableWidth units.Length) float64 {
	var wordW, spaceW units.Length
	for i := start; i < end; i++ {
		p := lm.Pieces[i]
		if p.kind == kindSpace || p.kind == kindSentenceEnd {
			spaceW = spaceW.Add(p.width)
		} else {
			wordW = wordW.Add(p.width)
		}
	}
	if spaceW == 0 {
		return 0
	}
	return (float64(availableWidth) - float64(wordW)) / float64(spaceW)
}

// RenderLine builds the Line layout object for one LineBreak (spec
// §4.4.3): applies the stretch factor to space separators for
// Justified alignment, or shifts children for Centre/Right, and renders
// the end-of-line form of the hyphenation point or hard break the line
// ends at.
func RenderLine(lm LineMetrics, lb LineBreak, effStyle style.Style, availableWidth units.Length) *Line {
	line := &Line{
		ParentStyle:    effStyle,
		LineAscent:     lm.Ascent,
		LineDescent:    lm.Descent,
		DefaultSpacing: lm.DefaultSpacing,
	}

	alignment := effStyle.HorzAlignment()
	justify := alignment == style.Justified && (!lb.IsLast || (lb.Stretch >= 0.9 && lb.Stretch <= 1.1))

	var x units.Length
	var natural units.Length
	var joinTo *Word // the Word the pieces since the last space render into
	for i := lb.StartPiece; i < lb.EndPiece; i++ {
		p := lm.Pieces[i]
		w := p.width
		glue := p.kind == kindSpace || p.kind == kindSentenceEnd
		if justify && glue {
			w = w.Scale(lb.Stretch)
		}
		if glue {
			joinTo = nil
		} else if p.text != "" && joinTo != nil && joinTo.Style == p.style {
			joinTo.Text += p.text
			joinTo.size.Width = joinTo.size.Width.Add(w)
		} else if p.text != "" {
			word := &Word{Text: p.text, Style: p.style, RelativeOffset: units.Offset2d{DX: x}}
			word.size = units.LayoutSize{Width: w, Ascent: lm.Ascent, Descent: lm.Descent}
			line.Children = append(line.Children, word)
			joinTo = word
		}
		x = x.Add(w)
		natural = natural.Add(p.width)
	}

	// render the selected break's end-of-line form (a hyphen, or the hard
	// break character itself); the break piece lies outside
	// [StartPiece, EndPiece), so this width is not part of what lineCost
	// measured for the line.
	if lb.EndPiece < len(lm.Pieces) {
		p := lm.Pieces[lb.EndPiece]
		if sep, ok := p.obj.(*tree.Separator); ok && (sep.Kind == tree.HyphenationPoint || sep.Kind == tree.BreakPoint) && sep.EndOfLineForm != "" {
			word := &Word{Text: sep.EndOfLineForm, Style: p.style, RelativeOffset: units.Offset2d{DX: x}}
			line.Children = append(line.Children, word)
		}
	}

	shift := units.Length(0)
	switch alignment {
	case style.Right:
		shift = availableWidth.Sub(x)
	case style.Centre:
		shift = availableWidth.Sub(x).Scale(0.5)
	}
	if shift != 0 {
		for _, c := range line.Children {
			if w, ok := c.(*Word); ok {
				w.RelativeOffset.DX = w.RelativeOffset.DX.Add(shift)
			}
		}
	}

	line.size = units.LayoutSize{Width: availableWidth, Ascent: lm.Ascent, Descent: lm.Descent}
	return line
}
