package fonts

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// UsageTracker accumulates GlyphUsage per FontSource as the layout
// engine renders Word layout objects, so subsetting plans can be built
// once layout has converged. This replaces re-parsing emitted content
// streams after the fact (the teacher's original analyzer): here the
// pipeline builds PDFs from its own tree, so glyph ids are already known
// at the point a word is laid out.
type UsageTracker struct {
	usage map[FontSource]GlyphUsage
}

// NewUsageTracker returns an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{usage: make(map[FontSource]GlyphUsage)}
}

// Record marks glyph as used by source.
func (t *UsageTracker) Record(source FontSource, glyph GlyphID) {
	u, ok := t.usage[source]
	if !ok {
		u = GlyphUsage{Source: source, GlyphIDs: bitset.New(256)}
		t.usage[source] = u
	}
	u.GlyphIDs.Set(uint(glyph))
}

// RecordAll marks every glyph in glyphs as used by source.
func (t *UsageTracker) RecordAll(source FontSource, glyphs []GlyphID) {
	for _, g := range glyphs {
		t.Record(source, g)
	}
}

// Usages returns the accumulated usage, one entry per FontSource that
// had at least one Record call.
func (t *UsageTracker) Usages() []GlyphUsage {
	out := make([]GlyphUsage, 0, len(t.usage))
	for _, u := range t.usage {
		out = append(out, u)
	}
	return out
}

// Plans builds one SubsetPlan per tracked font, tagging each with a
// deterministic 6-letter subset tag (PDF convention, spec §4.2:
// "ABCDEF+FontName").
func (t *UsageTracker) Plans() []*SubsetPlan {
	plans := make([]*SubsetPlan, 0, len(t.usage))
	usages := t.Usages()
	sort.Slice(usages, func(i, j int) bool { return usages[i].Source.Name() < usages[j].Source.Name() })
	for _, u := range usages {
		plans = append(plans, NewSubsetPlan(u, subsetTag(len(plans))))
	}
	return plans
}

func subsetTag(index int) string {
	var tag [6]byte
	n := index
	for i := 5; i >= 0; i-- {
		tag[i] = byte('A' + n%26)
		n /= 26
	}
	return string(tag[:])
}
