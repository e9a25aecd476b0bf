package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkAnnotationImplementsAnnotation(t *testing.T) {
	var a Annotation = &LinkAnnotation{RectVal: Rectangle{LLX: 1, LLY: 2, URX: 3, URY: 4}, URI: "https://example.test"}
	assert.Equal(t, "Link", a.Type())
	assert.Equal(t, Rectangle{LLX: 1, LLY: 2, URX: 3, URY: 4}, a.Rect())
}

func TestOutlineItemNestsChildren(t *testing.T) {
	root := OutlineItem{
		Title:     "Chapter 1",
		PageIndex: 0,
		Children: []OutlineItem{
			{Title: "Section 1.1", PageIndex: 0},
			{Title: "Section 1.2", PageIndex: 1},
		},
	}
	assert.Len(t, root.Children, 2)
	assert.Equal(t, "Section 1.2", root.Children[1].Title)
}

func TestResourcesHoldsFontsAndXObjectsByName(t *testing.T) {
	res := &Resources{
		Fonts:    map[string]*Font{"F1": {Subtype: "Type1", BaseFont: "Helvetica"}},
		XObjects: map[string]*XObject{"Im1": {Subtype: "Image", Width: 10, Height: 10}},
	}
	assert.Equal(t, "Helvetica", res.Fonts["F1"].BaseFont)
	assert.Equal(t, 10, res.XObjects["Im1"].Width)
}

func TestDocumentCarriesPageLabelsByIndex(t *testing.T) {
	doc := &Document{
		Pages:      []*Page{{Index: 0}, {Index: 1}},
		PageLabels: map[int]string{0: "i", 1: "1"},
	}
	assert.Equal(t, "i", doc.PageLabels[0])
	assert.Equal(t, "1", doc.PageLabels[1])
	assert.Len(t, doc.Pages, 2)
}
