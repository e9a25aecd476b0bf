// Package pdfwriter serialises a populated pdfdoc.Document into PDF
// bytes (spec §4.7, §4.8): building the indirect object graph (catalog,
// pages, fonts, XObjects, outlines, link annotations), compressing
// content streams, and emitting the classic cross-reference table and
// trailer. Adapted from wudi-pdfkit's writer package, trimmed to the
// write-only subset this pipeline needs: no incremental updates, no
// cross-reference streams/object streams, no PDF/A conformance and no
// encryption, since nothing downstream of layout ever needs them (see
// DESIGN.md for the per-feature justification).
package pdfwriter

import (
	"context"
	"fmt"
	"io"

	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/pdfdoc"
)

// Version is the PDF version declared in the file header.
type Version string

const PDF17 Version = "1.7"

// Config controls how a Document is serialised, assembled through
// WriterBuilder rather than a long parameter list (spec's ambient
// Config/Builder convention, matching the teacher's writer.Config).
type Config struct {
	Version       Version
	Compress      bool // wrap content/font-program streams in /FlateDecode
	Deterministic bool // derive /ID from a content hash instead of random UUIDv4s (dictionary keys are sorted either way)
	Draft         bool // skip content-stream emission; pages carry empty streams for fast layout iteration
	Logger        observability.Logger
	Tracer        observability.Tracer
}

// WriterBuilder assembles a Config fluently, matching the teacher's
// WriterBuilder shape.
type WriterBuilder struct {
	cfg Config
}

func NewWriterBuilder() *WriterBuilder {
	return &WriterBuilder{cfg: Config{Version: PDF17, Compress: true}}
}

func (b *WriterBuilder) WithCompression(on bool) *WriterBuilder {
	b.cfg.Compress = on
	return b
}

func (b *WriterBuilder) WithDeterministicIDs(on bool) *WriterBuilder {
	b.cfg.Deterministic = on
	return b
}

// WithDraft enables draft mode: pages are built and measured exactly as
// usual, but their content streams are emitted empty, so the PDF's page
// count, geometry and resource dictionaries reflect the real layout
// while the (often dominant) cost of writing glyph-show and path
// operators is skipped entirely.
func (b *WriterBuilder) WithDraft(on bool) *WriterBuilder {
	b.cfg.Draft = on
	return b
}

func (b *WriterBuilder) WithLogger(l observability.Logger) *WriterBuilder {
	b.cfg.Logger = l
	return b
}

func (b *WriterBuilder) WithTracer(t observability.Tracer) *WriterBuilder {
	b.cfg.Tracer = t
	return b
}

func (b *WriterBuilder) Build() *Writer {
	if b.cfg.Logger == nil {
		b.cfg.Logger = observability.NopLogger{}
	}
	if b.cfg.Tracer == nil {
		b.cfg.Tracer = observability.NopTracer()
	}
	return &Writer{cfg: b.cfg}
}

// Writer serialises documents under a fixed Config.
type Writer struct{ cfg Config }

// NewWriter builds a Writer with default configuration (PDF 1.7,
// compression on, non-deterministic IDs).
func NewWriter() *Writer { return NewWriterBuilder().Build() }

// Write serialises doc to w in one pass (spec §4.7's "two phases: build
// the object graph, then serialise it").
func (wr *Writer) Write(ctx context.Context, doc *pdfdoc.Document, w io.Writer) (err error) {
	_, span := wr.cfg.Tracer.StartSpan(ctx, "pdfwriter.write")
	span.SetTag("pages", len(doc.Pages))
	log := wr.cfg.Logger
	log.Info("pdfwriter.write.start", observability.Int("pages", len(doc.Pages)))
	defer func() {
		if err != nil {
			span.SetError(err)
			log.Error("pdfwriter.write.error", observability.Error("err", err))
		} else {
			log.Info("pdfwriter.write.finish", observability.Int("pages", len(doc.Pages)))
		}
		span.Finish()
	}()

	b := newBuilder(wr.cfg)
	catalogRef, err := b.build(doc)
	if err != nil {
		return fmt.Errorf("pdfwriter: build object graph: %w", err)
	}
	return b.serialiseTo(w, catalogRef)
}
