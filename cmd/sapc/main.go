// Command sapc compiles a plain-text document (blank-line-separated
// paragraphs) into a PDF, exercising the full layout->render->write
// pipeline end to end. It stands in for the real "sap" markup frontend
// (lexer/parser/typechecker), which is out of scope here (spec §1): any
// future frontend only needs to build a []tree.BlockObject and hand it
// to the same layout.Document this command already drives.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sap-lang/sap/builder"
	"github.com/sap-lang/sap/fonts"
	"github.com/sap-lang/sap/interp"
	"github.com/sap-lang/sap/layout"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/pdfdoc"
	"github.com/sap-lang/sap/pdfwriter"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sapc:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		outPath  = flag.String("o", "out.pdf", "output PDF path")
		title    = flag.String("title", "", "document title (/Info and /Metadata)")
		author   = flag.String("author", "", "document author")
		compress = flag.Bool("compress", true, "flate-compress content and font streams")
		verbose  = flag.Bool("v", false, "verbose (debug-level) logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		return fmt.Errorf("usage: sapc [flags] <input.txt>")
	}

	zc := zap.NewProductionConfig()
	if *verbose {
		zc.Level.SetLevel(zap.DebugLevel)
	}
	zl, err := zc.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer zl.Sync()
	log := observability.NewZapLogger(zl)

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	roots := paragraphsFromText(string(src))

	resolver := fonts.NewBuiltinResolver()
	ip := interp.NewGojaInterpreter(style.Empty(), log)
	engine := &layout.Engine{Fonts: resolver, Interp: ip}
	pages := layout.NewPageLayout(layout.A4(), layout.UniformMargins(units.Length(25)))
	doc := layout.NewDocument(engine, pages, log)

	objs, err := doc.Run(roots)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	mediaBoxes := make([]pdfdoc.Rectangle, len(pages.Pages))
	for i, p := range pages.Pages {
		mediaBoxes[i] = pdfdoc.Rectangle{LLX: 0, LLY: 0, URX: p.Size.Width.Pt(), URY: p.Size.Height.Pt()}
	}

	renderer := pdfwriter.NewRenderer(resolver, builder.ImageFromFile)
	renderer.IndexPages(mediaBoxes, objs)

	pdfPages := make([]*pdfdoc.Page, len(mediaBoxes))
	for i := range mediaBoxes {
		pdfPages[i], err = renderer.RenderPage(i, mediaBoxes[i], objs)
		if err != nil {
			return fmt.Errorf("render page %d: %w", i, err)
		}
	}
	renderer.Finalize()

	outDoc := &pdfdoc.Document{
		Pages: pdfPages,
		Lang:  "en",
		Info:  &pdfdoc.DocumentInfo{Title: *title, Author: *author, Producer: "sapc"},
	}

	w := pdfwriter.NewWriterBuilder().WithCompression(*compress).WithLogger(log).Build()
	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := w.Write(context.Background(), outDoc, out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Info("sapc.done", observability.String("output", *outPath), observability.Int("pages", len(pdfPages)))
	return nil
}

// paragraphsFromText splits plain text on blank lines into one
// tree.Paragraph per block, each holding a single tree.Text run; a
// throwaway stand-in for the real frontend's paragraph/inline parsing.
func paragraphsFromText(src string) []tree.BlockObject {
	blocks := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n\n")
	roots := make([]tree.BlockObject, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		roots = append(roots, tree.NewParagraph(tree.NewText(strings.Join(strings.Fields(b), " "))))
	}
	return roots
}
