package invoicepdf

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Israrkhan09/invoice-website/internal/layout"
)

// pdfRenderer turns a laid-out document into artifact bytes.
type pdfRenderer interface {
	Render(doc *layout.Document, meta renderMeta) ([]byte, error)
}

// renderMeta carries per-artifact metadata the layout does not know about.
type renderMeta struct {
	Title   string
	Created time.Time // embedded as the creation date; fixed clocks give reproducible bytes
	Page    layout.PageSpec
}

// fpdfRenderer draws laid-out regions with gofpdf. The layout engine has
// already decided every position, so rendering is a straight walk: one
// AddPage per page, then rects, lines and text runs at absolute
// coordinates. Each call builds its own document; the renderer itself is
// stateless and safe for concurrent use.
type fpdfRenderer struct{}

var _ pdfRenderer = (*fpdfRenderer)(nil)

func (r *fpdfRenderer) Render(doc *layout.Document, meta renderMeta) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: meta.Page.Width, Ht: meta.Page.Height},
	})
	pdf.SetTitle(meta.Title, true)
	pdf.SetCreationDate(meta.Created)
	pdf.SetModificationDate(meta.Created)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, region := range page.Regions {
			drawRegion(pdf, tr, region)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFRender, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFRender, err)
	}
	return buf.Bytes(), nil
}

func drawRegion(pdf *gofpdf.Fpdf, tr func(string) string, r layout.Region) {
	for _, op := range r.Rects {
		pdf.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
		pdf.Rect(op.BBox.X, op.BBox.Y, op.BBox.W, op.BBox.H, "F")
	}
	for _, op := range r.Lines {
		pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
		pdf.SetLineWidth(op.Width)
		pdf.Line(op.X1, op.Y1, op.X2, op.Y2)
	}
	for _, op := range r.Texts {
		pdf.SetFont(op.Font.Family, op.Font.Style, op.Font.Size)
		pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
		pdf.Text(op.X, op.Y, tr(op.Text))
	}
}

// fpdfMeasurer measures text with a dedicated gofpdf document so wrapping
// decisions use exactly the metrics the renderer will draw with. The
// backing document is stateful (current font), so calls serialize on a
// mutex; measurement is cheap and uncontended in the common single-export
// case.
type fpdfMeasurer struct {
	mu  sync.Mutex
	doc *gofpdf.Fpdf
	tr  func(string) string
}

var _ layout.Measurer = (*fpdfMeasurer)(nil)

func newFpdfMeasurer() *fpdfMeasurer {
	doc := gofpdf.New("P", "pt", "A4", "")
	return &fpdfMeasurer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (m *fpdfMeasurer) TextWidth(s string, f layout.FontSpec) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc.SetFont(f.Family, f.Style, f.Size)
	return m.doc.GetStringWidth(m.tr(s))
}
