package textsource

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hemant-mistri/portfolio/internal/logger"
)

// PlainDecoder is a pure Go decoder for builds without cgo.
type PlainDecoder struct{}

func NewPlainDecoder() *PlainDecoder {
	return &PlainDecoder{}
}

func (d *PlainDecoder) Decode(ctx context.Context, data []byte) (doc Document, err error) {
	if !IsPDF(data) {
		return Document{}, &DecodeError{Err: ErrNotPDF}
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, &DecodeError{Err: fmt.Errorf("parse pdf: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, &DecodeError{Err: fmt.Errorf("open pdf: %w", err)}
	}

	total := reader.NumPage()
	logger.Debug().Int("pages", total).Str("decoder", DecoderPlain).Msg("decoding pdf")

	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, pageText(page.Content().Text))
	}

	return joinPages(pages)
}

// pageText rebuilds the lines of a page from positioned glyphs. A change of
// baseline starts a new line; a horizontal gap wider than a quarter of the
// font size between two glyphs on one line becomes a space.
func pageText(glyphs []pdf.Text) string {
	var (
		b    strings.Builder
		prev pdf.Text
		seen bool
	)
	for _, g := range glyphs {
		// TJ ends every array with a synthetic newline glyph; rows come from Y.
		if g.S == "\n" || g.S == "\r" {
			continue
		}
		if seen {
			switch {
			case math.Abs(g.Y-prev.Y) > baselineTolerance(g, prev):
				b.WriteByte('\n')
			case prev.W > 0 && g.S != " " && prev.S != " " && g.X-(prev.X+prev.W) > g.FontSize/4:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev, seen = g, true
	}
	return b.String()
}

func baselineTolerance(a, b pdf.Text) float64 {
	return math.Max(1, math.Min(a.FontSize, b.FontSize)/2)
}
