package textsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/hemant-mistri/portfolio/internal/logger"
)

// FitzDecoder reads the PDF text layer through MuPDF.
type FitzDecoder struct{}

func NewFitzDecoder() *FitzDecoder {
	return &FitzDecoder{}
}

func (d *FitzDecoder) Decode(ctx context.Context, data []byte) (Document, error) {
	if !IsPDF(data) {
		return Document{}, &DecodeError{Err: ErrNotPDF}
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Document{}, &DecodeError{Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer doc.Close()

	total := doc.NumPage()
	logger.Debug().Int("pages", total).Str("decoder", DecoderFitz).Msg("decoding pdf")

	pages := make([]string, 0, total)
	for n := 0; n < total; n++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		text, err := doc.Text(n)
		if err != nil {
			return Document{}, &DecodeError{Err: fmt.Errorf("page %d: %w", n+1, err)}
		}
		pages = append(pages, strings.TrimRight(text, " \t\r\n"))
	}

	return joinPages(pages)
}
