package textsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Decoder turns the bytes of a PDF into a Document.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (Document, error)
}

const (
	DecoderFitz  = "fitz"
	DecoderPlain = "plain"
)

var (
	ErrNotPDF      = errors.New("not a PDF document")
	ErrNoTextLayer = errors.New("document has no extractable text layer")
)

// DecodeError reports that a source document could not be read.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("decode document: %v", e.Err)
	}
	return fmt.Sprintf("decode document %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecoder returns the decoder registered under name.
func NewDecoder(name string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DecoderFitz:
		return NewFitzDecoder(), nil
	case DecoderPlain:
		return NewPlainDecoder(), nil
	default:
		return nil, fmt.Errorf("unknown decoder %q (want %s or %s)", name, DecoderFitz, DecoderPlain)
	}
}

func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// joinPages concatenates page texts and fails when nothing readable remains.
func joinPages(pages []string) (Document, error) {
	text := strings.Join(pages, PageSeparator)
	doc := FromText(text)
	if doc.Empty() {
		return Document{}, &DecodeError{Err: ErrNoTextLayer}
	}
	return doc, nil
}
