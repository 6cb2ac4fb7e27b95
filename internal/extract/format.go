// Package extract converts résumé documents into plain text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is the declared document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

var (
	// ErrUnsupportedFormat is returned for document types the extractor does not read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtractionEmpty marks a document that yielded no usable text.
	ErrExtractionEmpty = errors.New("could not extract text from resume")
)

// FormatFromFilename resolves the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// FormatFromMIME resolves the format from a MIME type, ignoring parameters.
func FormatFromMIME(mime string) (Format, error) {
	base, _, _ := strings.Cut(mime, ";")
	switch strings.ToLower(strings.TrimSpace(base)) {
	case "application/pdf":
		return FormatPDF, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatDOCX, nil
	case "text/plain":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mime)
	}
}

// Detect resolves the format of an uploaded document. The declared MIME type
// wins, then the filename, then the content itself.
func Detect(filename, mime string, data []byte) (Format, error) {
	if f, err := FormatFromMIME(mime); err == nil {
		return f, nil
	}
	if f, err := FormatFromFilename(filename); err == nil {
		return f, nil
	}
	sniffed := mimetype.Detect(data)
	if f, err := FormatFromMIME(sniffed.String()); err == nil {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s (%s, detected %s)", ErrUnsupportedFormat, filename, mime, sniffed.String())
}
