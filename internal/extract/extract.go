package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MinTextLength is the length above which the primary PDF engine's output is
// accepted without trying the fallback engines.
const MinTextLength = 50

// Engine is a single PDF text extraction strategy.
type Engine interface {
	Name() string
	Extract(data []byte) (string, error)
}

// Extractor turns document bytes into plain text.
type Extractor struct {
	pdfEngines []Engine
	minLength  int
	logger     *zap.Logger
}

type Option func(*Extractor)

// WithLogger sets the logger used for extraction diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMinLength overrides MinTextLength.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minLength = n
		}
	}
}

// WithPDFEngines replaces the PDF engine chain. The first engine is primary.
func WithPDFEngines(engines ...Engine) Option {
	return func(e *Extractor) {
		if len(engines) > 0 {
			e.pdfEngines = engines
		}
	}
}

// New returns an Extractor with the default engine chain.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		pdfEngines: DefaultPDFEngines(),
		minLength:  MinTextLength,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the document text. Empty text with a nil error means the
// document decoded but carried no text (a scanned PDF, for example).
func (e *Extractor) Extract(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return e.extractPDF(data)
	case FormatDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionEmpty, err)
		}
		return clean(text), nil
	case FormatText:
		return clean(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (e *Extractor) extractPDF(data []byte) (string, error) {
	var (
		best string
		errs []error
	)

	for i, engine := range e.pdfEngines {
		text, err := run(engine, data)
		if err != nil {
			e.logger.Debug("pdf engine failed", zap.String("engine", engine.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", engine.Name(), err))
			continue
		}

		text = clean(text)
		n := utf8.RuneCountInString(text)
		if i == 0 && n > e.minLength {
			return text, nil
		}
		if i > 0 {
			e.logger.Debug("pdf fallback engine",
				zap.String("engine", engine.Name()),
				zap.Int("chars", n),
				zap.Int("best", utf8.RuneCountInString(best)),
			)
		}
		if n > utf8.RuneCountInString(best) {
			best = text
		}
		if utf8.RuneCountInString(best) > e.minLength {
			break
		}
	}

	if best == "" && len(errs) == len(e.pdfEngines) {
		return "", fmt.Errorf("%w: %w", ErrExtractionEmpty, errors.Join(errs...))
	}
	if utf8.RuneCountInString(best) <= e.minLength {
		e.logger.Warn("pdf extraction yielded minimal text", zap.Int("chars", utf8.RuneCountInString(best)))
	}
	return best, nil
}

// run calls engine and converts a panic inside the PDF decoder into an error.
func run(engine Engine, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()
	return engine.Extract(data)
}

func clean(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "�"))
}
