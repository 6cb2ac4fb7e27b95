package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// DefaultPDFEngines returns the plain-text engine followed by the row engine,
// and pdftotext when it is installed.
func DefaultPDFEngines() []Engine {
	engines := []Engine{PlainTextEngine{}, RowEngine{}}
	if path, err := exec.LookPath("pdftotext"); err == nil {
		engines = append(engines, PDFToText{Path: path})
	}
	return engines
}

// PlainTextEngine reads each page's text content stream in order.
type PlainTextEngine struct{}

func (PlainTextEngine) Name() string { return "plaintext" }

func (PlainTextEngine) Extract(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// RowEngine rebuilds lines from positioned glyph runs, which recovers text
// from layouts the plain-text walk flattens badly.
type RowEngine struct{}

func (RowEngine) Name() string { return "rows" }

func (RowEngine) Extract(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			line := joinRow(row.Content)
			if strings.TrimSpace(line) == "" {
				continue
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// joinRow concatenates runs, inserting a space where the horizontal gap
// between two runs is wider than a fifth of the font size.
func joinRow(content pdf.TextHorizontal) string {
	var sb strings.Builder
	for i, t := range content {
		if i > 0 {
			prev := content[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > prev.FontSize*0.2 && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
	}
	return sb.String()
}

// PDFToText shells out to poppler's pdftotext in layout mode.
type PDFToText struct {
	Path    string
	Timeout time.Duration
}

func (p PDFToText) Name() string { return "pdftotext" }

func (p PDFToText) Extract(data []byte) (string, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	path := p.Path
	if path == "" {
		path = "pdftotext"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "-layout", "-enc", "UTF-8", "-", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
