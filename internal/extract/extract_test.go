package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	name  string
	text  string
	err   error
	panic bool
	calls *int
}

func (f fakeEngine) Name() string { return f.name }

func (f fakeEngine) Extract([]byte) (string, error) {
	if f.calls != nil {
		*f.calls++
	}
	if f.panic {
		panic("corrupt xref table")
	}
	return f.text, f.err
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"cv.pdf", FormatPDF, false},
		{"CV.PDF", FormatPDF, false},
		{"resume.docx", FormatDOCX, false},
		{"notes.txt", FormatText, false},
		{"legacy.doc", "", true},
		{"photo.png", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromFilename(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromMIME(t *testing.T) {
	got, err := FormatFromMIME("text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	got, err = FormatFromMIME("application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, got)

	_, err = FormatFromMIME("application/msword")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mime     string
		data     []byte
		want     Format
	}{
		{"declared mime wins", "cv.txt", "application/pdf", nil, FormatPDF},
		{"filename when mime is generic", "cv.docx", "application/octet-stream", nil, FormatDOCX},
		{"sniffs pdf content", "upload", "", []byte("%PDF-1.4\n%...\n"), FormatPDF},
		{"sniffs plain text", "upload", "", []byte("Jane Doe\nSoftware Engineer\n"), FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.filename, tt.mime, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Detect("cv.doc", "application/msword", []byte{0x00, 0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_Text(t *testing.T) {
	e := New()

	got, err := e.Extract([]byte("  Jane Doe\nEngineer \xff\n"), FormatText)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer �", got)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := New().Extract([]byte("x"), Format("doc"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_PDFPrimaryAccepted(t *testing.T) {
	var secondary int
	long := strings.Repeat("experience ", 10)
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", text: long},
		fakeEngine{name: "secondary", text: long + long, calls: &secondary},
	))

	got, err := e.Extract(nil, FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(long), got)
	assert.Zero(t, secondary)
}

func TestExtract_PDFFallbackPrefersLonger(t *testing.T) {
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", text: "Jane"},
		fakeEngine{name: "secondary", text: "Jane Doe, Software Engineer"},
	))

	got, err := e.Extract(nil, FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe, Software Engineer", got)
}

func TestExtract_PDFFallbackKeepsPrimaryWhenLonger(t *testing.T) {
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", text: "Jane Doe, Engineer"},
		fakeEngine{name: "secondary", text: "Jane"},
	))

	got, err := e.Extract(nil, FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe, Engineer", got)
}

func TestExtract_PDFEnginePanicRecovered(t *testing.T) {
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", panic: true},
		fakeEngine{name: "secondary", text: "recovered text"},
	))

	got, err := e.Extract(nil, FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "recovered text", got)
}

func TestExtract_PDFAllEnginesFail(t *testing.T) {
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", err: errors.New("bad header")},
		fakeEngine{name: "secondary", panic: true},
	))

	_, err := e.Extract(nil, FormatPDF)

	assert.ErrorIs(t, err, ErrExtractionEmpty)
	assert.Contains(t, err.Error(), "bad header")
}

func TestExtract_PDFNoTextIsNotAnError(t *testing.T) {
	e := New(WithPDFEngines(
		fakeEngine{name: "primary", text: "   "},
		fakeEngine{name: "secondary", text: ""},
	))

	got, err := e.Extract(nil, FormatPDF)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_InvalidPDFBytes(t *testing.T) {
	e := New(WithPDFEngines(PlainTextEngine{}, RowEngine{}))

	_, err := e.Extract([]byte("not a pdf"), FormatPDF)

	assert.ErrorIs(t, err, ErrExtractionEmpty)
}

func TestExtract_InvalidDOCXBytes(t *testing.T) {
	_, err := New().Extract([]byte("not a zip"), FormatDOCX)

	assert.ErrorIs(t, err, ErrExtractionEmpty)
}

func TestParagraphText(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Python</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := paragraphText(content)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython\tGo\n\nLine one\nLine two", got)
}

func TestParagraphText_Malformed(t *testing.T) {
	_, err := paragraphText(`<w:p><w:t>open`)

	assert.Error(t, err)
}

var documentLines = []string{
	"Jane Doe",
	"jane.doe@example.com",
	"Senior Software Engineer with 6 years of experience",
	"Skills: Python, Go, Docker",
}

func TestPDFEngines_RealDocument(t *testing.T) {
	data := buildPDF(documentLines...)

	for _, engine := range []Engine{PlainTextEngine{}, RowEngine{}} {
		t.Run(engine.Name(), func(t *testing.T) {
			got, err := engine.Extract(data)

			require.NoError(t, err)
			assert.Equal(t, strings.Join(documentLines, "\n"), strings.TrimSpace(got))
		})
	}
}

func TestExtract_PDFDocument(t *testing.T) {
	e := New(WithPDFEngines(PlainTextEngine{}, RowEngine{}))

	got, err := e.Extract(buildPDF(documentLines...), FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, strings.Join(documentLines, "\n"), got)
}

func TestExtract_DOCXDocument(t *testing.T) {
	got, err := New().Extract(buildDOCX(t, documentLines...), FormatDOCX)

	require.NoError(t, err)
	assert.Equal(t, strings.Join(documentLines, "\n"), got)
}
