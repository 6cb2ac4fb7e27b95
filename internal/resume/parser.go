package resume

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/skills"
)

// TextExtractor converts document bytes into text.
type TextExtractor interface {
	Extract(data []byte, format extract.Format) (string, error)
}

type document struct {
	text  string
	spans Spans
	now   time.Time
}

// stage fills part of a profile from the document.
type stage func(doc *document, p *Profile)

var defaultStages = []stage{
	func(doc *document, p *Profile) { p.CandidateName = ExtractName(doc.text) },
	func(doc *document, p *Profile) { p.ContactInfo = ExtractContact(doc.text) },
	func(doc *document, p *Profile) { p.Skills = skills.Extract(doc.text) },
	func(doc *document, p *Profile) {
		p.Experience, p.TotalExperienceYears = ExtractExperience(doc.text, doc.spans.Get(SectionExperience), doc.now)
	},
	func(doc *document, p *Profile) { p.Education = ExtractEducation(doc.spans.Get(SectionEducation)) },
	func(doc *document, p *Profile) { p.Projects = ExtractProjects(doc.spans.Get(SectionProjects)) },
}

// Parser builds profiles from résumé documents. It holds no per-call state and
// is safe for concurrent use.
type Parser struct {
	extractor TextExtractor
	now       func() time.Time
	logger    *zap.Logger
	stages    []stage
}

type Option func(*Parser)

func WithExtractor(e TextExtractor) Option {
	return func(p *Parser) {
		if e != nil {
			p.extractor = e
		}
	}
}

// WithClock sets the clock used to resolve "Present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now:    time.Now,
		logger: zap.NewNop(),
		stages: defaultStages,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.extractor == nil {
		p.extractor = extract.New(extract.WithLogger(p.logger))
	}
	return p
}

// Parse extracts text from data and parses it into a profile. The only error
// returned is extract.ErrUnsupportedFormat; every other failure yields a
// failed profile.
func (p *Parser) Parse(data []byte, format extract.Format) (*Profile, error) {
	text, err := p.extractor.Extract(data, format)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, err
		}
		p.logger.Warn("text extraction failed", zap.String("format", string(format)), zap.Error(err))
		return FailedProfile(err), nil
	}
	return p.ParseText(text), nil
}

// ParseText parses already extracted text. Blank text yields a failed profile.
func (p *Parser) ParseText(text string) (profile *Profile) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrFieldExtraction, r)
			p.logger.Error("resume parsing failed", zap.Error(err))
			profile = FailedProfile(err)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return FailedProfile(extract.ErrExtractionEmpty)
	}

	doc := &document{
		text:  text,
		spans: Segment(text),
		now:   p.now(),
	}
	profile = &Profile{
		RawText:       text,
		ParsingStatus: StatusSuccess,
	}
	for _, s := range p.stages {
		s(doc, profile)
	}

	p.logger.Debug("resume parsed",
		zap.String("candidate", profile.CandidateName),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experience_entries", len(profile.Experience)),
		zap.Int("years", profile.TotalExperienceYears),
	)
	return profile
}
