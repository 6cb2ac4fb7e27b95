package matching

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/resume"
)

// ErrScoring wraps any fault raised while scoring a profile.
var ErrScoring = errors.New("scoring failed")

// Weights are the composite weights of the three sub-scores. They must sum
// to 1.
type Weights struct {
	Skills     float64 `json:"skills" mapstructure:"skills-weight"`
	Experience float64 `json:"experience" mapstructure:"experience-weight"`
	Education  float64 `json:"education" mapstructure:"education-weight"`
}

func DefaultWeights() Weights {
	return Weights{Skills: 0.6, Experience: 0.3, Education: 0.1}
}

const weightTolerance = 1e-6

func (w Weights) Validate() error {
	if w.Skills < 0 || w.Experience < 0 || w.Education < 0 {
		return fmt.Errorf("matching weights must not be negative: %+v", w)
	}
	if sum := w.Skills + w.Experience + w.Education; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("matching weights must sum to 1, got %.4f", sum)
	}
	return nil
}

// Matcher scores profiles against requirements. It holds no per-call state
// and is safe for concurrent use.
type Matcher struct {
	weights Weights
	logger  *zap.Logger
}

type Option func(*Matcher)

func WithWeights(w Weights) Option {
	return func(m *Matcher) { m.weights = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Matcher using DefaultWeights unless overridden.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{weights: DefaultWeights(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.weights.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matcher) Weights() Weights { return m.weights }

// Score computes the weighted match of profile against req. A fault during
// scoring yields a zero result with Error set rather than a panic.
func (m *Matcher) Score(profile *resume.Profile, req Requirement) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrScoring, r)
			m.logger.Error("error calculating match score", zap.Error(err))
			res = Result{OverallScore: 0, Error: err.Error()}
		}
	}()

	sk := scoreSkills(profile.Skills, req)
	exp := scoreExperience(profile.TotalExperienceYears, req.ExperienceRequired)
	edu := scoreEducation(profile.Education, req.Requirements+" "+req.DescriptionText)

	overall := round2(sk.Overall*m.weights.Skills +
		exp.Score*m.weights.Experience +
		edu.Score*m.weights.Education)

	return Result{
		OverallScore:   overall,
		Skills:         sk,
		Experience:     exp,
		Education:      edu,
		Recommendation: recommend(overall, sk, exp),
		MatchBreakdown: &Breakdown{
			SkillsWeight:     round2(m.weights.Skills * 100),
			ExperienceWeight: round2(m.weights.Experience * 100),
			EducationWeight:  round2(m.weights.Education * 100),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
