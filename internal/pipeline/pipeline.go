// Package pipeline wires the analysis stages together: text extraction,
// role prediction, skill extraction, gap computation, and course
// recommendation.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/courses"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTopRoles is how many predicted roles get a gap report when the
// caller does not choose a count.
const DefaultTopRoles = 5

// Config holds everything needed to build an Analyzer.
type Config struct {
	// CoursesPath points at the course corpus CSV. Required.
	CoursesPath string
	// TaxonomyPath optionally points at a taxonomy JSON file. Empty
	// means the built-in role table.
	TaxonomyPath string
	// Classifier overrides the bundled keyword classifier. Its label
	// space must match the taxonomy keys.
	Classifier classifier.Classifier
	// TopRoles and TopCourses default to 5 when zero.
	TopRoles   int
	TopCourses int
}

// Analyzer runs the full resume analysis. All of its state is built once
// here and read-only afterwards, so one Analyzer safely serves concurrent
// sessions. Per-session state lives only in the returned AnalysisResult.
type Analyzer struct {
	tax        *taxonomy.Taxonomy
	extractor  *skills.Extractor
	classifier classifier.Classifier
	store      *courses.Store
	index      *recommend.Index
	topRoles   int
	topCourses int
}

// NewAnalyzer loads the taxonomy and course corpus, builds the course
// vector space, and returns a ready Analyzer. Any failure here is a
// startup error; nothing is deferred to request time.
func NewAnalyzer(ctx context.Context, cfg Config) (*Analyzer, error) {
	if cfg.CoursesPath == "" {
		return nil, fmt.Errorf("courses path is required")
	}

	normalizer, err := parsing.NewNormalizer()
	if err != nil {
		return nil, err
	}

	var (
		tax   *taxonomy.Taxonomy
		store *courses.Store
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if cfg.TaxonomyPath == "" {
			tax = taxonomy.Default()
			return nil
		}
		var loadErr error
		tax, loadErr = taxonomy.LoadFile(cfg.TaxonomyPath)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		store, loadErr = courses.LoadCSV(cfg.CoursesPath)
		return loadErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index, err := recommend.BuildIndex(normalizer, store.Descriptions())
	if err != nil {
		return nil, err
	}

	c := cfg.Classifier
	if c == nil {
		c = classifier.NewKeywordClassifier(tax)
	}

	topRoles := cfg.TopRoles
	if topRoles <= 0 {
		topRoles = DefaultTopRoles
	}
	topCourses := cfg.TopCourses
	if topCourses <= 0 {
		topCourses = recommend.DefaultTopK
	}

	return &Analyzer{
		tax:        tax,
		extractor:  skills.NewExtractor(tax),
		classifier: c,
		store:      store,
		index:      index,
		topRoles:   topRoles,
		topCourses: topCourses,
	}, nil
}

// AnalyzeBytes extracts text from an in-memory PDF and analyzes it.
func (a *Analyzer) AnalyzeBytes(ctx context.Context, data []byte) (*types.AnalysisResult, error) {
	text, err := ingestion.ExtractText(data)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(ctx, text)
}

// AnalyzeFile extracts text from a PDF on disk and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*types.AnalysisResult, error) {
	text, err := ingestion.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(ctx, text)
}

// AnalyzeText runs prediction, skill extraction, gap computation, and
// per-role recommendation over already-extracted resume text. Roles whose
// required skills are fully covered appear in the gap report but get no
// recommendation section.
func (a *Analyzer) AnalyzeText(_ context.Context, text string) (*types.AnalysisResult, error) {
	predictions, err := a.classifier.Predict(text)
	if err != nil {
		return nil, fmt.Errorf("role prediction failed: %w", err)
	}

	extracted := a.extractor.Extract(text)

	top := predictions
	if len(top) > a.topRoles {
		top = top[:a.topRoles]
	}
	roles := make([]string, len(top))
	for i, p := range top {
		roles[i] = p.Role
	}

	gaps, err := skills.ComputeGaps(a.tax, roles, extracted)
	if err != nil {
		return nil, err
	}

	recommendations := make([]types.CourseRecommendation, 0, len(gaps))
	for _, gap := range gaps {
		if gap.Satisfied() {
			continue
		}
		ids := a.index.Recommend(gap.MissingSkills, a.topCourses)
		records, dropped := a.store.Fetch(ids)
		recommendations = append(recommendations, types.CourseRecommendation{
			Role:          gap.Role,
			MissingSkills: gap.MissingSkills,
			Courses:       records,
			Dropped:       dropped,
		})
	}

	return &types.AnalysisResult{
		Predictions:     top,
		Skills:          extracted,
		Gaps:            gaps,
		Recommendations: recommendations,
	}, nil
}

// Taxonomy exposes the loaded taxonomy for read-only use.
func (a *Analyzer) Taxonomy() *taxonomy.Taxonomy {
	return a.tax
}

// Courses exposes the course store for read-only use.
func (a *Analyzer) Courses() *courses.Store {
	return a.store
}

// Recommend ranks courses for an arbitrary missing-skill set, outside a
// full analysis run.
func (a *Analyzer) Recommend(missingSkills []string, k int) ([]types.CourseRecord, int) {
	if k <= 0 {
		k = a.topCourses
	}
	return a.store.Fetch(a.index.Recommend(missingSkills, k))
}
