// Package textmatch scores the vocabulary overlap between a resume body and a job description
// with a throwaway in-memory bleve index.
package textmatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	index "github.com/blevesearch/bleve_index_api"
)

const (
	resumeDocID  = "resume"
	jobDocID     = "job"
	contentField = "content"
)

// ErrEmptyText is returned when either side of the comparison has no content
var ErrEmptyText = errors.New("resume and job text must not be empty")

// TermScore represents a term with its relevance score
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Result is the term overlap between a resume and a job description
type Result struct {
	MatchPercentage int         `json:"match_percentage"`
	Coverage        float64     `json:"coverage"`
	SharedTerms     []TermScore `json:"shared_terms"`
	MissingTerms    []string    `json:"missing_terms"`
}

// Analyzer runs BM25-style term scoring between two texts
type Analyzer struct {
	indexMapping mapping.IndexMapping
	sharedLimit  int
	missingLimit int
	logger       *slog.Logger
}

// NewAnalyzer creates an analyzer with the default bleve mapping
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		indexMapping: bleve.NewIndexMapping(),
		sharedLimit:  15,
		missingLimit: 20,
		logger:       slog.Default(),
	}
}

// WithLogger sets a custom logger
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	a.logger = logger
	return a
}

// WithLimits caps the number of shared and missing terms reported
func (a *Analyzer) WithLimits(shared, missing int) *Analyzer {
	a.sharedLimit = shared
	a.missingLimit = missing
	return a
}

// preprocessText normalizes text for analysis
func preprocessText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Analyze indexes both texts and compares their per-term scores
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*Result, error) {
	resumeClean := preprocessText(resumeText)
	jobClean := preprocessText(jobText)
	if resumeClean == "" || jobClean == "" {
		return nil, ErrEmptyText
	}

	a.logger.DebugContext(ctx, "starting term overlap analysis",
		"resume_length", len(resumeClean),
		"job_length", len(jobClean),
	)

	idx, err := bleve.NewMemOnly(a.indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis index: %w", err)
	}
	defer idx.Close()

	if err := idx.Index(resumeDocID, map[string]interface{}{contentField: resumeClean}); err != nil {
		return nil, fmt.Errorf("failed to index resume: %w", err)
	}
	if err := idx.Index(jobDocID, map[string]interface{}{contentField: jobClean}); err != nil {
		return nil, fmt.Errorf("failed to index job description: %w", err)
	}

	resumeTerms, jobTerms, err := termScores(ctx, idx)
	if err != nil {
		return nil, err
	}

	result := a.compare(resumeTerms, jobTerms)

	a.logger.DebugContext(ctx, "term overlap analysis complete",
		"match_percentage", result.MatchPercentage,
		"coverage", result.Coverage,
		"shared_terms", len(result.SharedTerms),
		"missing_terms", len(result.MissingTerms),
	)
	return result, nil
}

// termScores walks the content dictionary and scores every term against both documents
func termScores(ctx context.Context, idx bleve.Index) (resume, job map[string]float64, err error) {
	resume = make(map[string]float64)
	job = make(map[string]float64)

	dict, err := idx.FieldDict(contentField)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read term dictionary: %w", err)
	}
	defer dict.Close()

	err = eachTerm(dict, func(entry *index.DictEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		q := query.NewTermQuery(entry.Term)
		q.SetField(contentField)
		req := bleve.NewSearchRequest(q)
		req.Size = 2

		res, err := idx.SearchInContext(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to score term %q: %w", entry.Term, err)
		}
		for _, hit := range res.Hits {
			switch hit.ID {
			case resumeDocID:
				resume[entry.Term] = hit.Score
			case jobDocID:
				job[entry.Term] = hit.Score
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return resume, job, nil
}

func eachTerm(dict index.FieldDict, fn func(*index.DictEntry) error) error {
	for {
		entry, err := dict.Next()
		if err != nil {
			return fmt.Errorf("failed to iterate term dictionary: %w", err)
		}
		if entry == nil {
			return nil
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
}

// compare computes coverage of job terms and a weighted match percentage
func (a *Analyzer) compare(resumeTerms, jobTerms map[string]float64) *Result {
	result := &Result{
		SharedTerms:  []TermScore{},
		MissingTerms: []string{},
	}

	shared := make([]TermScore, 0)
	missing := make([]TermScore, 0)
	jobWeight, matchWeight := 0.0, 0.0

	terms := make([]string, 0, len(jobTerms))
	for term := range jobTerms {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for _, term := range terms {
		weight := jobTerms[term]
		jobWeight += weight
		if resumeWeight, ok := resumeTerms[term]; ok {
			score := minFloat64(resumeWeight, weight)
			matchWeight += score
			shared = append(shared, TermScore{Term: term, Score: score})
		} else {
			missing = append(missing, TermScore{Term: term, Score: weight})
		}
	}

	if len(jobTerms) > 0 {
		result.Coverage = float64(len(shared)) / float64(len(jobTerms))
	}
	if jobWeight > 0 {
		result.MatchPercentage = int(matchWeight / jobWeight * 100)
	}
	if result.MatchPercentage > 100 {
		result.MatchPercentage = 100
	}

	sortByScore(shared)
	sortByScore(missing)

	for i, ts := range shared {
		if i == a.sharedLimit {
			break
		}
		result.SharedTerms = append(result.SharedTerms, ts)
	}
	for i, ts := range missing {
		if i == a.missingLimit {
			break
		}
		result.MissingTerms = append(result.MissingTerms, ts.Term)
	}
	return result
}

// sortByScore orders descending by score, ties by term
func sortByScore(terms []TermScore) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Term < terms[j].Term
	})
}

// minFloat64 returns the minimum of two float64 values
func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
