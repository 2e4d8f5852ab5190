// Package lda adapts james-bowman/nlp's Latent Dirichlet Allocation to
// topics.Model. Fits run single-process from a fixed seed, so identical
// matrices always yield identical topics.
package lda

import (
	"errors"
	"fmt"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tbourn/chatlens/internal/topics"
)

// Defaults for Model.
const (
	DefaultSeed       = 42
	DefaultIterations = 200
)

var (
	ErrInvalidTopics = errors.New("lda: topic count must be positive")
	ErrNoTokens      = errors.New("lda: matrix has no tokens")
)

// Model is a stateless topics.Model; every Fit builds a fresh estimator.
// Alpha and Eta (document-topic and topic-word priors) default to 1/k when
// zero.
type Model struct {
	Seed       uint64
	Iterations int
	Alpha      float64
	Eta        float64
}

// New returns a Model with the default seed and iteration count.
func New() *Model {
	return &Model{Seed: DefaultSeed, Iterations: DefaultIterations}
}

var _ topics.Model = (*Model)(nil)

// Fit returns the topic-word distribution, k rows of len(m.Terms) columns.
func (md *Model) Fit(m *topics.Matrix, k int) ([][]float64, error) {
	if k <= 0 {
		return nil, ErrInvalidTopics
	}
	termDoc, err := termDocument(m)
	if err != nil {
		return nil, err
	}

	est := nlp.NewLatentDirichletAllocation(k)
	est.Rnd = rand.New(rand.NewSource(md.Seed))
	est.Processes = 1
	if md.Iterations > 0 {
		est.Iterations = md.Iterations
	}
	est.Alpha, est.Eta = md.Alpha, md.Eta
	if est.Alpha <= 0 {
		est.Alpha = 1 / float64(k)
	}
	if est.Eta <= 0 {
		est.Eta = 1 / float64(k)
	}

	if _, err := est.FitTransform(termDoc); err != nil {
		return nil, fmt.Errorf("lda: fit: %w", err)
	}
	return rows(est.Components(), k, len(m.Terms))
}

// termDocument lays m out terms × documents, the orientation nlp expects.
func termDocument(m *topics.Matrix) (mat.Matrix, error) {
	v, d := len(m.Terms), m.Docs()
	if v == 0 || d == 0 {
		return nil, ErrNoTokens
	}
	dok := sparse.NewDOK(v, d)
	total := 0
	for doc, row := range m.Rows {
		for _, e := range row {
			if e.Count > 0 {
				dok.Set(e.Term, doc, float64(e.Count))
				total += e.Count
			}
		}
	}
	if total == 0 {
		return nil, ErrNoTokens
	}
	return dok.ToCSC(), nil
}

// rows copies the k × v components into one slice per topic, accepting
// the transposed layout too.
func rows(c mat.Matrix, k, v int) ([][]float64, error) {
	r, cols := c.Dims()
	at := c.At
	switch {
	case r == k && cols == v:
	case r == v && cols == k:
		at = func(i, j int) float64 { return c.At(j, i) }
	default:
		return nil, fmt.Errorf("lda: components are %d×%d, want %d×%d", r, cols, k, v)
	}
	out := make([][]float64, k)
	for t := range out {
		out[t] = make([]float64, v)
		for w := range out[t] {
			out[t][w] = at(t, w)
		}
	}
	return out, nil
}
