package topics

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrInsufficientData means the corpus cannot support a topic model: no
// documents, an empty vocabulary, or nothing left after frequency pruning.
var ErrInsufficientData = errors.New("topics: insufficient data")

// termRE selects vocabulary terms: runs of two or more word characters.
var termRE = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Entry is a non-zero cell of a document row.
type Entry struct {
	Term  int
	Count int
}

// Matrix is a sparse document-term count matrix. Terms is sorted; each
// row lists its entries by ascending term index. Documents whose terms were
// all pruned are kept as empty rows.
type Matrix struct {
	Terms []string
	Rows  [][]Entry
}

// Docs is the number of documents.
func (m *Matrix) Docs() int { return len(m.Rows) }

// BuildMatrix counts terms per document and keeps those appearing in at
// least minDF documents and at most maxDF × documents.
func BuildMatrix(docs []string, minDF int, maxDF float64) (*Matrix, error) {
	if len(docs) == 0 {
		return nil, ErrInsufficientData
	}
	maxCount := maxDF * float64(len(docs))
	if maxCount < float64(minDF) {
		return nil, ErrInsufficientData
	}

	perDoc := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		counts := make(map[string]int)
		for _, tok := range termRE.FindAllString(strings.ToLower(d), -1) {
			counts[tok]++
		}
		for tok := range counts {
			df[tok]++
		}
		perDoc[i] = counts
	}
	if len(df) == 0 {
		return nil, ErrInsufficientData
	}

	var terms []string
	for tok, n := range df {
		if n >= minDF && float64(n) <= maxCount {
			terms = append(terms, tok)
		}
	}
	if len(terms) == 0 {
		return nil, ErrInsufficientData
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	m := &Matrix{Terms: terms, Rows: make([][]Entry, len(docs))}
	for i, counts := range perDoc {
		var row []Entry
		for tok, n := range counts {
			if j, ok := index[tok]; ok {
				row = append(row, Entry{Term: j, Count: n})
			}
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Term < row[b].Term })
		m.Rows[i] = row
	}
	return m, nil
}
