// Package examples indexes the labeled development set by domain and retrieves
// the few-shot examples most lexically similar to a question.
package examples

import (
	"sort"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/lexical"
)

// Index groups examples by domain tag. It is read-only after New returns and
// safe for concurrent use.
type Index struct {
	all      []domain.Example
	byDomain map[string][]domain.Example
}

// New builds an index over examples, preserving their order within each domain.
// The slice is copied so later mutation by the caller has no effect.
func New(examples []domain.Example) *Index {
	idx := &Index{
		all:      make([]domain.Example, len(examples)),
		byDomain: make(map[string][]domain.Example),
	}
	copy(idx.all, examples)
	for _, ex := range idx.all {
		idx.byDomain[ex.Domain] = append(idx.byDomain[ex.Domain], ex)
	}
	return idx
}

// Len returns the total number of indexed examples.
func (i *Index) Len() int { return len(i.all) }

// Domains returns the number of distinct domain tags.
func (i *Index) Domains() int { return len(i.byDomain) }

// Pool returns the candidates considered for a domain: the domain's own bucket,
// or every example when the domain has never been seen.
func (i *Index) Pool(tag string) []domain.Example {
	if bucket, ok := i.byDomain[tag]; ok {
		return bucket
	}
	return i.all
}

type scored struct {
	example domain.Example
	score   float64
}

// Select returns up to k examples from the domain's pool ranked by lexical
// similarity to question. Examples that share no tokens with the question are
// never returned. Equal scores keep their original order.
func (i *Index) Select(tag, question string, k int) []domain.Example {
	if k <= 0 {
		return nil
	}
	pool := i.Pool(tag)
	if len(pool) == 0 {
		return nil
	}

	ranked := make([]scored, len(pool))
	for n, ex := range pool {
		ranked[n] = scored{example: ex, score: lexical.Similarity(ex.Input, question)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	var out []domain.Example
	for _, r := range ranked {
		if len(out) == k {
			break
		}
		if r.score <= 0 {
			// Sorted descending, so nothing after this scores either.
			break
		}
		out = append(out, r.example)
	}
	return out
}
