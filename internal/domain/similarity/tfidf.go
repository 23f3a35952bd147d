// Package similarity scores candidate documents against a query document
// using per-call TF-IDF weighting and cosine similarity.
//
// Each call builds its model over the batch {query, candidates...} alone;
// there is no persistent vocabulary or index across calls. That keeps the
// ranking deterministic for a given input and is cheap enough for corpora in
// the thousands of documents. If the corpus outgrows that, the replacement is
// an incremental inverted index with cached document frequencies, not a
// tweak here.
package similarity

import (
	"math"
	"sort"

	"jobboard/internal/domain/corpus"
)

// Ranked pairs a candidate's position in the input slice with its score.
type Ranked struct {
	Index int
	Score float64
}

// Scores returns one similarity score in [0,1] per candidate, in input order.
// A score is 0 whenever the query or the candidate is empty.
func Scores(query corpus.Document, candidates []corpus.Document) []float64 {
	out := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	// Document frequencies over the whole batch, query included once.
	batch := make([]corpus.Document, 0, len(candidates)+1)
	batch = append(batch, query)
	batch = append(batch, candidates...)

	df := make(map[string]int)
	for _, doc := range batch {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(batch))
	idf := func(term string) float64 {
		return math.Log(1 + n/float64(df[term]))
	}

	queryVec := weigh(query, idf)
	for i, cand := range candidates {
		out[i] = cosine(queryVec, weigh(cand, idf))
	}
	return out
}

// Rank scores every candidate against the query and returns the candidates'
// input indices ordered by descending score. Exact ties keep input order.
func Rank(query corpus.Document, candidates []corpus.Document) []Ranked {
	scores := Scores(query, candidates)
	out := make([]Ranked, len(scores))
	for i, s := range scores {
		out[i] = Ranked{Index: i, Score: s}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// weigh builds the TF-IDF vector for a document.
func weigh(doc corpus.Document, idf func(string) float64) map[string]float64 {
	if len(doc) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(doc))
	for _, term := range doc {
		tf[term]++
	}
	for term, count := range tf {
		tf[term] = count * idf(term)
	}
	return tf
}

// cosine computes the cosine similarity of two sparse vectors. All weights
// are non-negative, so the result lands in [0,1]; a zero vector on either
// side yields 0.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim > 1 {
		sim = 1
	}
	return sim
}
