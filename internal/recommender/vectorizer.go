package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokens = secuencias de 2+ caracteres de palabra, en minúsculas
var tokenRe = regexp.MustCompile(`\w\w+`)

// vectorizer es el espacio TF-IDF entrenado sobre el corpus: vocabulario
// con índice estable (orden alfabético) e idf suavizado por término.
// Una vez entrenado es inmutable.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// fitVectorizer construye vocabulario e idf a partir de los documentos.
// idf(t) = ln((1+N)/(1+df(t))) + 1 (suavizado estándar).
func fitVectorizer(docs []string) *vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1.0
	}
	return v
}

// transform proyecta un texto al espacio ya entrenado. Términos fuera
// del vocabulario se ignoran (peso cero); NUNCA re-ajusta el vocabulario.
// El vector resultante queda normalizado L2.
func (v *vectorizer) transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dot asume vectores ya normalizados, así que esto ES la similitud coseno.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
