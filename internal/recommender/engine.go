package recommender

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
)

const (
	DefaultTopK     = 5
	DefaultMinScore = 0.0
)

// ErrNotInitialized: se llamó a Recommend/ListAll antes del primer Build.
var ErrNotInitialized = errors.New("modelo de recomendación no inicializado")

// model es un snapshot inmutable: corpus + espacio vectorial + matriz.
// Un reload construye un model nuevo y lo swapea entero; las lecturas
// en vuelo siguen viendo el snapshot anterior, nunca un estado a medias.
type model struct {
	items  []models.Item
	vec    *vectorizer
	matrix [][]float64
}

// Engine es el servicio de recomendación content-based. Se construye
// una vez al arranque; Recommend y ListAll son lecturas puras en
// memoria y pueden correr en paralelo sin locks.
type Engine struct {
	sources  []Source
	topK     int
	minScore float64
	current  atomic.Pointer[model]
}

func NewEngine(sources []Source, topK int, minScore float64) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{
		sources:  sources,
		topK:     topK,
		minScore: minScore,
	}
}

// Build carga el corpus y entrena el espacio TF-IDF sobre el soup de
// cada ítem. Sirve también como reload: el modelo nuevo reemplaza al
// anterior con un único store atómico.
func (e *Engine) Build(ctx context.Context) error {
	corpus := LoadCorpus(ctx, e.sources)

	docs := make([]string, len(corpus.Items))
	for i, it := range corpus.Items {
		docs[i] = it.Soup()
	}

	vec := fitVectorizer(docs)
	matrix := make([][]float64, len(docs))
	for i, d := range docs {
		matrix[i] = vec.transform(d)
	}

	e.current.Store(&model{
		items:  corpus.Items,
		vec:    vec,
		matrix: matrix,
	})

	log.Printf("[recommender] modelo entrenado con %d espacios (%d términos)",
		len(corpus.Items), len(vec.idf))
	return nil
}

// Ready indica si ya hay un modelo construido.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

// Recommend proyecta el perfil al espacio entrenado y devuelve hasta
// topK ítems ordenados por similitud descendente. Primero se trunca a
// topK y después se descartan los scores <= minScore dentro de esa
// ventana, manteniendo el comportamiento del servicio original.
// Lista vacía es un resultado válido, no un error.
func (e *Engine) Recommend(p models.Profile) ([]models.RecItem, error) {
	m := e.current.Load()
	if m == nil {
		return nil, ErrNotInitialized
	}

	query := p.Year + " " + strings.Join(p.Classes, " ") + " " + p.Interests
	qvec := m.vec.transform(query)

	sims := make([]float64, len(m.matrix))
	for i, row := range m.matrix {
		sims[i] = dot(qvec, row)
	}

	// orden estable: a igual score gana el que va antes en el corpus
	idx := make([]int, len(sims))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return sims[idx[a]] > sims[idx[b]] })

	top := idx
	if len(top) > e.topK {
		top = top[:e.topK]
	}

	results := make([]models.RecItem, 0, len(top))
	for _, i := range top {
		score := sims[i]
		if score <= e.minScore {
			continue
		}
		it := m.items[i]
		results = append(results, models.RecItem{
			ID:          it.ID,
			Name:        it.Name,
			Category:    it.Category,
			Contact:     it.Contact,
			Description: it.Description,
			MatchScore:  math.Round(score*100) / 100,
		})
	}
	return results, nil
}

// ListAll devuelve el corpus tal cual (todas las filas, orden original,
// sin ranking). El soup no se expone.
func (e *Engine) ListAll() ([]models.Item, error) {
	m := e.current.Load()
	if m == nil {
		return nil, ErrNotInitialized
	}
	return m.items, nil
}
