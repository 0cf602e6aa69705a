package recommender

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Source es una fuente tabular del corpus (CSV o colección de Mongo).
// Cada fuente aporta cero o más ítems ya normalizados.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Item, error)
}

// ErrSourceNotFound marca una fuente ausente. No es fatal: el loader
// la salta y sigue con las demás.
var ErrSourceNotFound = errors.New("fuente de corpus no encontrada")

// Corpus es la tabla única ya mergeada, en orden fuente→fila,
// más el conteo de filas por fuente (solo para logs).
type Corpus struct {
	Items  []models.Item
	Counts map[string]int
}

// Placeholder se usa cuando ninguna fuente aportó filas, para que la
// vectorización siempre tenga al menos un documento.
var Placeholder = models.Item{
	ID:          1,
	Name:        "Test Club",
	Category:    "Test",
	Contact:     "",
	Description: "Test",
}

// LoadCorpus lee todas las fuentes en orden. Una fuente ilegible se
// loguea y se salta; LoadCorpus nunca falla.
func LoadCorpus(ctx context.Context, sources []Source) Corpus {
	c := Corpus{Counts: make(map[string]int)}

	for _, src := range sources {
		items, err := src.Load(ctx)
		if errors.Is(err, ErrSourceNotFound) {
			log.Printf("[corpus] ⚠️  %s no existe, se salta", src.Name())
			continue
		}
		if err != nil {
			log.Printf("[corpus] ❌ error leyendo %s: %v (se salta)", src.Name(), err)
			continue
		}

		c.Items = append(c.Items, items...)
		c.Counts[src.Name()] = len(items)
		log.Printf("[corpus] ✅ %s: %d filas", src.Name(), len(items))
	}

	if len(c.Items) == 0 {
		log.Println("[corpus] ninguna fuente aportó filas, usando placeholder")
		c.Items = []models.Item{Placeholder}
	}

	return c
}

// ======================= Fuente CSV =======================

// CSVSource lee un archivo con cabecera. Solo exige columnas id y name;
// cualquier columna que falte (contact incluido) queda como "".
type CSVSource struct {
	Path string
}

func (s CSVSource) Name() string { return filepath.Base(s.Path) }

func (s CSVSource) Load(_ context.Context) ([]models.Item, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerar filas con menos columnas

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var items []models.Item
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila rota: se salta, no se pierde el resto del archivo
			log.Printf("[corpus] %s: fila inválida: %v", s.Name(), err)
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(cell(row, "id")))
		if err != nil {
			log.Printf("[corpus] %s: id no numérico %q, fila saltada", s.Name(), cell(row, "id"))
			continue
		}

		items = append(items, models.Item{
			ID:          id,
			Name:        cell(row, "name"),
			Category:    cell(row, "category"),
			Contact:     cell(row, "contact"),
			Description: cell(row, "description"),
		})
	}

	return items, nil
}

// ======================= Fuente Mongo =======================

// MongoSource lee una colección completa (clubs importados al API).
type MongoSource struct {
	Col   *mongo.Collection
	Label string
}

func (s MongoSource) Name() string { return s.Label }

func (s MongoSource) Load(ctx context.Context) ([]models.Item, error) {
	if s.Col == nil {
		return nil, ErrSourceNotFound
	}

	cur, err := s.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, cur.Err()
}
