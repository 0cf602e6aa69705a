package recommender

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
)

// sliceSource permite armar corpus en memoria para los tests.
type sliceSource struct {
	name  string
	items []models.Item
}

func (s *sliceSource) Name() string { return s.name }

func (s *sliceSource) Load(_ context.Context) ([]models.Item, error) { return s.items, nil }

func buildEngine(t *testing.T, items []models.Item, topK int, minScore float64) *Engine {
	t.Helper()
	e := NewEngine([]Source{&sliceSource{name: "test", items: items}}, topK, minScore)
	if err := e.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	return e
}

var demoCorpus = []models.Item{
	{ID: 1, Name: "Robotics Club", Category: "Tech", Description: "Building robots."},
	{ID: 2, Name: "Dance Club", Category: "Arts", Description: "Ballroom dancing."},
}

func TestRecommendMatchesInterests(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)

	got, err := e.Recommend(models.Profile{Interests: "robots"})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) == 0 {
		t.Fatal("esperaba al menos una recomendación")
	}
	if got[0].ID != 1 {
		t.Errorf("primer ítem = %d, want 1 (Robotics Club)", got[0].ID)
	}
	if got[0].MatchScore <= 0 {
		t.Errorf("match_score = %v, want > 0", got[0].MatchScore)
	}
	// Dance Club: o no aparece, o queda estrictamente por debajo
	for _, r := range got[1:] {
		if r.ID == 2 && r.MatchScore >= got[0].MatchScore {
			t.Errorf("Dance Club (%v) no debería igualar o superar a Robotics (%v)",
				r.MatchScore, got[0].MatchScore)
		}
	}
}

func TestRecommendEmptyProfile(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)

	got, err := e.Recommend(models.Profile{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("perfil vacío debe dar lista vacía, got %+v", got)
	}
}

func TestRecommendNoOverlapQuery(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)

	// términos fuera del vocabulario: similitud cero en todo, no es error
	got, err := e.Recommend(models.Profile{Interests: "astrofísica cuántica"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("query sin overlap debe dar lista vacía, got %+v", got)
	}
}

func TestRecommendTopKAndMonotonic(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Chess Club", Description: "chess tournaments weekly"},
		{ID: 2, Name: "Chess Society", Description: "chess and strategy"},
		{ID: 3, Name: "Speed Chess", Description: "chess blitz matches"},
		{ID: 4, Name: "Chess Beginners", Description: "learn chess basics"},
		{ID: 5, Name: "Chess Masters", Description: "advanced chess play"},
		{ID: 6, Name: "Chess Cafe", Description: "casual chess meetup"},
		{ID: 7, Name: "Pottery Club", Description: "clay and ceramics"},
	}
	e := buildEngine(t, items, 5, 0.0)

	got, err := e.Recommend(models.Profile{Interests: "chess"})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) > 5 {
		t.Fatalf("len = %d, want <= top_k (5)", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Errorf("ranking no monótono en posición %d: %v > %v",
				i, got[i].MatchScore, got[i-1].MatchScore)
		}
	}
	for _, r := range got {
		if r.MatchScore <= 0 || r.MatchScore > 1.0 {
			t.Errorf("score fuera de rango (0,1]: %v", r.MatchScore)
		}
	}
}

func TestRecommendFiltraScoreCeroDentroDeVentana(t *testing.T) {
	// la ventana de top_k se corta ANTES de filtrar: con top_k = 3 los
	// tres ítems entran a la ventana, pero el de similitud cero se
	// descarta dentro de ella y el resultado queda corto
	items := []models.Item{
		{ID: 1, Name: "Chess Club", Description: "chess"},
		{ID: 2, Name: "Pottery Studio", Description: "clay ceramics"},
		{ID: 3, Name: "Chess Society", Description: "chess"},
	}
	e := buildEngine(t, items, 3, 0.0)

	got, err := e.Recommend(models.Profile{Interests: "chess"})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (pottery fuera aunque entraba en la ventana)", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("ids = [%d %d], want [1 3]", got[0].ID, got[1].ID)
	}
	for _, r := range got {
		if r.ID == 2 {
			t.Errorf("Pottery Studio apareció con score %v, debía filtrarse", r.MatchScore)
		}
	}
}

func TestRecommendMinScoreCorta(t *testing.T) {
	// soup de ID 21 == query: similitud 1.0; Chess Cafe comparte solo
	// "chess" diluido entre más términos y queda muy por debajo de 0.9
	items := []models.Item{
		{ID: 21, Name: "Chess Strategy"},
		{ID: 22, Name: "Chess Cafe", Description: "casual chess meetup coffee snacks"},
	}
	p := models.Profile{Interests: "chess strategy"}

	sinUmbral := buildEngine(t, items, 5, 0.0)
	got, err := sinUmbral.Recommend(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("sin umbral len = %d, want 2", len(got))
	}

	conUmbral := buildEngine(t, items, 5, 0.9)
	got, err = conUmbral.Recommend(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 21 {
		t.Fatalf("con min_score 0.9, got %+v, want solo el ítem 21", got)
	}
	if got[0].MatchScore != 1.0 {
		t.Errorf("match_score = %v, want 1.0", got[0].MatchScore)
	}
}

func TestRecommendIdempotente(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)
	p := models.Profile{Year: "sophomore", Classes: []string{"CS101", "ART200"}, Interests: "robots dancing"}

	a, err := e.Recommend(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Recommend(p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("mismos inputs, distinto resultado:\n%+v\n%+v", a, b)
	}
}

func TestRecommendTieBreakByCorpusOrder(t *testing.T) {
	items := []models.Item{
		{ID: 8, Name: "Surf Club", Description: "surf"},
		{ID: 9, Name: "Surf Society", Description: "surf"},
	}
	e := buildEngine(t, items, 5, 0.0)

	got, err := e.Recommend(models.Profile{Interests: "surf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) < 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// empates: gana el orden original del corpus
	if got[0].ID != 8 || got[1].ID != 9 {
		t.Errorf("orden = [%d %d], want [8 9]", got[0].ID, got[1].ID)
	}
}

func TestNotInitialized(t *testing.T) {
	e := NewEngine(nil, 5, 0.0)

	if _, err := e.Recommend(models.Profile{Interests: "x"}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Recommend err = %v, want ErrNotInitialized", err)
	}
	if _, err := e.ListAll(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ListAll err = %v, want ErrNotInitialized", err)
	}
	if e.Ready() {
		t.Error("Ready() = true antes de Build")
	}
}

func TestListAllVerbatim(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)

	got, err := e.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, demoCorpus) {
		t.Errorf("ListAll = %+v, want corpus sin tocar", got)
	}
}

func TestBuildConFuentesVacias(t *testing.T) {
	// cero fuentes legibles: Build igual funciona con el placeholder
	e := NewEngine(nil, 5, 0.0)
	if err := e.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := e.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != Placeholder.ID || got[0].Name != "Test Club" {
		t.Errorf("ListAll = %+v, want solo el placeholder", got)
	}
}

func TestReloadSwapsModel(t *testing.T) {
	src := &sliceSource{name: "db", items: demoCorpus}
	e := NewEngine([]Source{src}, 5, 0.0)
	if err := e.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	src.items = []models.Item{
		{ID: 42, Name: "Astronomy Club", Category: "Science", Description: "Stargazing nights."},
	}
	if err := e.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := e.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 42 {
		t.Errorf("tras reload, ListAll = %+v, want solo Astronomy Club", got)
	}

	rec, err := e.Recommend(models.Profile{Interests: "stargazing"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec) != 1 || rec[0].ID != 42 {
		t.Errorf("tras reload, Recommend = %+v", rec)
	}
}

func TestMatchScoreRedondeado(t *testing.T) {
	e := buildEngine(t, demoCorpus, 5, 0.0)

	got, err := e.Recommend(models.Profile{Interests: "robots building"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		rounded := float64(int(r.MatchScore*100+0.5)) / 100
		if r.MatchScore != rounded {
			t.Errorf("score %v no está redondeado a 2 decimales", r.MatchScore)
		}
	}
}

func TestVectorizerIgnoraStopwords(t *testing.T) {
	v := fitVectorizer([]string{"the robotics club and the robots", "a dance club"})

	for _, stop := range []string{"the", "and", "a"} {
		if _, ok := v.vocab[stop]; ok {
			t.Errorf("stop word %q no debería estar en el vocabulario", stop)
		}
	}
	if _, ok := v.vocab["robotics"]; !ok {
		t.Error("falta 'robotics' en el vocabulario")
	}
}
