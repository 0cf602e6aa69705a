package recommender

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCorpusMergeOrder(t *testing.T) {
	dir := t.TempDir()
	clubs := writeCSV(t, dir, "clubs.csv",
		"id,name,category,contact,description\n"+
			"1,Robotics Club,Tech,rob@campus.edu,Building robots.\n"+
			"2,Dance Club,Arts,dance@campus.edu,Ballroom dancing.\n")
	events := writeCSV(t, dir, "events.csv",
		"id,name,category,description\n"+
			"10,Hack Night,Tech,Weekly hacking session.\n")

	c := LoadCorpus(context.Background(), []Source{
		CSVSource{Path: clubs},
		CSVSource{Path: events},
	})

	if len(c.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(c.Items))
	}
	wantIDs := []int{1, 2, 10}
	for i, id := range wantIDs {
		if c.Items[i].ID != id {
			t.Errorf("items[%d].ID = %d, want %d (orden fuente→fila)", i, c.Items[i].ID, id)
		}
	}
	if c.Counts["clubs.csv"] != 2 || c.Counts["events.csv"] != 1 {
		t.Errorf("counts = %v, want clubs.csv:2 events.csv:1", c.Counts)
	}
}

func TestLoadCorpusSynthesizesMissingContact(t *testing.T) {
	dir := t.TempDir()
	events := writeCSV(t, dir, "events.csv",
		"id,name,category,description\n"+
			"10,Hack Night,Tech,Weekly hacking session.\n")

	c := LoadCorpus(context.Background(), []Source{CSVSource{Path: events}})

	if len(c.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(c.Items))
	}
	if c.Items[0].Contact != "" {
		t.Errorf("Contact = %q, want cadena vacía", c.Items[0].Contact)
	}
}

func TestLoadCorpusSkipsMissingSource(t *testing.T) {
	dir := t.TempDir()
	clubs := writeCSV(t, dir, "clubs.csv",
		"id,name\n1,Robotics Club\n")

	c := LoadCorpus(context.Background(), []Source{
		CSVSource{Path: filepath.Join(dir, "no-existe.csv")},
		CSVSource{Path: clubs},
	})

	if len(c.Items) != 1 || c.Items[0].ID != 1 {
		t.Fatalf("items = %+v, want solo la fila del CSV legible", c.Items)
	}
	if _, ok := c.Counts["no-existe.csv"]; ok {
		t.Error("la fuente ausente no debería aparecer en los conteos")
	}
}

func TestLoadCorpusFallbackPlaceholder(t *testing.T) {
	dir := t.TempDir()

	c := LoadCorpus(context.Background(), []Source{
		CSVSource{Path: filepath.Join(dir, "clubs.csv")},
		CSVSource{Path: filepath.Join(dir, "events.csv")},
	})

	if len(c.Items) != 1 {
		t.Fatalf("items = %d, want 1 (placeholder)", len(c.Items))
	}
	got := c.Items[0]
	if got.ID != 1 || got.Name != "Test Club" || got.Category != "Test" || got.Description != "Test" {
		t.Errorf("placeholder = %+v", got)
	}
}

func TestCSVSourceToleratesFilasRotas(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "clubs.csv",
		"id,name,category,contact,description\n"+
			"1,Robotics Club,Tech,rob@campus.edu,Building robots.\n"+
			"abc,Sin ID,Tech,,\n"+ // id no numérico: se salta
			"3,Chess Club\n") // fila corta: columnas faltantes = ""

	items, err := CSVSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[1].ID != 3 || items[1].Name != "Chess Club" {
		t.Errorf("items[1] = %+v", items[1])
	}
	if items[1].Category != "" || items[1].Contact != "" || items[1].Description != "" {
		t.Errorf("los campos faltantes deben quedar en \"\": %+v", items[1])
	}
}

func TestLoadCorpusKeepsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "clubs.csv", "id,name\n1,Robotics Club\n")
	b := writeCSV(t, dir, "groups.csv", "id,name\n1,Study Group\n")

	c := LoadCorpus(context.Background(), []Source{
		CSVSource{Path: a},
		CSVSource{Path: b},
	})

	// ids duplicados entre fuentes NO se deduplican
	if len(c.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(c.Items))
	}
	if c.Items[0].Name != "Robotics Club" || c.Items[1].Name != "Study Group" {
		t.Errorf("items = %+v", c.Items)
	}
}
