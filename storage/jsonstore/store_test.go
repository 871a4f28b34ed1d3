package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trezcool/jadwali/core"
	"github.com/trezcool/jadwali/core/subject"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(&core.Config{DataDir: t.TempDir()})
}

func TestStore_LoadSubjects_missingDocument(t *testing.T) {
	store := newTestStore(t)

	subs, err := store.LoadSubjects()
	if err != nil {
		t.Fatalf("LoadSubjects(): %v", err)
	}
	if subs != nil {
		t.Errorf("subjects = %v; want nil for a fresh data dir", subs)
	}
}

func TestStore_SaveLoadSubjects(t *testing.T) {
	store := newTestStore(t)
	subs := []subject.Subject{
		{
			Number: "01", Name: "Biology", FolderName: "01-Biology",
			DayNormal: "Monday", TimeNormal: "08:00-10:00",
			Exceptions: []subject.Exception{
				{ID: "abc", Date: "2025-03-15", Day: "Saturday", Time: "10:00-12:00", SubjectFolder: "01-Biology"},
			},
		},
	}

	if err := store.SaveSubjects(subs); err != nil {
		t.Fatalf("SaveSubjects(): %v", err)
	}
	got, err := store.LoadSubjects()
	if err != nil {
		t.Fatalf("LoadSubjects(): %v", err)
	}
	if len(got) != 1 || got[0].FolderName != "01-Biology" || len(got[0].Exceptions) != 1 {
		t.Errorf("round trip mangled the registry: %+v", got)
	}

	// the document must stay hand-editable
	data, err := os.ReadFile(store.subjectsPath())
	if err != nil {
		t.Fatalf("os.ReadFile(): %v", err)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Error("document not pretty-printed")
	}
}

func TestStore_SaveSubjects_nilBecomesEmptyList(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveSubjects(nil); err != nil {
		t.Fatalf("SaveSubjects(nil): %v", err)
	}
	data, err := os.ReadFile(store.subjectsPath())
	if err != nil {
		t.Fatalf("os.ReadFile(): %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("document = %q; want %q", got, "[]")
	}
}

func TestStore_LoadSubjects_corruptDocument(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.subjectsPath(), []byte("{ not json"), 0644); err != nil {
		t.Fatalf("os.WriteFile(): %v", err)
	}

	_, err := store.LoadSubjects()
	if !core.IsParseError(err) {
		t.Errorf("err = %v; want a *core.ParseError", err)
	}
}

func TestStore_LoadMode_missingDocument(t *testing.T) {
	store := newTestStore(t)

	mode, err := store.LoadMode()
	if err != nil {
		t.Fatalf("LoadMode(): %v", err)
	}
	if mode != subject.ModeNormal {
		t.Errorf("mode = %q; want %q", mode, subject.ModeNormal)
	}
}

func TestStore_SaveLoadMode(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveMode(subject.ModeRamadan); err != nil {
		t.Fatalf("SaveMode(): %v", err)
	}
	mode, err := store.LoadMode()
	if err != nil {
		t.Fatalf("LoadMode(): %v", err)
	}
	if mode != subject.ModeRamadan {
		t.Errorf("mode = %q; want %q", mode, subject.ModeRamadan)
	}
}

func TestStore_LoadMode_unknownValue(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.modePath(), []byte(`{"scheduleMode":"Summer"}`), 0644); err != nil {
		t.Fatalf("os.WriteFile(): %v", err)
	}

	_, err := store.LoadMode()
	if !core.IsParseError(err) {
		t.Errorf("err = %v; want a *core.ParseError", err)
	}
}

func TestStore_write_createsDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(&core.Config{DataDir: dataDir})

	if err := store.SaveMode(subject.ModeNormal); err != nil {
		t.Fatalf("SaveMode(): %v", err)
	}
	if _, err := os.Stat(store.modePath()); err != nil {
		t.Errorf("document not created under a fresh data dir: %v", err)
	}
}
