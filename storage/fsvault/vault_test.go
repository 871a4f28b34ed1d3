package fsvault

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/trezcool/jadwali/core"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	return NewVault(&core.Config{VaultRoot: t.TempDir()})
}

func TestVault_CreateFolder(t *testing.T) {
	vault := newTestVault(t)

	if err := vault.CreateFolder("01-Biology"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	fi, err := os.Stat(filepath.Join(vault.root, "01-Biology"))
	if err != nil || !fi.IsDir() {
		t.Fatalf("folder not created: %v", err)
	}

	// a second attempt must fail, never silently reuse the folder
	if err = vault.CreateFolder("01-Biology"); !core.IsStorageError(err) {
		t.Errorf("duplicate create: err = %v; want a *core.StorageError", err)
	}
}

func TestVault_RenameFolder(t *testing.T) {
	vault := newTestVault(t)
	if err := vault.CreateFolder("01-Biology"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	if err := vault.WriteFile("01-Biology/note.md", "body"); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	if err := vault.RenameFolder("01-Biology", "02-Biology"); err != nil {
		t.Fatalf("RenameFolder(): %v", err)
	}
	text, err := vault.ReadFile("02-Biology/note.md")
	if err != nil || text != "body" {
		t.Errorf("contents did not move with the folder: %q, %v", text, err)
	}
	if entry, _ := vault.FindByPath("01-Biology"); entry != nil {
		t.Error("old folder still present after rename")
	}

	if err = vault.RenameFolder("99-Ghost", "98-Ghost"); !core.IsStorageError(err) {
		t.Errorf("renaming a missing folder: err = %v; want a *core.StorageError", err)
	}
}

func TestVault_DeleteFolder(t *testing.T) {
	vault := newTestVault(t)
	if err := vault.CreateFolder("01-Biology"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	if err := vault.WriteFile("01-Biology/note.md", "body"); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	// non-recursive refuses a non-empty folder
	if err := vault.DeleteFolder("01-Biology", false); !core.IsStorageError(err) {
		t.Errorf("non-recursive delete of non-empty folder: err = %v; want a *core.StorageError", err)
	}

	if err := vault.DeleteFolder("01-Biology", true); err != nil {
		t.Fatalf("DeleteFolder(recursive): %v", err)
	}
	if entry, _ := vault.FindByPath("01-Biology"); entry != nil {
		t.Error("folder still present after recursive delete")
	}

	if err := vault.DeleteFolder("01-Biology", true); !core.IsStorageError(err) {
		t.Errorf("deleting a missing folder: err = %v; want a *core.StorageError", err)
	}
}

func TestVault_CreateFile(t *testing.T) {
	vault := newTestVault(t)
	if err := vault.CreateFolder("01-Biology"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}

	if err := vault.CreateFile("01-Biology/note.md", "body"); err != nil {
		t.Fatalf("CreateFile(): %v", err)
	}
	if err := vault.CreateFile("01-Biology/note.md", "other"); !core.IsStorageError(err) {
		t.Errorf("creating over an existing file: err = %v; want a *core.StorageError", err)
	}
	text, err := vault.ReadFile("01-Biology/note.md")
	if err != nil || text != "body" {
		t.Errorf("existing file clobbered: %q, %v", text, err)
	}
}

func TestVault_ListTopLevelFolders(t *testing.T) {
	vault := newTestVault(t)
	for _, folder := range []string{"01-Biology", "Templates", ".obsidian"} {
		if err := vault.CreateFolder(folder); err != nil {
			t.Fatalf("CreateFolder(%s): %v", folder, err)
		}
	}
	if err := vault.WriteFile("stray.md", "x"); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	folders, err := vault.ListTopLevelFolders()
	if err != nil {
		t.Fatalf("ListTopLevelFolders(): %v", err)
	}
	if want := []string{"01-Biology", "Templates"}; !reflect.DeepEqual(folders, want) {
		t.Errorf("folders = %v; want %v (no dot entries, no files)", folders, want)
	}
}

func TestVault_ListFiles(t *testing.T) {
	vault := newTestVault(t)
	if err := vault.CreateFolder("Templates"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	if err := vault.CreateFolder("Templates/drafts"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	for _, name := range []string{"Templates/Class Note.md", "Templates/Exam.md"} {
		if err := vault.WriteFile(name, "x"); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}

	names, err := vault.ListFiles("Templates")
	if err != nil {
		t.Fatalf("ListFiles(): %v", err)
	}
	if want := []string{"Class Note.md", "Exam.md"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v; want %v (basenames, files only)", names, want)
	}
}

func TestVault_FindByPath(t *testing.T) {
	vault := newTestVault(t)
	if err := vault.CreateFolder("01-Biology"); err != nil {
		t.Fatalf("CreateFolder(): %v", err)
	}
	if err := vault.WriteFile("01-Biology/note.md", "x"); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	entry, err := vault.FindByPath("01-Biology")
	if err != nil || entry == nil || !entry.IsFolder {
		t.Errorf("folder entry = %+v, %v", entry, err)
	}
	entry, err = vault.FindByPath("01-Biology/note.md")
	if err != nil || entry == nil || entry.IsFolder {
		t.Errorf("file entry = %+v, %v", entry, err)
	}
	entry, err = vault.FindByPath("99-Ghost")
	if err != nil || entry != nil {
		t.Errorf("missing path: entry = %+v, err = %v; want nil, nil", entry, err)
	}
}
