package fsvault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/trezcool/jadwali/core"
)

// Vault implements core.Vault over a directory tree rooted at conf.VaultRoot.
// Entry paths are slash-separated and relative to the root.
type Vault struct {
	root string
}

var _ core.Vault = (*Vault)(nil)

func NewVault(conf *core.Config) *Vault {
	return &Vault{root: conf.VaultRoot}
}

func (v *Vault) abs(path string) string {
	return filepath.Join(v.root, filepath.FromSlash(path))
}

func (v *Vault) CreateFolder(path string) error {
	if err := os.Mkdir(v.abs(path), 0755); err != nil {
		return core.NewStorageError("create folder", path, err)
	}
	return nil
}

func (v *Vault) RenameFolder(oldPath, newPath string) error {
	if err := os.Rename(v.abs(oldPath), v.abs(newPath)); err != nil {
		return core.NewStorageError("rename folder", oldPath, err)
	}
	return nil
}

func (v *Vault) DeleteFolder(path string, recursive bool) error {
	abs := v.abs(path)
	if _, err := os.Stat(abs); err != nil {
		return core.NewStorageError("delete folder", path, err)
	}
	var err error
	if recursive {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return core.NewStorageError("delete folder", path, err)
	}
	return nil
}

func (v *Vault) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(v.abs(path))
	if err != nil {
		return "", core.NewStorageError("read", path, err)
	}
	return string(data), nil
}

func (v *Vault) WriteFile(path, text string) error {
	if err := os.WriteFile(v.abs(path), []byte(text), 0644); err != nil {
		return core.NewStorageError("write", path, err)
	}
	return nil
}

func (v *Vault) CreateFile(path, text string) error {
	f, err := os.OpenFile(v.abs(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return core.NewStorageError("create", path, err)
	}
	defer f.Close()
	if _, err = f.WriteString(text); err != nil {
		return core.NewStorageError("create", path, err)
	}
	return nil
}

func (v *Vault) ListTopLevelFolders() ([]string, error) {
	entries, err := os.ReadDir(v.root)
	if err != nil {
		return nil, core.NewStorageError("list", ".", err)
	}
	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}

func (v *Vault) ListFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(v.abs(folder))
	if err != nil {
		return nil, core.NewStorageError("list", folder, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (v *Vault) FindByPath(path string) (*core.Entry, error) {
	fi, err := os.Stat(v.abs(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, core.NewStorageError("stat", path, err)
	}
	return &core.Entry{Path: path, IsFolder: fi.IsDir()}, nil
}
