package subject

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core"
)

// Mocks for this package's tests and for the API/CLI test suites.

type StoreMock struct {
	Subjects []Subject
	Mode     ScheduleMode

	LoadErr     error
	LoadModeErr error
	SaveErr     error
	SaveModeErr error

	SaveCount int
}

var _ Store = (*StoreMock)(nil)

func (st *StoreMock) LoadSubjects() ([]Subject, error) {
	if st.LoadErr != nil {
		return nil, st.LoadErr
	}
	subs := make([]Subject, len(st.Subjects))
	copy(subs, st.Subjects)
	return subs, nil
}

func (st *StoreMock) SaveSubjects(subjects []Subject) error {
	if st.SaveErr != nil {
		return st.SaveErr
	}
	st.Subjects = make([]Subject, len(subjects))
	copy(st.Subjects, subjects)
	st.SaveCount++
	return nil
}

func (st *StoreMock) LoadMode() (ScheduleMode, error) {
	if st.LoadModeErr != nil {
		return "", st.LoadModeErr
	}
	if st.Mode == "" {
		return ModeNormal, nil
	}
	return st.Mode, nil
}

func (st *StoreMock) SaveMode(mode ScheduleMode) error {
	if st.SaveModeErr != nil {
		return st.SaveModeErr
	}
	st.Mode = mode
	return nil
}

type VaultMock struct {
	Folders map[string]bool
	Files   map[string]string

	CreateFolderCalls []string
	DeletedFolders    []string
	OpenedFiles       []string

	FailCreateFolder bool
	FailRenameFolder bool
	FailDeleteFolder bool
	FailOpenFile     bool
}

var (
	_ core.Vault  = (*VaultMock)(nil)
	_ core.Opener = (*VaultMock)(nil)

	errVaultDown = errors.New("vault is down")
)

func NewVaultMock() *VaultMock {
	return &VaultMock{
		Folders: make(map[string]bool),
		Files:   make(map[string]string),
	}
}

func (v *VaultMock) CreateFolder(path string) error {
	v.CreateFolderCalls = append(v.CreateFolderCalls, path)
	if v.FailCreateFolder {
		return core.NewStorageError("create folder", path, errVaultDown)
	}
	if v.Folders[path] {
		return core.NewStorageError("create folder", path, errors.New("folder exists"))
	}
	v.Folders[path] = true
	return nil
}

func (v *VaultMock) RenameFolder(oldPath, newPath string) error {
	if v.FailRenameFolder {
		return core.NewStorageError("rename folder", oldPath, errVaultDown)
	}
	if !v.Folders[oldPath] {
		return core.NewStorageError("rename folder", oldPath, errors.New("no such folder"))
	}
	delete(v.Folders, oldPath)
	v.Folders[newPath] = true
	for path, text := range v.Files {
		if strings.HasPrefix(path, oldPath+"/") {
			delete(v.Files, path)
			v.Files[newPath+strings.TrimPrefix(path, oldPath)] = text
		}
	}
	return nil
}

func (v *VaultMock) DeleteFolder(path string, recursive bool) error {
	if v.FailDeleteFolder {
		return core.NewStorageError("delete folder", path, errVaultDown)
	}
	if !v.Folders[path] {
		return core.NewStorageError("delete folder", path, errors.New("no such folder"))
	}
	delete(v.Folders, path)
	if recursive {
		for filePath := range v.Files {
			if strings.HasPrefix(filePath, path+"/") {
				delete(v.Files, filePath)
			}
		}
	}
	v.DeletedFolders = append(v.DeletedFolders, path)
	return nil
}

func (v *VaultMock) ReadFile(path string) (string, error) {
	text, ok := v.Files[path]
	if !ok {
		return "", core.NewStorageError("read", path, errors.New("no such file"))
	}
	return text, nil
}

func (v *VaultMock) WriteFile(path, text string) error {
	v.Files[path] = text
	return nil
}

func (v *VaultMock) CreateFile(path, text string) error {
	if _, ok := v.Files[path]; ok {
		return core.NewStorageError("create", path, errors.New("file exists"))
	}
	v.Files[path] = text
	return nil
}

func (v *VaultMock) ListTopLevelFolders() ([]string, error) {
	folders := make([]string, 0, len(v.Folders))
	for folder := range v.Folders {
		if !strings.Contains(folder, "/") {
			folders = append(folders, folder)
		}
	}
	sort.Strings(folders)
	return folders, nil
}

func (v *VaultMock) ListFiles(folder string) ([]string, error) {
	names := make([]string, 0)
	for path := range v.Files {
		if strings.HasPrefix(path, folder+"/") {
			name := strings.TrimPrefix(path, folder+"/")
			if !strings.Contains(name, "/") {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func (v *VaultMock) FindByPath(path string) (*core.Entry, error) {
	if v.Folders[path] {
		return &core.Entry{Path: path, IsFolder: true}, nil
	}
	if _, ok := v.Files[path]; ok {
		return &core.Entry{Path: path}, nil
	}
	return nil, nil
}

func (v *VaultMock) OpenFile(path string) error {
	if v.FailOpenFile {
		return core.NewStorageError("open", path, errVaultDown)
	}
	v.OpenedFiles = append(v.OpenedFiles, path)
	return nil
}

type NotifierMock struct {
	Messages []string
}

var _ core.Notifier = (*NotifierMock)(nil)

func (n *NotifierMock) Notify(msg string) {
	n.Messages = append(n.Messages, msg)
}

type nopLogger struct{}

var _ core.Logger = (*nopLogger)(nil)

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// NewServiceMock wires a Service over the provided mocks with a test Config.
func NewServiceMock(store Store, vault core.Vault, notifier core.Notifier) *Service {
	conf := &core.Config{
		AppName:      "Jadwali",
		TestMode:     true,
		TemplatesDir: "Templates",
	}
	return NewService(conf, store, vault, notifier, nopLogger{})
}
