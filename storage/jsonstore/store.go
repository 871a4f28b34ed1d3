package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core"
	"github.com/trezcool/jadwali/core/subject"
)

const (
	subjectsFile = "subjects.json"
	modeFile     = "schedule-mode.json"
)

// Store persists the registry as pretty-printed JSON documents under
// conf.DataDir so they stay hand-editable.
type Store struct {
	dataDir string
}

var _ subject.Store = (*Store)(nil)

func NewStore(conf *core.Config) *Store {
	return &Store{dataDir: conf.DataDir}
}

func (s *Store) subjectsPath() string { return filepath.Join(s.dataDir, subjectsFile) }
func (s *Store) modePath() string     { return filepath.Join(s.dataDir, modeFile) }

// LoadSubjects returns nil (and no error) when the document does not exist yet.
func (s *Store) LoadSubjects() ([]subject.Subject, error) {
	path := s.subjectsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, core.NewStorageError("read", path, err)
	}
	var subs []subject.Subject
	if err = json.Unmarshal(data, &subs); err != nil {
		return nil, core.NewParseError(path, err)
	}
	return subs, nil
}

func (s *Store) SaveSubjects(subjects []subject.Subject) error {
	if subjects == nil {
		subjects = []subject.Subject{} // persist [], not null
	}
	data, err := json.MarshalIndent(subjects, "", "  ")
	if err != nil {
		return core.NewStorageError("encode", subjectsFile, err)
	}
	return s.write(s.subjectsPath(), data)
}

type modeDoc struct {
	ScheduleMode subject.ScheduleMode `json:"scheduleMode"`
}

// LoadMode defaults to the normal mode when the document does not exist yet.
func (s *Store) LoadMode() (subject.ScheduleMode, error) {
	path := s.modePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return subject.ModeNormal, nil
		}
		return "", core.NewStorageError("read", path, err)
	}
	var doc modeDoc
	if err = json.Unmarshal(data, &doc); err != nil {
		return "", core.NewParseError(path, err)
	}
	if !doc.ScheduleMode.Valid() {
		return "", core.NewParseError(path, errors.Errorf("unknown schedule mode %q", doc.ScheduleMode))
	}
	return doc.ScheduleMode, nil
}

func (s *Store) SaveMode(mode subject.ScheduleMode) error {
	data, err := json.MarshalIndent(modeDoc{mode}, "", "  ")
	if err != nil {
		return core.NewStorageError("encode", modeFile, err)
	}
	return s.write(s.modePath(), data)
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.NewStorageError("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return core.NewStorageError("write", path, err)
	}
	return nil
}
