package subject

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core"
)

var (
	// errors
	ErrNotFound          = errors.New("subject not found")
	ErrFolderNameExists  = errors.New("a subject with this folder name already exists")
	ErrExceptionNotFound = errors.New("exception not found")
	ErrTemplateNotFound  = errors.New("template not found")

	nowFunc = time.Now // mockable
)

type (
	// Store persists the registry and the schedule mode, rewritten wholesale
	// on every save.
	Store interface {
		LoadSubjects() ([]Subject, error)
		SaveSubjects(subjects []Subject) error
		LoadMode() (ScheduleMode, error)
		SaveMode(mode ScheduleMode) error
	}

	// Service owns the in-memory registry and every operation over it.
	// Callers are expected to serialize mutating calls; the service holds no
	// lock of its own.
	Service struct {
		conf     *core.Config
		store    Store
		vault    core.Vault
		notifier core.Notifier
		logger   core.Logger

		subjects []Subject
		mode     ScheduleMode
	}
)

func NewService(conf *core.Config, store Store, vault core.Vault, notifier core.Notifier, logger core.Logger) *Service {
	svc := &Service{
		conf:     conf,
		store:    store,
		vault:    vault,
		notifier: notifier,
		logger:   logger,
		mode:     ModeNormal,
	}
	svc.Load()
	return svc
}

// Load pulls the registry and schedule mode from the Store and normalizes
// legacy shapes. A missing or corrupt source resets to an empty registry and
// Normal mode; that failure is recovered here and never surfaced.
func (svc *Service) Load() {
	subs, err := svc.store.LoadSubjects()
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("loading subjects: %v; starting with an empty registry", err))
		subs = nil
	}
	if subs == nil {
		subs = make([]Subject, 0)
	}
	for i := range subs {
		subs[i].normalize()
	}
	svc.subjects = subs

	mode, err := svc.store.LoadMode()
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("loading schedule mode: %v; defaulting to %s", err, ModeNormal))
		mode = ModeNormal
	}
	if !mode.Valid() {
		mode = ModeNormal
	}
	svc.mode = mode
}

// Save rewrites the whole registry through the Store.
func (svc *Service) Save() error {
	if err := svc.store.SaveSubjects(svc.subjects); err != nil {
		return errors.Wrap(err, "saving subjects")
	}
	return nil
}

func (svc *Service) find(folderName string) int {
	for i := range svc.subjects {
		if svc.subjects[i].FolderName == folderName {
			return i
		}
	}
	return -1
}

// All returns a copy of the registry in storage order.
func (svc *Service) All() []Subject {
	subs := make([]Subject, len(svc.subjects))
	copy(subs, svc.subjects)
	return subs
}

func (svc *Service) Get(folderName string) (Subject, error) {
	if i := svc.find(folderName); i >= 0 {
		return svc.subjects[i], nil
	}
	return Subject{}, ErrNotFound
}

// Create validates ns, creates the subject's vault folder and only then
// appends and persists the record: a failed vault call leaves the registry
// untouched.
func (svc *Service) Create(ns NewSubject) (Subject, error) {
	if err := ns.Validate(); err != nil {
		return Subject{}, err
	}

	folderName := MakeFolderName(ns.Number, ns.Name)
	if svc.find(folderName) >= 0 {
		return Subject{}, core.NewValidationError(
			ErrFolderNameExists, core.FieldError{Field: "name", Error: ErrFolderNameExists.Error()})
	}
	if err := svc.vault.CreateFolder(folderName); err != nil {
		return Subject{}, errors.Wrap(err, "creating subject folder")
	}

	sub := Subject{
		Number:      ns.Number,
		Name:        ns.Name,
		FolderName:  folderName,
		Teacher:     ns.Teacher,
		Module:      ns.Module,
		Room:        ns.Room,
		DayNormal:   ns.DayNormal,
		TimeNormal:  ns.TimeNormal,
		DayRamadan:  ns.DayRamadan,
		TimeRamadan: ns.TimeRamadan,
		DateCreated: nowFunc().UTC(),
	}
	svc.subjects = append(svc.subjects, sub)
	if err := svc.Save(); err != nil {
		return Subject{}, err
	}

	svc.notifier.Notify(fmt.Sprintf("Subject %q created", folderName))
	return sub, nil
}

// Edit replaces the record identified by its previous folderName. The vault
// rename precedes the in-memory update; a failed rename aborts the edit. A
// record that vanished since the caller loaded it is a logged no-op. The
// exception list (with re-pointed back-refs) and DateCreated survive the edit.
func (svc *Service) Edit(folderName string, us UpdateSubject) (Subject, error) {
	if err := us.Validate(); err != nil {
		return Subject{}, err
	}

	newFolder := MakeFolderName(us.Number, us.Name)
	if newFolder != folderName {
		if svc.find(newFolder) >= 0 {
			return Subject{}, core.NewValidationError(
				ErrFolderNameExists, core.FieldError{Field: "name", Error: ErrFolderNameExists.Error()})
		}
		if err := svc.vault.RenameFolder(folderName, newFolder); err != nil {
			return Subject{}, errors.Wrap(err, "renaming subject folder")
		}
	}

	i := svc.find(folderName)
	if i < 0 {
		svc.logger.Warn(fmt.Sprintf("edit: subject %q no longer in registry; skipping", folderName))
		return Subject{}, nil
	}
	sub := &svc.subjects[i]
	sub.Number = us.Number
	sub.Name = us.Name
	sub.FolderName = newFolder
	sub.Teacher = us.Teacher
	sub.Module = us.Module
	sub.Room = us.Room
	sub.DayNormal = us.DayNormal
	sub.TimeNormal = us.TimeNormal
	sub.DayRamadan = us.DayRamadan
	sub.TimeRamadan = us.TimeRamadan
	for j := range sub.Exceptions {
		sub.Exceptions[j].SubjectFolder = newFolder
	}

	if err := svc.Save(); err != nil {
		return Subject{}, err
	}
	svc.notifier.Notify(fmt.Sprintf("Subject %q updated", newFolder))
	return *sub, nil
}

// Delete removes the subject's vault folder (a folder already gone externally
// counts as deleted) and then the matching record.
func (svc *Service) Delete(folderName string) error {
	entry, err := svc.vault.FindByPath(folderName)
	if err != nil {
		return errors.Wrap(err, "checking subject folder")
	}
	if entry != nil {
		if err := svc.vault.DeleteFolder(folderName, true); err != nil {
			return errors.Wrap(err, "deleting subject folder")
		}
	}

	if i := svc.find(folderName); i >= 0 {
		svc.subjects = append(svc.subjects[:i], svc.subjects[i+1:]...)
	}
	if err := svc.Save(); err != nil {
		return err
	}

	svc.notifier.Notify(fmt.Sprintf("Subject %q deleted", folderName))
	return nil
}

func (svc *Service) distinct(get func(Subject) string) []string {
	seen := make(map[string]bool, len(svc.subjects))
	vals := make([]string, 0, len(svc.subjects))
	for _, sub := range svc.subjects {
		if v := get(sub); v != "" && !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	return vals
}

// Derived queries; distinct non-empty values in first-seen order.

func (svc *Service) Teachers() []string {
	return svc.distinct(func(s Subject) string { return s.Teacher })
}

func (svc *Service) Modules() []string {
	return svc.distinct(func(s Subject) string { return s.Module })
}

func (svc *Service) Rooms() []string {
	return svc.distinct(func(s Subject) string { return s.Room })
}

func (svc *Service) Times(mode ScheduleMode) []string {
	return svc.distinct(func(s Subject) string { return s.Time(mode) })
}

func (svc *Service) Mode() ScheduleMode {
	return svc.mode
}

// ToggleMode flips the schedule mode and persists it. The in-memory flag only
// changes once the mode store accepted the new value.
func (svc *Service) ToggleMode() (ScheduleMode, error) {
	next := svc.mode.Toggle()
	if err := svc.store.SaveMode(next); err != nil {
		return svc.mode, errors.Wrap(err, "saving schedule mode")
	}
	svc.mode = next
	svc.notifier.Notify(fmt.Sprintf("Schedule mode set to %s", next))
	return next, nil
}
