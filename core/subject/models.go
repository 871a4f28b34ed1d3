package subject

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/jadwali/core"
)

// ScheduleMode selects which day/time field pair is authoritative.
type ScheduleMode string

const (
	ModeNormal  ScheduleMode = "Normal"
	ModeRamadan ScheduleMode = "Ramadan"
)

func (m ScheduleMode) Valid() bool {
	return m == ModeNormal || m == ModeRamadan
}

func (m ScheduleMode) Toggle() ScheduleMode {
	if m == ModeRamadan {
		return ModeNormal
	}
	return ModeRamadan
}

// Weekdays are the scheduled weekdays, in week order. Sunday is not schedulable.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// MakeFolderName derives a subject's unique folder name.
func MakeFolderName(number, name string) string {
	return number + "-" + name
}

type (
	// Subject is a recurring weekly class/course slot. Its FolderName doubles
	// as its identity and always mirrors the vault folder holding its notes.
	Subject struct {
		Number      string      `json:"number"`
		Name        string      `json:"name"`
		FolderName  string      `json:"folderName"`
		Teacher     string      `json:"teacher"`
		Module      string      `json:"module"`
		Room        string      `json:"room"`
		DayNormal   string      `json:"dayNormal"`
		TimeNormal  string      `json:"timeNormal"`
		DayRamadan  string      `json:"dayRamadan"`
		TimeRamadan string      `json:"timeRamadan"`
		DateCreated time.Time   `json:"dateCreated"` // UTC; set once at creation
		Exceptions  []Exception `json:"exceptions,omitempty"`

		// legacy single-slot shape found in old data files;
		// folded into the dual shape by normalize() at load time
		LegacyDay  string `json:"day,omitempty"`
		LegacyTime string `json:"time,omitempty"`
	}

	// Exception is a one-off override of a subject's weekly slot for a
	// specific calendar date. Its ID is the stable identity; list positions
	// shift on deletion.
	Exception struct {
		ID            string `json:"id"`
		Date          string `json:"date"` // YYYY-MM-DD; sorts lexicographically
		Day           string `json:"day"`
		Time          string `json:"time"`
		SubjectFolder string `json:"subjectFolder"`
	}
)

// Day returns the weekday the subject meets on under mode.
func (s *Subject) Day(mode ScheduleMode) string {
	if mode == ModeRamadan {
		return s.DayRamadan
	}
	return s.DayNormal
}

// Time returns the (opaque) time slot the subject meets at under mode.
func (s *Subject) Time(mode ScheduleMode) string {
	if mode == ModeRamadan {
		return s.TimeRamadan
	}
	return s.TimeNormal
}

// normalize folds the legacy day/time shape into the dual-field shape,
// backfills exception IDs and re-points exception back-refs. Downstream code
// only ever sees the dual shape.
func (s *Subject) normalize() {
	if s.DayNormal == "" && s.LegacyDay != "" {
		s.DayNormal = s.LegacyDay
	}
	if s.TimeNormal == "" && s.LegacyTime != "" {
		s.TimeNormal = s.LegacyTime
	}
	s.LegacyDay, s.LegacyTime = "", ""

	for i := range s.Exceptions {
		if s.Exceptions[i].ID == "" {
			s.Exceptions[i].ID = uuid.New().String()
		}
		s.Exceptions[i].SubjectFolder = s.FolderName
	}
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Number      string `json:"number" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Teacher     string `json:"teacher"`
	Module      string `json:"module"`
	Room        string `json:"room"`
	DayNormal   string `json:"dayNormal" validate:"omitempty,weekday"`
	TimeNormal  string `json:"timeNormal"`
	DayRamadan  string `json:"dayRamadan" validate:"omitempty,weekday"`
	TimeRamadan string `json:"timeRamadan"`
}

func (ns *NewSubject) Validate() error {
	ns.Number = core.CleanString(ns.Number)
	ns.Name = core.CleanString(ns.Name)
	ns.Teacher = core.CleanString(ns.Teacher)
	ns.Module = core.CleanString(ns.Module)
	ns.Room = core.CleanString(ns.Room)
	return core.Validate.Struct(ns)
}

// UpdateSubject defines what information may be provided to modify an existing
// Subject. Edits are wholesale; the exception list and creation date are
// preserved by the service.
type UpdateSubject struct {
	Number      string `json:"number" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Teacher     string `json:"teacher"`
	Module      string `json:"module"`
	Room        string `json:"room"`
	DayNormal   string `json:"dayNormal" validate:"omitempty,weekday"`
	TimeNormal  string `json:"timeNormal"`
	DayRamadan  string `json:"dayRamadan" validate:"omitempty,weekday"`
	TimeRamadan string `json:"timeRamadan"`
}

func (us *UpdateSubject) Validate() error {
	us.Number = core.CleanString(us.Number)
	us.Name = core.CleanString(us.Name)
	us.Teacher = core.CleanString(us.Teacher)
	us.Module = core.CleanString(us.Module)
	us.Room = core.CleanString(us.Room)
	return core.Validate.Struct(us)
}

// NewException contains information needed to add or replace an Exception.
type NewException struct {
	Date string `json:"date" validate:"required,isodate"`
	Day  string `json:"day" validate:"required,weekday"`
	Time string `json:"time" validate:"required"`
}

func (ne *NewException) Validate() error {
	ne.Date = core.CleanString(ne.Date)
	ne.Day = core.CleanString(ne.Day)
	ne.Time = core.CleanString(ne.Time)
	return core.Validate.Struct(ne)
}
