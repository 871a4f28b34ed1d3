package subject

import "testing"

func TestSubject_normalize_legacyShape(t *testing.T) {
	sub := Subject{
		Number:     "01",
		Name:       "Biology",
		FolderName: "01-Biology",
		LegacyDay:  "Monday",
		LegacyTime: "08:00-10:00",
	}
	sub.normalize()

	if sub.DayNormal != "Monday" || sub.TimeNormal != "08:00-10:00" {
		t.Errorf("legacy fields not folded into Normal pair: got (%q, %q)", sub.DayNormal, sub.TimeNormal)
	}
	if sub.LegacyDay != "" || sub.LegacyTime != "" {
		t.Error("legacy fields not cleared")
	}
	if sub.DayRamadan != "" || sub.TimeRamadan != "" {
		t.Error("Ramadan pair must default to empty")
	}
}

func TestSubject_normalize_dualShapeWins(t *testing.T) {
	sub := Subject{
		DayNormal:  "Tuesday",
		TimeNormal: "10:00-12:00",
		LegacyDay:  "Monday",
		LegacyTime: "08:00-10:00",
	}
	sub.normalize()

	if sub.DayNormal != "Tuesday" || sub.TimeNormal != "10:00-12:00" {
		t.Errorf("dual shape must win over legacy: got (%q, %q)", sub.DayNormal, sub.TimeNormal)
	}
}

func TestSubject_normalize_exceptionBackfill(t *testing.T) {
	sub := Subject{
		FolderName: "01-Biology",
		Exceptions: []Exception{
			{Date: "2025-03-15", Day: "Saturday", Time: "10:00-12:00"},
			{ID: "existing", Date: "2025-03-22", Day: "Saturday", Time: "10:00-12:00", SubjectFolder: "stale"},
		},
	}
	sub.normalize()

	if sub.Exceptions[0].ID == "" {
		t.Error("missing exception ID not backfilled")
	}
	if sub.Exceptions[1].ID != "existing" {
		t.Errorf("existing exception ID must survive normalization; got %q", sub.Exceptions[1].ID)
	}
	for i, exc := range sub.Exceptions {
		if exc.SubjectFolder != "01-Biology" {
			t.Errorf("exceptions[%d].SubjectFolder = %q; want %q", i, exc.SubjectFolder, "01-Biology")
		}
	}
}

func TestScheduleMode(t *testing.T) {
	if got := ModeNormal.Toggle(); got != ModeRamadan {
		t.Errorf("Normal.Toggle() = %v; want %v", got, ModeRamadan)
	}
	if got := ModeRamadan.Toggle(); got != ModeNormal {
		t.Errorf("Ramadan.Toggle() = %v; want %v", got, ModeNormal)
	}
	if !ModeNormal.Valid() || !ModeRamadan.Valid() {
		t.Error("known modes must be valid")
	}
	if ScheduleMode("Holiday").Valid() {
		t.Error("unknown mode must be invalid")
	}
}

func TestSubject_modeAccessors(t *testing.T) {
	sub := Subject{
		DayNormal:   "Monday",
		TimeNormal:  "08:00-10:00",
		DayRamadan:  "Tuesday",
		TimeRamadan: "09:00-10:30",
	}

	tests := []struct {
		mode              ScheduleMode
		wantDay, wantTime string
	}{
		{ModeNormal, "Monday", "08:00-10:00"},
		{ModeRamadan, "Tuesday", "09:00-10:30"},
	}
	for _, tt := range tests {
		if got := sub.Day(tt.mode); got != tt.wantDay {
			t.Errorf("Day(%v) = %q; want %q", tt.mode, got, tt.wantDay)
		}
		if got := sub.Time(tt.mode); got != tt.wantTime {
			t.Errorf("Time(%v) = %q; want %q", tt.mode, got, tt.wantTime)
		}
	}
}

func TestNewException_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    NewException
		wantErr bool
	}{
		{name: "valid", data: NewException{Date: "2025-03-15", Day: "Saturday", Time: "10:00-12:00"}},
		{name: "empty date", data: NewException{Day: "Saturday", Time: "10:00-12:00"}, wantErr: true},
		{name: "empty day", data: NewException{Date: "2025-03-15", Time: "10:00-12:00"}, wantErr: true},
		{name: "empty time", data: NewException{Date: "2025-03-15", Day: "Saturday"}, wantErr: true},
		{name: "bad date shape", data: NewException{Date: "15/03/2025", Day: "Saturday", Time: "x"}, wantErr: true},
		{name: "sunday out of domain", data: NewException{Date: "2025-03-16", Day: "Sunday", Time: "x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.data.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
