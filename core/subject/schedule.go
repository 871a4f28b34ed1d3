package subject

import "sort"

// DaySchedule is one resolved day: the recurring base slots and the upcoming
// exception overlays, side by side. An exception never suppresses the base
// slot it overrides; conflicting entries are surfaced together and left to the
// reader.
type DaySchedule struct {
	Day        string      `json:"day"`
	Slots      []Subject   `json:"slots"`
	Exceptions []Exception `json:"exceptions"`
	Empty      bool        `json:"empty"`
}

// ResolveDay resolves a single weekday for the given mode and as-of date.
// Base slots sort ascending by the mode's time field using plain string
// comparison: callers must zero-pad time strings for chronological order
// ("9:00" sorts after "08:00" and after "10:00").
func (svc *Service) ResolveDay(day string, mode ScheduleMode, asOf string) DaySchedule {
	sched := DaySchedule{
		Day:        day,
		Slots:      make([]Subject, 0),
		Exceptions: make([]Exception, 0),
	}

	for _, sub := range svc.subjects {
		if sub.Day(mode) == day {
			sched.Slots = append(sched.Slots, sub)
		}
	}
	sort.SliceStable(sched.Slots, func(i, j int) bool {
		return sched.Slots[i].Time(mode) < sched.Slots[j].Time(mode)
	})

	// strictly past exceptions stay in storage but are not shown
	for _, exc := range svc.UpcomingExceptions(asOf) {
		if exc.Day == day {
			sched.Exceptions = append(sched.Exceptions, exc)
		}
	}

	sched.Empty = len(sched.Slots) == 0 && len(sched.Exceptions) == 0
	return sched
}

// ResolveWeek resolves all six scheduled weekdays. Days with neither slots nor
// overlays are still reported, carrying the explicit Empty marker.
func (svc *Service) ResolveWeek(mode ScheduleMode, asOf string) []DaySchedule {
	week := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		week = append(week, svc.ResolveDay(day, mode, asOf))
	}
	return week
}
