package main

import (
	"fmt"
	"time"

	"github.com/trezcool/jadwali/apps"
	"github.com/trezcool/jadwali/core/subject"
)

func (cli *commandLine) schedule(day, modeStr, asOf string) error {
	mode := cli.svc.Mode()
	if modeStr != "" {
		mode = subject.ScheduleMode(modeStr)
		if !mode.Valid() {
			return apps.NewArgumentError(fmt.Sprintf("unknown schedule mode %q", modeStr))
		}
	}
	if asOf == "" {
		asOf = time.Now().Format("2006-01-02")
	}

	var days []subject.DaySchedule
	if day != "" {
		if !subject.IsWeekday(day) {
			return apps.NewArgumentError(fmt.Sprintf("%q is not a scheduled weekday", day))
		}
		days = []subject.DaySchedule{cli.svc.ResolveDay(day, mode, asOf)}
	} else {
		days = cli.svc.ResolveWeek(mode, asOf)
	}

	printSchedule(days, mode)
	return nil
}

func printSchedule(days []subject.DaySchedule, mode subject.ScheduleMode) {
	fmt.Printf("Schedule (%s mode):\n", mode)
	for _, sched := range days {
		fmt.Printf("\n%s:\n", sched.Day)
		if sched.Empty {
			fmt.Println("  (no classes)")
			continue
		}
		for _, slot := range sched.Slots {
			fmt.Printf("  %-13s %s", slot.Time(mode), slot.FolderName)
			if slot.Room != "" {
				fmt.Printf(" (%s)", slot.Room)
			}
			fmt.Println()
		}
		for _, exc := range sched.Exceptions {
			fmt.Printf("  %-13s %s (exception on %s)\n", exc.Time, exc.SubjectFolder, exc.Date)
		}
	}
}
