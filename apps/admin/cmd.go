package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/jadwali/core/subject"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	confirmFunc    = confirmPrompt   // mockable

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
)

type commandLine struct {
	svc *subject.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  reconcile [-prune] [-yes]                     - align vault folders with the registry")
	fmt.Println("  togglemode                                    - flip the schedule mode")
	fmt.Println("  schedule [-day DAY] [-mode MODE] [-asof DATE] - print the resolved schedule")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	reconcileCmd := flag.NewFlagSet("reconcile", flag.ExitOnError)
	reconcilePrune := reconcileCmd.Bool("prune", false, "Delete unregistered subject folders. Destructive; asks for confirmation.")
	reconcileYes := reconcileCmd.Bool("yes", false, "Skip the prune confirmation prompt.")

	scheduleCmd := flag.NewFlagSet("schedule", flag.ExitOnError)
	scheduleDay := scheduleCmd.String("day", "", "Resolve a single weekday instead of the whole week.")
	scheduleMode := scheduleCmd.String("mode", "", "Schedule mode to resolve with. Defaults to the active mode.")
	scheduleAsOf := scheduleCmd.String("asof", "", "Hide exceptions dated strictly before this ISO date. Defaults to today.")

	switch args[1] {
	case "reconcile":
		if err := reconcileCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.reconcile(*reconcilePrune, *reconcileYes)
	case "togglemode":
		return cli.toggleMode()
	case "schedule":
		if err := scheduleCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.schedule(*scheduleDay, *scheduleMode, *scheduleAsOf)
	default:
		cli.printUsage()
		return errHelp
	}
}

func confirmPrompt(prompt string) (bool, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
