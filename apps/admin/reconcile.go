package main

import (
	"fmt"
	"syscall"

	"github.com/trezcool/jadwali/apps"
)

// reconcile aligns the vault's top-level folders with the registry. Pruning
// deletes folders and their notes, so it must be confirmed interactively or
// forced with -yes.
func (cli *commandLine) reconcile(prune, yes bool) error {
	if prune && !yes {
		if !isTerminalFunc(syscall.Stdin) {
			return apps.NewArgumentError("-prune needs -yes when not run from a terminal")
		}
		ok, err := confirmFunc("This deletes unregistered subject folders and their notes. Continue? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	}

	report, err := cli.svc.Reconcile(prune)
	if err != nil {
		return err
	}
	fmt.Printf("%d folder(s) created, %d removed\n", report.Created, report.Removed)
	return nil
}
