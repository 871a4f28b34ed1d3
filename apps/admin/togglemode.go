package main

import "fmt"

func (cli *commandLine) toggleMode() error {
	mode, err := cli.svc.ToggleMode()
	if err != nil {
		return err
	}
	fmt.Printf("Schedule mode is now %s\n", mode)
	return nil
}
