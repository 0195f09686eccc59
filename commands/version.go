package commands

import "fmt"

// overridden at link time with -X
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	_, err := fmt.Printf("passkit %s\n", version)
	return err
}
