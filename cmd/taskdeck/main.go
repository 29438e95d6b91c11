package main

import (
	"taskdeck/cmd/taskdeck/commands"
)

func main() {
	commands.Execute()
}
