package main

import "github.com/trepidity/world-clock/cmd/world-clock/cmd"

func main() {
	cmd.Execute()
}
