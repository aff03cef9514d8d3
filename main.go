package main

import "github.com/pfrederiksen/wordladder/cmd"

func main() {
	cmd.Execute()
}
