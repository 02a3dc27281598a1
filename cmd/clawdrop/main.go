package main

import "clawdrop/internal/cmd"

func main() {
	cmd.Execute()
}
