package main

import "seogap-go/cmd/seogap/commands"

func main() {
	commands.Execute()
}
