package main

import "github.com/NYBSA/Loadmovegh-platform-sub000/internal/commands"

func main() {
	commands.Execute()
}
