package main

import "newsdigest/internal/command"

func main() {
	command.Execute()
}
