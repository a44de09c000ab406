package main

import "frenetic/internal/cli"

func main() {
	cli.Execute()
}
