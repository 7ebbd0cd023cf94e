package main

import "github.com/mcoot/czwordle/internal/cli"

func main() {
	cli.Execute()
}
