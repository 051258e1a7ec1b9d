package main

import "github.com/andrescamacho/ogametools-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
