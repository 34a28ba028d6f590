package main

import "github.com/andrescamacho/studiosim-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
