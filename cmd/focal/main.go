package main

import "github.com/focal-dev/focal/internal/cli"

func main() {
	cli.Execute()
}
