package main

import "github.com/testscout/core/internal/cli"

func main() {
	cli.Execute()
}
