package main

import "reqpin/internal/cli"

func main() {
	cli.Execute()
}
