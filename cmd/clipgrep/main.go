package main

import "clipgrep/internal/cli"

func main() {
	cli.Main()
}
