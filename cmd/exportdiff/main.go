package main

import "github.com/mvp-joe/export-diff/internal/cli"

func main() {
	cli.Execute()
}
