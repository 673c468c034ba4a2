package main

import "github.com/climbreels/cli/internal/cmd"

func main() {
	cmd.Execute()
}
