// Copyright © 2025 The ruff authors

package main

import "github.com/tomasr8/ruff/cmd"

func main() {
	cmd.Execute()
}
