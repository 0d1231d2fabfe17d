// Package main is the entry point for the fsh interactive file shell.
package main

import "fsh.dev/pkg/fsh/cmd"

func main() {
	cmd.Execute()
}
