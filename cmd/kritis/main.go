// cmd/kritis/main.go
package main

import (
	cmd "github.com/mwiater/kritis/internal/commands"
)

// executeCmd is indirected for testing.
var executeCmd = cmd.Execute

// main starts the kritis CLI application by delegating to the cobra root
// command defined in the commands package. It does not take any arguments
// and does not return a value.
func main() {
	executeCmd()
}
