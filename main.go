// ./main.go
package main

import (
	"github.com/aegis-c9/aegis-cli/cmd"
)

// main is the entry point for the Aegis CLI application.
func main() {
	cmd.Execute()
}
