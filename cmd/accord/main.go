// Command accord is the CLI entry point for the conflict-detection engine.
package main

import "github.com/accord-sh/accord/cmd/accord/cmd"

func main() {
	cmd.Execute()
}
