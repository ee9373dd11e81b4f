// Command journal is the CLI front end over the journal engine: query,
// search, stats, active, export, rebuild-index, and init.
package main

import "github.com/mesh-intelligence/journal/internal/cli"

func main() {
	cli.Execute()
}
