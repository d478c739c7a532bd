// Command directory queries the employee directory from a terminal, using the
// same filters and page size as the HTTP API.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(defaultDeps()).Execute(); err != nil {
		os.Exit(1)
	}
}
