// Command gosh is a minimal shell launcher: read a line, tokenize it,
// and either run a built-in or spawn the named program.
package main

import (
	"os"

	"github.com/vkremer/goedit/internal/shell"
)

func main() {
	os.Exit(shell.Loop())
}
