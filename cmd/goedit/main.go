// Command goedit is a minimalist terminal text editor.
//
// Usage: goedit [filename]
package main

import (
	"fmt"
	"os"

	"github.com/vkremer/goedit/internal/editor"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: goedit [filename]")
		os.Exit(1)
	}

	s := editor.New()
	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "goedit: %v\n", err)
		os.Exit(1)
	}
	defer s.Stop()

	var filename string
	if len(os.Args) == 2 {
		filename = os.Args[1]
	}

	s.Run(filename)
}
