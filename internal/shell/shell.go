// Package shell implements the companion command-line launcher: a
// read/tokenize/execute loop over a small built-in table, falling back
// to spawning a child process for anything else.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const prompt = "> "

// builtin is a command implemented in-process rather than spawned.
type builtin func(args []string) error

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"cd":   cdBuiltin,
		"help": helpBuiltin,
		"exit": exitBuiltin,
	}
}

// errExit is returned by the exit builtin to unwind Loop cleanly.
var errExit = fmt.Errorf("exit")

// Loop reads lines from stdin, tokenizes and executes each one, and
// returns when the user types "exit" or stdin reaches EOF.
func Loop() int {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return 0
			}
			fmt.Fprintln(os.Stderr, "gosh:", err)
			return 1
		}

		args := tokenize(line)
		if len(args) == 0 {
			continue
		}

		if err := execute(args); err != nil {
			if err == errExit {
				return 0
			}
			fmt.Fprintln(os.Stderr, "gosh:", err)
		}
	}
}

// tokenize splits a line on whitespace: space, tab, CR, LF, or BEL.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', '\a':
			return true
		}
		return false
	})
}

// execute looks args[0] up in the builtin table; anything else is
// spawned as a child process with args as argv, and the parent waits
// for it to exit or be signaled. An empty args is a no-op.
func execute(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if b, ok := builtins[args[0]]; ok {
		return b(args[1:])
	}
	return launch(args)
}

// launch spawns a child process and waits for it to finish. This is
// the Go standard library's fork/exec/wait equivalent to the C
// fork+execvp+waitpid sequence spec §5 describes: os/exec.Cmd.Run
// starts the child and blocks until it exits or is signaled (never
// returning early on a stopped child, matching the "report untraced"
// wait semantics).
func launch(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Child ran and exited non-zero or was signaled; that's a
			// normal outcome for a launched command, not a shell error.
			return nil
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func cdBuiltin(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("cd: expected argument")
	}
	if err := os.Chdir(args[0]); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

func helpBuiltin(args []string) error {
	fmt.Println("gosh: a minimal shell launcher")
	fmt.Println("The following are built in:")
	for name := range builtins {
		fmt.Println(" ", name)
	}
	fmt.Println("Use the man command for information on other programs.")
	return nil
}

func exitBuiltin(args []string) error {
	return errExit
}
