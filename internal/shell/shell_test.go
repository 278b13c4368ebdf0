package shell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"cd foo\n", []string{"cd", "foo"}},
		{"  ls  -la  \n", []string{"ls", "-la"}},
		{"\n", nil},
		{"", nil},
		{"echo a\tb\rc", []string{"echo", "a", "b", "c"}},
	}

	for _, c := range cases {
		got := tokenize(c.line)
		if len(got) != len(c.want) {
			t.Errorf("tokenize(%q) = %v, want %v", c.line, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("tokenize(%q) = %v, want %v", c.line, got, c.want)
				break
			}
		}
	}
}

func TestCdBuiltinNoArgIsError(t *testing.T) {
	if err := cdBuiltin(nil); err == nil {
		t.Error("cd with no argument should report an error")
	}
}

func TestCdBuiltinChangesDirectory(t *testing.T) {
	start, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(start)

	dir := t.TempDir()
	wantDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := cdBuiltin([]string{dir}); err != nil {
		t.Fatalf("cd: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cwd, err = filepath.EvalSymlinks(cwd)
	if err != nil {
		t.Fatal(err)
	}
	if cwd != wantDir {
		t.Errorf("cwd = %q, want %q", cwd, wantDir)
	}
}

func TestCdBuiltinFailurePreservesCwd(t *testing.T) {
	start, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(start)

	if err := cdBuiltin([]string{"/does/not/exist/at/all"}); err == nil {
		t.Fatal("expected an error changing into a nonexistent directory")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if cwd != start {
		t.Errorf("cwd = %q after failed cd, want unchanged %q", cwd, start)
	}
}

func TestExitBuiltinSignalsLoopExit(t *testing.T) {
	if err := exitBuiltin(nil); err != errExit {
		t.Errorf("exitBuiltin returned %v, want errExit", err)
	}
}

func TestExecuteEmptyLineIsNoOp(t *testing.T) {
	args := tokenize("\n")
	if len(args) != 0 {
		t.Fatalf("tokenize(\"\\n\") = %v, want empty", args)
	}
	if err := execute(args); err != nil {
		t.Errorf("execute(%v) = %v, want nil", args, err)
	}
}
