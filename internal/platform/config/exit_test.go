package config

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func TestExitfWritesAndExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	exitWriter = &buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitWriter = io.Writer(os.Stderr)
		exitFunc = os.Exit
	})

	Exitf("Error: %v", "no roster")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "Error: no roster\n" {
		t.Fatalf("output = %q, want %q", got, "Error: no roster\n")
	}
}
