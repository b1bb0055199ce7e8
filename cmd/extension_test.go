package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := setup(t)

	script := "#!/bin/sh\necho \"args=$*\"\nenv | grep '^FJ_' | sort\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "fj-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	*Verbose = true
	t.Cleanup(func() { *Verbose = false })

	var buf bytes.Buffer
	out = &buf
	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}

	got := buf.String()
	for _, want := range []string{
		"args=a b",
		EnvJournalFile + "=" + *journalFile,
		EnvGoalsFile + "=" + *goalsFile,
		EnvVerbose + "=true",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("extension output does not contain %q:\n%s", want, got)
		}
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}
