package merger

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindGCCStdlibReturnsFirstMatch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "x86_64-linux-gnu", "12", stdlibArchive)
	writeFile(t, nested, "!<arch>")

	found, err := findGCCStdlib(root)
	if err != nil {
		t.Fatalf("searching GCC tree: %v", err)
	}
	if found != nested {
		t.Fatalf("found %s, want %s", found, nested)
	}
}

func TestFindGCCStdlibNotFound(t *testing.T) {
	_, err := findGCCStdlib(t.TempDir())
	if !errors.Is(err, ErrStdlibNotFound) {
		t.Fatalf("expected ErrStdlibNotFound, got %v", err)
	}
}

func TestFindGCCStdlibMissingRoot(t *testing.T) {
	_, err := findGCCStdlib(filepath.Join(t.TempDir(), "no-such-tree"))
	if !errors.Is(err, ErrStdlibNotFound) {
		t.Fatalf("expected ErrStdlibNotFound, got %v", err)
	}
}

func TestFindMinGWStdlibMissingCarriesHint(t *testing.T) {
	runner := &fakeRunner{}
	runner.out = func(inv Invocation) (Result, error) {
		return Result{Stdout: []byte(`C:\nowhere\libstdc++.a`)}, nil
	}

	m := &Merger{
		profile:   mustProfile(t, "windows"),
		toolchain: Toolchain{Cygpath: "cygpath"},
		runner:    runner,
	}

	_, err := m.findStdlib(context.Background())
	if !errors.Is(err, ErrStdlibNotFound) {
		t.Fatalf("expected ErrStdlibNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "pacman") {
		t.Fatalf("error lacks the remediation hint: %v", err)
	}
}
