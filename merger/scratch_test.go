package merger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScratchSubdirRejectsDuplicateStems(t *testing.T) {
	scratch, err := newScratchArea()
	if err != nil {
		t.Fatalf("creating scratch area: %v", err)
	}
	defer scratch.Release()

	if _, err := scratch.subdir("libfoo"); err != nil {
		t.Fatalf("first subdir: %v", err)
	}
	if _, err := scratch.subdir("libfoo"); !errors.Is(err, ErrDuplicateArchive) {
		t.Fatalf("expected ErrDuplicateArchive, got %v", err)
	}
}

func TestScratchReleaseRemovesRoot(t *testing.T) {
	scratch, err := newScratchArea()
	if err != nil {
		t.Fatalf("creating scratch area: %v", err)
	}

	scratch.Release()
	if _, err := os.Stat(scratch.root); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("scratch root still present after release: %v", err)
	}
}

func TestScratchObjectsWalksRecursively(t *testing.T) {
	scratch, err := newScratchArea()
	if err != nil {
		t.Fatalf("creating scratch area: %v", err)
	}
	defer scratch.Release()

	dirA, _ := scratch.subdir("libA")
	dirB, _ := scratch.subdir("libB")

	// Same member name in two archives is two distinct objects.
	for _, path := range []string{
		filepath.Join(dirA, "common.o"),
		filepath.Join(dirB, "common.o"),
		filepath.Join(dirB, "extra.o"),
		filepath.Join(dirB, "notes.txt"),
	} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	objs, err := scratch.objects(".o")
	if err != nil {
		t.Fatalf("scanning objects: %v", err)
	}
	if len(objs) != 3 {
		t.Fatalf("expected 3 objects, got %d: %v", len(objs), objs)
	}
}

func TestArchiveStem(t *testing.T) {
	tests := []struct {
		path string
		stem string
	}{
		{"/llvm/lib/libLLVMCore.a", "libLLVMCore"},
		{"libfoo.dll.a", "libfoo"},
		{"lib/libstdc++.a", "libstdc++"},
		{`C:\msys64\mingw64\lib\libstdc++.a`, "libstdc++"},
		{"plain", "plain"},
		{"/llvm/lib/libLLVM-17.0.6.a", "libLLVM-17.0.6"},
	}

	for _, tt := range tests {
		if got := archiveStem(tt.path); got != tt.stem {
			t.Fatalf("archiveStem(%q) = %q, want %q", tt.path, got, tt.stem)
		}
	}
}

func TestVersionedArchivesStageSeparately(t *testing.T) {
	scratch, err := newScratchArea()
	if err != nil {
		t.Fatalf("creating scratch area: %v", err)
	}
	defer scratch.Release()

	if _, err := scratch.subdir(archiveStem("libLLVM-17.0.6.a")); err != nil {
		t.Fatalf("first version: %v", err)
	}
	if _, err := scratch.subdir(archiveStem("libLLVM-17.1.0.a")); err != nil {
		t.Fatalf("second version wrongly collided: %v", err)
	}
}
