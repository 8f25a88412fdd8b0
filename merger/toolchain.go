package merger

import (
	"os/exec"
	"path/filepath"
)

// MSYS2 hosts the archiver inside the mingw64 toolchain. The path is in
// POSIX form and is translated to native form before use.
const msys2Archiver = "/mingw64/bin/ar.exe"

type Toolchain struct {
	AR      string
	Ranlib  string
	Cygpath string
}

func findToolchain(env Env, profile PlatformProfile) (Toolchain, error) {
	ar := env.Value("AR")
	if len(ar) == 0 {
		if profile.UseCygpath {
			ar = msys2Archiver
		} else {
			var err error
			if ar, err = findExecutable("ar"); err != nil {
				return Toolchain{}, err
			}
		}
	}

	ranlib := env.Value("RANLIB")
	if len(ranlib) == 0 {
		var err error
		if ranlib, err = findExecutable("ranlib"); err != nil {
			return Toolchain{}, err
		}
	}

	toolchain := Toolchain{
		AR:     ar,
		Ranlib: ranlib,
	}

	if profile.UseCygpath {
		cygpath := env.Value("CYGPATH")
		if len(cygpath) == 0 {
			var err error
			if cygpath, err = findExecutable("cygpath"); err != nil {
				return Toolchain{}, err
			}
		}
		toolchain.Cygpath = cygpath
	}

	return toolchain, nil
}

func findExecutable(cmd string) (string, error) {
	fname, err := exec.LookPath(cmd)
	if err == nil {
		fname, err = filepath.Abs(fname)
	}
	return fname, err
}
