package merger

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed platforms.yaml
var rawPlatforms []byte
var platforms Platforms

// MergeStrategy selects how the object file list is handed to the archiver.
type MergeStrategy string

const (
	// MergeDirect appends every object path to the archiver command line.
	MergeDirect MergeStrategy = "direct"

	// MergeFilelist writes the object paths to a temporary file and passes
	// it as a single @listfile argument. Required where the full list would
	// exceed the host's command-line length limit.
	MergeFilelist MergeStrategy = "filelist"
)

// StdlibPolicy names the scheme used to locate the C++ standard library archive.
type StdlibPolicy string

const (
	// StdlibGCCTree searches recursively beneath the GCC library tree.
	StdlibGCCTree StdlibPolicy = "gcc-tree"

	// StdlibMinGW probes the fixed MSYS2 mingw64 library path.
	StdlibMinGW StdlibPolicy = "mingw64"

	// StdlibNone skips standard-library extraction entirely. macOS links
	// the C++ runtime dynamically.
	StdlibNone StdlibPolicy = "none"
)

// PlatformProfile describes how archives are handled on one host platform.
// Exactly one profile is resolved per run and injected into every
// downstream step; nothing re-branches on the OS after resolution.
type PlatformProfile struct {
	Name          string        `yaml:"name"`
	Aliases       []string      `yaml:"aliases"`
	ObjectExt     string        `yaml:"objext"`
	ArchiverFlags []string      `yaml:"arflags"`
	Strategy      MergeStrategy `yaml:"strategy"`
	Stdlib        StdlibPolicy  `yaml:"stdlib"`
	StdlibPath    string        `yaml:"stdlibpath"`
	UseCygpath    bool          `yaml:"cygpath"`
}

type Platforms []PlatformProfile

// Find resolves the profile for an OS identifier. MSYS2 environments
// report identifiers like "msys_nt-10.0", so aliases also match as
// prefixes of the given name.
func (p Platforms) Find(name string) (PlatformProfile, error) {
	name = strings.ToLower(name)
	for _, profile := range p {
		if slices.Contains(profile.Aliases, name) {
			return profile, nil
		}
		for _, alias := range profile.Aliases {
			if strings.HasPrefix(name, alias) {
				return profile, nil
			}
		}
	}
	return PlatformProfile{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, name)
}

// ResolveHost returns the profile for the operating system this process
// is running on.
func ResolveHost() (PlatformProfile, error) {
	return platforms.Find(runtime.GOOS)
}

func init() {
	var p struct {
		Elements []PlatformProfile `yaml:"platforms"`
	}
	if err := yaml.Unmarshal(rawPlatforms, &p); err != nil {
		panic(err)
	}

	platforms = p.Elements
}
