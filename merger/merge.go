package merger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Merger drives one merge run. The platform profile and toolchain are
// resolved once up front and every later step consumes them as-is.
type Merger struct {
	output     string
	installDir string
	profile    PlatformProfile
	toolchain  Toolchain
	runner     Runner
	scratch    *scratchArea
	log        zerolog.Logger
}

// Merge combines the LLVM component archives and the platform C++
// standard library into a single static archive at opts.Output.
func Merge(ctx context.Context, opts Options) error {
	profile, err := ResolveHost()
	if err != nil {
		return err
	}
	return mergeWith(ctx, opts, profile)
}

func mergeWith(ctx context.Context, opts Options, profile PlatformProfile) error {
	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return err
	}

	installDir, err := filepath.Abs(opts.LLVMInstallDir)
	if err != nil {
		return err
	}

	if info, err := os.Stat(installDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidInstallDir, opts.LLVMInstallDir)
	}

	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	toolchain, err := findToolchain(opts.Environment, profile)
	if err != nil {
		return err
	}

	m := &Merger{
		output:     output,
		installDir: installDir,
		profile:    profile,
		toolchain:  toolchain,
		runner:     runner,
		log:        opts.Logger,
	}

	m.log.Info().Str("platform", profile.Name).Msg("detected platform")
	m.log.Debug().Strs("env", opts.Environment.List()).Msg("toolchain overrides")

	// The archiver itself may live at a POSIX-style path on MSYS2 hosts.
	if profile.UseCygpath && len(opts.Environment.Value("AR")) == 0 {
		if m.toolchain.AR, err = m.windowsPath(ctx, m.toolchain.AR); err != nil {
			return err
		}
	}

	if m.scratch, err = newScratchArea(); err != nil {
		return err
	}
	defer m.scratch.Release()

	m.log.Debug().Str("dir", m.scratch.root).Msg("using scratch directory")

	if err := m.extractStdObjects(ctx); err != nil {
		return err
	}

	if err := m.extractLLVMObjects(ctx); err != nil {
		return err
	}

	return m.mergeObjects(ctx)
}

func (m *Merger) mergeObjects(ctx context.Context) error {
	objs, err := m.scratch.objects(m.profile.ObjectExt)
	if err != nil {
		return err
	}
	if len(objs) == 0 {
		return fmt.Errorf("%w: nothing extracted beneath %s", ErrNoObjects, m.scratch.root)
	}

	if err := os.MkdirAll(filepath.Dir(m.output), 0o755); err != nil {
		return err
	}

	// Stale output may be silently appended to by some archivers.
	if err := os.Remove(m.output); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	m.log.Info().Int("objects", len(objs)).Str("output", m.output).Msg("merging object files")

	switch m.profile.Strategy {
	case MergeDirect:
		err = m.mergeDirect(ctx, objs)
	default:
		err = m.mergeWithFilelist(ctx, objs)
	}
	if err != nil {
		return err
	}

	return m.runRanlib(ctx)
}

func (m *Merger) mergeDirect(ctx context.Context, objs []string) error {
	args := append([]string{}, m.profile.ArchiverFlags...)
	args = append(args, m.output)
	args = append(args, objs...)

	_, err := m.runner.Run(ctx, Invocation{Path: m.toolchain.AR, Args: args})
	if err != nil {
		return errors.Join(fmt.Errorf("%w: creating %s", ErrArchiverFailed, m.output), err)
	}
	return nil
}

// mergeWithFilelist hands the archiver a @listfile argument instead of the
// objects themselves. The list file must outlive the archiver invocation.
func (m *Merger) mergeWithFilelist(ctx context.Context, objs []string) error {
	list, err := os.CreateTemp("", "armerge-objects-")
	if err != nil {
		return err
	}
	defer os.Remove(list.Name())

	if _, err := list.WriteString(strings.Join(objs, "\n")); err != nil {
		list.Close()
		return err
	}
	if err := list.Close(); err != nil {
		return err
	}

	args := append([]string{}, m.profile.ArchiverFlags...)
	args = append(args, m.output, "@"+list.Name())

	_, err = m.runner.Run(ctx, Invocation{Path: m.toolchain.AR, Args: args})
	if err != nil {
		return errors.Join(fmt.Errorf("%w: creating %s", ErrArchiverFailed, m.output), err)
	}
	return nil
}

// runRanlib regenerates the merged archive's symbol index. Not every
// archiver configuration builds the index during the merge itself.
func (m *Merger) runRanlib(ctx context.Context) error {
	m.log.Info().Msg("rebuilding symbol index")

	_, err := m.runner.Run(ctx, Invocation{Path: m.toolchain.Ranlib, Args: []string{m.output}})
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrRanlibFailed, m.output), err)
	}
	return nil
}

// windowsPath converts a POSIX-style MSYS2 path to native Windows form.
// The mingw64 archiver is a native tool and does not understand the
// POSIX form.
func (m *Merger) windowsPath(ctx context.Context, path string) (string, error) {
	res, err := m.runner.Output(ctx, Invocation{
		Path: m.toolchain.Cygpath,
		Args: []string{"-w", path},
	})
	if err != nil {
		return "", errors.Join(fmt.Errorf("%w: %s", ErrCygpathFailed, path), err)
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}
