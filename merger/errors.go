package merger

import "errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidInstallDir   = errors.New("invalid LLVM installation directory")
	ErrDuplicateArchive    = errors.New("duplicate archive base name")
	ErrStdlibNotFound      = errors.New("standard library archive not found")
	ErrNoObjects           = errors.New("no object files to merge")
	ErrArchiverFailed      = errors.New("archiver invocation failed")
	ErrRanlibFailed        = errors.New("ranlib invocation failed")
	ErrCygpathFailed       = errors.New("path conversion failed")
)
