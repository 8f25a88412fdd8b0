package merger

import "github.com/rs/zerolog"

type Options struct {
	// Output is the path of the merged archive.
	Output string

	// LLVMInstallDir is the root of the LLVM installation. Component
	// archives are read from <root>/lib/*.a.
	LLVMInstallDir string

	Environment Env

	// Runner executes the external archiver tools. Defaults to ExecRunner.
	Runner Runner

	Logger zerolog.Logger
}
