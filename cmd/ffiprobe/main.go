// ffiprobe is a diagnostic tool for the nativeffi layer: it reports which
// foreign-call engine bootstrap selects on this system, and exercises the
// loader and type resolver against real shared libraries.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/osbind/nativeffi"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if os.Getenv("FFIPROBE_VERBOSE") != "" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			nativeffi.SetLogger(logger)
			defer logger.Sync()
		}
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "engine":
		err = engineCmd()
	case "load":
		err = loadCmd(args)
	case "resolve":
		err = resolveCmd(args)
	case "version", "-v", "--version":
		fmt.Printf("ffiprobe version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func engineCmd() error {
	if err := nativeffi.Init(); err != nil {
		return err
	}
	fmt.Printf("platform: %s\n", nativeffi.CurrentPlatform())
	fmt.Printf("engine:   %s\n", nativeffi.Engine())
	return nil
}

func loadCmd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ffiprobe load <library> [config.toml]")
	}
	var cfg *nativeffi.LoaderConfig
	if len(args) > 1 {
		var err error
		cfg, err = nativeffi.LoadLoaderConfig(args[1])
		if err != nil {
			return err
		}
	}
	lib, err := nativeffi.LoadLibraryWith(args[0], cfg)
	if err != nil {
		return err
	}
	fmt.Printf("loaded %s (handle %#x)\n", lib.Name(), lib.Handle())
	return nil
}

func resolveCmd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ffiprobe resolve <type> [library]")
	}
	var lib *nativeffi.Library
	if len(args) > 1 {
		var err error
		lib, err = nativeffi.LoadLibrary(args[1])
		if err != nil {
			return err
		}
	}
	ref := nativeffi.ParseTypeName(args[0])
	fmt.Printf("base: %q  indirection: %d  atomic pointer: %v\n", ref.Base, ref.Indirection, ref.AlreadyPointer)
	t, err := nativeffi.ResolveType(lib, ref)
	if err != nil {
		return err
	}
	fmt.Printf("kind: %s  size: %d\n", t.Kind, t.Size)
	return nil
}

func printUsage() {
	fmt.Println(`ffiprobe - nativeffi diagnostics

Usage: ffiprobe <command> [options]

Commands:
  engine           Report the selected foreign-call engine
  load <lib>       Locate and load a shared library by short name
  resolve <type>   Parse and resolve a native type name
  version          Print version
  help             Show this help

Set FFIPROBE_VERBOSE=1 for bootstrap and loader logs.`)
}
