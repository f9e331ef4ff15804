package ffi

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// LoaderConfig tweaks library discovery. Zero value means defaults only.
type LoaderConfig struct {
	// SearchPaths are directories probed before the system default, in order.
	SearchPaths []string `toml:"search_paths"`
	// Names overrides the platform file name for a library, keyed by the
	// name passed to LoadLibrary.
	Names map[string]string `toml:"names"`
}

// LoadLoaderConfig reads a TOML loader config file.
func LoadLoaderConfig(path string) (*LoaderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg LoaderConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// libraryFileName maps a short library name to the platform file name,
// e.g. "crypto" to libcrypto.so / libcrypto.dylib / crypto.dll.
func libraryFileName(name string) string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}

// libraryCandidates builds the ordered list of paths to probe for a library.
func libraryCandidates(name string, cfg *LoaderConfig) []string {
	// Full-path env override wins outright.
	if path := os.Getenv("NATIVEFFI_LIB_PATH"); path != "" {
		return []string{path}
	}

	fileName := libraryFileName(name)
	if cfg != nil {
		if override, ok := cfg.Names[name]; ok {
			fileName = override
		}
	}

	var candidates []string
	if cfg != nil {
		for _, dir := range cfg.SearchPaths {
			candidates = append(candidates, filepath.Join(dir, fileName))
		}
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		candidates = append(candidates,
			filepath.Join(execDir, fileName),
			filepath.Join(execDir, "..", "lib", fileName),
		)
	}
	// Bare file name last: let the system loader search its own paths.
	candidates = append(candidates, fileName)
	return candidates
}

// LoadLibrary locates and loads a native shared library by short name and
// returns its handle wrapped in a Library. A miss on every candidate path is
// a LibraryNotFoundError.
func LoadLibrary(name string) (*Library, error) {
	return LoadLibraryWith(name, nil)
}

// LoadLibraryWith is LoadLibrary with an explicit loader config.
func LoadLibraryWith(name string, cfg *LoaderConfig) (*Library, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	candidates := libraryCandidates(name, cfg)
	var lastErr error
	for _, path := range candidates {
		handle, err := openLibrary(path)
		if err != nil {
			logger().Debug("library probe failed", zap.String("library", name), zap.String("path", path), zap.Error(err))
			lastErr = err
			continue
		}
		logger().Info("library loaded", zap.String("library", name), zap.String("path", path))
		return NewLibrary(name, handle), nil
	}
	return nil, &LibraryNotFoundError{Name: name, Tried: candidates, LastErr: lastErr}
}
