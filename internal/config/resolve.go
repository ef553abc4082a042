package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joabzzz/r3dy/internal/common"
)

// ResolveRoot validates the root argument and canonicalizes it to an
// absolute path with symlinks resolved. An empty argument means the current
// directory. Relative arguments are joined with the current directory
// before validation, so error messages always name the absolute path.
func ResolveRoot(arg string) (common.ResolvedPath, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("Failed to determine current directory: %w", err)
	}

	root := arg
	switch {
	case root == "":
		root = cwd
	case !filepath.IsAbs(root):
		root = filepath.Join(cwd, root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%s is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("Failed to resolve %s: %w", root, err)
	}

	return common.NewResolvedPath(resolved)
}
