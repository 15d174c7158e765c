// ABOUTME: Standard filesystem paths for agent-hooks configuration
// ABOUTME: Resolves ~/.agent-hooks/ for global and .agent-hooks/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".agent-hooks"
	projectDirName = ".agent-hooks"
	hooksFileName  = "hooks.json"
)

// GlobalDir returns the user-global config directory (~/.agent-hooks/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.agent-hooks/ under the project root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalHooksFile returns the path to the global hooks file.
func GlobalHooksFile() string {
	return filepath.Join(GlobalDir(), hooksFileName)
}

// ProjectHooksFile returns the path to the project-local hooks file.
func ProjectHooksFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), hooksFileName)
}
