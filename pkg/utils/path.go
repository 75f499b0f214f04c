package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const DEFAULT_COMMANDS_FILENAME = "commands.log"

// Resolves the command log location.
// Absolute paths are kept, relative ones are joined to rootDirPath or, when it is empty, the working directory.
func GetCommandsFilePath(rootDirPath string, commandsFile string) (string, error) {
	if commandsFile == "" {
		commandsFile = DEFAULT_COMMANDS_FILENAME
	}

	if filepath.IsAbs(commandsFile) {
		return filepath.Clean(commandsFile), nil
	}

	if rootDirPath == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting working directory: %w", err)
		}
		rootDirPath = workingDir
	}

	return filepath.Join(rootDirPath, commandsFile), nil
}
