package main

import (
	"fmt"
	"os"

	"cmdlog/envs"
	"cmdlog/internal/cmdlog"
	"cmdlog/logger"
	"cmdlog/pkg/utils"
)

func run() int {
	envs.LoadEnv()
	config := envs.Gets()

	if err := logger.Setup(config.LogLevel, config.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		return 1
	}

	commandsPath, err := utils.GetCommandsFilePath(config.CmdlogRootDirPath, config.CommandsFile)
	if err != nil {
		logger.Log.WithError(err).Error("failed to resolve command log path")
		return 1
	}

	interpreter := cmdlog.NewInterpreter(cmdlog.NewStore(), os.Stdout, config.ErrorPolicy, logger.Log)

	return exitCode(interpreter.RunFile(commandsPath))
}

// Maps the outcome of a run to the process exit status
func exitCode(stats cmdlog.RunStats, err error) int {
	if err != nil {
		logger.Log.WithError(err).Error("command log run failed")
		return 1
	}

	if stats.Failed > 0 {
		logger.Log.Warnf("%d of %d lines failed", stats.Failed, stats.Lines)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
