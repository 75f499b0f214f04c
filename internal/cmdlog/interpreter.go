package cmdlog

import (
	"bufio"
	"cmdlog/internal/cmdlog/errors"
	"cmdlog/internal/cmdlog/types"
	"cmdlog/pkg/utils"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

const initialLineBufferSize = 64 * 1024

// Interpreter feeds a command log through the parser and the store, one line at a time.
type Interpreter struct {
	store  *Store
	output io.Writer
	policy types.ErrorPolicy
	logger logrus.FieldLogger
}

// RunStats counts what happened during a run.
type RunStats struct {
	Lines   int
	Applied int
	Failed  int
}

func NewInterpreter(store *Store, output io.Writer, policy types.ErrorPolicy, logger logrus.FieldLogger) *Interpreter {
	if !policy.IsValid() {
		policy = types.HALT_ON_ERROR
	}

	return &Interpreter{
		store:  store,
		output: output,
		policy: policy,
		logger: logger,
	}
}

// Execute parses and applies a single line.
func (interpreter *Interpreter) Execute(line string) (types.Reply, error) {
	return interpreter.execute(line, interpreter.logger)
}

func (interpreter *Interpreter) execute(line string, logger logrus.FieldLogger) (types.Reply, error) {
	command, err := Parse(line)
	if err != nil {
		return types.Reply{}, err
	}

	reply, err := interpreter.store.Apply(command)
	if err != nil {
		return types.Reply{}, err
	}

	logger.WithFields(logrus.Fields{
		"command": command.Name(),
		"key":     types.CommandKey(command),
	}).Debug("command applied")

	return reply, nil
}

// Run executes every line of input in order and writes one reply per line.
// With the halt policy the first failing line stops the run and is returned as a *errors.LineError.
func (interpreter *Interpreter) Run(input io.Reader) (RunStats, error) {
	var stats RunStats
	scanner := bufio.NewScanner(input)
	// lines are only bounded by the input itself
	scanner.Buffer(make([]byte, 0, initialLineBufferSize), math.MaxInt)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		lineLogger := interpreter.logger.WithField("line", stats.Lines)

		reply, err := interpreter.execute(line, lineLogger)
		if err != nil {
			lineError := &errors.LineError{Number: stats.Lines, Line: line, Err: err}
			stats.Failed++

			if interpreter.policy == types.HALT_ON_ERROR {
				lineLogger.WithError(err).Error("halting run")
				return stats, lineError
			}

			lineLogger.WithError(err).Warn("skipping line")
			reply = types.NewErrorReply(err)
		} else {
			stats.Applied++
		}

		if err := interpreter.writeReply(reply); err != nil {
			return stats, err
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read command log: %w", err)
	}

	interpreter.logger.WithFields(logrus.Fields{
		"lines":   stats.Lines,
		"applied": stats.Applied,
		"failed":  stats.Failed,
		"keys":    interpreter.store.Len(),
	}).Info("command log processed")

	return stats, nil
}

// RunFile opens the command log at path and runs it.
func (interpreter *Interpreter) RunFile(path string) (RunStats, error) {
	file, err := utils.OpenFile(path)
	if err != nil {
		return RunStats{}, err
	}
	defer file.Close()

	interpreter.logger.WithField("path", path).Info("reading command log")
	return interpreter.Run(file)
}

func (interpreter *Interpreter) writeReply(reply types.Reply) error {
	if _, err := io.WriteString(interpreter.output, reply.ToString()); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}
	return nil
}
