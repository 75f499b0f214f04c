package main

import (
	"fmt"
	"testing"

	"cmdlog/internal/cmdlog"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	var tt = []struct {
		name     string
		stats    cmdlog.RunStats
		err      error
		expected int
	}{
		{name: "every line applied", stats: cmdlog.RunStats{Lines: 3, Applied: 3}, expected: 0},
		{name: "empty log", stats: cmdlog.RunStats{}, expected: 0},
		{name: "skipped lines", stats: cmdlog.RunStats{Lines: 3, Applied: 2, Failed: 1}, expected: 1},
		{name: "halted run", stats: cmdlog.RunStats{Lines: 2, Applied: 1, Failed: 1}, err: fmt.Errorf("line 2: boom"), expected: 1},
		{name: "unreadable log", err: fmt.Errorf("command log missing.log does not exist"), expected: 1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, exitCode(tc.stats, tc.err))
		})
	}
}
