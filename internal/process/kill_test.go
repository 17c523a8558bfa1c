package process

// Notes:
// - Only PIDs that cannot name a live process are exercised. Killing a
//   real browser tree needs Chrome and is left to manual runs.
// - Zero and negative PIDs must be no-ops: on unix -0 is the test
//   binary's own process group.

import "testing"

// ---------------------------------------------------------------------------
// TestKillProcessGroup - PIDs that must not kill anything
// ---------------------------------------------------------------------------

func TestKillProcessGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "nonexistent pid", pid: 999999999},
		{name: "zero is ignored", pid: 0},
		{name: "negative is ignored", pid: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			KillProcessGroup(tt.pid)
		})
	}
}
