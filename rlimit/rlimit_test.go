package rlimit_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"codeberg.org/iklabib/takar/rlimit"
)

func TestApplyUnknownResource(t *testing.T) {
	rl := rlimit.Rlimit{Resource: "RLIMIT_BOGUS"}
	require.ErrorContains(t, rl.Apply(os.Getpid()), "unknown rlimit resource")
}

func TestApplyKeepsCurrentNofile(t *testing.T) {
	var cur unix.Rlimit
	require.NoError(t, unix.Getrlimit(unix.RLIMIT_NOFILE, &cur))

	// re-applying the current limits is a no-op and must succeed
	rl := rlimit.Rlimit{Resource: rlimit.RLIMIT_NOFILE, Soft: cur.Cur, Hard: cur.Max}
	require.NoError(t, rl.Apply(os.Getpid()))
}
