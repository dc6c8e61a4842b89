package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"codeberg.org/iklabib/takar/model"
	"codeberg.org/iklabib/takar/report"
)

func TestCollect(t *testing.T) {
	ru := &unix.Rusage{
		Utime:   unix.Timeval{Sec: 7},
		Stime:   unix.Timeval{Sec: 2},
		Maxrss:  2048,
		Ixrss:   50000, // KB*ticks
		Idrss:   100000,
		Isrss:   20000,
		Inblock: 3,
		Oublock: 4,
	}

	r := report.Collect(ru, 9, 100)

	require.EqualValues(t, 7, r.UserCPUSec)
	require.EqualValues(t, 2, r.SysCPUSec)
	require.EqualValues(t, 9, r.TotalCPUSec())
	require.EqualValues(t, 9, r.WallSec)
	require.EqualValues(t, 2048, r.MaxRSSKB)

	// divisor is user minus system seconds: 7-2=5
	require.EqualValues(t, 100, r.CodeKB)
	require.EqualValues(t, 200, r.DataKB)
	require.EqualValues(t, 40, r.StackKB)

	require.EqualValues(t, 3, r.FSReads)
	require.EqualValues(t, 4, r.FSWrites)
}

func TestCollectClampsDivisor(t *testing.T) {
	// user == system: divisor would be zero
	ru := &unix.Rusage{
		Utime: unix.Timeval{Sec: 3},
		Stime: unix.Timeval{Sec: 3},
		Ixrss: 1000,
	}
	r := report.Collect(ru, 0, 100)
	require.EqualValues(t, 10, r.CodeKB)

	// system > user: divisor would be negative
	ru = &unix.Rusage{
		Utime: unix.Timeval{Sec: 1},
		Stime: unix.Timeval{Sec: 5},
		Idrss: 1000,
	}
	r = report.Collect(ru, 0, 100)
	require.EqualValues(t, 10, r.DataKB)
}

func TestCollectZeroUsage(t *testing.T) {
	r := report.Collect(&unix.Rusage{}, 0, 100)
	require.Zero(t, r.UserCPUSec)
	require.Zero(t, r.TotalCPUSec())
	require.Zero(t, r.MaxRSSKB)
	require.Zero(t, r.CodeKB)
	require.Zero(t, r.DataKB)
	require.Zero(t, r.StackKB)
}

func TestRender(t *testing.T) {
	r := model.UsageReport{
		UserCPUSec: 1,
		SysCPUSec:  2,
		WallSec:    3,
		MaxRSSKB:   2097152,
		CodeKB:     2048,
		DataKB:     1024,
		StackKB:    512,
		FSReads:    7,
		FSWrites:   8,
	}

	var buf bytes.Buffer
	report.Render(&buf, r)

	want := strings.Join([]string{
		"User CPU time (s): 1",
		"System CPU time (s): 2",
		"Total CPU time (s): 3",
		"Total Wall time (s):   3.00",
		"",
		"Maximum memory (KB): 2097152",
		"Maximum memory (MB): 2048",
		"Maximum memory (GB): 2",
		"",
		"Maximum code (KB): 2048",
		"Maximum code (MB): 2",
		"",
		"Maximum data (KB): 1024",
		"Maximum data (MB): 1",
		"",
		"Maximum stack (KB): 512",
		"Maximum stack (MB): 0",
		"",
		"Number of FS Reads : 7",
		"Number of FS Writes: 8",
		"",
	}, "\n")

	require.Equal(t, want, buf.String())
}

func TestRenderZeroReport(t *testing.T) {
	var buf bytes.Buffer
	report.Render(&buf, model.UsageReport{})

	require.Contains(t, buf.String(), "Total Wall time (s):   0.00\n")
	require.Contains(t, buf.String(), "Maximum memory (GB): 0\n")
}

func TestClockTicks(t *testing.T) {
	ticks, err := report.ClockTicks()
	require.NoError(t, err)
	require.Positive(t, ticks)
}
