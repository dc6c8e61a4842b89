package report

import (
	"fmt"
	"io"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"

	"codeberg.org/iklabib/takar/model"
)

// ClockTicks returns the scheduler tick rate, sysconf(_SC_CLK_TCK).
func ClockTicks() (int64, error) {
	ticks, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, fmt.Errorf("Failed to get clock tick rate: %w", err)
	}
	return ticks, nil
}

// Collect flattens a child rusage record into report form. The
// tick-integrated code, data, and stack fields are averaged over the
// user-minus-system CPU seconds; a divisor below one second is clamped to
// one so the division stays defined.
func Collect(ru *unix.Rusage, wallSec float64, ticksPerSecond int64) model.UsageReport {
	divisor := int64(ru.Utime.Sec) - int64(ru.Stime.Sec)
	if divisor < 1 {
		divisor = 1
	}

	// int64 casts matter on 32-bit arches
	return model.UsageReport{
		UserCPUSec: int64(ru.Utime.Sec),
		SysCPUSec:  int64(ru.Stime.Sec),
		WallSec:    wallSec,
		MaxRSSKB:   int64(ru.Maxrss),
		CodeKB:     tickAverageKB(int64(ru.Ixrss), ticksPerSecond, divisor),
		DataKB:     tickAverageKB(int64(ru.Idrss), ticksPerSecond, divisor),
		StackKB:    tickAverageKB(int64(ru.Isrss), ticksPerSecond, divisor),
		FSReads:    int64(ru.Inblock),
		FSWrites:   int64(ru.Oublock),
	}
}

// tickAverageKB converts a KB*ticks quantity into plain KB.
func tickAverageKB(raw, ticksPerSecond, cpuSec int64) int64 {
	return raw / ticksPerSecond / cpuSec
}

// Render writes the usage report in its fixed line order.
func Render(w io.Writer, r model.UsageReport) {
	fmt.Fprintf(w, "User CPU time (s): %d\n", r.UserCPUSec)
	fmt.Fprintf(w, "System CPU time (s): %d\n", r.SysCPUSec)
	fmt.Fprintf(w, "Total CPU time (s): %d\n", r.TotalCPUSec())
	fmt.Fprintf(w, "Total Wall time (s): %6.2f\n", r.WallSec)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Maximum memory (KB): %d\n", r.MaxRSSKB)
	fmt.Fprintf(w, "Maximum memory (MB): %d\n", r.MaxRSSKB/1024)
	fmt.Fprintf(w, "Maximum memory (GB): %d\n", r.MaxRSSKB/1024/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Maximum code (KB): %d\n", r.CodeKB)
	fmt.Fprintf(w, "Maximum code (MB): %d\n", r.CodeKB/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Maximum data (KB): %d\n", r.DataKB)
	fmt.Fprintf(w, "Maximum data (MB): %d\n", r.DataKB/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Maximum stack (KB): %d\n", r.StackKB)
	fmt.Fprintf(w, "Maximum stack (MB): %d\n", r.StackKB/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Number of FS Reads : %d\n", r.FSReads)
	fmt.Fprintf(w, "Number of FS Writes: %d\n", r.FSWrites)
}
