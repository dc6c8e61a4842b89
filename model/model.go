package model

// UsageReport is the flat accounting record for one finished child process.
// The code, data, and stack figures are averages derived from the kernel's
// tick-integrated rusage fields and may be zero on kernels that do not
// populate them.
type UsageReport struct {
	UserCPUSec int64
	SysCPUSec  int64
	WallSec    float64
	MaxRSSKB   int64
	CodeKB     int64
	DataKB     int64
	StackKB    int64
	FSReads    int64
	FSWrites   int64
}

func (r UsageReport) TotalCPUSec() int64 {
	return r.UserCPUSec + r.SysCPUSec
}
