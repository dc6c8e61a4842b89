package rlimit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	RLIMIT_AS     = "RLIMIT_AS"
	RLIMIT_CPU    = "RLIMIT_CPU"
	RLIMIT_CORE   = "RLIMIT_CORE"
	RLIMIT_DATA   = "RLIMIT_DATA"
	RLIMIT_FSIZE  = "RLIMIT_FSIZE"
	RLIMIT_NOFILE = "RLIMIT_NOFILE"
	RLIMIT_STACK  = "RLIMIT_STACK"
)

type Rlimit struct {
	Resource string `config:"resource" yaml:"resource" json:"resource"`
	Soft     uint64 `config:"soft" yaml:"soft" json:"soft"`
	Hard     uint64 `config:"hard" yaml:"hard" json:"hard"`
}

// Apply sets the limit on an already running process via prlimit(2).
// A pid of zero targets the calling process.
func (rl Rlimit) Apply(pid int) error {
	resource := -1
	switch rl.Resource {
	case RLIMIT_AS:
		resource = unix.RLIMIT_AS
	case RLIMIT_CPU:
		resource = unix.RLIMIT_CPU
	case RLIMIT_CORE:
		resource = unix.RLIMIT_CORE
	case RLIMIT_DATA:
		resource = unix.RLIMIT_DATA
	case RLIMIT_FSIZE:
		resource = unix.RLIMIT_FSIZE
	case RLIMIT_NOFILE:
		resource = unix.RLIMIT_NOFILE
	case RLIMIT_STACK:
		resource = unix.RLIMIT_STACK
	default:
		return fmt.Errorf("unknown rlimit resource option '%s'", rl.Resource)
	}

	limit := unix.Rlimit{Cur: rl.Soft, Max: rl.Hard}
	return unix.Prlimit(pid, resource, &limit, nil)
}
