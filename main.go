package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"codeberg.org/iklabib/takar/configs"
	"codeberg.org/iklabib/takar/proc"
	"codeberg.org/iklabib/takar/report"
	"codeberg.org/iklabib/takar/util"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("takar"),
		kong.Description("Run a command and report its time and memory usage."),
	)

	if len(cli.Args) == 0 {
		helpUsage(ctx.Model.Name)
	}

	setupLogger(cli.Verbose)

	var env []string
	var limits configs.Limits
	if cli.Limits != "" {
		var err error
		limits, err = configs.Load(cli.Limits)
		util.Bail(err)
		env = flattenEnvs(limits.Envs)
	}

	child, err := proc.Launch(cli.Args[0], cli.Args[1:], env)
	util.Bail(err)
	slog.Debug("child started", "pid", child.Pid())

	for _, rl := range limits.Rlimits {
		util.Bail(rl.Apply(child.Pid()))
	}

	// the start stamp is taken after the spawn returns, so it slightly
	// lags the actual launch
	start, err := proc.WallClockSec(proc.StageStartClock)
	util.Bail(err)

	exitCode := child.Wait()
	slog.Debug("child finished", "exit_code", exitCode)

	end, err := proc.WallClockSec(proc.StageEndClock)
	util.Bail(err)

	ru, err := proc.ChildrenUsage()
	util.Bail(err)

	ticks, err := report.ClockTicks()
	util.Bail(err)
	slog.Debug("collected usage", "ticks_per_second", ticks)

	report.Render(os.Stdout, report.Collect(ru, float64(end-start), ticks))
}

func helpUsage(name string) {
	util.MessageBail(fmt.Sprintf("usage: %s [flags] <command> [args ...]", name))
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

func flattenEnvs(envs map[string]string) []string {
	if len(envs) == 0 {
		return nil
	}

	flat := make([]string, 0, len(envs))
	for k, v := range envs {
		flat = append(flat, k+"="+v)
	}
	return flat
}

type CLI struct {
	Limits  string   `help:"Apply resource limits from a config file to the command." type:"existingfile"`
	Verbose bool     `short:"v" help:"Log launch stages to stderr."`
	Args    []string `arg:"" optional:"" passthrough:"" name:"command" help:"Command to run and its arguments."`
}
