// Command nesemu runs 6502 machine code: an iNES cartridge image given as
// the positional argument, or a small built-in test program when none is.
// Exits 0 on clean shutdown, 1 when the core jams or faults.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"nesemu/cpu"
	"nesemu/mem"
	"nesemu/rom"
)

// defaultProgram multiplies 10 by 3 and parks the result in page zero;
// enough to watch the core run without a cartridge.
const defaultProgram = "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"

func main() {
	app := &cli.App{
		Name:      "nesemu",
		Usage:     "NES 2A03 (6502) CPU emulator",
		ArgsUsage: "[rom.nes]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "write a nestest-style trace line per instruction to stderr",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "single-step interactively in a TUI",
			},
			&cli.StringFlag{
				Name:    "entry",
				Aliases: []string{"e"},
				Usage:   "override the start address (hex, e.g. C000)",
			},
			&cli.BoolFlag{
				Name:  "dump-on-halt",
				Usage: "write a 64 kB memory snapshot when the core jams or faults",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	bus := &mem.Bus{}
	c := cpu.New(bus)

	var entry uint16 = 0x8000
	if path := ctx.Args().First(); path != "" {
		r, err := rom.Load(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		r.MapInto(bus)
		entry = r.Entry(bus)
	} else {
		c.LoadProgram(defaultProgram, 0x8000)
	}

	if s := ctx.String("entry"); s != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
		if err != nil {
			return cli.Exit(fmt.Sprintf("bad entry address %q: %v", s, err), 1)
		}
		entry = uint16(v)
	}
	c.PC = entry

	if ctx.Bool("trace") {
		c.Trace = os.Stderr
	}

	if ctx.Bool("debug") {
		if err := c.Debug("", 0); err != nil {
			return exitState(ctx, bus, c, err)
		}
		return nil
	}

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	c.Run(sig)

	if c.State != cpu.Running {
		return exitState(ctx, bus, c, c.Err)
	}
	return nil // interrupted by the host: clean shutdown
}

// exitState turns a terminal core state into the process exit, writing the
// post-mortem snapshot first when asked. The dump names follow the
// original tooling: JAMMED.bin for a jam, UNKNOWN.bin for a fault.
func exitState(ctx *cli.Context, bus *mem.Bus, c *cpu.Cpu, err error) error {
	if ctx.Bool("dump-on-halt") {
		name := "UNKNOWN.bin"
		if c.State == cpu.Halted {
			name = "JAMMED.bin"
		}
		if derr := bus.DumpToFile(name); derr != nil {
			fmt.Fprintln(os.Stderr, "dump failed:", derr)
		} else {
			fmt.Fprintln(os.Stderr, "memory dumped to", name)
		}
	}
	if err == nil {
		return nil
	}
	return cli.Exit(fmt.Sprintf("%s: %v", c.State, err), 1)
}
