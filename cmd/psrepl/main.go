// psrepl - an interactive line-mode monitor for the paired-single core
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gekkocore/psfpu"
)

type stdioRW struct {
	io.Reader
	io.Writer
}

func main() {
	batch := flag.String("e", "", "Run one command non-interactively and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psrepl [options]\n\nInteractive monitor for the paired-single FPU core.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  reg FRn                    show one register\n")
		fmt.Fprintf(os.Stderr, "  regs                       show all 32 registers\n")
		fmt.Fprintf(os.Stderr, "  set FRn p0 p1              write both lanes of FRn\n")
		fmt.Fprintf(os.Stderr, "  exec mnemonic d a b c      run one instruction, rc unset\n")
		fmt.Fprintf(os.Stderr, "  fpscr                      show the status/control register\n")
		fmt.Fprintf(os.Stderr, "  list                       list every registered mnemonic\n")
		fmt.Fprintf(os.Stderr, "  quit                       exit\n")
	}
	flag.Parse()

	core := ps.NewDebugPSCore(ps.NewThreadState())

	if *batch != "" {
		runCommand(core, *batch, os.Stdout)
		return
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		scanLines(core, os.Stdin, os.Stdout)
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psrepl: failed to set raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(stdioRW{os.Stdin, os.Stdout}, "psrepl> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		if strings.TrimSpace(line) == "quit" {
			return
		}
		runCommand(core, line, t)
	}
}

func scanLines(core *ps.DebugPSCore, in io.Reader, out io.Writer) {
	buf := make([]byte, 0, 256)
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				line := string(buf)
				buf = buf[:0]
				if strings.TrimSpace(line) == "quit" {
					return
				}
				runCommand(core, line, out)
				continue
			}
			buf = append(buf, b[0])
		}
		if err != nil {
			return
		}
	}
}

func runCommand(core *ps.DebugPSCore, line string, out io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "regs":
		for _, r := range core.Registers() {
			fmt.Fprintf(out, "%-4s ps0=%v ps1=%v\n", r.Name, r.Paired0, r.Paired1)
		}
	case "reg":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: reg FRn")
			return
		}
		r, ok := core.Register(fields[1])
		if !ok {
			fmt.Fprintf(out, "no such register %q\n", fields[1])
			return
		}
		fmt.Fprintf(out, "%-4s ps0=%v ps1=%v\n", r.Name, r.Paired0, r.Paired1)
	case "set":
		if len(fields) != 4 {
			fmt.Fprintln(out, "usage: set FRn p0 p1")
			return
		}
		p0, err0 := strconv.ParseFloat(fields[2], 64)
		p1, err1 := strconv.ParseFloat(fields[3], 32)
		if err0 != nil || err1 != nil {
			fmt.Fprintln(out, "could not parse lane values")
			return
		}
		if !core.SetRegister(fields[1], p0, float32(p1)) {
			fmt.Fprintf(out, "no such register %q\n", fields[1])
		}
	case "fpscr":
		f := core.FPSCR()
		fmt.Fprintf(out, "value=0x%08x fprf=0x%02x fx=%v fex=%v vx=%v ox=%v ux=%v zx=%v xx=%v\n",
			f.Value(), f.Fprf, f.Fx, f.Fex, f.Vx, f.Ox, f.Ux, f.Zx, f.Xx)
	case "list":
		for _, name := range core.Mnemonics() {
			fmt.Fprintln(out, name)
		}
	case "exec":
		if len(fields) != 6 {
			fmt.Fprintln(out, "usage: exec mnemonic d a b c")
			return
		}
		d, errD := strconv.Atoi(fields[2])
		a, errA := strconv.Atoi(fields[3])
		b, errB := strconv.Atoi(fields[4])
		c, errC := strconv.Atoi(fields[5])
		if errD != nil || errA != nil || errB != nil || errC != nil {
			fmt.Fprintln(out, "register indices must be 0..31")
			return
		}
		instr := ps.Instruction{FrD: uint8(d), FrA: uint8(a), FrB: uint8(b), FrC: uint8(c)}
		if !core.Step(fields[1], instr) {
			fmt.Fprintf(out, "unrecognized mnemonic %q\n", fields[1])
		}
	default:
		fmt.Fprintf(out, "unrecognized command %q (try: regs, reg, set, exec, fpscr, list, quit)\n", fields[0])
	}
}
