// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package session

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/db47h/fastboy/telemetry"
	"github.com/mattn/go-runewidth"
)

const (
	clearHome = "\x1b[2J\x1b[H"
	boxWidth  = 78 // inner width, in terminal cells
)

// screen accumulates a boxed full-screen view.
type screen struct {
	bytes.Buffer
}

func newScreen() *screen {
	sc := new(screen)
	sc.WriteString(clearHome)
	return sc
}

func (sc *screen) printf(format string, args ...interface{}) {
	fmt.Fprintf(sc, format, args...)
}

func (sc *screen) rule(left, right string) {
	sc.WriteString(left + strings.Repeat("═", boxWidth) + right + "\n")
}

func (sc *screen) top()    { sc.rule("╔", "╗") }
func (sc *screen) sep()    { sc.rule("╠", "╣") }
func (sc *screen) bottom() { sc.rule("╚", "╝") }

// line writes a boxed line, padded or truncated to the box width.
func (sc *screen) line(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if runewidth.StringWidth(s) > boxWidth {
		s = runewidth.Truncate(s, boxWidth, "…")
	}
	sc.WriteString("║" + runewidth.FillRight(s, boxWidth) + "║\n")
}

// title writes a centered boxed line.
func (sc *screen) title(s string) {
	pad := (boxWidth - runewidth.StringWidth(s)) / 2
	if pad < 0 {
		pad = 0
	}
	sc.line("%s%s", strings.Repeat(" ", pad), s)
}

func (sc *screen) blank() { sc.line("") }

// prompt ends an unterminated view with an input prompt.
func (sc *screen) prompt(s string) {
	sc.WriteString("║  " + s + ": ")
}

func bootScreen() *screen {
	sc := newScreen()
	sc.top()
	sc.title("🚀 HYBRID CPU BOOT SCREEN 🚀")
	sc.blank()
	sc.title("RISC-V + x86 HYBRID PROCESSOR")
	sc.blank()
	sc.line("  CPU: Custom Hybrid RISC-V + x86")
	sc.line("  Architecture: RV64GC + x86-64")
	sc.line("  Mode: Native Dual-Instruction Set")
	sc.blank()
	sc.line("  Initializing system...")
	sc.blank()
	sc.bottom()
	return sc
}

func menuScreen() *screen {
	sc := newScreen()
	sc.top()
	sc.title("🖥️  OS SELECTION MENU 🖥️")
	sc.sep()
	sc.blank()
	sc.line("  Please select an operating system to boot:")
	sc.blank()
	sc.line("  [1] 🟢 RISC-V OS")
	sc.line("       • RV64GC compatible")
	sc.line("       • Linux/Unix applications")
	sc.line("       • System management")
	sc.blank()
	sc.line("  [2] 🔵 x86 OS")
	sc.line("       • x86-64 compatible")
	sc.line("       • Windows applications")
	sc.line("       • Legacy software support")
	sc.blank()
	sc.line("  [Q] Quit")
	sc.blank()
	sc.prompt("Your choice")
	return sc
}

func loadLine(load int) string {
	return fmt.Sprintf("    CPU Load: [%s] %3d%%", telemetry.LoadBar(load), load)
}

func (sc *screen) commands(name string) {
	sc.blank()
	sc.line("  Available Commands:")
	sc.line("    [S] Shutdown %s", name)
	sc.line("    [Q] Quit Simulator")
	sc.blank()
	sc.prompt("Command")
}

func riscvScreen(f telemetry.RiscvFrame) *screen {
	sc := newScreen()
	sc.top()
	sc.title("🟢 RISC-V OS - RV64GC 🟢")
	sc.sep()
	sc.blank()
	sc.line("  CPU Status: [RUNNING]%26sCycle: %10d", "", f.Cycle)
	sc.line("    Mode: RISC-V (RV64GC) - 64-bit RISC-V Core")
	sc.line("    PC: 0x%016x", f.PC)
	sc.line("    X1 (ra): 0x%016x", f.X1)
	sc.line("    X2 (sp): 0x%016x", f.X2)
	sc.line("    X3 (gp): 0x%016x", f.X3)
	sc.line("    Instruction: %08x     Type: %s", f.Instr, f.Type)
	sc.line("%s", loadLine(f.Load))
	sc.blank()
	sc.line("  Performance Metrics:")
	sc.line("    IPC: %s    Clock: %4dMHz    Cache Hit: %d%%", f.IPC, f.ClockMHz, f.CacheHit)
	sc.commands(RiscvConsole.os())
	return sc
}

func x86Screen(f telemetry.X86Frame) *screen {
	r := &f.Regs
	sc := newScreen()
	sc.top()
	sc.title("🔵 x86 OS - x86-64 🔵")
	sc.sep()
	sc.blank()
	sc.line("  CPU Status: [RUNNING]%26sCycle: %10d", "", f.Cycle)
	sc.line("    Mode: x86-64 (Long Mode) - Intel/AMD Compatible")
	sc.line("    RIP: 0x%016x", r.RIP)
	sc.line("    RAX: 0x%016x", r.RAX)
	sc.line("    RCX: 0x%016x", r.RCX)
	sc.line("    RDX: 0x%016x", r.RDX)
	sc.line("    RFLAGS: 0x%016x   [%s]", r.RFLAGS, f.Flags)
	sc.line("    Current Instr: %-20s", f.Mnemonic)
	sc.line("%s", loadLine(f.Load))
	sc.blank()
	sc.line("  Performance Metrics:")
	sc.line("    IPC: %s    Clock: %4dMHz    Cache Hit: %d%%", f.IPC, f.ClockMHz, f.CacheHit)
	sc.line("    Branch Pred: %d%%    TLB Hit: %d%%    Temp: %d°C", f.BranchPred, f.TLBHit, f.TempC)
	sc.commands(X86Console.os())
	return sc
}
