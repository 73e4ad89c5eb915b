// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package session implements the interactive full-screen console.
//
// A Session boots, shows an OS selection menu and runs one of two console
// views. Each console frame advances the device by a few clock cycles and
// shows synthetic telemetry derived from a frame counter. Commands are single
// keys read without blocking:
//
//	menu:     1 RISC-V console, 2 x86 console, q quit
//	consoles: s back to the menu, q quit
//
// Every screen is a full redraw, preceded by a clear and cursor home.
package session

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/db47h/fastboy"
	"github.com/db47h/fastboy/telemetry"
	"github.com/pkg/errors"
)

// A Keyboard returns the next pending key, if any, without blocking.
type Keyboard interface {
	ReadKey() (byte, bool)
}

// Session is an interactive console session. A Session is not safe for
// concurrent use.
type Session struct {
	d   fastboy.Device
	kb  Keyboard
	out io.Writer
	cfg Config
	log *log.Logger

	state   State
	running bool
	entered bool // entry action of the current state done
	err     error

	frames telemetry.Counter
	seed   telemetry.RiscvSeed
	x86    telemetry.X86Regs
}

// New returns a new session in the Boot state. The device must have been
// reset. If l is nil, nothing is logged.
func New(d fastboy.Device, kb Keyboard, out io.Writer, cfg Config, l *log.Logger) *Session {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Session{
		d:       d,
		kb:      kb,
		out:     out,
		cfg:     cfg,
		log:     l,
		state:   Boot,
		running: true,
		x86:     telemetry.InitialX86(),
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Counter returns the number of console frames shown so far.
func (s *Session) Counter() uint64 { return s.frames.Value() }

// Run runs the session until it terminates, either on a quit command, on
// cancellation of ctx or if writing to the output fails. Only the latter is
// reported as an error.
func (s *Session) Run(ctx context.Context) error {
	for s.state != Terminating {
		s.Step(ctx)
	}
	return s.err
}

// Step runs a single iteration of the session loop. It does nothing once the
// session is terminated.
func (s *Session) Step(ctx context.Context) {
	if ctx.Err() != nil && s.running {
		s.log.Print("session cancelled")
		s.running = false
	}
	if !s.running {
		s.setState(Terminating)
		return
	}
	switch s.state {
	case Boot:
		s.boot(ctx)
	case MenuSelect:
		s.menu(ctx)
	case RiscvConsole, X86Console:
		s.console(ctx)
	}
	if !s.running {
		s.setState(Terminating)
	}
}

func (s *Session) boot(ctx context.Context) {
	if !s.entered {
		s.entered = true
		s.render(bootScreen())
		for i := 1; i <= s.cfg.BootSteps && ctx.Err() == nil; i++ {
			s.printf("  Booting... %d%%\n", i*100/s.cfg.BootSteps)
			s.sleep(ctx, s.cfg.BootStepDelay)
		}
		s.printf("  System ready! Press any key to continue...\n")
	}
	if _, ok := s.key(ctx); ok {
		s.setState(MenuSelect)
		return
	}
	s.sleep(ctx, s.cfg.KeyPollDelay)
}

func (s *Session) menu(ctx context.Context) {
	s.render(menuScreen())
	k, ok := s.key(ctx)
	if !ok {
		s.sleep(ctx, s.cfg.MenuIdleDelay)
		return
	}
	switch k {
	case '1':
		s.load(ctx, RiscvConsole)
	case '2':
		s.load(ctx, X86Console)
	case 'q', 'Q':
		s.running = false
	}
}

func (s *Session) load(ctx context.Context, to State) {
	s.printf("  Loading %s...\n", to.os())
	s.sleep(ctx, s.cfg.LoadDelay)
	s.setState(to)
}

func (s *Session) console(ctx context.Context) {
	if !s.entered {
		s.entered = true
		s.seed = telemetry.RiscvSeed{Reg: s.d.RegOut(), PC: s.d.PC(), Instr: s.d.DebugInstr()}
		s.log.Printf("%s seed: pc=%#x reg=%#x instr=%#x", s.state.os(), s.seed.PC, s.seed.Reg, s.seed.Instr)
		s.printf("  %s loaded successfully!\n", s.state.os())
		s.sleep(ctx, s.cfg.LoadDelay)
	}

	fastboy.Pulse(s.d, s.cfg.FrameCycles)
	c := s.frames.Next()
	if s.state == RiscvConsole {
		s.render(riscvScreen(telemetry.Riscv(s.seed, c)))
	} else {
		f := telemetry.X86(s.x86, c)
		s.x86 = f.Regs
		s.render(x86Screen(f))
	}

	k, ok := s.key(ctx)
	switch {
	case ok && (k == 's' || k == 'S'):
		s.printf("  Shutting down %s...\n", s.state.os())
		s.sleep(ctx, s.cfg.ShutdownDelay)
		s.setState(MenuSelect)
	case ok && (k == 'q' || k == 'Q'):
		s.running = false
	case ok:
		s.sleep(ctx, s.cfg.IdleDelay)
	}
}

// key polls the keyboard once. When no key is pending, it pauses for the idle
// delay before returning.
func (s *Session) key(ctx context.Context) (byte, bool) {
	k, ok := s.kb.ReadKey()
	if !ok {
		s.sleep(ctx, s.cfg.IdleDelay)
	}
	return k, ok
}

func (s *Session) setState(to State) {
	if to == s.state {
		return
	}
	s.log.Printf("%v -> %v (frame %d)", s.state, to, s.frames.Value())
	s.state = to
	s.entered = false
}

// render writes a full screen in a single write.
func (s *Session) render(sc *screen) {
	s.write(sc.Bytes())
}

func (s *Session) printf(format string, args ...interface{}) {
	var sc screen
	sc.printf(format, args...)
	s.write(sc.Bytes())
}

func (s *Session) write(b []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.out.Write(b); err != nil {
		s.err = errors.Wrap(err, "write to terminal")
		s.log.Print(s.err)
		s.running = false
	}
}

func (s *Session) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
