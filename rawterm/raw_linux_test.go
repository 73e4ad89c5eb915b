// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rawterm_test

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/db47h/fastboy/rawterm"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// openPTY returns both ends of a new pseudo terminal.
func openPTY(t *testing.T) (master, slave *os.File) {
	t.Helper()
	m, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("no pseudo terminal available: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	if err := unix.IoctlSetPointerInt(int(m.Fd()), unix.TIOCSPTLCK, 0); err != nil {
		t.Skipf("unlockpt: %v", err)
	}
	n, err := unix.IoctlGetInt(int(m.Fd()), unix.TIOCGPTN)
	if err != nil {
		t.Skipf("ptsname: %v", err)
	}
	// not os.OpenFile: a file registered with the poller is switched back to
	// blocking mode by every call to Fd.
	fd, err := unix.Open("/dev/pts/"+strconv.Itoa(n), unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		t.Skipf("open slave: %v", err)
	}
	s := os.NewFile(uintptr(fd), "/dev/pts/"+strconv.Itoa(n))
	t.Cleanup(func() { s.Close() })
	return m, s
}

type config struct {
	tio   unix.Termios
	flags int
}

func snapshot(t *testing.T, f *os.File) config {
	t.Helper()
	tio, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatal(err)
	}
	flags, err := unix.FcntlInt(f.Fd(), unix.F_GETFL, 0)
	if err != nil {
		t.Fatal(err)
	}
	return config{*tio, flags}
}

func TestAcquireRelease(t *testing.T) {
	master, slave := openPTY(t)
	before := snapshot(t, slave)

	m, err := rawterm.Acquire(slave)
	if err != nil {
		t.Fatal(err)
	}

	raw := snapshot(t, slave)
	if raw.tio.Lflag&(unix.ICANON|unix.ECHO) != 0 {
		t.Errorf("ICANON or ECHO still set: lflag=%#x", raw.tio.Lflag)
	}
	if raw.tio.Cc[unix.VMIN] != 0 || raw.tio.Cc[unix.VTIME] != 0 {
		t.Errorf("expected VMIN=0, VTIME=0, got %d, %d", raw.tio.Cc[unix.VMIN], raw.tio.Cc[unix.VTIME])
	}
	if raw.tio.Lflag&unix.ISIG != before.tio.Lflag&unix.ISIG {
		t.Error("ISIG changed")
	}
	if raw.flags != before.flags {
		t.Errorf("file flags changed: %#x, was %#x", raw.flags, before.flags)
	}

	// nothing typed yet: returns immediately with no key
	start := time.Now()
	if k, ok := m.ReadKey(); ok {
		t.Fatalf("unexpected key %q", k)
	}
	if time.Since(start) > time.Second {
		t.Fatal("ReadKey blocked")
	}

	// a single key, no newline needed
	if _, err := master.Write([]byte("q")); err != nil {
		t.Fatal(err)
	}
	var key byte
	var ok bool
	for deadline := time.Now().Add(2 * time.Second); !ok && time.Now().Before(deadline); {
		if key, ok = m.ReadKey(); !ok {
			time.Sleep(time.Millisecond)
		}
	}
	if !ok || key != 'q' {
		t.Fatalf("expected key 'q', got %q (%v)", key, ok)
	}

	// one Mode per terminal
	if _, err := rawterm.Acquire(slave); errors.Cause(err) != rawterm.ErrBusy {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	if err := m.Release(); err != nil {
		t.Fatal(err)
	}
	if after := snapshot(t, slave); after != before {
		t.Fatalf("terminal not restored:\nbefore %+v\nafter  %+v", before, after)
	}
	// idempotent
	if err := m.Release(); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.ReadKey(); ok {
		t.Fatal("ReadKey succeeded after Release")
	}

	// the terminal can be acquired again
	m2, err := rawterm.Acquire(slave)
	if err != nil {
		t.Fatal(err)
	}
	if err := m2.Release(); err != nil {
		t.Fatal(err)
	}
}

// Output to a terminal held in raw mode keeps blocking. With O_NONBLOCK,
// stopped output (Ctrl-S) would make writes fail with EAGAIN.
func TestAcquire_blockingWrites(t *testing.T) {
	master, slave := openPTY(t)
	m, err := rawterm.Acquire(slave)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()

	if _, err := master.Write([]byte{0x13}); err != nil { // XOFF
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := slave.Write(make([]byte, 1<<16))
		done <- err
	}()
	select {
	case err := <-done:
		t.Fatalf("write returned while output was stopped: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	go func() {
		var b [4096]byte
		for {
			if _, err := master.Read(b[:]); err != nil {
				return
			}
		}
	}()
	if _, err := master.Write([]byte{0x11}); err != nil { // XON
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("write still blocked after XON")
	}
}

// A descriptor that was non-blocking before Acquire stays non-blocking.
func TestRelease_keepsFileFlags(t *testing.T) {
	_, slave := openPTY(t)
	if err := unix.SetNonblock(int(slave.Fd()), true); err != nil {
		t.Fatal(err)
	}
	before := snapshot(t, slave)

	m, err := rawterm.Acquire(slave)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Release(); err != nil {
		t.Fatal(err)
	}
	after := snapshot(t, slave)
	if after.flags&unix.O_NONBLOCK == 0 {
		t.Fatalf("O_NONBLOCK cleared: flags %#x, was %#x", after.flags, before.flags)
	}
}

func TestRelease_onPanic(t *testing.T) {
	_, slave := openPTY(t)
	before := snapshot(t, slave)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic")
			}
		}()
		m, err := rawterm.Acquire(slave)
		if err != nil {
			t.Fatal(err)
		}
		defer m.Release()
		panic("unwind")
	}()

	if after := snapshot(t, slave); after != before {
		t.Fatalf("terminal not restored after panic:\nbefore %+v\nafter  %+v", before, after)
	}
}
