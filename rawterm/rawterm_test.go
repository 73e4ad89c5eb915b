// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rawterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/fastboy/rawterm"
	"github.com/pkg/errors"
)

func TestAcquire_notTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	m, err := rawterm.Acquire(f)
	if err == nil {
		m.Release()
		t.Fatal("expected an error for a regular file")
	}
	te, ok := err.(*rawterm.TerminalError)
	if !ok {
		t.Fatalf("expected a *TerminalError, got %T", err)
	}
	if te.Op != "acquire" || errors.Cause(err) != rawterm.ErrNotTerminal {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTerminalError(t *testing.T) {
	err := &rawterm.TerminalError{Op: "release", Err: errors.New("boom")}
	if s := err.Error(); s != "rawterm: release: boom" {
		t.Fatalf("unexpected message %q", s)
	}
}
