// Copyright 2025 The Petrel Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strace

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"petrel.dev/petrel/pkg/abi/sysno"
	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/log"
)

type testEmitter struct {
	levels []log.Level
	lines  []string
}

func (e *testEmitter) Emit(_ int, level log.Level, _ time.Time, format string, v ...any) {
	e.levels = append(e.levels, level)
	e.lines = append(e.lines, fmt.Sprintf(format, v...))
}

// capture redirects the global log to a fresh emitter for one test.
func capture(t *testing.T) *testEmitter {
	t.Helper()
	old := log.Log()
	e := &testEmitter{}
	log.SetTarget(e)
	log.SetLevel(log.Debug)
	t.Cleanup(func() {
		log.SetTarget(old)
		log.SetLevel(old.Level)
	})
	return e
}

func TestDoneSuccess(t *testing.T) {
	e := capture(t)

	NewRecord("X").Done(0, nil)

	if len(e.lines) != 1 {
		t.Fatalf("emitted %d lines, wanted 1: %v", len(e.lines), e.lines)
	}
	want := "\x1b[1;32mX\x1b[0m() = 0x0"
	if e.lines[0] != want {
		t.Errorf("line: got %q, wanted %q", e.lines[0], want)
	}
	if e.levels[0] != log.Debug {
		t.Errorf("level: got %v, wanted %v", e.levels[0], log.Debug)
	}
}

func TestDoneError(t *testing.T) {
	e := capture(t)

	NewRecord("open").Str("/etc/passwd").Done(0, kernelerr.EACCES)

	// One trace line plus exactly one stack dump.
	if len(e.lines) != 2 {
		t.Fatalf("emitted %d lines, wanted 2: %v", len(e.lines), e.lines)
	}
	if !strings.HasPrefix(e.lines[0], "\x1b[1;31mopen\x1b[0m(\"/etc/passwd\") = 0x0 errno=13") {
		t.Errorf("trace line: got %q", e.lines[0])
	}
	if e.levels[0] != log.Debug {
		t.Errorf("trace level: got %v, wanted %v", e.levels[0], log.Debug)
	}
	if !strings.Contains(e.lines[1], "goroutine") {
		t.Errorf("expected a stack dump, got %q", e.lines[1])
	}
}

func TestArgsRenderedEagerly(t *testing.T) {
	e := capture(t)

	v := []byte("before")
	r := NewRecord("write").Arg(string(v))
	copy(v, []byte("AFTER!"))
	r.Done(6, nil)

	if !strings.Contains(e.lines[0], "before") {
		t.Errorf("argument was not rendered at append time: %q", e.lines[0])
	}
}

func TestSyscallMapFormatting(t *testing.T) {
	e := capture(t)

	args := arch.SyscallArguments{{Value: 0x1000}, {Value: 16}}
	ctx := Petrel.SyscallEnter(nil, sysno.Log, args)
	Petrel.SyscallExit(ctx, nil, sysno.Log, 0, nil)

	if len(e.lines) != 1 {
		t.Fatalf("emitted %d lines, wanted 1: %v", len(e.lines), e.lines)
	}
	want := "\x1b[1;32mlog\x1b[0m(0x1000, 16) = 0x0"
	if e.lines[0] != want {
		t.Errorf("line: got %q, wanted %q", e.lines[0], want)
	}
}

func TestSyscallMapUnknownName(t *testing.T) {
	if got, want := Petrel.Name(0x7777), "syscall_30583"; got != want {
		t.Errorf("Name: got %q, wanted %q", got, want)
	}
	if got, want := Petrel.Name(sysno.Getpid), "getpid"; got != want {
		t.Errorf("Name: got %q, wanted %q", got, want)
	}
}
