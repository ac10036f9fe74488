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

package arch

import (
	"bytes"
	"encoding/binary"
	"testing"

	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/usermem"
)

func TestStackPushBytes(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 64)}
	s := Stack{IO: mem, Bottom: 64}

	top, err := s.PushBytes([]byte("hello"))
	if err != nil {
		t.Fatalf("PushBytes failed: %v", err)
	}
	if want := usermem.Addr(59); top != want {
		t.Errorf("top: got %#x, wanted %#x", top, want)
	}
	if s.Bottom != top {
		t.Errorf("Bottom: got %#x, wanted %#x", s.Bottom, top)
	}
	if got, want := mem.Bytes[59:64], []byte("hello"); !bytes.Equal(got, want) {
		t.Errorf("stack contents: got %q, wanted %q", got, want)
	}
}

func TestStackPushAddrs(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 128)}
	s := Stack{IO: mem, Bottom: 128}

	addrs := []usermem.Addr{0x10, 0x20, 0x30}
	table, err := s.PushAddrs(addrs)
	if err != nil {
		t.Fatalf("PushAddrs failed: %v", err)
	}

	// Three entries plus a null terminator.
	for i, want := range []uint64{0x10, 0x20, 0x30, 0} {
		off := int(table) + 8*i
		if got := binary.LittleEndian.Uint64(mem.Bytes[off : off+8]); got != want {
			t.Errorf("table[%d]: got %#x, wanted %#x", i, got, want)
		}
	}
}

func TestStackOverflow(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 4)}
	s := Stack{IO: mem, Bottom: 4}

	if _, err := s.PushBytes([]byte("too much data")); err != kernelerr.EFAULT {
		t.Errorf("PushBytes: got err %v, wanted %v", err, kernelerr.EFAULT)
	}
	if s.Bottom != 4 {
		t.Errorf("Bottom moved on failed push: got %#x, wanted 4", s.Bottom)
	}
}

func TestStackAlign(t *testing.T) {
	s := Stack{Bottom: 0x1007}
	s.Align(16)
	if want := usermem.Addr(0x1000); s.Bottom != want {
		t.Errorf("Bottom: got %#x, wanted %#x", s.Bottom, want)
	}
}

func TestSyscallArgumentConversions(t *testing.T) {
	arg := SyscallArgument{Value: 0xffffffffffffffff}
	if got := arg.Int(); got != -1 {
		t.Errorf("Int: got %v, wanted -1", got)
	}
	if got := arg.Uint(); got != 0xffffffff {
		t.Errorf("Uint: got %#x, wanted 0xffffffff", got)
	}
	if got := arg.Pointer(); got != usermem.Addr(0xffffffffffffffff) {
		t.Errorf("Pointer: got %#x", got)
	}
	if got := (SyscallArgument{Value: 0x11234}).ModeT(); got != 0x1234 {
		t.Errorf("ModeT: got %#x, wanted 0x1234", got)
	}
}
