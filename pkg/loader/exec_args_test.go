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

package loader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/errors/kernelerr"
	"petrel.dev/petrel/pkg/usermem"
)

// buildVector writes bufs into mem starting at dataStart and a vector of
// (address, length) pairs describing them at vecStart. It returns the vector
// address and entry count.
func buildVector(t *testing.T, mem *usermem.BytesIO, vecStart, dataStart usermem.Addr, bufs [][]byte) (usermem.Addr, int) {
	t.Helper()
	data := dataStart
	for i, buf := range bufs {
		if _, err := mem.CopyOut(data, buf); err != nil {
			t.Fatalf("CopyOut buffer %d: %v", i, err)
		}
		var entry [16]byte
		binary.LittleEndian.PutUint64(entry[:8], uint64(data))
		binary.LittleEndian.PutUint64(entry[8:], uint64(len(buf)))
		if _, err := mem.CopyOut(vecStart+usermem.Addr(16*i), entry[:]); err != nil {
			t.Fatalf("CopyOut vector entry %d: %v", i, err)
		}
		data += usermem.Addr(len(buf))
	}
	return vecStart, len(bufs)
}

func TestCollectExecArgsRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		bufs [][]byte
	}{
		{"none", nil},
		{"one", [][]byte{[]byte("init")}},
		{"many", [][]byte{[]byte("/bin/sh"), []byte("-c"), []byte("echo hi"), []byte("TERM=linux")}},
		{"empty buffer", [][]byte{[]byte("a"), {}, []byte("c")}},
		{"embedded zero", [][]byte{{'a', 0, 'b'}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mem := &usermem.BytesIO{Bytes: make([]byte, 4096)}
			vecAddr, count := buildVector(t, mem, 0x100, 0x800, tc.bufs)

			e, err := CollectExecArgs(mem, vecAddr, count)
			if err != nil {
				t.Fatalf("CollectExecArgs failed: %v", err)
			}
			if e.Len() != len(tc.bufs) {
				t.Fatalf("Len: got %d, wanted %d", e.Len(), len(tc.bufs))
			}
			for i, want := range tc.bufs {
				if diff := cmp.Diff(want, e.Arg(i)); diff != "" {
					t.Errorf("buffer %d mismatch (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestCollectExecArgsBadVector(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 64)}
	// The vector itself is out of range.
	if _, err := CollectExecArgs(mem, 0x1000, 2); err != kernelerr.EFAULT {
		t.Errorf("CollectExecArgs: got err %v, wanted %v", err, kernelerr.EFAULT)
	}
}

func TestCollectExecArgsBadBuffer(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 256)}
	// One entry pointing outside the caller's memory.
	var entry [16]byte
	binary.LittleEndian.PutUint64(entry[:8], 0xdead0000)
	binary.LittleEndian.PutUint64(entry[8:], 8)
	if _, err := mem.CopyOut(0, entry[:]); err != nil {
		t.Fatalf("CopyOut: %v", err)
	}
	if _, err := CollectExecArgs(mem, 0, 1); err != kernelerr.EFAULT {
		t.Errorf("CollectExecArgs: got err %v, wanted %v", err, kernelerr.EFAULT)
	}
}

func TestCollectExecArgsTooBig(t *testing.T) {
	mem := &usermem.BytesIO{Bytes: make([]byte, 64)}
	var entry [16]byte
	binary.LittleEndian.PutUint64(entry[:8], 0x20)
	binary.LittleEndian.PutUint64(entry[8:], MaxTotalSize+1)
	if _, err := mem.CopyOut(0, entry[:]); err != nil {
		t.Fatalf("CopyOut: %v", err)
	}
	if _, err := CollectExecArgs(mem, 0, 1); err != kernelerr.E2BIG {
		t.Errorf("CollectExecArgs: got err %v, wanted %v", err, kernelerr.E2BIG)
	}
}

func TestPushOnStackLayout(t *testing.T) {
	bufs := [][]byte{[]byte("first"), {}, []byte("thi\x00rd")}
	var e ExecArgs
	e.Extend(bufs)

	mem := &usermem.BytesIO{Bytes: make([]byte, 256)}
	s := arch.Stack{IO: mem, Bottom: 256}

	tops, err := e.PushOnStack(&s)
	if err != nil {
		t.Fatalf("PushOnStack failed: %v", err)
	}
	if len(tops) != len(bufs) {
		t.Fatalf("got %d addresses, wanted %d", len(tops), len(bufs))
	}

	// Each address, read forward, must yield a zero byte followed by the
	// corresponding buffer's exact bytes.
	for i, top := range tops {
		want := append([]byte{0}, bufs[i]...)
		got := make([]byte, len(want))
		if _, err := mem.CopyIn(top, got); err != nil {
			t.Fatalf("CopyIn at %#x: %v", top, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("entry %d at %#x: got %q, wanted %q", i, top, got, want)
		}
	}

	// Determinism: repeating the layout from the same cursor yields the
	// same relative placement.
	mem2 := &usermem.BytesIO{Bytes: make([]byte, 256)}
	s2 := arch.Stack{IO: mem2, Bottom: 256}
	tops2, err := e.PushOnStack(&s2)
	if err != nil {
		t.Fatalf("PushOnStack failed: %v", err)
	}
	if diff := cmp.Diff(tops, tops2); diff != "" {
		t.Errorf("layout is not deterministic (-first +second):\n%s", diff)
	}
}

func TestPushOnStackOverflow(t *testing.T) {
	var e ExecArgs
	e.Push(bytes.Repeat([]byte{'x'}, 64))

	mem := &usermem.BytesIO{Bytes: make([]byte, 16)}
	s := arch.Stack{IO: mem, Bottom: 16}
	if _, err := e.PushOnStack(&s); err != kernelerr.EFAULT {
		t.Errorf("PushOnStack: got err %v, wanted %v", err, kernelerr.EFAULT)
	}
}

func TestSetupStack(t *testing.T) {
	var args, env ExecArgs
	args.Extend([][]byte{[]byte("/bin/true"), []byte("--fast")})
	env.Push([]byte("PATH=/bin"))

	mem := &usermem.BytesIO{Bytes: make([]byte, 1024)}
	s := arch.Stack{IO: mem, Bottom: 1024}

	l, err := SetupStack(&s, &args, &env)
	if err != nil {
		t.Fatalf("SetupStack failed: %v", err)
	}
	if l.Argc != 2 {
		t.Errorf("Argc: got %d, wanted 2", l.Argc)
	}

	// The final word pushed is argc.
	argc := binary.LittleEndian.Uint64(mem.Bytes[int(s.Bottom):])
	if argc != 2 {
		t.Errorf("argc word: got %d, wanted 2", argc)
	}

	// argv is a null-terminated table of two pointers into the image.
	readTable := func(addr usermem.Addr, n int) []usermem.Addr {
		var out []usermem.Addr
		for i := 0; i <= n; i++ {
			off := int(addr) + 8*i
			out = append(out, usermem.Addr(binary.LittleEndian.Uint64(mem.Bytes[off:off+8])))
		}
		return out
	}
	argv := readTable(l.Argv, 2)
	if argv[2] != 0 {
		t.Errorf("argv table is not null-terminated: %v", argv)
	}
	for i, want := range [][]byte{[]byte("/bin/true"), []byte("--fast")} {
		got := make([]byte, len(want)+1)
		if _, err := mem.CopyIn(argv[i], got); err != nil {
			t.Fatalf("CopyIn argv[%d]: %v", i, err)
		}
		if got[0] != 0 || !bytes.Equal(got[1:], want) {
			t.Errorf("argv[%d]: got %q, wanted zero byte then %q", i, got, want)
		}
	}

	envv := readTable(l.Envv, 1)
	if envv[1] != 0 {
		t.Errorf("envv table is not null-terminated: %v", envv)
	}

	// The pointer tables must sit on a 16-byte aligned region.
	if l.Argv%8 != 0 {
		t.Errorf("argv table not word aligned: %#x", l.Argv)
	}
}
