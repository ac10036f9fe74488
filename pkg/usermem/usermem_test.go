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

package usermem

import (
	"bytes"
	"testing"

	"petrel.dev/petrel/pkg/errors/kernelerr"
)

func newBytesIOString(s string) *BytesIO {
	return &BytesIO{[]byte(s)}
}

func TestBytesIOCopyOutSuccess(t *testing.T) {
	b := newBytesIOString("ABCDE")
	n, err := b.CopyOut(1, []byte("foo"))
	if wantN := 3; n != wantN || err != nil {
		t.Errorf("CopyOut: got (%v, %v), wanted (%v, nil)", n, err, wantN)
	}
	if got, want := b.Bytes, []byte("AfooE"); !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %q, wanted %q", got, want)
	}
}

func TestBytesIOCopyOutFailure(t *testing.T) {
	b := newBytesIOString("ABC")
	n, err := b.CopyOut(1, []byte("foo"))
	if wantN, wantErr := 2, kernelerr.EFAULT; n != wantN || err != wantErr {
		t.Errorf("CopyOut: got (%v, %v), wanted (%v, %v)", n, err, wantN, wantErr)
	}
	if got, want := b.Bytes, []byte("Afo"); !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %q, wanted %q", got, want)
	}
}

func TestBytesIOCopyInSuccess(t *testing.T) {
	b := newBytesIOString("AfooE")
	var dst [3]byte
	n, err := b.CopyIn(1, dst[:])
	if wantN := 3; n != wantN || err != nil {
		t.Errorf("CopyIn: got (%v, %v), wanted (%v, nil)", n, err, wantN)
	}
	if got, want := dst[:], []byte("foo"); !bytes.Equal(got, want) {
		t.Errorf("dst: got %q, wanted %q", got, want)
	}
}

func TestBytesIOCopyInFailure(t *testing.T) {
	b := newBytesIOString("Afo")
	var dst [3]byte
	n, err := b.CopyIn(1, dst[:])
	if wantN, wantErr := 2, kernelerr.EFAULT; n != wantN || err != wantErr {
		t.Errorf("CopyIn: got (%v, %v), wanted (%v, %v)", n, err, wantN, wantErr)
	}
	if got, want := dst[:], []byte("fo\x00"); !bytes.Equal(got, want) {
		t.Errorf("dst: got %q, wanted %q", got, want)
	}
}

func TestBytesIOZeroOutSuccess(t *testing.T) {
	b := newBytesIOString("ABCD")
	n, err := b.ZeroOut(1, 2)
	if wantN := int64(2); n != wantN || err != nil {
		t.Errorf("ZeroOut: got (%v, %v), wanted (%v, nil)", n, err, wantN)
	}
	if got, want := b.Bytes, []byte("A\x00\x00D"); !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %q, wanted %q", got, want)
	}
}

func TestBytesIOZeroOutFailure(t *testing.T) {
	b := newBytesIOString("ABC")
	n, err := b.ZeroOut(1, 3)
	if wantN, wantErr := int64(2), kernelerr.EFAULT; n != wantN || err != wantErr {
		t.Errorf("ZeroOut: got (%v, %v), wanted (%v, %v)", n, err, wantN, wantErr)
	}
	if got, want := b.Bytes, []byte("A\x00\x00"); !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %q, wanted %q", got, want)
	}
}

func TestBytesIOCopyOutOffEnd(t *testing.T) {
	b := newBytesIOString("ABC")
	n, err := b.CopyOut(5, []byte("foo"))
	if wantN, wantErr := 0, kernelerr.EFAULT; n != wantN || err != wantErr {
		t.Errorf("CopyOut: got (%v, %v), wanted (%v, %v)", n, err, wantN, wantErr)
	}
}

func TestCopyInBytesAllOrNothing(t *testing.T) {
	b := newBytesIOString("ABC")
	if _, err := CopyInBytes(b, 1, 5); err != kernelerr.EFAULT {
		t.Errorf("CopyInBytes: got err %v, wanted %v", err, kernelerr.EFAULT)
	}
	got, err := CopyInBytes(b, 1, 2)
	if err != nil {
		t.Fatalf("CopyInBytes: got err %v, wanted nil", err)
	}
	if want := []byte("BC"); !bytes.Equal(got, want) {
		t.Errorf("CopyInBytes: got %q, wanted %q", got, want)
	}
}

func TestAddrAddLengthOverflow(t *testing.T) {
	addr := Addr(^uintptr(0) - 1)
	if _, ok := addr.AddLength(16); ok {
		t.Errorf("AddLength: got ok, wanted overflow")
	}
	if _, ok := Addr(0x1000).AddLength(16); !ok {
		t.Errorf("AddLength: got overflow, wanted ok")
	}
}

func TestAddrRangeOverlaps(t *testing.T) {
	ar := AddrRange{0x1000, 0x1010}
	for _, tc := range []struct {
		other AddrRange
		want  bool
	}{
		{AddrRange{0x1008, 0x1018}, true},
		{AddrRange{0x1010, 0x1020}, false},
		{AddrRange{0xff0, 0x1001}, true},
		{AddrRange{0x1000, 0x1000}, false}, // empty
	} {
		if got := ar.Overlaps(tc.other); got != tc.want {
			t.Errorf("%v.Overlaps(%v): got %v, wanted %v", ar, tc.other, got, tc.want)
		}
	}
}
