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

// Package usermem governs access to unprivileged memory.
//
// Every transfer between kernel-owned storage and a caller-supplied address
// goes through the IO interface; it is the single place where addresses are
// validated, so nothing above it ever touches a raw address directly.
package usermem

// IO provides access to the memory of an unprivileged caller.
type IO interface {
	// CopyIn copies len(dst) bytes from the caller's memory at addr to
	// dst. It returns the number of bytes copied. If the range is not
	// entirely accessible, it copies the accessible prefix and returns
	// EFAULT.
	CopyIn(addr Addr, dst []byte) (int, error)

	// CopyOut copies len(src) bytes from src to the caller's memory at
	// addr. It returns the number of bytes copied. If the range is not
	// entirely accessible, it copies to the accessible prefix and
	// returns EFAULT.
	CopyOut(addr Addr, src []byte) (int, error)

	// ZeroOut sets toZero bytes to 0 in the caller's memory at addr. It
	// returns the number of bytes zeroed. If the range is not entirely
	// accessible, it zeroes the accessible prefix and returns EFAULT.
	ZeroOut(addr Addr, toZero int64) (int64, error)
}

// CopyInBytes returns a kernel-owned copy of length bytes starting at addr.
// Unlike IO.CopyIn, it is all-or-nothing: a partially accessible range
// returns only the error.
func CopyInBytes(uio IO, addr Addr, length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := uio.CopyIn(addr, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CopyOutBytes writes src to the caller's memory at addr, all-or-nothing.
func CopyOutBytes(uio IO, addr Addr, src []byte) error {
	_, err := uio.CopyOut(addr, src)
	return err
}
