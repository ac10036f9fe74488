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
	"petrel.dev/petrel/pkg/arch"
	"petrel.dev/petrel/pkg/usermem"
)

// StackLayout records where the argument and environment pointer tables
// were placed on a new process's stack.
type StackLayout struct {
	// Argc is the number of arguments.
	Argc int

	// Argv is the address of the argument pointer table.
	Argv usermem.Addr

	// Envv is the address of the environment pointer table.
	Envv usermem.Addr
}

// SetupStack builds the conventional initial stack image: the environment
// and argument data, a 16-byte alignment gap, the two null-terminated
// pointer tables, and the argument count word at the final stack top.
func SetupStack(stack *arch.Stack, args, env *ExecArgs) (StackLayout, error) {
	var l StackLayout

	envAddrs, err := env.PushOnStack(stack)
	if err != nil {
		return StackLayout{}, err
	}
	argAddrs, err := args.PushOnStack(stack)
	if err != nil {
		return StackLayout{}, err
	}

	stack.Align(16)

	if l.Envv, err = stack.PushAddrs(envAddrs); err != nil {
		return StackLayout{}, err
	}
	if l.Argv, err = stack.PushAddrs(argAddrs); err != nil {
		return StackLayout{}, err
	}
	if _, err = stack.PushUint64(uint64(len(argAddrs))); err != nil {
		return StackLayout{}, err
	}
	l.Argc = len(argAddrs)
	return l, nil
}
