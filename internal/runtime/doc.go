// SPDX-License-Identifier: MPL-2.0

// Package runtime starts the target program as a child process.
//
// The launcher hands a fully resolved Command (absolute program path, argument
// vector, explicit environment block) to a Runner. NativeRuntime is the only
// production Runner: it uses os/exec directly, never a shell, so forwarded
// arguments keep their exact bytes. The environment helpers in env.go edit a
// copy of an environ slice and never touch the parent process environment.
package runtime
