//go:build linux

package random

const platformKind = KindSyscall
