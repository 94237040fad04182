//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package random

const platformKind = KindDevice
