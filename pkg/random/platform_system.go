//go:build darwin || dragonfly || freebsd || netbsd || openbsd || windows

package random

// На macOS, BSD и Windows системная библиотека всегда доступна и не требует дескрипторов.
const platformKind = KindSystem
