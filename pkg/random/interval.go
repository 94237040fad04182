package random

import (
	"fmt"
	"strings"
)

// Interval определяет, входит ли 1.0 в множество возвращаемых значений.
type Interval int

const (
	// Closed интервал [0, 1]: raw делится на 2^32-1.
	Closed Interval = iota
	// HalfOpen интервал [0, 1): raw делится на 2^32.
	HalfOpen
)

func (iv Interval) String() string {
	switch iv {
	case Closed:
		return "closed"
	case HalfOpen:
		return "half-open"
	default:
		return fmt.Sprintf("Interval(%d)", int(iv))
	}
}

// ParseInterval разбирает название интервала без учёта регистра и пробелов по краям.
// Пустая строка означает Closed.
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "closed":
		return Closed, nil
	case "half-open", "halfopen":
		return HalfOpen, nil
	default:
		return Closed, fmt.Errorf("unknown interval %q (want closed or half-open)", s)
	}
}
