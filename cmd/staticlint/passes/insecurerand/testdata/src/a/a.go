package a

import (
	"math/rand" // want "import of math/rand: use pkg/random for cryptographically secure values"
)

func Value() float64 {
	return rand.Float64()
}
