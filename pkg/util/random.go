package util

import (
	"math/rand"
	"strings"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomBase36 returns n random characters from [0-9a-z].
func RandomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}
