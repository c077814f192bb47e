// builtins_random.go
//
// Random-value built-ins (§4.6). No RNG or UUID library appears anywhere in
// the retrieved pack, so random and randomUUID fall back to crypto/rand —
// justified because a script-visible "random" needs a real entropy source,
// not math/rand's default seeding, and there is nothing in the pack to wire
// here instead.
package kodiscript

import (
	"crypto/rand"
	"encoding/binary"
)

func registerRandomBuiltins(register func(string, BuiltinFunc)) {
	register("random", func(args []Value, _ Applier) (Value, error) {
		return Number(randomFloatFn()), nil
	})
	register("randomInt", func(args []Value, _ Applier) (Value, error) {
		lo := int64(toNumber(arg(args, 0)))
		hi := int64(toNumber(arg(args, 1)))
		if hi <= lo {
			return Number(float64(lo)), nil
		}
		// +1 makes hi reachable: randomFloat is confined to [0, 1), so
		// without it the span's top value (hi) could never be drawn.
		span := hi - lo + 1
		return Number(float64(lo + int64(randomFloatFn()*float64(span)))), nil
	})
	register("randomUUID", func(args []Value, _ Applier) (Value, error) {
		return Str(randomUUID()), nil
	})
}

// randomFloatFn is a var so tests can stub the entropy source without
// relying on statistical sampling, matching the timeNow seam in limits.go.
var randomFloatFn = randomFloat

func randomFloat() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// 53 bits of entropy mapped into [0, 1), matching float64's mantissa.
	n := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// randomUUID produces a version-4 UUID per RFC 4122.
func randomUUID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "00000000-0000-4000-8000-000000000000"
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return formatUUID(b)
}

func formatUUID(b [16]byte) string {
	const hex = "0123456789abcdef"
	buf := make([]byte, 36)
	groups := []int{4, 2, 2, 2, 6}
	idx := 0
	pos := 0
	for gi, g := range groups {
		if gi > 0 {
			buf[pos] = '-'
			pos++
		}
		for i := 0; i < g; i++ {
			buf[pos] = hex[b[idx]>>4]
			buf[pos+1] = hex[b[idx]&0x0f]
			pos += 2
			idx++
		}
	}
	return string(buf)
}
