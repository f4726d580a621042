// Package conv formats integers into caller-owned buffers, so MCU builds can
// print numbers without fmt or strconv.
package conv

// Utoa writes n in base 10 at the end of buf and returns the used tail.
// A 20-byte buffer holds any uint64; shorter buffers keep the low digits.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 || i == 0 {
			return buf[i:]
		}
	}
}

// Itoa is Utoa with a leading '-' for negative n.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	if len(buf) < 2 {
		return buf[:0]
	}
	digits := Utoa(buf[1:], uint64(-(n+1))+1)
	start := len(buf) - len(digits) - 1
	buf[start] = '-'
	return buf[start:]
}
