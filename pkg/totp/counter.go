package totp

import (
	"encoding/binary"
	"time"
)

// EncodeCounter returns the 8-byte big-endian form of counter (RFC 4226 §5).
func EncodeCounter(counter uint64) [8]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	return buf
}

// CounterAt returns the period index containing t shifted by window periods.
// Division floors for times before the epoch; a negative result wraps.
func CounterAt(t time.Time, period int, window int) uint64 {
	sec := t.Unix()
	p := int64(period)
	step := sec / p
	if sec%p != 0 && sec < 0 {
		step--
	}
	return uint64(step + int64(window))
}
