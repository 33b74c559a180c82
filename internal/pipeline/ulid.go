package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job ids are ULIDs: 26-character Crockford Base32 strings with a timestamp
// prefix, so they sort by creation time. Generated locally, no external
// dependency needed.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID returns a fresh ULID.
func NewID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp in the first 6 bytes (big-endian 48-bit).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	// Random in the remaining 10 bytes, with a sequence counter in bytes
	// 6-7 to keep ids unique within the same millisecond.
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeULID(b)
}

// encodeULID renders 128 bits as 26 Crockford Base32 characters by peeling
// five bits at a time off the least significant end. The top two bits of
// the 130-bit space are always zero.
func encodeULID(b [16]byte) string {
	var out [26]byte
	for i := 25; i >= 0; i-- {
		out[i] = crockford[b[15]&31]
		// Shift the whole 128-bit value right by 5.
		var carry byte
		for j := 0; j < 16; j++ {
			v := b[j]
			b[j] = carry<<3 | v>>5
			carry = v & 31
		}
	}
	return string(out[:])
}
