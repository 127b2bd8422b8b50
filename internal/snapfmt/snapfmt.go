// Package snapfmt frames environment snapshots so that foreign or truncated
// entries in a shared store are detected instead of being fed to the
// unmarshaler.
package snapfmt

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("sysx: corrupt snapshot")
	magic4     = [...]byte{'S', 'Y', 'S', 'X'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode frames payload as: magic(4) | ver(1) | plen(u32 be) | payload(plen).
func Encode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates the frame and returns the payload. The payload slice
// aliases b.
func Decode(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	plen := int(binary.BigEndian.Uint32(b[5:9]))
	if plen < 0 || plen != len(b)-hdr {
		return nil, ErrCorrupt
	}
	return b[hdr : hdr+plen], nil
}
