// Package endian provides the big-endian append helpers the encoding
// package writes multi-byte payloads with, plus a host-endianness check
// (CheckEndianness, IsNativeBigEndian).
//
// The MessagePack wire format mandates big-endian for every multi-byte
// length and numeric payload -- there is no configuration choice to make
// here. The helpers wrap encoding/binary.BigEndian in the append-in-place
// style (AppendUint16/32/64 growing a []byte directly rather than writing
// into a temporary and copying). The encoders do not consult the
// host-endianness probe: they always go through the big-endian helpers,
// whatever the host's byte order.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// CheckEndianness uses a fixed integer value to determine the host's
// byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host's native byte order is
// already big-endian, the wire order MessagePack always uses.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// PutUint16 stores v as 2 big-endian bytes in b.
func PutUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutUint32 stores v as 4 big-endian bytes in b.
func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutUint64 stores v as 8 big-endian bytes in b.
func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// Uint16 reads 2 big-endian bytes from b.
func Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// Uint32 reads 4 big-endian bytes from b.
func Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// Uint64 reads 8 big-endian bytes from b.
func Uint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// AppendUint16 appends v as 2 big-endian bytes to b.
func AppendUint16(b []byte, v uint16) []byte { return binary.BigEndian.AppendUint16(b, v) }

// AppendUint32 appends v as 4 big-endian bytes to b.
func AppendUint32(b []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(b, v) }

// AppendUint64 appends v as 8 big-endian bytes to b.
func AppendUint64(b []byte, v uint64) []byte { return binary.BigEndian.AppendUint64(b, v) }
