// Package wire owns the byte-level encoding of viewer control packets.
//
// Ownership boundary:
// - little-endian scalar primitives
// - NUL-terminated string encoding
// - frame length reserve-and-patch
package wire

import (
	"encoding/binary"
	"math"
)

// LengthPrefixSize is the size of the u32 frame length field.
const LengthPrefixSize = 4

// Buffer accumulates one packet in wire layout. All scalars are written
// little-endian. The zero value is ready to use and produces a bare packet
// body; NewFrameBuffer additionally maintains a leading length field.
//
// Encoding never fails. Argument consistency is validated by the packet
// builders before anything is written.
type Buffer struct {
	data     []byte
	prefixed bool
}

// NewFrameBuffer returns a Buffer with a reserved 32-bit length field at
// offset 0. The field is rewritten after every append so the buffer contents
// are a complete self-describing frame at all times. The recorded length
// counts the length field itself.
func NewFrameBuffer() *Buffer {
	b := &Buffer{prefixed: true}
	b.data = make([]byte, LengthPrefixSize)
	b.patch()
	return b
}

func (b *Buffer) append(p ...byte) {
	b.data = append(b.data, p...)
	if b.prefixed {
		b.patch()
	}
}

func (b *Buffer) patch() {
	binary.LittleEndian.PutUint32(b.data[:LengthPrefixSize], uint32(len(b.data)))
}

// WriteInt8 writes one signed byte.
func (b *Buffer) WriteInt8(v int8) {
	b.append(byte(v))
}

// WriteBool writes one byte: 1 for true, 0 for false.
//
// An earlier protocol revision inverted this encoding (true as 0). That was
// a defect, not a wire change; this implementation always emits 1 for true.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.append(1)
		return
	}
	b.append(0)
}

// WriteUint32 writes a little-endian uint32.
func (b *Buffer) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.append(buf[:]...)
}

// WriteUint64 writes a little-endian uint64.
func (b *Buffer) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	b.append(buf[:]...)
}

// WriteFloat32 writes a little-endian IEEE 754 float32.
func (b *Buffer) WriteFloat32(v float32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	b.append(buf[:]...)
}

// WriteFloat32s writes elements back-to-back with no count or separator.
func (b *Buffer) WriteFloat32s(vs []float32) {
	for _, v := range vs {
		b.WriteFloat32(v)
	}
}

// WriteString writes the UTF-8 bytes of s followed by one NUL terminator.
// Strings carry no length prefix on the wire.
func (b *Buffer) WriteString(s string) {
	b.append([]byte(s)...)
	b.append(0)
}

// Len returns the number of bytes written so far, including the reserved
// length field for prefixed buffers.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the accumulated buffer contents.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Float32Bytes packs vs into a fresh little-endian byte slice. Used for raw
// pixel payloads that ride behind an encoded packet header.
func Float32Bytes(vs []float32) []byte {
	out := make([]byte, 0, len(vs)*4)
	var buf [4]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		out = append(out, buf[:]...)
	}
	return out
}
