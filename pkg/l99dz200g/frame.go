package l99dz200g

import "encoding/binary"

// EncodeHeader builds byte 0 of a request: opcode in bits 7:6, address in bits 5:0.
func EncodeHeader(op Opcode, addr uint8) byte {
	return (addr & addrMask) | (byte(op) & opcodeMask)
}

// PackPayload writes the low 24 bits of v into dst[0:3], MSB first.
// The top byte of v is discarded.
func PackPayload(dst []byte, v uint32) {
	_ = dst[2]
	dst[0] = byte(v >> 16)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v)
}

// UnpackPayload interprets src[0:3] as an unsigned 24-bit value, MSB first.
func UnpackPayload(src []byte) uint32 {
	_ = src[2]
	var u32 uint32
	u32 |= uint32(src[0]) << 16
	u32 |= uint32(src[1]) << 8
	u32 |= uint32(src[2])
	return u32
}

// Frame is one register transaction as it appears on the wire.
type Frame [FrameSize]byte

// NewFrame encodes a request frame.
func NewFrame(op Opcode, addr uint8, payload uint32) Frame {
	var f Frame
	binary.BigEndian.PutUint32(f[:], payload&FullRegMask)
	f[0] = EncodeHeader(op, addr)
	return f
}

// Opcode decodes bits 7:6 of a request frame.
func (f Frame) Opcode() Opcode {
	return Opcode(f[0] & opcodeMask)
}

// Address decodes bits 5:0 of a request frame.
func (f Frame) Address() uint8 {
	return f[0] & addrMask
}

// Payload returns the 24-bit data portion.
func (f Frame) Payload() uint32 {
	return binary.BigEndian.Uint32(f[:]) & FullRegMask
}

// Status returns byte 0, which is the global status byte in a response.
func (f Frame) Status() GlobalStatus {
	return GlobalStatus(f[0])
}
