// This file defines the closed error taxonomy of the codec.  Every decode
// rejection maps to exactly one of these kinds with the offending raw
// value attached; no input, however malformed, causes a panic.
package cqc

import "fmt"

// UnsupportedVersionError is returned when the version byte of a packet
// does not match a supported CQC version.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported CQC version %d", e.Version)
}

// UnknownMsgTypeError is returned when the message type byte is outside
// both the normal and the error range, or names a type the dispatch table
// defines no trailing structure for.
type UnknownMsgTypeError struct {
	MsgType uint8
}

func (e *UnknownMsgTypeError) Error() string {
	return fmt.Sprintf("unknown CQC message type 0x%02X", e.MsgType)
}

// UnknownInstrError is returned when the instruction byte of a command
// header does not name a valid instruction.
type UnknownInstrError struct {
	Instr uint8
}

func (e *UnknownInstrError) Error() string {
	return fmt.Sprintf("unknown CQC instruction 0x%02X", e.Instr)
}

// UnknownOutcomeError is returned when the measurement outcome byte of a
// MeasOut response is neither 0 nor 1.
type UnknownOutcomeError struct {
	Outcome uint8
}

func (e *UnknownOutcomeError) Error() string {
	return fmt.Sprintf("invalid measurement outcome 0x%02X", e.Outcome)
}

// TruncatedInputError is returned when the supplied buffer is physically
// shorter than the packet it claims to hold.  The transport collaborator
// is expected to assemble whole packets before calling Decode; a short
// buffer is always an error, never a "need more bytes" status.
type TruncatedInputError struct {
	Needed    uint64
	Available int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated packet: need %d bytes, have %d", e.Needed, e.Available)
}

// LengthMismatchError is returned when the declared length of a packet is
// smaller than the minimum required by the trailing structures its
// discriminants imply.
type LengthMismatchError struct {
	Declared uint32
	Required uint32
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("declared length %d insufficient: %d bytes required", e.Declared, e.Required)
}

// BufferTooSmallError is returned by encode when the caller-supplied
// buffer cannot hold the full packet.  Nothing has been written when this
// error is returned.
type BufferTooSmallError struct {
	Needed    int
	Available int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("encode buffer too small: need %d bytes, have %d", e.Needed, e.Available)
}
