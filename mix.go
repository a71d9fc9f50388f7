// This file defines the headers of the Mix and If control types.  The
// codes are part of the current schema revision and are registered here,
// but mixed programs have no trailing-structure shape in the dispatch
// table, so the decoder rejects non-empty Mix and If packets.
package cqc

import "encoding/binary"

// Fixed sizes in bytes of the control headers.
const (
	TypeHdrLen = 5
	IfHdrLen   = 14
)

// TypeHdr announces the type of the next header inside a Mix program.
//
//	Field     Length     Meaning
//	-----     ------     -------
//	type      1 byte     Type of next header (except Mix).
//	length    4 bytes    Number of bytes until the next type header.
type TypeHdr struct {
	HdrType MsgType
	Length  uint32
}

// Len returns the fixed byte length of this header.
func (TypeHdr) Len() uint32 { return TypeHdrLen }

// EncodeTo writes the header into b, which must hold at least TypeHdrLen
// bytes.
func (h TypeHdr) EncodeTo(b []byte) {
	b[0] = uint8(h.HdrType)
	binary.BigEndian.PutUint32(b[1:5], h.Length)
}

// DecodeTypeHdr reads a type header from b, which must hold at least
// TypeHdrLen bytes.
func DecodeTypeHdr(b []byte) TypeHdr {
	return TypeHdr{
		HdrType: MsgType(b[0]),
		Length:  binary.BigEndian.Uint32(b[1:5]),
	}
}

// CmpType is the comparison operator of an If header.
type CmpType uint8

const (
	CmpEq   CmpType = 0 // Compare for equality.
	CmpInEq CmpType = 1 // Compare for inequality.
)

// GetCmpType converts an 8-bit value to a comparison operator.  The second
// return value is false if the value is not a valid operator.
func GetCmpType(value uint8) (CmpType, bool) {
	switch CmpType(value) {
	case CmpEq:
		return CmpEq, true
	case CmpInEq:
		return CmpInEq, true
	}
	return 0, false
}

// OpType is the kind of the right operand of an If header.
type OpType uint8

const (
	OpVal   OpType = 0 // Right operand holds a raw value.
	OpRefID OpType = 1 // Right operand holds a reference ID.
)

// GetOpType converts an 8-bit value to an operand kind.  The second return
// value is false if the value is not a valid operand kind.
func GetOpType(value uint8) (OpType, bool) {
	switch OpType(value) {
	case OpVal:
		return OpVal, true
	case OpRefID:
		return OpRefID, true
	}
	return 0, false
}

// IfHdr executes the following command only if the condition holds.  It
// can only appear inside programs of type Mix.
//
//	Field          Length     Meaning
//	-----          ------     -------
//	left_operand   4 bytes    Reference ID of the first operand.
//	operator       1 byte     Comparison operator.
//	right_type     1 byte     Kind of second operand.
//	right_operand  4 bytes    Reference ID or value of second operand.
//	length         4 bytes    Length in bytes of the following command.
type IfHdr struct {
	LeftOp    uint32
	Operator  CmpType
	RightType OpType
	RightOp   uint32
	Length    uint32
}

// Len returns the fixed byte length of this header.
func (IfHdr) Len() uint32 { return IfHdrLen }

// EncodeTo writes the header into b, which must hold at least IfHdrLen
// bytes.
func (h IfHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint32(b[0:4], h.LeftOp)
	b[4] = uint8(h.Operator)
	b[5] = uint8(h.RightType)
	binary.BigEndian.PutUint32(b[6:10], h.RightOp)
	binary.BigEndian.PutUint32(b[10:14], h.Length)
}

// DecodeIfHdr reads an if header from b, which must hold at least IfHdrLen
// bytes.  The operator and operand kind bytes are read raw; use GetCmpType
// and GetOpType to validate them.
func DecodeIfHdr(b []byte) IfHdr {
	return IfHdr{
		LeftOp:    binary.BigEndian.Uint32(b[0:4]),
		Operator:  CmpType(b[4]),
		RightType: OpType(b[5]),
		RightOp:   binary.BigEndian.Uint32(b[6:10]),
		Length:    binary.BigEndian.Uint32(b[10:14]),
	}
}
