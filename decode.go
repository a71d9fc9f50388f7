// This file implements the decoder.  Decoding proceeds strictly top-down:
// the CQC header is read, the version is gated before any other field is
// interpreted, the dispatch table determines the expected trailing
// structures, and the declared length is checked against each structure's
// size before the corresponding read.  Malformed input can therefore never
// cause an out-of-bounds read.
package cqc

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Decoder parses CQC packets from caller-supplied buffers.  The zero value
// is ready to use and safe for concurrent use; the decoder keeps no
// reference to any buffer after a call returns.
//
// Decode requires the buffer to contain at least one complete packet.  The
// transport collaborator is responsible for assembling whole packets from
// a stream; partial-buffer decoding is deliberately not supported.
type Decoder struct{}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ValidateVersion gates the protocol version byte.  The decoder runs it
// immediately after reading the version byte so that a version mismatch
// can never lead to misparsing the remaining fields.
func ValidateVersion(value uint8) error {
	if _, ok := GetVersion(value); !ok {
		return &UnsupportedVersionError{Version: value}
	}
	return nil
}

// Decode parses one packet from buf and returns the typed result together
// with the number of bytes consumed, so a caller can advance its stream
// cursor to the next packet.  The Hello, Command, Factory and GetTime
// message types decode to a *Request; every other known type decodes to a
// *Response.  On error, nothing meaningful has been consumed.
func (d *Decoder) Decode(buf []byte) (Packet, int, error) {
	if len(buf) < CqcHdrLen {
		return nil, 0, &TruncatedInputError{Needed: CqcHdrLen, Available: len(buf)}
	}

	if err := ValidateVersion(buf[0]); err != nil {
		return nil, 0, err
	}

	msgType, ok := GetMsgType(buf[1])
	if !ok {
		return nil, 0, &UnknownMsgTypeError{MsgType: buf[1]}
	}

	cqcHdr := CqcHdr{
		Version: Version(buf[0]),
		MsgType: msgType,
		AppID:   binary.BigEndian.Uint16(buf[2:4]),
		Length:  binary.BigEndian.Uint32(buf[4:8]),
	}

	// A zero length means no trailing structures regardless of type.
	if cqcHdr.Length == 0 {
		return emptyPacket(cqcHdr), CqcHdrLen, nil
	}

	// The whole declared packet must be physically present before any
	// trailing structure is read.  The sum is taken in 64 bits so a
	// hostile length cannot wrap the comparison on 32-bit platforms.
	needed := uint64(CqcHdrLen) + uint64(cqcHdr.Length)
	if uint64(len(buf)) < needed {
		return nil, 0, &TruncatedInputError{Needed: needed, Available: len(buf)}
	}
	consumed := int(needed)
	body := buf[CqcHdrLen:consumed]

	switch msgType {
	case TpHello:
		return &Request{CqcHdr: cqcHdr}, consumed, nil

	case TpCommand, TpFactory, TpGetTime:
		reqCmd, err := decodeReqCmd(cqcHdr.Length, body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "command block")
		}
		return &Request{CqcHdr: cqcHdr, ReqCmd: reqCmd}, consumed, nil

	case TpRecv, TpNewOk:
		if cqcHdr.Length < QubitHdrLen {
			return nil, 0, &LengthMismatchError{Declared: cqcHdr.Length, Required: QubitHdrLen}
		}
		return &Response{CqcHdr: cqcHdr, Notify: DecodeQubitHdr(body)}, consumed, nil

	case TpMeasOut:
		if cqcHdr.Length < MeasOutHdrLen {
			return nil, 0, &LengthMismatchError{Declared: cqcHdr.Length, Required: MeasOutHdrLen}
		}
		out, ok := GetMeasOut(body[0])
		if !ok {
			return nil, 0, &UnknownOutcomeError{Outcome: body[0]}
		}
		return &Response{CqcHdr: cqcHdr, Notify: MeasOutHdr{MeasOut: out}}, consumed, nil

	case TpInfTime:
		if cqcHdr.Length < TimeInfoHdrLen {
			return nil, 0, &LengthMismatchError{Declared: cqcHdr.Length, Required: TimeInfoHdrLen}
		}
		return &Response{CqcHdr: cqcHdr, Notify: DecodeTimeInfoHdr(body)}, consumed, nil

	case TpEprOk:
		if cqcHdr.Length < QubitHdrLen+EntInfoHdrLen {
			return nil, 0, &LengthMismatchError{Declared: cqcHdr.Length, Required: QubitHdrLen + EntInfoHdrLen}
		}
		epr := EprInfo{
			Qubit:   DecodeQubitHdr(body),
			EntInfo: DecodeEntInfoHdr(body[QubitHdrLen:]),
		}
		return &Response{CqcHdr: cqcHdr, Notify: epr}, consumed, nil

	case TpExpire, TpDone:
		return &Response{CqcHdr: cqcHdr}, consumed, nil
	}

	if msgType.IsErr() {
		return &Response{CqcHdr: cqcHdr}, consumed, nil
	}

	// Mix and If are registered codes, but the dispatch table defines no
	// trailing structure for them; a non-empty packet of either type
	// cannot be interpreted.
	return nil, 0, &UnknownMsgTypeError{MsgType: uint8(msgType)}
}

// emptyPacket classifies a body-less packet as a request or response based
// on its message type.
func emptyPacket(cqcHdr CqcHdr) Packet {
	switch cqcHdr.MsgType {
	case TpHello, TpCommand, TpFactory, TpGetTime:
		return &Request{CqcHdr: cqcHdr}
	}
	return &Response{CqcHdr: cqcHdr}
}

// decodeReqCmd parses a command block and, depending on the instruction,
// its additional header.  declared is the remaining declared length of the
// packet; body holds at least that many bytes.
func decodeReqCmd(declared uint32, body []byte) (*ReqCmd, error) {
	if declared < CmdHdrLen {
		return nil, &LengthMismatchError{Declared: declared, Required: CmdHdrLen}
	}

	instr, ok := GetCmd(body[2])
	if !ok {
		return nil, &UnknownInstrError{Instr: body[2]}
	}

	reqCmd := &ReqCmd{
		CmdHdr: CmdHdr{
			QubitID: binary.BigEndian.Uint16(body[0:2]),
			Instr:   instr,
			Options: CmdOpt(body[3]),
		},
	}

	remaining := declared - CmdHdrLen
	xtra := body[CmdHdrLen:]

	switch instr {
	case CmdRotX, CmdRotY, CmdRotZ:
		if remaining < RotHdrLen {
			return nil, &LengthMismatchError{Declared: declared, Required: CmdHdrLen + RotHdrLen}
		}
		reqCmd.Xtra = DecodeRotHdr(xtra)

	case CmdCnot, CmdCphase:
		if remaining < QubitHdrLen {
			return nil, &LengthMismatchError{Declared: declared, Required: CmdHdrLen + QubitHdrLen}
		}
		reqCmd.Xtra = DecodeQubitHdr(xtra)

	case CmdSend, CmdEpr:
		if remaining < CommHdrLen {
			return nil, &LengthMismatchError{Declared: declared, Required: CmdHdrLen + CommHdrLen}
		}
		reqCmd.Xtra = DecodeCommHdr(xtra)
	}

	return reqCmd, nil
}
