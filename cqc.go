// Package cqc implements an encoder and decoder for CQC protocol packets.
// The CQC interface is used to program quantum networking nodes to create,
// transmit, and manipulate qubits.
//
// The package is a pure data transformation library: it performs no socket
// I/O and keeps no state between calls, so it places no runtime constraints
// on the transport that feeds it.  All multi-byte fields are big-endian on
// the wire.
package cqc

// Packet is either a *Request or a *Response, as classified by the
// message type of the packet's CQC header.
type Packet interface {
	packet()
}

// Request is a CQC packet sent towards a node.  Every request begins with
// the CQC header.  For the Command, Factory and GetTime message types a
// command block follows; for all other request types ReqCmd is nil.
type Request struct {
	CqcHdr CqcHdr
	ReqCmd *ReqCmd
}

func (*Request) packet() {}

// BodyLen returns the byte length of everything following the CQC header.
func (r *Request) BodyLen() uint32 {
	if r.ReqCmd == nil {
		return 0
	}
	return r.ReqCmd.Len()
}

// Len returns the full encoded length of the request in bytes.
func (r *Request) Len() uint32 {
	return CqcHdrLen + r.BodyLen()
}

// ReqCmd is the command block of a request.  It consists of the command
// header and, for certain instructions, an additional Xtra header.  Which
// Xtra header shape is required is a total function of CmdHdr.Instr; Xtra
// is nil for instructions that take none.
type ReqCmd struct {
	CmdHdr CmdHdr
	Xtra   XtraHdr
}

// Len returns the byte length of the command block including the Xtra
// header, if any.
func (c *ReqCmd) Len() uint32 {
	l := uint32(CmdHdrLen)
	if c.Xtra != nil {
		l += c.Xtra.Len()
	}
	return l
}

// XtraHdr is the additional header following a command header.  It is one
// of RotHdr, QubitHdr or CommHdr; a nil XtraHdr means the instruction
// carries no additional header.
type XtraHdr interface {
	// Len returns the fixed byte length of this header.
	Len() uint32
	// EncodeTo writes the header into b, which must hold at least Len
	// bytes.
	EncodeTo(b []byte)

	xtraHdr()
}

func (RotHdr) xtraHdr()   {}
func (QubitHdr) xtraHdr() {}
func (CommHdr) xtraHdr()  {}

// Response is a CQC packet returned by a node.  It begins with the CQC
// header and, for certain message types, carries a notify block.  Notify is
// nil for message types that return no additional data, including every
// error type.
type Response struct {
	CqcHdr CqcHdr
	Notify RspInfo
}

func (*Response) packet() {}

// BodyLen returns the byte length of everything following the CQC header.
func (r *Response) BodyLen() uint32 {
	if r.Notify == nil {
		return 0
	}
	return r.Notify.Len()
}

// Len returns the full encoded length of the response in bytes.
func (r *Response) Len() uint32 {
	return CqcHdrLen + r.BodyLen()
}

// RspInfo is the notify block of a response.  It is one of QubitHdr,
// MeasOutHdr, TimeInfoHdr or EprInfo; a nil RspInfo means the response
// carries no notify block.
type RspInfo interface {
	// Len returns the fixed byte length of this block.
	Len() uint32
	// EncodeTo writes the block into b, which must hold at least Len
	// bytes.
	EncodeTo(b []byte)

	rspInfo()
}

func (QubitHdr) rspInfo()    {}
func (MeasOutHdr) rspInfo()  {}
func (TimeInfoHdr) rspInfo() {}
func (EprInfo) rspInfo()     {}

// EprInfo is the notify block of an EprOk response: the extra qubit header
// identifying the local half of the pair followed by the entanglement
// information header.
type EprInfo struct {
	Qubit   QubitHdr
	EntInfo EntInfoHdr
}

// Len returns the byte length of the compound block.
func (EprInfo) Len() uint32 {
	return QubitHdrLen + EntInfoHdrLen
}

// EncodeTo writes both headers into b, which must hold at least Len bytes.
func (e EprInfo) EncodeTo(b []byte) {
	e.Qubit.EncodeTo(b)
	e.EntInfo.EncodeTo(b[QubitHdrLen:])
}
