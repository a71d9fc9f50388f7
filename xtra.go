// This file defines the additional headers that can follow a command
// header: the rotation, extra qubit, communication, factory and assign
// headers.
package cqc

import "encoding/binary"

// Fixed sizes in bytes of the additional headers.
const (
	RotHdrLen     = 1
	QubitHdrLen   = 2
	CommHdrLen    = 8
	FactoryHdrLen = 2
	AssignHdrLen  = 4
)

// RotHdr defines the rotation angle of a rotation gate, in increments of
// pi/256.
type RotHdr struct {
	Step uint8
}

// Len returns the fixed byte length of this header.
func (RotHdr) Len() uint32 { return RotHdrLen }

// EncodeTo writes the header into b, which must hold at least RotHdrLen
// bytes.
func (h RotHdr) EncodeTo(b []byte) {
	b[0] = h.Step
}

// DecodeRotHdr reads a rotation header from b, which must hold at least
// RotHdrLen bytes.
func DecodeRotHdr(b []byte) RotHdr {
	return RotHdr{Step: b[0]}
}

// QubitHdr carries the ID of a secondary qubit.  It follows the command
// header of two-qubit gates to name the target, and follows the CQC header
// of Recv, NewOk and EprOk responses to name the created or received qubit.
type QubitHdr struct {
	QubitID uint16
}

// Len returns the fixed byte length of this header.
func (QubitHdr) Len() uint32 { return QubitHdrLen }

// EncodeTo writes the header into b, which must hold at least QubitHdrLen
// bytes.
func (h QubitHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint16(b[0:2], h.QubitID)
}

// DecodeQubitHdr reads an extra qubit header from b, which must hold at
// least QubitHdrLen bytes.
func DecodeQubitHdr(b []byte) QubitHdr {
	return QubitHdr{QubitID: binary.BigEndian.Uint16(b[0:2])}
}

// CommHdr names the remote node for the Send and Epr instructions.
//
//	Field          Length     Meaning
//	-----          ------     -------
//	remote_app_id  2 bytes    Remote application ID.
//	remote_port    2 bytes    Port of the remote node for classical
//	                          control info.
//	remote_node    4 bytes    IP of the remote node (IPv4).
type CommHdr struct {
	RemoteAppID uint16
	RemotePort  uint16
	RemoteNode  uint32
}

// Len returns the fixed byte length of this header.
func (CommHdr) Len() uint32 { return CommHdrLen }

// EncodeTo writes the header into b, which must hold at least CommHdrLen
// bytes.
func (h CommHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint16(b[0:2], h.RemoteAppID)
	binary.BigEndian.PutUint16(b[2:4], h.RemotePort)
	binary.BigEndian.PutUint32(b[4:8], h.RemoteNode)
}

// DecodeCommHdr reads a communication header from b, which must hold at
// least CommHdrLen bytes.
func DecodeCommHdr(b []byte) CommHdr {
	return CommHdr{
		RemoteAppID: binary.BigEndian.Uint16(b[0:2]),
		RemotePort:  binary.BigEndian.Uint16(b[2:4]),
		RemoteNode:  binary.BigEndian.Uint32(b[4:8]),
	}
}

// FactoryHdr tells the backend to execute the following command sequence a
// number of times.
//
//	Field     Length     Meaning
//	-----     ------     -------
//	num_iter  1 byte     Number of iterations.
//	options   1 byte     Options when executing the factory.
type FactoryHdr struct {
	NumIter uint8
	Options FactoryOpt
}

// Len returns the fixed byte length of this header.
func (FactoryHdr) Len() uint32 { return FactoryHdrLen }

// EncodeTo writes the header into b, which must hold at least
// FactoryHdrLen bytes.
func (h FactoryHdr) EncodeTo(b []byte) {
	b[0] = h.NumIter
	b[1] = uint8(h.Options)
}

// DecodeFactoryHdr reads a factory header from b, which must hold at least
// FactoryHdrLen bytes.
func DecodeFactoryHdr(b []byte) FactoryHdr {
	return FactoryHdr{NumIter: b[0], Options: FactoryOpt(b[1])}
}

// AssignHdr stores a measurement outcome in the backend under a reference
// ID so later instructions can refer to the value.
type AssignHdr struct {
	RefID uint32
}

// Len returns the fixed byte length of this header.
func (AssignHdr) Len() uint32 { return AssignHdrLen }

// EncodeTo writes the header into b, which must hold at least AssignHdrLen
// bytes.
func (h AssignHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint32(b[0:4], h.RefID)
}

// DecodeAssignHdr reads an assign header from b, which must hold at least
// AssignHdrLen bytes.
func DecodeAssignHdr(b []byte) AssignHdr {
	return AssignHdr{RefID: binary.BigEndian.Uint32(b[0:4])}
}
