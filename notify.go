// This file defines the headers carried by response notify blocks: the
// measurement outcome, time info and entanglement information headers.
package cqc

import "encoding/binary"

// Fixed sizes in bytes of the notify headers.
const (
	MeasOutHdrLen  = 1
	TimeInfoHdrLen = 8
	EntInfoHdrLen  = 40
)

// MeasOut is a measurement outcome.  There are only two possible values:
// 0 or 1.
type MeasOut uint8

const (
	MeasZero MeasOut = 0
	MeasOne  MeasOut = 1
)

// GetMeasOut converts an 8-bit value to a measurement outcome.  The second
// return value is false if the value is not a valid outcome.
func GetMeasOut(value uint8) (MeasOut, bool) {
	switch MeasOut(value) {
	case MeasZero:
		return MeasZero, true
	case MeasOne:
		return MeasOne, true
	}
	return 0, false
}

// MeasOutHdr carries the outcome of a measurement.
type MeasOutHdr struct {
	MeasOut MeasOut
}

// Len returns the fixed byte length of this header.
func (MeasOutHdr) Len() uint32 { return MeasOutHdrLen }

// EncodeTo writes the header into b, which must hold at least
// MeasOutHdrLen bytes.
func (h MeasOutHdr) EncodeTo(b []byte) {
	b[0] = uint8(h.MeasOut)
}

// TimeInfoHdr carries time information in response to the GetTime command.
type TimeInfoHdr struct {
	Datetime uint64
}

// Len returns the fixed byte length of this header.
func (TimeInfoHdr) Len() uint32 { return TimeInfoHdrLen }

// EncodeTo writes the header into b, which must hold at least
// TimeInfoHdrLen bytes.
func (h TimeInfoHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], h.Datetime)
}

// DecodeTimeInfoHdr reads a time info header from b, which must hold at
// least TimeInfoHdrLen bytes.
func DecodeTimeInfoHdr(b []byte) TimeInfoHdr {
	return TimeInfoHdr{Datetime: binary.BigEndian.Uint64(b[0:8])}
}

// EntInfoHdr describes a created EPR pair: the two parties that share it,
// the time of creation, an estimate of the fidelity of the state
// (goodness), and an entanglement ID that, together with the nodes and the
// directionality flag, identifies the entanglement uniquely in the network.
//
//	Field      Length     Meaning
//	-----      ------     -------
//	node_A     4 bytes    IP of this node.
//	port_A     2 bytes    Port of this node.
//	app_id_A   2 bytes    App ID of this node.
//	node_B     4 bytes    IP of other node.
//	port_B     2 bytes    Port of other node.
//	app_id_B   2 bytes    App ID of other node.
//	id_AB      4 bytes    Entanglement ID.
//	timestamp  8 bytes    Time of creation.
//	ToG        8 bytes    Time of goodness.
//	goodness   2 bytes    Fidelity estimate.
//	DF         1 byte     Directionality flag (0=Mid, 1=node_A, 2=node_B).
//	align      1 byte     4 byte alignment.
type EntInfoHdr struct {
	NodeA     uint32
	PortA     uint16
	AppIDA    uint16
	NodeB     uint32
	PortB     uint16
	AppIDB    uint16
	EntID     uint32
	Timestamp uint64
	ToG       uint64
	Goodness  uint16
	DF        uint8
	Align     uint8
}

// Len returns the fixed byte length of this header.
func (EntInfoHdr) Len() uint32 { return EntInfoHdrLen }

// EncodeTo writes the header into b, which must hold at least
// EntInfoHdrLen bytes.
func (h EntInfoHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint32(b[0:4], h.NodeA)
	binary.BigEndian.PutUint16(b[4:6], h.PortA)
	binary.BigEndian.PutUint16(b[6:8], h.AppIDA)
	binary.BigEndian.PutUint32(b[8:12], h.NodeB)
	binary.BigEndian.PutUint16(b[12:14], h.PortB)
	binary.BigEndian.PutUint16(b[14:16], h.AppIDB)
	binary.BigEndian.PutUint32(b[16:20], h.EntID)
	binary.BigEndian.PutUint64(b[20:28], h.Timestamp)
	binary.BigEndian.PutUint64(b[28:36], h.ToG)
	binary.BigEndian.PutUint16(b[36:38], h.Goodness)
	b[38] = h.DF
	b[39] = h.Align
}

// DecodeEntInfoHdr reads an entanglement information header from b, which
// must hold at least EntInfoHdrLen bytes.
func DecodeEntInfoHdr(b []byte) EntInfoHdr {
	return EntInfoHdr{
		NodeA:     binary.BigEndian.Uint32(b[0:4]),
		PortA:     binary.BigEndian.Uint16(b[4:6]),
		AppIDA:    binary.BigEndian.Uint16(b[6:8]),
		NodeB:     binary.BigEndian.Uint32(b[8:12]),
		PortB:     binary.BigEndian.Uint16(b[12:14]),
		AppIDB:    binary.BigEndian.Uint16(b[14:16]),
		EntID:     binary.BigEndian.Uint32(b[16:20]),
		Timestamp: binary.BigEndian.Uint64(b[20:28]),
		ToG:       binary.BigEndian.Uint64(b[28:36]),
		Goodness:  binary.BigEndian.Uint16(b[36:38]),
		DF:        b[38],
		Align:     b[39],
	}
}
