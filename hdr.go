// This file defines the CQC header, the fixed 8-byte structure that begins
// every CQC packet, together with the protocol version gate.
package cqc

import "encoding/binary"

// CqcHdrLen is the fixed size in bytes of the CQC header.
const CqcHdrLen = 8

// Version is the CQC interface version carried in the first byte of every
// packet.
type Version uint8

// V2 is the current CQC interface version.  Versions 0 and 1 used
// incompatible wire layouts and are not supported by this codec.
const V2 Version = 2

// CurrentVersion is the version this codec encodes and the only version it
// accepts on decode.
const CurrentVersion = V2

// GetVersion converts an 8-bit value to a version value.  The second return
// value is false if the value does not correspond to a supported version.
func GetVersion(value uint8) (Version, bool) {
	switch Version(value) {
	case V2:
		return V2, true
	}
	return 0, false
}

// CqcHdr begins every CQC message.
//
//	Field     Length     Meaning
//	-----     ------     -------
//	version   1 byte     CQC interface version.  Current version is 2.
//	type      1 byte     Message type.
//	app_id    2 bytes    Application ID.  Return messages will be tagged
//	                     appropriately.
//	length    4 bytes    Total length of the headers following this one.
//
// A command header MUST follow the CQC header for the Command, Factory and
// GetTime message types.
type CqcHdr struct {
	Version Version
	MsgType MsgType
	AppID   uint16
	Length  uint32
}

// EncodeTo writes the header into b, which must hold at least CqcHdrLen
// bytes.
func (h CqcHdr) EncodeTo(b []byte) {
	b[0] = uint8(h.Version)
	b[1] = uint8(h.MsgType)
	binary.BigEndian.PutUint16(b[2:4], h.AppID)
	binary.BigEndian.PutUint32(b[4:8], h.Length)
}
