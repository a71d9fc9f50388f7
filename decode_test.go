package cqc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEntID     uint32 = 0x7623AE9F
	testNode      uint32 = 0x1234ABCD
	testPort      uint16 = 0x9103
	testTimestamp uint64 = 0x2211AA76EA829A99
	testToG       uint64 = 0x11009965D9718988
	testGoodness  uint16 = 0xFF01
)

// TestDecodeHello verifies that a body-less liveness check decodes to a
// request without a command block.
func TestDecodeHello(t *testing.T) {
	packet := []byte{2, 0x00, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x00}

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, len(packet), n)

	req, ok := pkt.(*Request)
	require.True(t, ok)
	assert.Equal(t, TpHello, req.CqcHdr.MsgType)
	assert.Equal(t, uint16(0x0A0E), req.CqcHdr.AppID)
	assert.Nil(t, req.ReqCmd)
}

// TestDecodeCmd verifies decoding of a command packet without an Xtra
// header.
func TestDecodeCmd(t *testing.T) {
	packet := []byte{
		2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x04,
		0xBE, 0x56, 0x01, 0x05,
	}

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, len(packet), n)

	req, ok := pkt.(*Request)
	require.True(t, ok)
	require.NotNil(t, req.ReqCmd)
	assert.Equal(t, uint16(0xBE56), req.ReqCmd.CmdHdr.QubitID)
	assert.Equal(t, CmdNew, req.ReqCmd.CmdHdr.Instr)
	assert.True(t, req.ReqCmd.CmdHdr.Options.Notify())
	assert.True(t, req.ReqCmd.CmdHdr.Options.Block())
	assert.Nil(t, req.ReqCmd.Xtra)
}

// TestDecodeCmdXtra verifies decoding of the three Xtra header shapes.
func TestDecodeCmdXtra(t *testing.T) {
	t.Run("Rot", func(t *testing.T) {
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x05,
			0xBE, 0x56, 0x0E, 0x00,
			192,
		}

		pkt, n, err := NewDecoder().Decode(packet)
		require.NoError(t, err)
		assert.Equal(t, len(packet), n)

		req := pkt.(*Request)
		require.NotNil(t, req.ReqCmd)
		assert.Equal(t, RotHdr{Step: 192}, req.ReqCmd.Xtra)
	})

	t.Run("TargetQubit", func(t *testing.T) {
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x06,
			0xBE, 0x56, 0x14, 0x00,
			0xFE, 0x80,
		}

		pkt, _, err := NewDecoder().Decode(packet)
		require.NoError(t, err)

		req := pkt.(*Request)
		require.NotNil(t, req.ReqCmd)
		assert.Equal(t, QubitHdr{QubitID: 0xFE80}, req.ReqCmd.Xtra)
	})

	t.Run("Comm", func(t *testing.T) {
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x0C,
			0xBE, 0x56, 0x07, 0x00,
			0x5E, 0x3F, 0x91, 0x03, 0xAE, 0x04, 0xE2, 0x52,
		}

		pkt, _, err := NewDecoder().Decode(packet)
		require.NoError(t, err)

		req := pkt.(*Request)
		require.NotNil(t, req.ReqCmd)
		assert.Equal(t, CmdEpr, req.ReqCmd.CmdHdr.Instr)
		assert.Equal(t, CommHdr{
			RemoteAppID: 0x5E3F,
			RemotePort:  0x9103,
			RemoteNode:  0xAE04E252,
		}, req.ReqCmd.Xtra)
	})
}

// TestDecodeQubitNotify verifies decoding of a qubit-created response.
func TestDecodeQubitNotify(t *testing.T) {
	packet := []byte{
		2, 0x0A, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x02,
		0xBE, 0x56,
	}

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, len(packet), n)

	rsp, ok := pkt.(*Response)
	require.True(t, ok)
	assert.Equal(t, TpNewOk, rsp.CqcHdr.MsgType)
	assert.Equal(t, QubitHdr{QubitID: 0xBE56}, rsp.Notify)
}

// TestDecodeMeasOut verifies decoding of a measurement outcome response
// and rejection of outcome values other than 0 and 1.
func TestDecodeMeasOut(t *testing.T) {
	packet := []byte{
		2, 0x07, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x01,
		0x01,
	}

	pkt, _, err := NewDecoder().Decode(packet)
	require.NoError(t, err)

	rsp := pkt.(*Response)
	assert.Equal(t, MeasOutHdr{MeasOut: MeasOne}, rsp.Notify)

	packet[8] = 0x02
	_, _, err = NewDecoder().Decode(packet)

	var outErr *UnknownOutcomeError
	require.ErrorAs(t, err, &outErr)
	assert.Equal(t, uint8(2), outErr.Outcome)
}

// TestDecodeTimeInfo verifies decoding of a time-info response.
func TestDecodeTimeInfo(t *testing.T) {
	packet := []byte{
		2, 0x09, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x08,
		0x22, 0x11, 0xAA, 0x76, 0xEA, 0x82, 0x9A, 0x99,
	}

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, len(packet), n)

	rsp := pkt.(*Response)
	assert.Equal(t, TimeInfoHdr{Datetime: testTimestamp}, rsp.Notify)
}

// TestDecodeEprOk verifies decoding of the compound EPR notify block: the
// extra qubit header followed by the entanglement information header.
func TestDecodeEprOk(t *testing.T) {
	entInfo := EntInfoHdr{
		NodeA:     testNode,
		PortA:     testPort,
		AppIDA:    testAppID,
		NodeB:     testRemoteNode,
		PortB:     testRemotePort,
		AppIDB:    testRemoteAppID,
		EntID:     testEntID,
		Timestamp: testTimestamp,
		ToG:       testToG,
		Goodness:  testGoodness,
	}

	packet := make([]byte, CqcHdrLen+QubitHdrLen+EntInfoHdrLen)
	copy(packet, []byte{2, 0x06, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x2A})
	QubitHdr{QubitID: testQubitID}.EncodeTo(packet[8:])
	entInfo.EncodeTo(packet[10:])

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, len(packet), n)

	rsp := pkt.(*Response)
	require.IsType(t, EprInfo{}, rsp.Notify)
	epr := rsp.Notify.(EprInfo)
	assert.Equal(t, QubitHdr{QubitID: testQubitID}, epr.Qubit)
	assert.Equal(t, entInfo, epr.EntInfo)
}

// TestDecodeEmptyBody verifies that a zero length field yields the
// body-less result for every known message type.
func TestDecodeEmptyBody(t *testing.T) {
	for value := 0; value < 256; value++ {
		msgType, ok := GetMsgType(uint8(value))
		if !ok {
			continue
		}

		packet := []byte{2, uint8(value), 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x00}
		pkt, n, err := NewDecoder().Decode(packet)
		require.NoError(t, err, "message type %v", msgType)
		assert.Equal(t, CqcHdrLen, n)

		switch msgType {
		case TpHello, TpCommand, TpFactory, TpGetTime:
			req, ok := pkt.(*Request)
			require.True(t, ok)
			assert.Nil(t, req.ReqCmd)
		default:
			rsp, ok := pkt.(*Response)
			require.True(t, ok)
			assert.Nil(t, rsp.Notify)
		}
	}
}

// TestDecodeVersionRejection verifies that every version byte other than
// the supported one is rejected before the rest of the header is
// interpreted.
func TestDecodeVersionRejection(t *testing.T) {
	for value := 0; value < 256; value++ {
		if value == 2 {
			continue
		}

		// An unknown message type after a bad version must still
		// report the version error.
		packet := []byte{uint8(value), 0xFF, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x00}
		_, _, err := NewDecoder().Decode(packet)

		var verErr *UnsupportedVersionError
		require.ErrorAs(t, err, &verErr, "version %d", value)
		assert.Equal(t, uint8(value), verErr.Version)
	}
}

// TestDecodeUnknownMsgType verifies that every message type byte outside
// both defined ranges is rejected.
func TestDecodeUnknownMsgType(t *testing.T) {
	for value := 0; value < 256; value++ {
		if _, ok := GetMsgType(uint8(value)); ok {
			continue
		}

		packet := []byte{2, uint8(value), 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x00}
		_, _, err := NewDecoder().Decode(packet)

		var typeErr *UnknownMsgTypeError
		require.ErrorAs(t, err, &typeErr, "message type %d", value)
		assert.Equal(t, uint8(value), typeErr.MsgType)
	}
}

// TestDecodeUnknownInstr verifies that unknown instruction bytes inside a
// command block are rejected.
func TestDecodeUnknownInstr(t *testing.T) {
	for _, value := range []uint8{9, 19, 24, 0xFF} {
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x04,
			0xBE, 0x56, value, 0x00,
		}
		_, _, err := NewDecoder().Decode(packet)

		var instrErr *UnknownInstrError
		require.ErrorAs(t, err, &instrErr, "instruction %d", value)
		assert.Equal(t, value, instrErr.Instr)
	}
}

// TestDecodeMixAndIf verifies that the Mix and If control types are
// recognised codes but have no trailing structure shape, so non-empty
// packets are rejected.
func TestDecodeMixAndIf(t *testing.T) {
	for _, msgType := range []MsgType{TpMix, TpIf} {
		packet := []byte{
			2, uint8(msgType), 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x05,
			0x00, 0x00, 0x00, 0x00, 0x00,
		}
		_, _, err := NewDecoder().Decode(packet)

		var typeErr *UnknownMsgTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, uint8(msgType), typeErr.MsgType)
	}
}

// TestDecodeTruncated verifies that a buffer physically shorter than the
// declared packet is rejected without any out-of-bounds read.
func TestDecodeTruncated(t *testing.T) {
	t.Run("ShortHeader", func(t *testing.T) {
		packet := []byte{2, 0x00, 0x0A}
		_, _, err := NewDecoder().Decode(packet)

		var truncErr *TruncatedInputError
		require.ErrorAs(t, err, &truncErr)
		assert.Equal(t, uint64(CqcHdrLen), truncErr.Needed)
		assert.Equal(t, 3, truncErr.Available)
	})

	t.Run("ShortBody", func(t *testing.T) {
		// Declared length 2, but only one trailing byte supplied.
		packet := []byte{
			2, 0x0A, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x02,
			0xBE,
		}
		_, _, err := NewDecoder().Decode(packet)

		var truncErr *TruncatedInputError
		require.ErrorAs(t, err, &truncErr)
		assert.Equal(t, uint64(10), truncErr.Needed)
		assert.Equal(t, 9, truncErr.Available)
	})

	t.Run("HugeDeclaredLength", func(t *testing.T) {
		// A declared length near the 32-bit maximum must report
		// truncated input on every platform; the size arithmetic must
		// not wrap where int is 32 bits wide.
		packet := []byte{2, 0x04, 0x0A, 0x0E, 0xFF, 0xFF, 0xFF, 0xF8}

		var (
			pkt Packet
			n   int
			err error
		)
		require.NotPanics(t, func() {
			pkt, n, err = NewDecoder().Decode(packet)
		})
		assert.Nil(t, pkt)
		assert.Zero(t, n)

		var truncErr *TruncatedInputError
		require.ErrorAs(t, err, &truncErr)
		assert.Equal(t, uint64(CqcHdrLen)+0xFFFFFFF8, truncErr.Needed)
		assert.Equal(t, len(packet), truncErr.Available)
	})
}

// TestDecodeLengthMismatch verifies that a declared length smaller than
// the dispatched structures require is rejected before the read.
func TestDecodeLengthMismatch(t *testing.T) {
	t.Run("Notify", func(t *testing.T) {
		packet := []byte{
			2, 0x0A, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x01,
			0xBE,
		}
		_, _, err := NewDecoder().Decode(packet)

		var lenErr *LengthMismatchError
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, uint32(1), lenErr.Declared)
		assert.Equal(t, uint32(QubitHdrLen), lenErr.Required)
	})

	t.Run("CmdHdr", func(t *testing.T) {
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x03,
			0xBE, 0x56, 0x01,
		}
		_, _, err := NewDecoder().Decode(packet)

		var lenErr *LengthMismatchError
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, uint32(3), lenErr.Declared)
		assert.Equal(t, uint32(CmdHdrLen), lenErr.Required)
	})

	t.Run("Xtra", func(t *testing.T) {
		// A rotation command whose declared length has no room for
		// the rotation header.
		packet := []byte{
			2, 0x01, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x04,
			0xBE, 0x56, 0x0E, 0x00,
		}
		_, _, err := NewDecoder().Decode(packet)

		var lenErr *LengthMismatchError
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, uint32(4), lenErr.Declared)
		assert.Equal(t, uint32(CmdHdrLen+RotHdrLen), lenErr.Required)
	})

	t.Run("EprOk", func(t *testing.T) {
		packet := make([]byte, CqcHdrLen+QubitHdrLen+EntInfoHdrLen-1)
		copy(packet, []byte{2, 0x06, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x29})

		_, _, err := NewDecoder().Decode(packet)

		var lenErr *LengthMismatchError
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, uint32(0x29), lenErr.Declared)
		assert.Equal(t, uint32(QubitHdrLen+EntInfoHdrLen), lenErr.Required)
	})
}

// TestDecodeSkipsPadding verifies that declared bytes beyond the
// dispatched structures are skipped and counted as consumed, so a caller
// can advance to the next packet.
func TestDecodeSkipsPadding(t *testing.T) {
	packet := []byte{
		2, 0x04, 0x0A, 0x0E, 0x00, 0x00, 0x00, 0x03,
		0xDE, 0xAD, 0xBF,
		// Start of a following packet; must not be consumed.
		2, 0x00,
	}

	pkt, n, err := NewDecoder().Decode(packet)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	rsp, ok := pkt.(*Response)
	require.True(t, ok)
	assert.Equal(t, TpDone, rsp.CqcHdr.MsgType)
	assert.Nil(t, rsp.Notify)
}
