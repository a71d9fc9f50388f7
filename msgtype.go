// This file defines the CQC message type code space.  The space is split
// into a contiguous normal range and a disjoint error range; values outside
// both ranges are rejected by the decoder.
package cqc

// MsgType is the message type discriminant of a CQC header.
type MsgType uint8

// Normal message types.
const (
	TpHello   MsgType = 0  // Alive check.
	TpCommand MsgType = 1  // Execute a command list.
	TpFactory MsgType = 2  // Start executing command list repeatedly.
	TpExpire  MsgType = 3  // Qubit has expired.
	TpDone    MsgType = 4  // Command execution done.
	TpRecv    MsgType = 5  // Received qubit.
	TpEprOk   MsgType = 6  // Created EPR pair.
	TpMeasOut MsgType = 7  // Measurement outcome.
	TpGetTime MsgType = 8  // Get creation time of qubit.
	TpInfTime MsgType = 9  // Inform about time.
	TpNewOk   MsgType = 10 // Created new qubit.
	TpMix     MsgType = 11 // Multiple header types will follow.
	TpIf      MsgType = 12 // Perform a conditional action.
)

// Error message types.
const (
	ErrGeneral MsgType = 20 // General purpose error (no details).
	ErrNoQubit MsgType = 21 // No more qubits available.
	ErrUnsupp  MsgType = 22 // Command sequence not supported.
	ErrTimeout MsgType = 23 // Timeout.
	ErrInUse   MsgType = 24 // Qubit already in use.
	ErrUnknown MsgType = 25 // Unknown qubit ID.
)

// GetMsgType converts an 8-bit value to a message type.  The second return
// value is false if the value does not correspond to a valid message type.
func GetMsgType(value uint8) (MsgType, bool) {
	t := MsgType(value)
	if t <= TpIf || (t >= ErrGeneral && t <= ErrUnknown) {
		return t, true
	}
	return 0, false
}

// IsTp reports whether the message type is in the normal range.
func (t MsgType) IsTp() bool {
	return t <= TpIf
}

// IsErr reports whether the message type is in the error range.
func (t MsgType) IsErr() bool {
	return t >= ErrGeneral && t <= ErrUnknown
}

func (t MsgType) String() string {
	switch t {
	case TpHello:
		return "Hello"
	case TpCommand:
		return "Command"
	case TpFactory:
		return "Factory"
	case TpExpire:
		return "Expire"
	case TpDone:
		return "Done"
	case TpRecv:
		return "Recv"
	case TpEprOk:
		return "EprOk"
	case TpMeasOut:
		return "MeasOut"
	case TpGetTime:
		return "GetTime"
	case TpInfTime:
		return "InfTime"
	case TpNewOk:
		return "NewOk"
	case TpMix:
		return "Mix"
	case TpIf:
		return "If"
	case ErrGeneral:
		return "ErrGeneral"
	case ErrNoQubit:
		return "ErrNoQubit"
	case ErrUnsupp:
		return "ErrUnsupp"
	case ErrTimeout:
		return "ErrTimeout"
	case ErrInUse:
		return "ErrInUse"
	case ErrUnknown:
		return "ErrUnknown"
	}
	return "Invalid"
}
