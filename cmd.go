// This file defines the CQC command header and the instruction code space.
package cqc

import "encoding/binary"

// CmdHdrLen is the fixed size in bytes of the command header.
const CmdHdrLen = 4

// CmdHdr identifies the instruction to execute and the qubit ID on which
// to perform it.
//
//	Field     Length     Meaning
//	-----     ------     -------
//	qubit_id  2 bytes    Qubit ID to perform the operation on.
//	instr     1 byte     Instruction to perform.
//	options   1 byte     Options when executing the command.
type CmdHdr struct {
	QubitID uint16
	Instr   Cmd
	Options CmdOpt
}

// EncodeTo writes the header into b, which must hold at least CmdHdrLen
// bytes.
func (h CmdHdr) EncodeTo(b []byte) {
	binary.BigEndian.PutUint16(b[0:2], h.QubitID)
	b[2] = uint8(h.Instr)
	b[3] = uint8(h.Options)
}

// Cmd is the instruction discriminant of a command header.
type Cmd uint8

const (
	CmdI              Cmd = 0 // Identity (do nothing, wait one step).
	CmdNew            Cmd = 1 // Ask for a new qubit.
	CmdMeasure        Cmd = 2 // Measure qubit.
	CmdMeasureInplace Cmd = 3 // Measure qubit in-place.
	CmdReset          Cmd = 4 // Reset qubit to |0>.
	CmdSend           Cmd = 5 // Send qubit to another node.
	CmdRecv           Cmd = 6 // Ask to receive qubit.
	CmdEpr            Cmd = 7 // Create EPR pair with the specified node.
	CmdEprRecv        Cmd = 8 // Receive EPR pair.

	CmdX    Cmd = 10 // Pauli X.
	CmdZ    Cmd = 11 // Pauli Z.
	CmdY    Cmd = 12 // Pauli Y.
	CmdT    Cmd = 13 // T Gate.
	CmdRotX Cmd = 14 // Rotation around X in pi/256 increments.
	CmdRotY Cmd = 15 // Rotation around Y in pi/256 increments.
	CmdRotZ Cmd = 16 // Rotation around Z in pi/256 increments.
	CmdH    Cmd = 17 // Hadamard gate.
	CmdK    Cmd = 18 // K gate - taking computational to Y eigenbasis.

	CmdCnot   Cmd = 20 // CNOT gate with this as control.
	CmdCphase Cmd = 21 // CPHASE gate with this as control.

	CmdAllocate Cmd = 22 // Allocate a number of qubits.
	CmdRelease  Cmd = 23 // Release a qubit.
)

// GetCmd converts an 8-bit value to an instruction.  The second return
// value is false if the value does not correspond to a valid instruction.
func GetCmd(value uint8) (Cmd, bool) {
	c := Cmd(value)
	switch {
	case c <= CmdEprRecv:
		return c, true
	case c >= CmdX && c <= CmdK:
		return c, true
	case c >= CmdCnot && c <= CmdRelease:
		return c, true
	}
	return 0, false
}

func (c Cmd) String() string {
	switch c {
	case CmdI:
		return "I"
	case CmdNew:
		return "New"
	case CmdMeasure:
		return "Measure"
	case CmdMeasureInplace:
		return "MeasureInplace"
	case CmdReset:
		return "Reset"
	case CmdSend:
		return "Send"
	case CmdRecv:
		return "Recv"
	case CmdEpr:
		return "Epr"
	case CmdEprRecv:
		return "EprRecv"
	case CmdX:
		return "X"
	case CmdZ:
		return "Z"
	case CmdY:
		return "Y"
	case CmdT:
		return "T"
	case CmdRotX:
		return "RotX"
	case CmdRotY:
		return "RotY"
	case CmdRotZ:
		return "RotZ"
	case CmdH:
		return "H"
	case CmdK:
		return "K"
	case CmdCnot:
		return "Cnot"
	case CmdCphase:
		return "Cphase"
	case CmdAllocate:
		return "Allocate"
	case CmdRelease:
		return "Release"
	}
	return "Invalid"
}
