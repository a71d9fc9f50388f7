// This file provides utility functions to build valid CQC packets.  Its
// main purpose is to provide an API that can guarantee correct packet
// format: every constructor computes the top-level length field with the
// same accounting the encoder uses, so packets built exclusively with this
// API always encode without error given a sufficient buffer.
package cqc

func buildRequest(msgType MsgType, appID uint16, reqCmd *ReqCmd) *Request {
	req := &Request{
		CqcHdr: CqcHdr{
			Version: CurrentVersion,
			MsgType: msgType,
			AppID:   appID,
		},
		ReqCmd: reqCmd,
	}
	req.CqcHdr.Length = req.BodyLen()
	return req
}

// BuildHello builds a liveness-check request.
func BuildHello(appID uint16) *Request {
	return buildRequest(TpHello, appID, nil)
}

// BuildCommand builds a Command request around the given command block.
func BuildCommand(appID uint16, reqCmd *ReqCmd) *Request {
	return buildRequest(TpCommand, appID, reqCmd)
}

// BuildFactory builds a Factory request around the given command block.
func BuildFactory(appID uint16, reqCmd *ReqCmd) *Request {
	return buildRequest(TpFactory, appID, reqCmd)
}

// BuildGetTime builds a GetTime request for the given qubit.
func BuildGetTime(appID uint16, qubitID uint16) *Request {
	return buildRequest(TpGetTime, appID, buildCmd(qubitID, CmdI, 0))
}

func buildCmd(qubitID uint16, instr Cmd, options CmdOpt) *ReqCmd {
	return &ReqCmd{
		CmdHdr: CmdHdr{
			QubitID: qubitID,
			Instr:   instr,
			Options: options,
		},
	}
}

// BuildCmdI builds an identity command block.
func BuildCmdI(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdI, options)
}

// BuildCmdNew builds a command block asking for a new qubit.
func BuildCmdNew(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdNew, options)
}

// BuildCmdMeasure builds a measurement command block.
func BuildCmdMeasure(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdMeasure, options)
}

// BuildCmdMeasureInplace builds an in-place measurement command block.
func BuildCmdMeasureInplace(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdMeasureInplace, options)
}

// BuildCmdReset builds a reset command block.
func BuildCmdReset(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdReset, options)
}

// BuildCmdSend builds a command block sending the qubit to the remote node
// described by comm.
func BuildCmdSend(qubitID uint16, options CmdOpt, comm CommHdr) *ReqCmd {
	reqCmd := buildCmd(qubitID, CmdSend, options)
	reqCmd.Xtra = comm
	return reqCmd
}

// BuildCmdRecv builds a command block asking to receive a qubit.
func BuildCmdRecv(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdRecv, options)
}

// BuildCmdEpr builds a command block creating an EPR pair with the remote
// node described by comm.
func BuildCmdEpr(qubitID uint16, options CmdOpt, comm CommHdr) *ReqCmd {
	reqCmd := buildCmd(qubitID, CmdEpr, options)
	reqCmd.Xtra = comm
	return reqCmd
}

// BuildCmdEprRecv builds a command block asking to receive an EPR pair.
func BuildCmdEprRecv(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdEprRecv, options)
}

// BuildCmdX builds a Pauli X command block.
func BuildCmdX(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdX, options)
}

// BuildCmdY builds a Pauli Y command block.
func BuildCmdY(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdY, options)
}

// BuildCmdZ builds a Pauli Z command block.
func BuildCmdZ(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdZ, options)
}

// BuildCmdT builds a T gate command block.
func BuildCmdT(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdT, options)
}

// BuildCmdH builds a Hadamard command block.
func BuildCmdH(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdH, options)
}

// BuildCmdK builds a K gate command block.
func BuildCmdK(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdK, options)
}

func buildRotCmd(qubitID uint16, instr Cmd, options CmdOpt, step uint8) *ReqCmd {
	reqCmd := buildCmd(qubitID, instr, options)
	reqCmd.Xtra = RotHdr{Step: step}
	return reqCmd
}

// BuildCmdRotX builds an X rotation command block over step increments of
// pi/256.
func BuildCmdRotX(qubitID uint16, options CmdOpt, step uint8) *ReqCmd {
	return buildRotCmd(qubitID, CmdRotX, options, step)
}

// BuildCmdRotY builds a Y rotation command block over step increments of
// pi/256.
func BuildCmdRotY(qubitID uint16, options CmdOpt, step uint8) *ReqCmd {
	return buildRotCmd(qubitID, CmdRotY, options, step)
}

// BuildCmdRotZ builds a Z rotation command block over step increments of
// pi/256.
func BuildCmdRotZ(qubitID uint16, options CmdOpt, step uint8) *ReqCmd {
	return buildRotCmd(qubitID, CmdRotZ, options, step)
}

// BuildCmdCnot builds a CNOT command block with qubitID as control and
// targetQubitID as target.
func BuildCmdCnot(qubitID uint16, options CmdOpt, targetQubitID uint16) *ReqCmd {
	reqCmd := buildCmd(qubitID, CmdCnot, options)
	reqCmd.Xtra = QubitHdr{QubitID: targetQubitID}
	return reqCmd
}

// BuildCmdCphase builds a CPHASE command block with qubitID as control and
// targetQubitID as target.
func BuildCmdCphase(qubitID uint16, options CmdOpt, targetQubitID uint16) *ReqCmd {
	reqCmd := buildCmd(qubitID, CmdCphase, options)
	reqCmd.Xtra = QubitHdr{QubitID: targetQubitID}
	return reqCmd
}

// BuildCmdAllocate builds a command block allocating a number of qubits.
func BuildCmdAllocate(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdAllocate, options)
}

// BuildCmdRelease builds a command block releasing a qubit.
func BuildCmdRelease(qubitID uint16, options CmdOpt) *ReqCmd {
	return buildCmd(qubitID, CmdRelease, options)
}

// The response builders cover the node side of the interface.

func buildResponse(msgType MsgType, appID uint16, notify RspInfo) *Response {
	rsp := &Response{
		CqcHdr: CqcHdr{
			Version: CurrentVersion,
			MsgType: msgType,
			AppID:   appID,
		},
		Notify: notify,
	}
	rsp.CqcHdr.Length = rsp.BodyLen()
	return rsp
}

// BuildDone builds a command-execution-done response.
func BuildDone(appID uint16) *Response {
	return buildResponse(TpDone, appID, nil)
}

// BuildExpire builds a qubit-expired response.
func BuildExpire(appID uint16) *Response {
	return buildResponse(TpExpire, appID, nil)
}

// BuildNewOk builds a qubit-created response naming the new qubit.
func BuildNewOk(appID uint16, qubitID uint16) *Response {
	return buildResponse(TpNewOk, appID, QubitHdr{QubitID: qubitID})
}

// BuildRecv builds a qubit-received response naming the received qubit.
func BuildRecv(appID uint16, qubitID uint16) *Response {
	return buildResponse(TpRecv, appID, QubitHdr{QubitID: qubitID})
}

// BuildMeasOut builds a measurement-outcome response.
func BuildMeasOut(appID uint16, outcome MeasOut) *Response {
	return buildResponse(TpMeasOut, appID, MeasOutHdr{MeasOut: outcome})
}

// BuildInfTime builds a time-info response.
func BuildInfTime(appID uint16, datetime uint64) *Response {
	return buildResponse(TpInfTime, appID, TimeInfoHdr{Datetime: datetime})
}

// BuildEprOk builds an EPR-created response from the local qubit header
// and the entanglement information.
func BuildEprOk(appID uint16, qubit QubitHdr, entInfo EntInfoHdr) *Response {
	return buildResponse(TpEprOk, appID, EprInfo{Qubit: qubit, EntInfo: entInfo})
}

// BuildErr builds an error response.  msgType must be in the error range;
// error responses never carry a notify block.
func BuildErr(appID uint16, msgType MsgType) *Response {
	return buildResponse(msgType, appID, nil)
}
