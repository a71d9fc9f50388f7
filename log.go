// This file implements zerolog object marshalling for the packet values
// so callers can attach packets to structured log events.  The codec
// itself never logs.
package cqc

import "github.com/rs/zerolog"

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (h CqcHdr) MarshalZerologObject(e *zerolog.Event) {
	e.Uint8("version", uint8(h.Version)).
		Str("msgType", h.MsgType.String()).
		Uint16("appID", h.AppID).
		Uint32("length", h.Length)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (h CmdHdr) MarshalZerologObject(e *zerolog.Event) {
	e.Uint16("qubitID", h.QubitID).
		Str("instr", h.Instr.String()).
		Uint8("options", uint8(h.Options))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (h EntInfoHdr) MarshalZerologObject(e *zerolog.Event) {
	e.Uint32("nodeA", h.NodeA).
		Uint16("portA", h.PortA).
		Uint16("appIDA", h.AppIDA).
		Uint32("nodeB", h.NodeB).
		Uint16("portB", h.PortB).
		Uint16("appIDB", h.AppIDB).
		Uint32("entID", h.EntID).
		Uint64("timestamp", h.Timestamp).
		Uint64("tog", h.ToG).
		Uint16("goodness", h.Goodness).
		Uint8("df", h.DF)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r *Request) MarshalZerologObject(e *zerolog.Event) {
	e.Object("cqcHdr", r.CqcHdr)
	if r.ReqCmd == nil {
		return
	}
	e.Object("cmdHdr", r.ReqCmd.CmdHdr)
	switch xtra := r.ReqCmd.Xtra.(type) {
	case RotHdr:
		e.Uint8("step", xtra.Step)
	case QubitHdr:
		e.Uint16("targetQubitID", xtra.QubitID)
	case CommHdr:
		e.Uint16("remoteAppID", xtra.RemoteAppID).
			Uint16("remotePort", xtra.RemotePort).
			Uint32("remoteNode", xtra.RemoteNode)
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r *Response) MarshalZerologObject(e *zerolog.Event) {
	e.Object("cqcHdr", r.CqcHdr)
	switch notify := r.Notify.(type) {
	case QubitHdr:
		e.Uint16("qubitID", notify.QubitID)
	case MeasOutHdr:
		e.Uint8("outcome", uint8(notify.MeasOut))
	case TimeInfoHdr:
		e.Uint64("datetime", notify.Datetime)
	case EprInfo:
		e.Uint16("qubitID", notify.Qubit.QubitID)
		e.Object("entInfo", notify.EntInfo)
	}
}
