// This file implements the encoder.  The length field of the CQC header is
// always computed from the trailing structures actually present on the
// value, so a request or response built from consistent parts encodes to a
// packet whose length accounting is exact.
package cqc

// Encoder serialises Request and Response values into caller-supplied
// buffers.  The zero value is ready to use and safe for concurrent use;
// the encoder keeps no reference to any buffer after a call returns.
type Encoder struct{}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeRequest writes the request into buf and returns the number of
// bytes written.  If buf cannot hold the full packet a BufferTooSmallError
// is returned and buf is left untouched.
func (e *Encoder) EncodeRequest(req *Request, buf []byte) (int, error) {
	bodyLen := req.BodyLen()
	needed := CqcHdrLen + int(bodyLen)
	if len(buf) < needed {
		return 0, &BufferTooSmallError{Needed: needed, Available: len(buf)}
	}

	cqcHdr := req.CqcHdr
	cqcHdr.Length = bodyLen
	cqcHdr.EncodeTo(buf)

	if req.ReqCmd != nil {
		req.ReqCmd.CmdHdr.EncodeTo(buf[CqcHdrLen:])
		if req.ReqCmd.Xtra != nil {
			req.ReqCmd.Xtra.EncodeTo(buf[CqcHdrLen+CmdHdrLen:])
		}
	}

	return needed, nil
}

// EncodeResponse writes the response into buf and returns the number of
// bytes written.  If buf cannot hold the full packet a BufferTooSmallError
// is returned and buf is left untouched.
func (e *Encoder) EncodeResponse(rsp *Response, buf []byte) (int, error) {
	bodyLen := rsp.BodyLen()
	needed := CqcHdrLen + int(bodyLen)
	if len(buf) < needed {
		return 0, &BufferTooSmallError{Needed: needed, Available: len(buf)}
	}

	cqcHdr := rsp.CqcHdr
	cqcHdr.Length = bodyLen
	cqcHdr.EncodeTo(buf)

	if rsp.Notify != nil {
		rsp.Notify.EncodeTo(buf[CqcHdrLen:])
	}

	return needed, nil
}
