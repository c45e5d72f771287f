// Package wire implements the on-the-wire framing for the four
// challenge-response messages: ClientChallenge, ServerResponse,
// ClientResponse, and Result. All fields are fixed-length and encoded
// explicitly in little-endian, field by field, so the codec behaves
// identically regardless of host byte order.
//
// Example:
//
//	buf := wire.ClientChallenge{Nonce: nonce}.Encode()
//	msg, err := wire.DecodeClientChallenge(buf)
package wire

import "encoding/binary"

// SOH is the start-of-header magic value common to every message.
const SOH uint16 = 0x65A2

// MsgID identifies the message type following the header.
type MsgID byte

const (
	MsgClientChallenge MsgID = 0x01
	MsgServerResponse  MsgID = 0x02
	MsgClientResponse  MsgID = 0x03
	MsgResult          MsgID = 0x04
)

const headerLen = 3

func putHeader(buf []byte, id MsgID) {
	binary.LittleEndian.PutUint16(buf[0:2], SOH)
	buf[2] = byte(id)
}

func checkHeader(buf []byte, want MsgID) error {
	if len(buf) < headerLen {
		return ErrShortBuffer
	}
	soh := binary.LittleEndian.Uint16(buf[0:2])
	if soh != SOH {
		return ErrBadHeader
	}
	if MsgID(buf[2]) != want {
		return ErrUnexpectedMessage
	}
	return nil
}
