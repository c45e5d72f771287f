package wire

import "encoding/binary"

// ClientChallenge carries the client's random nonce.
//
//	3 + 32 = 35 bytes on the wire
type ClientChallenge struct {
	Nonce [32]byte
}

const ClientChallengeLen = headerLen + 32

// Encode serializes a ClientChallenge.
func (m ClientChallenge) Encode() []byte {
	buf := make([]byte, ClientChallengeLen)
	putHeader(buf, MsgClientChallenge)
	copy(buf[headerLen:], m.Nonce[:])
	return buf
}

// DecodeClientChallenge validates and parses a ClientChallenge.
func DecodeClientChallenge(buf []byte) (ClientChallenge, error) {
	if err := checkHeader(buf, MsgClientChallenge); err != nil {
		return ClientChallenge{}, err
	}
	if len(buf) < ClientChallengeLen {
		return ClientChallenge{}, ErrShortBuffer
	}
	var m ClientChallenge
	copy(m.Nonce[:], buf[headerLen:ClientChallengeLen])
	return m, nil
}

// ServerResponse carries the server's hash of the client's nonce plus
// the server's own random nonce.
//
//	3 + 32 + 32 = 67 bytes on the wire
type ServerResponse struct {
	Response [32]byte
	Nonce    [32]byte
}

const ServerResponseLen = headerLen + 32 + 32

// Encode serializes a ServerResponse.
func (m ServerResponse) Encode() []byte {
	buf := make([]byte, ServerResponseLen)
	putHeader(buf, MsgServerResponse)
	copy(buf[headerLen:headerLen+32], m.Response[:])
	copy(buf[headerLen+32:], m.Nonce[:])
	return buf
}

// DecodeServerResponse validates and parses a ServerResponse.
func DecodeServerResponse(buf []byte) (ServerResponse, error) {
	if err := checkHeader(buf, MsgServerResponse); err != nil {
		return ServerResponse{}, err
	}
	if len(buf) < ServerResponseLen {
		return ServerResponse{}, ErrShortBuffer
	}
	var m ServerResponse
	copy(m.Response[:], buf[headerLen:headerLen+32])
	copy(m.Nonce[:], buf[headerLen+32:ServerResponseLen])
	return m, nil
}

// ClientResponse carries the client's hash of the server's nonce.
//
//	3 + 32 = 35 bytes on the wire
type ClientResponse struct {
	Response [32]byte
}

const ClientResponseLen = headerLen + 32

// Encode serializes a ClientResponse.
func (m ClientResponse) Encode() []byte {
	buf := make([]byte, ClientResponseLen)
	putHeader(buf, MsgClientResponse)
	copy(buf[headerLen:], m.Response[:])
	return buf
}

// DecodeClientResponse validates and parses a ClientResponse.
func DecodeClientResponse(buf []byte) (ClientResponse, error) {
	if err := checkHeader(buf, MsgClientResponse); err != nil {
		return ClientResponse{}, err
	}
	if len(buf) < ClientResponseLen {
		return ClientResponse{}, ErrShortBuffer
	}
	var m ClientResponse
	copy(m.Response[:], buf[headerLen:ClientResponseLen])
	return m, nil
}

// Result carries the final success/failure verdict of one side.
//
//	3 + 1 = 4 bytes on the wire
type Result struct {
	Failed bool
}

const ResultLen = headerLen + 1

// Encode serializes a Result.
func (m Result) Encode() []byte {
	buf := make([]byte, ResultLen)
	putHeader(buf, MsgResult)
	if m.Failed {
		buf[headerLen] = 1
	}
	return buf
}

// DecodeResult validates and parses a Result.
func DecodeResult(buf []byte) (Result, error) {
	if err := checkHeader(buf, MsgResult); err != nil {
		return Result{}, err
	}
	if len(buf) < ResultLen {
		return Result{}, ErrShortBuffer
	}
	return Result{Failed: buf[headerLen] != 0}, nil
}

// PeekMsgID reads the message id out of a header without validating
// the payload, used by the server to distinguish a ClientResponse from
// an early Result while only a 3-byte header has been read.
func PeekMsgID(header []byte) (MsgID, error) {
	if len(header) < headerLen {
		return 0, ErrShortBuffer
	}
	if err := checkHeaderOnly(header); err != nil {
		return 0, err
	}
	return MsgID(header[2]), nil
}

func checkHeaderOnly(buf []byte) error {
	if len(buf) < headerLen {
		return ErrShortBuffer
	}
	if binary.LittleEndian.Uint16(buf[0:2]) != SOH {
		return ErrBadHeader
	}
	return nil
}
