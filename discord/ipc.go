package discord

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

type opcode uint32

const (
	opHandshake opcode = iota
	opFrame
	opClose
	opPing
	opPong
)

// maxFrameSize bounds the body length read from the socket.
const maxFrameSize = 1 << 20

// headerSize is the opcode plus the body length, both little-endian uint32.
const headerSize = 8

// handshake is the first frame sent on a fresh connection.
type handshake struct {
	Version  int    `json:"v"`
	ClientID string `json:"client_id"`
}

// command is an outgoing RPC request.
type command struct {
	Cmd   string `json:"cmd"`
	Args  any    `json:"args"`
	Nonce string `json:"nonce"`
}

// response is an incoming RPC frame. Data is only decoded on error.
type response struct {
	Cmd   string          `json:"cmd"`
	Evt   string          `json:"evt"`
	Nonce string          `json:"nonce"`
	Data  json.RawMessage `json:"data"`
}

// closeReason is the body of both a close frame and an ERROR event.
type closeReason struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeFrame encodes v as JSON and writes it with its header in a single call.
func writeFrame(w io.Writer, op opcode, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(body))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(op))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// readFrame reads one frame and returns its opcode and raw body.
func readFrame(r io.Reader) (opcode, []byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, fmt.Errorf("read header: %w", err)
	}

	op := opcode(binary.LittleEndian.Uint32(header[:4]))
	size := binary.LittleEndian.Uint32(header[4:])
	if size > maxFrameSize {
		return 0, nil, fmt.Errorf("frame of %d bytes exceeds limit", size)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, fmt.Errorf("read body: %w", err)
	}

	return op, body, nil
}
