// Package netplay connects two games over a single TCP connection.
//
// Frames are big-endian: an int32 message type, a uint16 byte length
// followed by that many bytes of UTF-8 payload, and an int64 timestamp in
// Unix milliseconds.
package netplay

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
	"unicode/utf8"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// MessageType identifies the purpose of a message.
type MessageType int32

const (
	Text      MessageType = iota // Free text, e.g. chat
	GameMove                     // A move in UCI notation
	GameState                    // A full position as FEN
	Control                      // Handshake and protocol replies
	Data                         // Anything else
)

var messageTypeNames = [...]string{"text", "move", "state", "control", "data"}

func (t MessageType) String() string {
	if t >= 0 && int(t) < len(messageTypeNames) {
		return messageTypeNames[t]
	}
	return fmt.Sprintf("type(%d)", int32(t))
}

// MaxPayload is the largest payload a frame can carry.
const MaxPayload = math.MaxUint16

// Message is one frame exchanged between peers.
type Message struct {
	Type      MessageType
	Payload   string
	Timestamp time.Time
}

// NewMessage creates a message stamped with the current time.
func NewMessage(t MessageType, payload string) Message {
	return Message{Type: t, Payload: payload, Timestamp: time.Now()}
}

// WriteMessage encodes m to w as a single frame.
func WriteMessage(w io.Writer, m Message) error {
	if len(m.Payload) > MaxPayload {
		return &errors.ParseError{
			Err:      errors.ErrInvalidMessage,
			Field:    "payload",
			Expected: fmt.Sprintf("at most %d bytes", MaxPayload),
			Got:      fmt.Sprintf("%d bytes", len(m.Payload)),
		}
	}

	buf := make([]byte, 0, 4+2+len(m.Payload)+8)
	buf = binary.BigEndian.AppendUint32(buf, uint32(m.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(m.Payload)))
	buf = append(buf, m.Payload...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(m.Timestamp.UnixMilli()))

	_, err := w.Write(buf)
	return err
}

// ReadMessage decodes one frame from r. Unknown type values decode as
// Data. A clean end of stream before the first byte returns io.EOF.
func ReadMessage(r io.Reader) (Message, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return Message{}, io.EOF
		}
		return Message{}, truncated("header", err)
	}

	t := MessageType(int32(binary.BigEndian.Uint32(header[0:4])))
	if t < Text || t > Data {
		t = Data
	}

	payload := make([]byte, binary.BigEndian.Uint16(header[4:6]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return Message{}, truncated("payload", err)
	}
	if !utf8.Valid(payload) {
		return Message{}, &errors.ParseError{Err: errors.ErrInvalidMessage, Field: "payload", Expected: "UTF-8 text"}
	}

	var stamp [8]byte
	if _, err := io.ReadFull(r, stamp[:]); err != nil {
		return Message{}, truncated("timestamp", err)
	}

	return Message{
		Type:      t,
		Payload:   string(payload),
		Timestamp: time.UnixMilli(int64(binary.BigEndian.Uint64(stamp[:]))),
	}, nil
}

func truncated(field string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%s: %w: %w", field, errors.ErrInvalidMessage, err)
}
