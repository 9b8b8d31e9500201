package network

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MaxFrameSize is the largest encoded message accepted from a connection.
const MaxFrameSize = 1 << 20

const headerSize = 4

var (
	ErrFrameTooLarge = errors.New("network: frame too large")
	ErrEmptyFrame    = errors.New("network: empty frame")
)

// Message is the unit exchanged between host and peers. Data may hold any
// value msgpack can encode; receivers see it in its generic decoded form
// and use Bind to recover a typed value.
type Message struct {
	Key  string `msgpack:"key"`
	Data any    `msgpack:"data"`
}

// Bind decodes the message data into v, which must be a pointer.
func (m Message) Bind(v any) error {
	b, err := msgpack.Marshal(m.Data)
	if err != nil {
		return fmt.Errorf("bind %q: %w", m.Key, err)
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		return fmt.Errorf("bind %q: %w", m.Key, err)
	}
	return nil
}

// encodeFrame returns m encoded and prefixed with its big-endian length.
func encodeFrame(m Message) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(make([]byte, headerSize))
	if err := msgpack.NewEncoder(&buf).Encode(&m); err != nil {
		return nil, fmt.Errorf("encode %q: %w", m.Key, err)
	}
	frame := buf.Bytes()
	n := len(frame) - headerSize
	if n > MaxFrameSize {
		return nil, fmt.Errorf("encode %q (%d bytes): %w", m.Key, n, ErrFrameTooLarge)
	}
	binary.BigEndian.PutUint32(frame, uint32(n))
	return frame, nil
}

// WriteMessage writes m to w as one frame.
func WriteMessage(w io.Writer, m Message) error {
	frame, err := encodeFrame(m)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// readFrame reads one frame from r and returns it including its header, so
// it can be relayed without re-encoding.
func readFrame(r io.Reader) ([]byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(header[:])
	switch {
	case n == 0:
		return nil, ErrEmptyFrame
	case n > MaxFrameSize:
		return nil, fmt.Errorf("read frame of %d bytes: %w", n, ErrFrameTooLarge)
	}
	frame := make([]byte, headerSize+int(n))
	copy(frame, header[:])
	if _, err := io.ReadFull(r, frame[headerSize:]); err != nil {
		return nil, err
	}
	return frame, nil
}

func decodeFrame(frame []byte) (Message, error) {
	var m Message
	if err := msgpack.Unmarshal(frame[headerSize:], &m); err != nil {
		return Message{}, fmt.Errorf("decode frame: %w", err)
	}
	return m, nil
}

// ReadMessage reads and decodes one frame from r.
func ReadMessage(r io.Reader) (Message, error) {
	frame, err := readFrame(r)
	if err != nil {
		return Message{}, err
	}
	return decodeFrame(frame)
}
