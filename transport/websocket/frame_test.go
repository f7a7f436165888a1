package websocket

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferPipe(buffer *bytes.Buffer) *bufio.ReadWriter {
	return bufio.NewReadWriter(bufio.NewReader(buffer), bufio.NewWriter(buffer))
}

func TestFrameCodec(t *testing.T) {
	t.Run("round-trips a short text frame", func(t *testing.T) {
		// Given: a buffer standing in for the connection.
		var buffer bytes.Buffer
		bufrw := newBufferPipe(&buffer)

		payload := []byte(`{"action":"connect"}`)

		// When: a frame is written and read back.
		err := writeFrame(bufrw, frame{isFin: true, opCode: opText, length: uint64(len(payload)), payload: payload})
		require.NoError(t, err)

		got, err := readRequest(bufrw)

		// Then: the payload survives unchanged.
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("round-trips a payload above the short length limit", func(t *testing.T) {
		var buffer bytes.Buffer
		bufrw := newBufferPipe(&buffer)

		payload := []byte(strings.Repeat("x", 300))

		err := writeFrame(bufrw, frame{isFin: true, opCode: opText, length: uint64(len(payload)), payload: payload})
		require.NoError(t, err)

		got, err := readRequest(bufrw)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("round-trips a payload above the two-byte length limit", func(t *testing.T) {
		var buffer bytes.Buffer
		bufrw := newBufferPipe(&buffer)

		payload := []byte(strings.Repeat("y", 70_000))

		err := writeFrame(bufrw, frame{isFin: true, opCode: opText, length: uint64(len(payload)), payload: payload})
		require.NoError(t, err)

		got, err := readRequest(bufrw)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("unmasks a client frame", func(t *testing.T) {
		// Given: a masked frame as a browser would send it.
		payload := []byte(`{"action":"connect"}`)
		maskKey := []byte{0x0f, 0xaa, 0x55, 0xf0}

		raw := []byte{0x80 | opText, 0x80 | byte(len(payload))}
		raw = append(raw, maskKey...)
		for i, char := range payload {
			raw = append(raw, char^maskKey[i%4])
		}

		bufrw := newBufferPipe(bytes.NewBuffer(raw))

		// When: the frame is read.
		got, err := readRequest(bufrw)

		// Then: the mask has been removed.
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("surfaces a close frame as a closed connection", func(t *testing.T) {
		var buffer bytes.Buffer
		bufrw := newBufferPipe(&buffer)

		err := writeFrame(bufrw, frame{isFin: true, opCode: opClose})
		require.NoError(t, err)

		_, err = readRequest(bufrw)
		require.ErrorIs(t, err, errConnectionClosed)
	})

	t.Run("returns an empty payload for a continuation frame", func(t *testing.T) {
		// Given: a frame without the fin bit set.
		payload := []byte("partial")
		raw := []byte{opText, byte(len(payload))}
		raw = append(raw, payload...)

		bufrw := newBufferPipe(bytes.NewBuffer(raw))

		// When: the frame is read.
		got, err := readRequest(bufrw)

		// Then: the caller is told to read again.
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
