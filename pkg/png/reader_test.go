package png

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkReader_Sequence(t *testing.T) {
	first := mustChunk(t, "ruSt", "one")
	second := mustChunk(t, "teXt", "two")

	var stream bytes.Buffer
	stream.Write(first.Bytes())
	stream.Write(second.Bytes())

	r := NewChunkReader(&stream)

	c, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), c.Data())

	c, err = r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), c.Data())

	_, err = r.ReadNext()
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, int64(first.Size()+second.Size()), r.Offset())
}

func TestChunkReader_TruncatedFrame(t *testing.T) {
	t.Run("cut inside payload", func(t *testing.T) {
		frame := mustChunk(t, "ruSt", "truncated message").Bytes()
		r := NewChunkReader(bytes.NewReader(frame[:len(frame)-6]))

		_, err := r.ReadNext()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("cut inside header", func(t *testing.T) {
		frame := mustChunk(t, "ruSt", "truncated message").Bytes()
		r := NewChunkReader(bytes.NewReader(frame[:5]))

		_, err := r.ReadNext()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestChunkReader_OversizeLength(t *testing.T) {
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[:4], 1<<31)
	copy(header[4:], "ruSt")

	r := NewChunkReader(bytes.NewReader(header))

	_, err := r.ReadNext()
	assert.ErrorIs(t, err, ErrOversizeChunk)
}

func TestChunkReader_Iterator(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(mustChunk(t, "ruSt", "one").Bytes())
	stream.Write(mustChunk(t, "ruSt", "two").Bytes())
	stream.Write(mustChunk(t, "ruSt", "three").Bytes())

	it := NewChunkReader(&stream).Iterator()

	var payloads []string
	for it.Next() {
		payloads = append(payloads, string(it.Chunk().Data()))
	}

	assert.ErrorIs(t, it.Err(), io.EOF)
	assert.Equal(t, []string{"one", "two", "three"}, payloads)
}
