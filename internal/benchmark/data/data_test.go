package data

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(16), Generate(16))
	assert.Equal(t, Generate(4096), Generate(4096))
	assert.Equal(t, []byte{159, 104, 118, 68, 79, 77, 118, 208, 145, 55, 111, 87, 116, 65, 158, 81}, Generate(16))
}

func TestGenerateLength(t *testing.T) {
	for _, size := range []int{0, 16, 4096, 8 << 20} {
		assert.Len(t, Generate(size), size)
	}
	assert.Empty(t, Generate(0))
}

func TestGenerateIsNotARepeatedPattern(t *testing.T) {
	head := Generate(16)
	buf := Generate(256)

	assert.Equal(t, head, buf[:16], "same seed for every size")
	assert.NotEqual(t, bytes.Repeat(head, 16), buf)
	for off := 16; off < len(buf); off += 16 {
		assert.NotEqual(t, head, buf[off:off+16], "block at %d", off)
	}
}

func TestGenerateNegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() { Generate(-1) })
}
