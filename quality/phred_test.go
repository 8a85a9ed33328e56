package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqview/quality"
)

func TestPhredChars(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(quality.Phred(0), quality.FromChar('!'))
	assert.Equal(quality.Phred(40), quality.FromChar('I'))
	assert.Equal(byte('!'), quality.Phred(0).Char())
	assert.Equal(byte('I'), quality.Phred(40).Char())

	for r := quality.Phred(0); r < 42; r++ {
		assert.Equal(r, quality.FromChar(r.Char()))
	}
}

func TestDecodeString(t *testing.T) {
	assert := assert.New(t)

	got := quality.DecodeString("!I5")
	assert.Equal([]quality.Phred{0, 40, 20}, got)
}

func TestQual(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(40), quality.Phred(40).Qual())

	s := quality.Scored[byte]{Sym: 'A', Score: 30}
	assert.Equal(uint8(30), s.Qual())
}
