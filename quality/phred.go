// Package quality provides the minimal quality-score encoding used by the
// trim adaptor: rank-based Phred scores with the Sanger printable-character
// offset, plus a scored-symbol pair for quality-annotated sequences.
package quality

// CharOffset is the printable encoding offset of Sanger / Illumina 1.8+
// quality lines: rank 0 prints as '!'.
const CharOffset byte = '!'

// Phred is a rank-encoded quality score.
type Phred uint8

// FromChar decodes one character of a quality line.
func FromChar(c byte) Phred { return Phred(c - CharOffset) }

// Char returns the printable encoding of p.
func (p Phred) Char() byte { return byte(p) + CharOffset }

// Qual returns the integral rank; it satisfies the views.Qualified
// contract.
func (p Phred) Qual() uint8 { return uint8(p) }

// DecodeString decodes a whole quality line.
func DecodeString(line string) []Phred {
	out := make([]Phred, len(line))
	for i := 0; i < len(line); i++ {
		out[i] = FromChar(line[i])
	}
	return out
}

// Scored pairs a symbol with its quality score, standing in for a full
// quality-annotated alphabet. A sequence of Scored elements can be trimmed
// directly.
type Scored[T any] struct {
	Sym   T
	Score Phred
}

// Qual satisfies the views.Qualified contract.
func (s Scored[T]) Qual() uint8 { return s.Score.Qual() }
