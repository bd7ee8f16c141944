package permission

import (
	"encoding/binary"
	"fmt"
)

// EncodeMask serializes a mask as big-endian 64-bit words, lowest word first.
// The encoded length (8, 16, 32 or 64 bytes) identifies the width.
func EncodeMask(mask Mask) ([]byte, error) {
	if mask == nil {
		return nil, ErrInvalidMaskType
	}

	words := mask.Words()
	buf := make([]byte, 0, len(words)*8)
	for _, w := range words {
		buf = binary.BigEndian.AppendUint64(buf, w)
	}

	return buf, nil
}

// DecodeMask reverses [EncodeMask].
func DecodeMask(data []byte) (Mask, error) {
	mask, err := NewMask(len(data) * 8)
	if err != nil || len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidMaskSize, len(data))
	}

	switch m := mask.(type) {
	case *Mask64:
		*m = Mask64(binary.BigEndian.Uint64(data))
	case *Mask128:
		decodeWords(m[:], data)
	case *Mask256:
		decodeWords(m[:], data)
	case *Mask512:
		decodeWords(m[:], data)
	}

	return mask, nil
}

func decodeWords(dst []uint64, data []byte) {
	for i := range dst {
		dst[i] = binary.BigEndian.Uint64(data[i*8 : (i+1)*8])
	}
}
