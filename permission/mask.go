package permission

import "fmt"

// Mask is a fixed-width permission bitmask. Bit positions come from a [Registry].
//
// When rootReserved is passed to Has and the highest bit of the mask is set,
// every bit reports as granted.
type Mask interface {
	Has(bit int, rootReserved bool) bool
	Set(bit int)
	Clear(bit int)
	Width() int
	Words() []uint64
	Clone() Mask
}

var (
	_ Mask = (*Mask64)(nil)
	_ Mask = (*Mask128)(nil)
	_ Mask = (*Mask256)(nil)
	_ Mask = (*Mask512)(nil)
)

// NewMask returns an empty mask of the given width.
func NewMask(width int) (Mask, error) {
	switch width {
	case 64:
		m := Mask64(0)
		return &m, nil
	case 128:
		return &Mask128{}, nil
	case 256:
		return &Mask256{}, nil
	case 512:
		return &Mask512{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
}

// Mask64 is a 64-bit permission bitmask.
type Mask64 uint64

func (m *Mask64) Has(bit int, rootReserved bool) bool {
	if bit < 0 || bit >= 64 {
		return false
	}

	if rootReserved {
		// root bit = highest bit
		if (*m & (1 << 63)) != 0 {
			return true
		}
	}

	return (*m & (1 << bit)) != 0
}

func (m *Mask64) Set(bit int) {
	if bit < 0 || bit >= 64 {
		return
	}
	*m |= (1 << bit)
}

func (m *Mask64) Clear(bit int) {
	if bit < 0 || bit >= 64 {
		return
	}
	*m &^= (1 << bit)
}

func (m *Mask64) Width() int { return 64 }

func (m *Mask64) Words() []uint64 { return []uint64{uint64(*m)} }

func (m *Mask64) Clone() Mask {
	c := *m
	return &c
}

func (m *Mask64) Raw() uint64 {
	return uint64(*m)
}

// Mask128 is a 128-bit permission bitmask. Word 0 holds bits 0-63.
type Mask128 [2]uint64

func (m *Mask128) Has(bit int, rootReserved bool) bool { return wordsHas(m[:], bit, rootReserved) }
func (m *Mask128) Set(bit int)                         { wordsSet(m[:], bit) }
func (m *Mask128) Clear(bit int)                       { wordsClear(m[:], bit) }
func (m *Mask128) Width() int                          { return 128 }
func (m *Mask128) Words() []uint64                     { return append([]uint64(nil), m[:]...) }
func (m *Mask128) Clone() Mask {
	c := *m
	return &c
}

// Mask256 is a 256-bit permission bitmask.
type Mask256 [4]uint64

func (m *Mask256) Has(bit int, rootReserved bool) bool { return wordsHas(m[:], bit, rootReserved) }
func (m *Mask256) Set(bit int)                         { wordsSet(m[:], bit) }
func (m *Mask256) Clear(bit int)                       { wordsClear(m[:], bit) }
func (m *Mask256) Width() int                          { return 256 }
func (m *Mask256) Words() []uint64                     { return append([]uint64(nil), m[:]...) }
func (m *Mask256) Clone() Mask {
	c := *m
	return &c
}

// Mask512 is a 512-bit permission bitmask.
type Mask512 [8]uint64

func (m *Mask512) Has(bit int, rootReserved bool) bool { return wordsHas(m[:], bit, rootReserved) }
func (m *Mask512) Set(bit int)                         { wordsSet(m[:], bit) }
func (m *Mask512) Clear(bit int)                       { wordsClear(m[:], bit) }
func (m *Mask512) Width() int                          { return 512 }
func (m *Mask512) Words() []uint64                     { return append([]uint64(nil), m[:]...) }
func (m *Mask512) Clone() Mask {
	c := *m
	return &c
}

func wordsHas(w []uint64, bit int, rootReserved bool) bool {
	if bit < 0 || bit >= len(w)*64 {
		return false
	}

	if rootReserved {
		// root bit = highest bit of the last word
		if (w[len(w)-1] & (1 << 63)) != 0 {
			return true
		}
	}

	return (w[bit/64] & (1 << (bit % 64))) != 0
}

func wordsSet(w []uint64, bit int) {
	if bit < 0 || bit >= len(w)*64 {
		return
	}
	w[bit/64] |= 1 << (bit % 64)
}

func wordsClear(w []uint64, bit int) {
	if bit < 0 || bit >= len(w)*64 {
		return
	}
	w[bit/64] &^= 1 << (bit % 64)
}
