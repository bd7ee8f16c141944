package permission

import (
	"errors"
	"testing"
)

func TestMaskSetHasClearAllWidths(t *testing.T) {
	for _, width := range []int{64, 128, 256, 512} {
		m, err := NewMask(width)
		if err != nil {
			t.Fatalf("NewMask(%d): %v", width, err)
		}
		if m.Width() != width {
			t.Fatalf("Width() = %d, want %d", m.Width(), width)
		}

		bits := []int{0, 1, width / 2, width - 2}
		for _, b := range bits {
			m.Set(b)
		}
		for _, b := range bits {
			if !m.Has(b, false) {
				t.Fatalf("width %d: bit %d should be set", width, b)
			}
		}
		if m.Has(width-1, false) {
			t.Fatalf("width %d: highest bit should be clear", width)
		}

		m.Clear(width / 2)
		if m.Has(width/2, false) {
			t.Fatalf("width %d: bit %d should be cleared", width, width/2)
		}
		if !m.Has(width-2, false) {
			t.Fatalf("width %d: clearing one bit must not touch others", width)
		}

		// Out-of-range bits are ignored.
		m.Set(-1)
		m.Set(width)
		if m.Has(-1, false) || m.Has(width, false) {
			t.Fatalf("width %d: out-of-range bits must report false", width)
		}
	}
}

func TestMaskRootBitGrantsEverything(t *testing.T) {
	for _, width := range []int{64, 128, 256, 512} {
		m, _ := NewMask(width)
		m.Set(width - 1)

		if !m.Has(5, true) {
			t.Fatalf("width %d: root bit should grant bit 5 when reserved", width)
		}
		if m.Has(5, false) {
			t.Fatalf("width %d: root bit must not grant when not reserved", width)
		}
	}
}

func TestMaskCloneIsIndependent(t *testing.T) {
	m, _ := NewMask(128)
	m.Set(3)

	c := m.Clone()
	c.Set(70)
	m.Clear(3)

	if !c.Has(3, false) || !c.Has(70, false) {
		t.Fatal("clone lost bits")
	}
	if m.Has(70, false) {
		t.Fatal("clone shares storage with the original")
	}
}

func TestNewMaskInvalidWidth(t *testing.T) {
	if _, err := NewMask(32); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestEncodeMaskLayout(t *testing.T) {
	m, _ := NewMask(128)
	m.Set(0)
	m.Set(64)

	data, err := EncodeMask(m)
	if err != nil {
		t.Fatalf("EncodeMask: %v", err)
	}
	if len(data) != 16 {
		t.Fatalf("encoded length = %d, want 16", len(data))
	}
	// Word 0 (bits 0-63) first, big-endian: lowest bit is the last byte.
	if data[7] != 1 || data[15] != 1 {
		t.Fatalf("unexpected layout: %x", data)
	}

	back, err := DecodeMask(data)
	if err != nil {
		t.Fatalf("DecodeMask: %v", err)
	}
	if !back.Has(0, false) || !back.Has(64, false) || back.Has(1, false) {
		t.Fatal("decoded mask lost bits")
	}
}

func TestEncodeMaskNil(t *testing.T) {
	if _, err := EncodeMask(nil); !errors.Is(err, ErrInvalidMaskType) {
		t.Fatalf("expected ErrInvalidMaskType, got %v", err)
	}
}

func TestDecodeMaskInvalidSize(t *testing.T) {
	for _, n := range []int{0, 3, 9, 24, 128} {
		if _, err := DecodeMask(make([]byte, n)); !errors.Is(err, ErrInvalidMaskSize) {
			t.Fatalf("DecodeMask(%d bytes) error = %v, want ErrInvalidMaskSize", n, err)
		}
	}
}
