package domain

import "testing"

func TestInRange(t *testing.T) {
	sp, err := NewSpace(8)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}

	mk := func(v uint64) ID { return sp.FromUint64(v) }

	tests := []struct {
		name      string
		x, a, b   uint64
		inclusive bool
		want      bool
	}{
		{"linear strictly inside", 5, 1, 10, false, true},
		{"linear at lower bound exclusive", 1, 1, 10, false, false},
		{"linear at upper bound exclusive", 10, 1, 10, false, false},
		{"linear at upper bound inclusive", 10, 1, 10, true, true},
		{"linear outside", 20, 1, 10, false, false},
		{"wrap inside low side", 250, 200, 10, false, true},
		{"wrap inside high side", 5, 200, 10, false, true},
		{"wrap at upper bound exclusive", 10, 200, 10, false, false},
		{"wrap at upper bound inclusive", 10, 200, 10, true, true},
		{"same endpoint exclusive covers nothing meaningfully but reports inclusive flag", 5, 7, 7, false, false},
		{"same endpoint inclusive covers whole ring", 5, 7, 7, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sp.InRange(mk(tt.x), mk(tt.a), mk(tt.b), tt.inclusive)
			if got != tt.want {
				t.Errorf("InRange(%d, %d, %d, %v) = %v, want %v", tt.x, tt.a, tt.b, tt.inclusive, got, tt.want)
			}
		})
	}
}

func TestHashStringDeterministic(t *testing.T) {
	sp, err := NewSpace(32)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	a := sp.HashString("127.0.0.1:5000")
	b := sp.HashString("127.0.0.1:5000")
	if !a.Equal(b) {
		t.Errorf("HashString not deterministic: %s != %s", a, b)
	}
	if len(a) != sp.ByteLen {
		t.Errorf("HashString length = %d, want %d", len(a), sp.ByteLen)
	}
	c := sp.HashString("127.0.0.1:5001")
	if a.Equal(c) {
		t.Errorf("HashString collided for distinct inputs")
	}
}

func TestFingerStartWraps(t *testing.T) {
	sp, err := NewSpace(8)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	self := sp.FromUint64(250)
	got := sp.FingerStart(self, 3) // 250 + 8 = 258 mod 256 = 2
	want := sp.FromUint64(2)
	if !got.Equal(want) {
		t.Errorf("FingerStart(250, 3) = %s, want %s", got, want)
	}
}

func TestFromHexStringRoundTrip(t *testing.T) {
	sp, err := NewSpace(32)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	id, err := sp.FromHexString("0x000000ff")
	if err != nil {
		t.Fatalf("FromHexString: %v", err)
	}
	if id.ToHexString() != "000000ff" {
		t.Errorf("round trip = %s, want 000000ff", id.ToHexString())
	}
}

func TestNewSpaceValidation(t *testing.T) {
	if _, err := NewSpace(0); err == nil {
		t.Error("expected error for zero bits")
	}
	if _, err := NewSpace(5); err == nil {
		t.Error("expected error for non-byte-aligned bits")
	}
	if _, err := NewSpace(256); err == nil {
		t.Error("expected error for bits beyond SHA-1 output")
	}
}
