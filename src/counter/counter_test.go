package counter

import "testing"

func TestNewCounterRejectsWrongSize(t *testing.T) {
	if _, err := NewCounter(make([]byte, 3)); err == nil {
		t.Fatalf("expected error for undersized source")
	}
}

func TestIncrementWrapsOnOverflow(t *testing.T) {
	c, err := NewCounter([]byte{0xff, 0xff, 0xff, 0xff})
	if err != nil {
		t.Fatalf("NewCounter returned error: %v", err)
	}

	c.Increment()

	want := [4]byte{0, 0, 0, 0}
	if c.Bytes != want {
		t.Fatalf("Bytes = %v, want %v", c.Bytes, want)
	}
}

func TestIncrementAdvancesLowByte(t *testing.T) {
	c, err := NewCounter([]byte{0, 0, 0, 1})
	if err != nil {
		t.Fatalf("NewCounter returned error: %v", err)
	}

	c.Increment()

	want := [4]byte{0, 0, 0, 2}
	if c.Bytes != want {
		t.Fatalf("Bytes = %v, want %v", c.Bytes, want)
	}
}
