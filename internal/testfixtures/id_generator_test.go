package testfixtures

import "testing"

func TestIDGeneratorProducesBookingCodes(t *testing.T) {
	gen := NewIDGenerator("")

	first := gen.Next()
	second := gen.Next()

	if first != "HD-000001" || second != "HD-000002" {
		t.Fatalf("unexpected codes: %q, %q", first, second)
	}
	if gen.Issued() != 2 {
		t.Fatalf("expected 2 issued codes, got %d", gen.Issued())
	}
}

func TestIDGeneratorReset(t *testing.T) {
	gen := NewIDGenerator("RM")
	_ = gen.Next()
	gen.Reset()

	if next := gen.NextFunc()(); next != "RM-000001" {
		t.Fatalf("expected RM-000001 after reset, got %q", next)
	}

	var missing *IDGenerator
	if code := missing.NextFunc()(); code != "" {
		t.Fatalf("expected an empty code from a nil generator, got %q", code)
	}
}
