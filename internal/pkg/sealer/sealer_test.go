package sealer

import "testing"

func TestSealRoundTrip(t *testing.T) {
	s := New("store-secret")
	sealed, err := s.Seal("t1")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if sealed == "t1" {
		t.Fatal("sealed value must differ from plaintext")
	}
	plain, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if plain != "t1" {
		t.Fatalf("expected t1, got %q", plain)
	}
}

func TestOpenWithWrongKey(t *testing.T) {
	sealed, err := New("a").Seal("t1")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := New("b").Open(sealed); err != ErrOpen {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	if _, err := New("a").Open("garbage"); err != ErrOpen {
		t.Fatalf("expected ErrOpen for garbage, got %v", err)
	}
}
