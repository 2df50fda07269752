package imageio

import (
	"bytes"
	"errors"
	"testing"
)

type stubInput struct {
	spec Spec
}

func (s *stubInput) Spec() Spec                                { return s.spec }
func (s *stubInput) CurrentSubimage() int                      { return 0 }
func (s *stubInput) SeekSubimage(n int) error                  { return nil }
func (s *stubInput) ReadScanline(sub, y int, dst []byte) error { return nil }
func (s *stubInput) Close() error                              { return nil }

func fakeFormat(name string, magic []byte) Format {
	return Format{
		Name:       name,
		Extensions: []string{name, name + "x"},
		Detect: func(prefix []byte) bool {
			return bytes.HasPrefix(prefix, magic)
		},
		Open: func(data []byte) (Input, error) {
			return &stubInput{spec: Spec{Width: 1, Height: 1, Channels: 4, FrameCount: 1}}, nil
		},
	}
}

func TestRegistryLookup(t *testing.T) {
	r := &Registry{}
	r.Register(fakeFormat("aaa", []byte("AAAA")))
	r.Register(fakeFormat("bbb", []byte("BBBB")))

	tests := []struct {
		query string
		want  string
	}{
		{"aaa", "aaa"},
		{"bbb", "bbb"},
		{".aaa", "aaa"},
		{"AAA", "aaa"},
		{"aaax", "aaa"},
		{".BBBX", "bbb"},
	}
	for _, tt := range tests {
		f, err := r.Lookup(tt.query)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.query, err)
			continue
		}
		if f.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.query, f.Name, tt.want)
		}
	}

	if _, err := r.Lookup("ccc"); !errors.Is(err, ErrFormatNotFound) {
		t.Errorf("expected ErrFormatNotFound, got %v", err)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := &Registry{}
	r.Register(fakeFormat("aaa", []byte("AAAA")))
	r.Register(Format{Name: "aaa", Extensions: []string{"other"}})

	if got := len(r.Formats()); got != 1 {
		t.Fatalf("expected 1 format after re-register, got %d", got)
	}
	if _, err := r.Lookup("other"); err != nil {
		t.Errorf("replacement not in effect: %v", err)
	}
}

func TestRegistryDetect(t *testing.T) {
	r := &Registry{}
	r.Register(fakeFormat("aaa", []byte("AAAA")))
	r.Register(fakeFormat("bbb", []byte("BBBB")))

	f, err := r.Detect([]byte("BBBB and some payload"))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if f.Name != "bbb" {
		t.Errorf("expected bbb, got %q", f.Name)
	}

	if _, err := r.Detect([]byte("no such magic")); !errors.Is(err, ErrFormatNotFound) {
		t.Errorf("expected ErrFormatNotFound, got %v", err)
	}
}

func TestRegistryDetectBoundsSniff(t *testing.T) {
	r := &Registry{}
	var seen int
	r.Register(Format{
		Name: "spy",
		Detect: func(prefix []byte) bool {
			seen = len(prefix)
			return false
		},
	})

	data := make([]byte, 4096)
	r.Detect(data)
	if seen != sniffLen {
		t.Errorf("expected %d-byte sniff, got %d", sniffLen, seen)
	}
}

func TestRegistryOpen(t *testing.T) {
	r := &Registry{}
	r.Register(fakeFormat("aaa", []byte("AAAA")))

	in, err := r.Open([]byte("AAAA..."))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer in.Close()

	if in.Spec().FrameCount != 1 {
		t.Errorf("unexpected spec: %+v", in.Spec())
	}
}

func TestDefaultRegistry(t *testing.T) {
	Register(fakeFormat("zzz", []byte("ZZZZ")))
	if _, err := Lookup("zzz"); err != nil {
		t.Errorf("default registry lookup failed: %v", err)
	}
}

func TestRationalFloat(t *testing.T) {
	if got := (Rational{Num: 1000, Den: 40}).Float(); got != 25.0 {
		t.Errorf("expected 25.0, got %v", got)
	}
	if got := (Rational{}).Float(); got != 0 {
		t.Errorf("expected 0 for zero denominator, got %v", got)
	}
}

func TestSpecScanlineSize(t *testing.T) {
	s := Spec{Width: 320, Channels: 4}
	if got := s.ScanlineSize(); got != 1280 {
		t.Errorf("expected 1280, got %d", got)
	}
}
