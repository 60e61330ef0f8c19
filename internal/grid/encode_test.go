package grid

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncode_Format(t *testing.T) {
	g, err := New(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 1, Alive)
	g.Set(2, 4, Alive)

	got := Encode(g)
	want := "     \n *   \n    *"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("unexpected trailing newline")
	}
}

func TestEncode_SingleCell(t *testing.T) {
	g, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := Encode(g); got != " " {
		t.Errorf("dead 1x1 = %q, want %q", got, " ")
	}
	g.Set(0, 0, Alive)
	if got := Encode(g); got != "*" {
		t.Errorf("alive 1x1 = %q, want %q", got, "*")
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g, err := Generate(rng, 12, 7, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(Encode(g))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !g.Equal(decoded) {
		t.Error("round trip changed the board")
	}
}

func TestDecode_TrailingNewline(t *testing.T) {
	g, err := Decode("* \n *\n")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Errorf("got %dx%d, want 2x2", g.Rows(), g.Cols())
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"empty row", "\n\n"},
		{"ragged", "***\n**"},
		{"illegal character", "* \n#*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestDecode_FormatErrorPosition(t *testing.T) {
	_, err := Decode("***\n**")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	if fe.Line != 2 {
		t.Errorf("Line = %d, want 2", fe.Line)
	}
}

func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.txt")

	rng := rand.New(rand.NewSource(3))
	g, err := Generate(rng, 4, 9, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, g); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !g.Equal(loaded) {
		t.Error("file round trip changed the board")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.txt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, g); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != " " {
		t.Errorf("file = %q, want single dead cell", data)
	}
}
