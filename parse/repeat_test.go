package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMany(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []byte
		remaining string
	}{
		{"several", "aaab", []byte{'a', 'a', 'a'}, "b"},
		{"one", "ab", []byte{'a'}, "b"},
		{"none", "xyz", nil, "xyz"},
		{"empty input", "", nil, ""},
		{"consumes all", "aaa", []byte{'a', 'a', 'a'}, ""},
	}

	p := Many(Char('a'))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p(tt.input)
			if !r.Ok() {
				t.Fatalf("Many failed: %s", r.Message())
			}
			if diff := cmp.Diff(tt.want, r.Value()); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
			if r.Remaining() != tt.remaining {
				t.Errorf("Remaining = %q, want %q", r.Remaining(), tt.remaining)
			}
		})
	}
}

func TestMany1(t *testing.T) {
	p := Many1(Char('a'))

	r := p("aab")
	if !r.Ok() {
		t.Fatalf("Many1 failed: %s", r.Message())
	}
	if diff := cmp.Diff([]byte{'a', 'a'}, r.Value()); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
	if r.Remaining() != "b" {
		t.Errorf("Remaining = %q, want %q", r.Remaining(), "b")
	}
}

func TestMany1ZeroMatches(t *testing.T) {
	r := Many1(Digit)("")
	if r.Ok() {
		t.Fatal("Many1 with zero matches succeeded")
	}
	if r.Message() != "Expected at least one occurrence" {
		t.Errorf("Message = %q, want %q", r.Message(), "Expected at least one occurrence")
	}

	r = Many1(Digit)("abc")
	if r.Ok() {
		t.Fatal("Many1 with zero matches succeeded")
	}
}

func TestOptional(t *testing.T) {
	p := Optional(Char('a'))

	r := p("abc")
	if !r.Ok() {
		t.Fatalf("Optional failed: %s", r.Message())
	}
	if !r.Value().Set || r.Value().Value != 'a' {
		t.Errorf("Value = %+v, want set 'a'", r.Value())
	}
	if r.Remaining() != "bc" {
		t.Errorf("Remaining = %q, want %q", r.Remaining(), "bc")
	}
}

func TestOptionalSwallowsFailure(t *testing.T) {
	p := Optional(Char('a'))

	r := p("xyz")
	if !r.Ok() {
		t.Fatalf("Optional failed: %s", r.Message())
	}
	if r.Value().Set {
		t.Errorf("Value = %+v, want absent", r.Value())
	}
	if r.Remaining() != "xyz" {
		t.Errorf("Remaining = %q, want the original input unconsumed", r.Remaining())
	}
}

func TestSepBy(t *testing.T) {
	comma := SkipWS(Char(','))
	p := SepBy(Int, comma)

	tests := []struct {
		name      string
		input     string
		want      []int
		remaining string
	}{
		{"mixed spacing", "10, 20, 30,40", []int{10, 20, 30, 40}, ""},
		{"single", "7", []int{7}, ""},
		{"empty", "", nil, ""},
		{"no match", "abc", nil, "abc"},
		{"stops at non-separator", "1,2 3", []int{1, 2}, " 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p(tt.input)
			if !r.Ok() {
				t.Fatalf("SepBy failed: %s", r.Message())
			}
			if diff := cmp.Diff(tt.want, r.Value()); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
			if r.Remaining() != tt.remaining {
				t.Errorf("Remaining = %q, want %q", r.Remaining(), tt.remaining)
			}
		})
	}
}

// A consumed separator with no element after it stays consumed: the loop
// ends without backtracking past the separator.
func TestSepByTrailingSeparator(t *testing.T) {
	p := SepBy(Int, Char(','))

	r := p("1,2,")
	if !r.Ok() {
		t.Fatalf("SepBy failed: %s", r.Message())
	}
	if diff := cmp.Diff([]int{1, 2}, r.Value()); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
	if r.Remaining() != "" {
		t.Errorf("Remaining = %q, want the trailing separator consumed", r.Remaining())
	}
}
