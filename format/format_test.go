package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in string
		f  Format
	}{
		{"json", JSONFormat},
		{"xml", XMLFormat},
		{"dict", DictFormat},
		{"yaml", YAMLFormat},
	}
	for _, tc := range tests {
		f, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if f != tc.f {
			t.Errorf("%q: got %v, want %v", tc.in, f, tc.f)
		}
		if f.String() != tc.in {
			t.Errorf("%q: String() = %q", tc.in, f.String())
		}
	}
}

func TestParseFormatErrors(t *testing.T) {
	for _, in := range []string{"", "unsupported", "JSON", "yml", "j"} {
		_, err := ParseFormat(in)
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: error %v does not wrap ErrBadFormat", in, err)
		}
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != f {
			t.Errorf("round trip %v != %v", back, f)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || XMLFormat.Suffix() != ".xml" ||
		YAMLFormat.Suffix() != ".yaml" || DictFormat.Suffix() != "" {
		t.Errorf("unexpected suffixes")
	}
}
