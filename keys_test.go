package keygrab

import "testing"

func TestParseKeyLetters(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"a", KeyA},
		{"A", KeyA},
		{"z", KeyZ},
	}
	for _, c := range cases {
		got, err := ParseKey(c.in)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseKeyNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"0", Key0},
		{"9", Key9},
		{"num5", Key5},
	}
	for _, c := range cases {
		got, err := ParseKey(c.in)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseKeyAliases(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"enter", KeyReturn},
		{"esc", KeyEscape},
		{"backspace", KeyDelete},
		{"del", KeyForwardDelete},
		{"leftarrow", KeyLeftArrow},
		{"minus", KeyMinus},
		{"equals", KeyEqual},
		{"backtick", KeyGrave},
		{"caps", KeyCapsLock},
		{"lmb", KeyMouseLeft},
		{"mouse5", KeyMouseX2},
	}
	for _, c := range cases {
		got, err := ParseKey(c.in)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseKeyFunctionKeys(t *testing.T) {
	for _, in := range []string{"F1", "f12", "F20"} {
		if _, err := ParseKey(in); err != nil {
			t.Errorf("ParseKey(%q) failed: %v", in, err)
		}
	}
}

func TestParseKeyUnknownFails(t *testing.T) {
	for _, in := range []string{"unknown", "", "F21"} {
		if _, err := ParseKey(in); err == nil {
			t.Errorf("ParseKey(%q) should fail", in)
		}
	}
}

func TestKeyDisplayRoundtrip(t *testing.T) {
	for key := KeyA; key < keyCount; key++ {
		displayed := key.String()
		if displayed == "" {
			t.Fatalf("Key %d has no display name", key)
		}
		parsed, err := ParseKey(displayed)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", displayed, err)
		}
		if parsed != key {
			t.Errorf("Roundtrip failed for %q: got %v, want %v", displayed, parsed, key)
		}
	}
}

func TestKeyNoneHasNoName(t *testing.T) {
	if KeyNone.String() != "" {
		t.Errorf("KeyNone should render empty, got %q", KeyNone.String())
	}
}

func TestIsMouseButton(t *testing.T) {
	if !KeyMouseLeft.IsMouseButton() || !KeyMouseX2.IsMouseButton() {
		t.Error("Mouse buttons not detected")
	}
	if KeyA.IsMouseButton() || KeyNone.IsMouseButton() {
		t.Error("Non-mouse keys detected as buttons")
	}
}
