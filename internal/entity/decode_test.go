package entity

import "testing"

func TestMatchLongestPrefix(t *testing.T) {
	cases := []struct {
		input    string
		wantLen  int
		wantRune rune
		wantOK   bool
	}{
		{"amp;rest", 4, '&', true},
		{"amp rest", 3, '&', true}, // legacy semicolon-less form
		{"gt;", 3, '>', true},
		{"notanentity", 0, 0, false},
		{"nbsp;", 5, 0x00A0, true},
	}
	for _, c := range cases {
		n, value, ok := Match(c.input)
		if ok != c.wantOK {
			t.Fatalf("Match(%q) ok = %v, want %v", c.input, ok, c.wantOK)
		}
		if !ok {
			continue
		}
		if n != c.wantLen {
			t.Errorf("Match(%q) matchedLen = %d, want %d", c.input, n, c.wantLen)
		}
		if len(value) != 1 || value[0] != c.wantRune {
			t.Errorf("Match(%q) value = %v, want [%q]", c.input, value, c.wantRune)
		}
	}
}

func TestMatchWalksPastNonTerminalPrefixes(t *testing.T) {
	// No proper prefix of "NotEqual;" is itself a name in this table, so
	// the walk has to continue through non-terminal trie nodes to reach
	// the only terminal on the path. Preferring a longer name over a
	// shorter one on the same path is covered by TestMatchLongestPrefix.
	n, value, ok := Match("NotEqual;x")
	if !ok {
		t.Fatal("expected a match")
	}
	if n != len("NotEqual;") {
		t.Errorf("matchedLen = %d, want %d", n, len("NotEqual;"))
	}
	if value[0] != 0x2260 {
		t.Errorf("value = %v, want [U+2260]", value)
	}
}

func TestResolveNumericOutOfRange(t *testing.T) {
	if got := ResolveNumeric(0); got != 0xFFFD {
		t.Errorf("ResolveNumeric(0) = %U, want U+FFFD", got)
	}
	if got := ResolveNumeric(0x110000); got != 0xFFFD {
		t.Errorf("ResolveNumeric(0x110000) = %U, want U+FFFD", got)
	}
	if got := ResolveNumeric(0xD800); got != 0xFFFD {
		t.Errorf("ResolveNumeric(surrogate) = %U, want U+FFFD", got)
	}
}

func TestResolveNumericC1Remap(t *testing.T) {
	if got := ResolveNumeric(0x80); got != 0x20AC {
		t.Errorf("ResolveNumeric(0x80) = %U, want U+20AC (euro sign)", got)
	}
	if got := ResolveNumeric(0x95); got != 0x2022 {
		t.Errorf("ResolveNumeric(0x95) = %U, want U+2022 (bullet)", got)
	}
}

func TestResolveNumericPassthrough(t *testing.T) {
	if got := ResolveNumeric('A'); got != 'A' {
		t.Errorf("ResolveNumeric('A') = %U, want 'A'", got)
	}
	if got := ResolveNumeric(0x1F600); got != 0x1F600 {
		t.Errorf("ResolveNumeric(emoji) = %U, want unchanged", got)
	}
}

func TestHasSemicolon(t *testing.T) {
	if !HasSemicolon("amp;") {
		t.Error("expected amp; to have a semicolon")
	}
	if HasSemicolon("amp") {
		t.Error("expected amp to not have a semicolon")
	}
}
