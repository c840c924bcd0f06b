package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello, World!", "hello-world"},
		{"  many---separators___ ", "many-separators"},
		{"Adopt New Title", "adopt-new-title"},
		{"Café Déjà Vu", "cafe-deja-vu"},
		{"Rocket 🚀 launch", "rocket-launch"},
		{"ﬁle ligature", "file-ligature"},
		{"", ""},
		{"!!!", ""},
		{"🚀", ""},
		{"Version 2.0 (final)", "version-2-0-final"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER_and_lower", "upper-and-lower"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"--leading and trailing--", "leading-and-trailing"},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	const title = "Ünïcödé Title, again!"
	first := Make(title)
	for i := 0; i < 10; i++ {
		if got := Make(title); got != first {
			t.Fatalf("Make not deterministic: %q vs %q", got, first)
		}
	}
}

func TestOrFallback(t *testing.T) {
	if got := OrFallback("***"); got != Fallback {
		t.Errorf("OrFallback(***) = %q, want %q", got, Fallback)
	}
	if got := OrFallback("Real Title"); got != "real-title" {
		t.Errorf("OrFallback = %q", got)
	}
}
