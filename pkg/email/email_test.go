package email

import "testing"

func TestValid(t *testing.T) {
	valid := []string{"ada@example.com", "first.last+tag@corp.io"}
	for _, addr := range valid {
		if !Valid(addr) {
			t.Errorf("expected %q to be valid", addr)
		}
	}

	invalid := []string{"", "not-an-email", "missing@domain@twice.com", "Ada <ada@example.com>"}
	for _, addr := range invalid {
		if Valid(addr) {
			t.Errorf("expected %q to be invalid", addr)
		}
	}
}

func TestDeriveName(t *testing.T) {
	cases := map[string]string{
		"jane.doe@corp.com": "Jane Doe",
		"bob@example.com":   "Bob",
		"a_b-c@example.com": "A B C",
		"@example.com":      "Recipient",
	}
	for in, want := range cases {
		if got := DeriveName(in); got != want {
			t.Errorf("DeriveName(%q) = %q, want %q", in, got, want)
		}
	}
}
