package model

import "testing"

func TestMemberKeyRoundTrip(t *testing.T) {
	tests := []Member{
		{Name: "Pete Sessions", State: "TX"},
		{Name: "C. A. Dutch Ruppersberger", State: "MD"},
		{Name: "Debbie Wasserman Schultz, Jr.", State: "FL"}, // comma in name
	}

	for _, m := range tests {
		parsed, ok := ParseMemberKey(m.Key())
		if !ok {
			t.Errorf("ParseMemberKey(%q) failed", m.Key())
			continue
		}
		if parsed != m {
			t.Errorf("round trip: got %+v, want %+v", parsed, m)
		}
	}
}

func TestParseMemberKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "Pete Sessions", "Pete Sessions, Texas", "Pete Sessions,TX"} {
		if _, ok := ParseMemberKey(key); ok {
			t.Errorf("ParseMemberKey(%q) should fail", key)
		}
	}
}
