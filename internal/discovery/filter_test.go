package discovery

import (
	"testing"

	"shtest/internal/domain"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	cases := []domain.TestCase{
		{Name: "testUserLogin", Line: 1},
		{Name: "testUserLogout", Line: 5},
		{Name: "testPayment", Line: 9},
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"empty pattern keeps everything", "", []string{"testUserLogin", "testUserLogout", "testPayment"}},
		{"wildcard prefix", "testUser*", []string{"testUserLogin", "testUserLogout"}},
		{"wildcard both sides", "*Payment*", []string{"testPayment"}},
		{"substring without wildcards", "Logout", []string{"testUserLogout"}},
		{"no match", "testOrder*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterByName(cases, tt.pattern)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d cases, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, name := range tt.expected {
				if got[i].Name != name {
					t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
				}
			}
		})
	}
}
