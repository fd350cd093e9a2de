package updater

import "testing"

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		local  string
		want   bool
	}{
		{"patch bump", "1.0.1", "1.0.0", true},
		{"minor bump", "1.1.0", "1.0.9", true},
		{"major bump", "2.0.0", "1.9.9", true},
		{"numeric not lexicographic", "1.0.10", "1.0.9", true},
		{"equal", "1.0.0", "1.0.0", false},
		{"older", "1.0.0", "1.0.1", false},
		{"shorter side zero padded", "1.0", "1.0.0", false},
		{"longer remote wins", "1.0.0.1", "1.0", true},
		{"non-integer differs", "1.0-beta", "1.0.0", true},
		{"non-integer equal", "nightly", "nightly", false},
		{"empty strings equal", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewer(tt.remote, tt.local); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.remote, tt.local, got, tt.want)
			}
		})
	}
}
