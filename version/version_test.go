package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit := Version, CommitHash
	t.Cleanup(func() {
		Version, CommitHash = oldVersion, oldCommit
	})

	Version = "1.2.3"
	tests := []struct {
		commit string
		want   string
	}{
		{"unknown", "1.2.3"},
		{"", "1.2.3"},
		{"abc", "1.2.3 (abc)"},
		{"0123456789abcdef", "1.2.3 (0123456)"},
	}
	for _, tt := range tests {
		CommitHash = tt.commit
		if got := GetFullVersion(); got != tt.want {
			t.Fatalf("GetFullVersion() with commit %q = %q, want %q", tt.commit, got, tt.want)
		}
	}
}
