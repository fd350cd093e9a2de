package security

import "testing"

func TestValidateExtractPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "file.txt", false},
		{"nested file", "dir/sub/file.txt", false},
		{"parent traversal", "../escape.txt", true},
		{"embedded traversal", "dir/../../escape.txt", true},
		{"absolute path", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractPath("/tmp/extract", tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtractPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
