package pathutil_test

import (
	"errors"
	"testing"

	"advboard/internal/handler/http/pathutil"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    int64
		wantErr bool
	}{
		{"single digit", "7", 7, false},
		{"multi digit", "12345", 12345, false},
		{"zero", "0", 0, false},
		{"leading zeros", "007", 7, false},
		{"empty", "", 0, true},
		{"alpha", "abc", 0, true},
		{"mixed", "12a", 0, true},
		{"negative", "-1", 0, true},
		{"plus sign", "+1", 0, true},
		{"spaces", " 1", 0, true},
		{"float", "1.5", 0, true},
		{"int64 overflow", "99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ParseID(tt.segment)
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidID) {
					t.Fatalf("err = %v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("got = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/adv/123", "/adv/:id"},
		{"/adv/", "/adv/"},
		{"/health", "/health"},
		{"/adv/abc", "/adv/abc"},
		{"/adv/123/extra", "/adv/:id/extra"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := pathutil.NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
