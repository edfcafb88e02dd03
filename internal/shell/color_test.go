package shell

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		requested *string
		want      ColorMode
		wantErr   bool
	}{
		{"absent", nil, ColorAuto, false},
		{"always", strPtr("always"), ColorAlways, false},
		{"never", strPtr("never"), ColorNever, false},
		{"auto", strPtr("auto"), ColorAuto, false},
		{"empty", strPtr(""), ColorAuto, true},
		{"garbage", strPtr("sometimes"), ColorAuto, true},
		{"case sensitive", strPtr("Always"), ColorAuto, true},
		{"padded", strPtr(" auto"), ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColorMode(tt.requested)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveColorMode(%v) expected error, got %v", tt.requested, got)
				}
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ResolveColorMode(%v) error = %v, want ErrInvalidColor", tt.requested, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveColorMode(%v) unexpected error: %v", tt.requested, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColorMode(%v) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestColorModeString(t *testing.T) {
	tests := []struct {
		mode ColorMode
		want string
	}{
		{ColorAuto, "auto"},
		{ColorAlways, "always"},
		{ColorNever, "never"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ColorMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
