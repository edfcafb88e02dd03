package engine

import (
	"context"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		banner  string
		want    string
		wantErr bool
	}{
		{"docker", "Docker version 24.0.7, build afdd53b", "24.0.7", false},
		{"podman", "podman version 4.9.3", "4.9.3", false},
		{"trailing newline", "podman version 4.9.3\n", "4.9.3", false},
		{"no version", "docker: command exploded", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.banner)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVersion(%q) expected error, got %q", tt.banner, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) returned %v", tt.banner, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.banner, got, tt.want)
			}
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	tests := []struct {
		name    string
		version string
		min     string
		want    bool
	}{
		{"no minimum", "24.0.7", "", true},
		{"above", "24.0.7", "20.10.0", true},
		{"equal", "20.10.0", "20.10.0", true},
		{"below", "19.3.0", "20.10.0", false},
		{"patch below", "20.10.0", "20.10.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Engine{Name: "docker", Version: tt.version}
			if got := e.MeetsMinimum(tt.min); got != tt.want {
				t.Errorf("MeetsMinimum(%q) with version %q = %v, want %v", tt.min, tt.version, got, tt.want)
			}
		})
	}
}

func TestDetectMissingEngine(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := Detect(context.Background(), ""); err != ErrNotFound {
		t.Errorf("Detect on an empty PATH = %v, want ErrNotFound", err)
	}
}
