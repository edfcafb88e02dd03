package shell

import (
	"context"
	"testing"
)

func TestWithContextRoundTrip(t *testing.T) {
	sh := New(ColorNever, Verbose)
	ctx := WithContext(context.Background(), sh)

	if got := FromContext(ctx); got != sh {
		t.Error("FromContext should return the stored shell")
	}
}

func TestFromContextDefaults(t *testing.T) {
	sh := FromContext(context.Background())
	if sh == nil {
		t.Fatal("FromContext on an empty context returned nil")
	}
	if sh.ColorMode() != ColorAuto || sh.Verbosity() != Normal {
		t.Errorf("fallback shell = (%v, %v), want (auto, normal)", sh.ColorMode(), sh.Verbosity())
	}
}
