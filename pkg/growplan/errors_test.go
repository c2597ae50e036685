package growplan

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidParameterError(t *testing.T) {
	err := invalidParam("avgYieldPerTray", "must be positive, got %s", "0")

	want := "invalid parameter avgYieldPerTray: must be positive, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatal("errors.As() failed to match InvalidParameterError")
	}
	if ipe.Param != "avgYieldPerTray" {
		t.Errorf("Param = %q, want avgYieldPerTray", ipe.Param)
	}
}

func TestIsInvalidParameter(t *testing.T) {
	base := invalidParam("quantityOz", "must be positive")

	if !IsInvalidParameter(base) {
		t.Error("IsInvalidParameter() = false for a direct InvalidParameterError")
	}

	wrapped := fmt.Errorf("ingredient Radish: %w", base)
	if !IsInvalidParameter(wrapped) {
		t.Error("IsInvalidParameter() = false for a wrapped InvalidParameterError")
	}

	if IsInvalidParameter(errors.New("disk full")) {
		t.Error("IsInvalidParameter() = true for an unrelated error")
	}
	if IsInvalidParameter(nil) {
		t.Error("IsInvalidParameter() = true for nil")
	}
}
