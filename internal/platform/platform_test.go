package platform

import (
	"runtime"
	"testing"
)

func TestValidateSupport(t *testing.T) {
	err := ValidateSupport()
	switch runtime.GOOS {
	case "linux", "freebsd", "windows":
		if err != nil {
			t.Errorf("ValidateSupport() on %s returned error: %v", runtime.GOOS, err)
		}
	default:
		if err == nil {
			t.Errorf("ValidateSupport() on %s expected an error", runtime.GOOS)
		}
	}
}
