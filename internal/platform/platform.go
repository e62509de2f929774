package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	FreeBSD SupportedOS = "freebsd"
	Windows SupportedOS = "windows"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS has a native memory reader
func IsSupported() bool {
	switch GetOS() {
	case Linux, FreeBSD, Windows:
		return true
	default:
		return false
	}
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux, freebsd, windows", runtime.GOOS)
	}
	return nil
}
