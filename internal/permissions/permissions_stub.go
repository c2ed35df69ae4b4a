//go:build !darwin

package permissions

// CheckAccessibility always succeeds on platforms without a permission
// model for input capture.
func CheckAccessibility() bool {
	return true
}

// PromptAccessibility is a no-op outside macOS.
func PromptAccessibility() bool {
	return true
}

// OpenAccessibilitySettings is a no-op outside macOS.
func OpenAccessibilitySettings() error {
	return nil
}
