//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices -framework Cocoa
#import <ApplicationServices/ApplicationServices.h>
#import <Cocoa/Cocoa.h>

int checkAccessibilityPermission() {
    return AXIsProcessTrusted() ? 1 : 0;
}

int promptAccessibilityPermission() {
    NSDictionary *options = @{(__bridge id)kAXTrustedCheckOptionPrompt: @YES};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}
*/
import "C"

import "os/exec"

// CheckAccessibility reports whether the process is trusted for
// accessibility, which event taps require. Does not prompt.
func CheckAccessibility() bool {
	return C.checkAccessibilityPermission() == 1
}

// PromptAccessibility shows the system accessibility prompt if the
// process is not yet trusted, and reports the current status.
func PromptAccessibility() bool {
	return C.promptAccessibilityPermission() == 1
}

// OpenAccessibilitySettings opens the Accessibility pane of System
// Settings so the user can grant the permission.
func OpenAccessibilitySettings() error {
	return exec.Command("open",
		"x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility").Run()
}
