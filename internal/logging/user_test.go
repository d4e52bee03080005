package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestUserOutput_Destinations(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := SetUserOutput(&out, &errOut)
	defer restore()

	UserInfo("info %d", 1)
	UserSuccess("success %s", "ok")
	UserWarning("warning")
	UserError("error: %v", "boom")

	if got := out.String(); got != "ℹ info 1\n✓ success ok\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "⚠ warning\n✗ error: boom\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestUserText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adds newline", "acl foo src 10.0.0.0/8", "acl foo src 10.0.0.0/8\n"},
		{"keeps newline", "acl foo src 10.0.0.0/8\n", "acl foo src 10.0.0.0/8\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			restore := SetUserOutput(&out, nil)
			defer restore()

			UserText(tt.in)

			if out.String() != tt.want {
				t.Errorf("UserText(%q) wrote %q, want %q", tt.in, out.String(), tt.want)
			}
		})
	}
}

func TestSetUserOutput_Restore(t *testing.T) {
	var first, second bytes.Buffer
	restoreFirst := SetUserOutput(&first, nil)
	restoreSecond := SetUserOutput(&second, nil)

	UserInfo("to second")
	restoreSecond()
	UserInfo("to first")
	restoreFirst()

	if !strings.Contains(second.String(), "to second") || strings.Contains(second.String(), "to first") {
		t.Errorf("second = %q", second.String())
	}
	if !strings.Contains(first.String(), "to first") || strings.Contains(first.String(), "to second") {
		t.Errorf("first = %q", first.String())
	}
}
