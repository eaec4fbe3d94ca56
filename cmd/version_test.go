package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cmd := NewVersionCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	cmd.Run(cmd, nil)

	if !strings.Contains(buf.String(), "contentcheck") {
		t.Errorf("output %q should name the binary", buf.String())
	}
	if !strings.Contains(buf.String(), version) {
		t.Errorf("output %q should contain version %q", buf.String(), version)
	}
}
