package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/danieljhkim/fsbatch/internal/config"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, map[string]string{"test": "value"}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	var v map[string]string
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Errorf("outputJSON() produced invalid JSON: %v", err)
	}
	if v["test"] != "value" {
		t.Errorf("outputJSON() = %s", buf.String())
	}
}

func TestJournalDir(t *testing.T) {
	t.Setenv("FSBATCH_HOME", "/fsbatch-home")

	tests := []struct {
		name    string
		enabled bool
		dir     string
		cfg     config.JournalConfig
		want    string
	}{
		{name: "disabled", want: ""},
		{name: "explicit dir wins", dir: "/flag", cfg: config.JournalConfig{Enabled: true, Dir: "/cfg"}, want: "/flag"},
		{name: "flag uses default path", enabled: true, want: filepath.Join("/fsbatch-home", "journal")},
		{name: "config enabled with dir", cfg: config.JournalConfig{Enabled: true, Dir: "/cfg"}, want: "/cfg"},
		{name: "config dir alone does not enable", cfg: config.JournalConfig{Dir: "/cfg"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Journal = tt.cfg

			got, err := journalDir(tt.enabled, tt.dir, cfg)
			if err != nil {
				t.Fatalf("journalDir() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("journalDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyColorMode(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("failed to open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()

	tests := []struct {
		mode        string
		wantNoColor bool
		wantErr     bool
	}{
		{mode: "always", wantNoColor: false},
		{mode: "never", wantNoColor: true},
		{mode: "auto", wantNoColor: true}, // not a terminal
		{mode: "rainbow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			err := applyColorMode(tt.mode, devNull)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyColorMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
			if !tt.wantErr && color.NoColor != tt.wantNoColor {
				t.Errorf("applyColorMode(%q): NoColor = %v, want %v", tt.mode, color.NoColor, tt.wantNoColor)
			}
		})
	}
}

func TestPrintFunctions(t *testing.T) {
	oldStdout, oldOutput := os.Stdout, color.Output
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut
	color.Output = wOut

	PrintSection("Section")
	PrintSuccess("Success message")
	PrintWarning("Warning message")
	PrintInfo("Info message")
	PrintLabelValue("label", "value")

	_ = wOut.Close()
	os.Stdout, color.Output = oldStdout, oldOutput

	var bufOut bytes.Buffer
	_, _ = bufOut.ReadFrom(rOut)

	for _, want := range []string{"Section", "Success message", "Warning message", "Info message", "label", "value"} {
		if !bytes.Contains(bufOut.Bytes(), []byte(want)) {
			t.Errorf("stdout missing %q: %q", want, bufOut.String())
		}
	}
}
