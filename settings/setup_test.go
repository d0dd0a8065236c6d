package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSetup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Setup
		errMsg  string
	}{
		{
			name:    "all keys",
			content: "[Setup]\nCom=COM7\nBaudrate=57600\nCurLang=Chinese\n[Info]\nVersion=v2.1.0\nCompany=Acme\n",
			want:    Setup{Com: "COM7", Baudrate: 57600, CurLang: "Chinese", Version: "v2.1.0", Company: "Acme"},
		},
		{
			name:    "missing keys keep defaults",
			content: "[Setup]\nCom=/dev/ttyUSB0\n",
			want:    Setup{Com: "/dev/ttyUSB0", Baudrate: 115200, CurLang: "English", Version: "v1.0.0", Company: "---"},
		},
		{
			name:    "invalid baud rate",
			content: "[Setup]\nBaudrate=fast\n",
			errMsg:  "Baudrate value is 'fast'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "Setup.ini", tt.content)

			got, err := LoadSetup(path)
			if tt.errMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("LoadSetup() error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSetup() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadSetup() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadSetupMissingFile(t *testing.T) {
	got, err := LoadSetup(filepath.Join(t.TempDir(), "Setup.ini"))
	if err != nil {
		t.Fatalf("LoadSetup() error = %v", err)
	}
	if got != DefaultSetup() {
		t.Errorf("LoadSetup() = %+v, want defaults", got)
	}
}

func TestSetupSave(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Setup.ini", "[Info]\nCompany=Acme\n")

	s := DefaultSetup()
	s.Com = "COM3"
	s.Baudrate = 9600
	s.CurLang = "Chinese"
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := LoadSetup(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Com != "COM3" || got.Baudrate != 9600 || got.CurLang != "Chinese" {
		t.Errorf("reloaded = %+v", got)
	}
	if got.Company != "Acme" {
		t.Errorf("Company = %q, want existing [Info] kept", got.Company)
	}

	fresh := filepath.Join(dir, "new.ini")
	if err := s.Save(fresh); err != nil {
		t.Fatalf("Save(new file) error = %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("Save did not create the file")
	}
}
