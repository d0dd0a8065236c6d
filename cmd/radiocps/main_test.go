package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with isolated Setup.ini and language paths.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	base := []string{
		"--setup", filepath.Join(dir, "Setup.ini"),
		"--lang-dir", dir,
		"--log-level", "error",
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRequiredFlagsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"read missing output", []string{"read"}, "required flag --output not set"},
		{"build missing output", []string{"build", "radio.yaml"}, "required flag --output not set"},
		{"write missing image", []string{"write"}, "accepts 1 arg(s), received 0"},
		{"crypt missing output", []string{"crypt", "in.dat"}, "accepts 2 arg(s), received 1"},
		{"unknown variant", []string{"version", "--variant", "walkie"}, "unknown protocol variant"},
		{"bad log level", []string{"version", "--log-level", "loud"}, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	for _, want := range []string{"radiocps version dev", "setup: v1.0.0 ---"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReadCmdUnsupported(t *testing.T) {
	output := filepath.Join(t.TempDir(), "radio.bin")

	_, err := run(t, "read", "-o", output)
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("read error = %v, want not supported", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("read created an output file")
	}
}

func TestBuildAndDump(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "radio.yaml")
	imagePath := filepath.Join(dir, "radio.bin")

	doc := `channels:
  - number: 2
    rx_freq: "446.00625"
    power: high
contacts:
  - number: 1
    code: "123"
`
	if err := os.WriteFile(yamlPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "build", yamlPath, "-o", imagePath, "--first-freq", "435.00000"); err != nil {
		t.Fatalf("build error = %v", err)
	}

	out, err := run(t, "dump", imagePath)
	if err != nil {
		t.Fatalf("dump error = %v", err)
	}
	for _, want := range []string{
		"variant: upgrade",
		"rx_freq: \"435.00000\"",
		"rx_freq: \"446.00625\"",
		"code: \"123\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildRejectsInvalidCodeplug(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "radio.yaml")
	imagePath := filepath.Join(dir, "radio.bin")

	if err := os.WriteFile(yamlPath, []byte("channels:\n  - number: 1\n    rx_freq: \"27.0\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "build", yamlPath, "-o", imagePath)
	if err == nil || !strings.Contains(err.Error(), "invalid rx_freq") {
		t.Fatalf("build error = %v, want invalid rx_freq", err)
	}
	if _, statErr := os.Stat(imagePath); !os.IsNotExist(statErr) {
		t.Error("build wrote an image for a rejected codeplug")
	}
}

func TestCryptCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dat")
	out := filepath.Join(dir, "out.dat")

	data := bytes.Repeat([]byte{0x0F}, 100)
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "crypt", in, out); err != nil {
		t.Fatalf("crypt error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got[79] != 0x0F {
		t.Errorf("header byte 79 = 0x%02X, want 0x0F", got[79])
	}
	if got[80] != 0x0F^200 || got[99] != 0x0F^200 {
		t.Errorf("payload bytes = 0x%02X 0x%02X, want 0x%02X", got[80], got[99], 0x0F^200)
	}
}

func TestFontCmdRoundTrip(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "font.txt")
	bin := filepath.Join(dir, "font.bin")
	back := filepath.Join(dir, "back.txt")

	if err := os.WriteFile(text, []byte("0x00,0x7e,0x81,\n0xff,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "font", text, bin); err != nil {
		t.Fatalf("font error = %v", err)
	}
	got, err := os.ReadFile(bin)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x00, 0x7E, 0x81, 0xFF}) {
		t.Fatalf("font binary = % X", got)
	}

	if _, err := run(t, "font", "--reverse", bin, back); err != nil {
		t.Fatalf("font --reverse error = %v", err)
	}
	gotText, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(gotText) != "0x00,0x7e,0x81,0xff,\n" {
		t.Errorf("font text = %q", gotText)
	}
}
