package protocol

import (
	"fmt"
	"strings"
	"testing"
)

func TestCheckAck(t *testing.T) {
	tests := []struct {
		name    string
		reply   []byte
		wantErr bool
		errMsg  string
	}{
		{
			name:  "ack",
			reply: []byte{'A'},
		},
		{
			name:    "nack",
			reply:   []byte{'N'},
			wantErr: true,
			errMsg:  "NACK",
		},
		{
			name:    "other byte",
			reply:   []byte{0x00},
			wantErr: true,
			errMsg:  "got 00",
		},
		{
			name:    "empty",
			reply:   nil,
			wantErr: true,
			errMsg:  "got nothing",
		},
		{
			name:    "too long",
			reply:   []byte("AA"),
			wantErr: true,
			errMsg:  "chunk failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAck("chunk", tt.reply)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !IsProtocolError(err) {
				t.Errorf("IsProtocolError(%v) = false", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}
}

func TestCheckSignature(t *testing.T) {
	if err := CheckSignature([]byte("#UPDATE?"), SignatureUpdate); err != nil {
		t.Errorf("matching signature: %v", err)
	}

	err := CheckSignature([]byte("#UPDATE!"), SignatureUpdate)
	if err == nil {
		t.Fatal("expected error for mismatched signature")
	}
	if !strings.Contains(err.Error(), `"#UPDATE?"`) {
		t.Errorf("error = %v, want expected signature in message", err)
	}
}

func TestSignature(t *testing.T) {
	image := make([]byte, HeaderSize)
	if got := string(Signature(image)); got != "#UPDATE?" {
		t.Errorf("Signature() = %q, want #UPDATE?", got)
	}

	image[HardwareOffset] = '2'
	if got := string(Signature(image)); got != "V2_00_00" {
		t.Errorf("Signature() = %q, want V2_00_00", got)
	}

	if got := string(Signature(nil)); got != "#UPDATE?" {
		t.Errorf("Signature(nil) = %q, want #UPDATE?", got)
	}
}

func TestIsProtocolError(t *testing.T) {
	pe := &ProtocolError{Operation: "program", Got: []byte{'N'}, Want: []byte{'A'}}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", pe, true},
		{"wrapped", fmt.Errorf("upload: %w", pe), true},
		{"other", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProtocolError(tt.err); got != tt.want {
				t.Errorf("IsProtocolError() = %v, want %v", got, tt.want)
			}
		})
	}
}
