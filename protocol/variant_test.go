package protocol

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestPayloadEnd(t *testing.T) {
	upgradeImage := func(end uint32) []byte {
		image := make([]byte, 4096)
		binary.BigEndian.PutUint32(image[EndAddressOffset:], end)
		return image
	}

	tests := []struct {
		name    string
		variant Variant
		image   []byte
		want    int
		errMsg  string
	}{
		{
			name:    "font uses whole image",
			variant: VariantFont,
			image:   make([]byte, 8192),
			want:    8192,
		},
		{
			name:    "upgrade end from header",
			variant: VariantUpgrade,
			image:   upgradeImage(2048),
			want:    2048,
		},
		{
			name:    "upgrade end beyond image",
			variant: VariantUpgrade,
			image:   upgradeImage(4096),
			errMsg:  "outside image",
		},
		{
			name:    "upgrade zero end",
			variant: VariantUpgrade,
			image:   upgradeImage(0),
			errMsg:  "outside image",
		},
		{
			name:    "upgrade image too short",
			variant: VariantUpgrade,
			image:   make([]byte, 0x30),
			errMsg:  "shorter than payload offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.variant.PayloadEnd(tt.image)
			if tt.errMsg != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PayloadEnd() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPayload(t *testing.T) {
	image := make([]byte, 200)
	for i := range image {
		image[i] = byte(i)
	}
	got := VariantUpgrade.Payload(image, Chunk{Addr: 10, Len: 4})
	if got[0] != byte(HeaderSize+10) || len(got) != 4 {
		t.Errorf("Payload() = % X", got)
	}
}

func TestLookupVariant(t *testing.T) {
	v, err := LookupVariant("upgrade")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ChunkSize != 1024 || !v.Checksum {
		t.Errorf("upgrade variant = %+v", v)
	}

	if _, err := LookupVariant("bogus"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
