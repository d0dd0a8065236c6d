package firmware

const (
	// CryptKey obfuscates upgrade payloads.
	CryptKey = 200

	// TextKey obfuscates text resources.
	TextKey = 165
)

// Crypt XORs every byte after the header with CryptKey, in place. Applying
// it twice restores the input.
func Crypt(data []byte) {
	for i := HeaderSize; i < len(data); i++ {
		data[i] ^= CryptKey
	}
}

// CryptText XORs every byte of a text resource with TextKey, in place.
func CryptText(data []byte) {
	for i := range data {
		data[i] ^= TextKey
	}
}
