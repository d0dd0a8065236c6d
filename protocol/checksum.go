package protocol

// Sum32 accumulates the payload checksum: the sum of every byte, modulo
// 2^32. The zero value is ready to use.
type Sum32 struct {
	sum uint32
}

// Add adds every byte of data to the sum.
func (s *Sum32) Add(data []byte) {
	for _, b := range data {
		s.sum += uint32(b)
	}
}

// Value returns the current sum.
func (s *Sum32) Value() uint32 {
	return s.sum
}

// Reset clears the sum.
func (s *Sum32) Reset() {
	s.sum = 0
}

// CalculateSum32 returns the checksum of data in one call.
func CalculateSum32(data []byte) uint32 {
	var s Sum32
	s.Add(data)
	return s.Value()
}
