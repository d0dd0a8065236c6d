package protocol

// PlanChunks partitions [start, end) into chunks aligned to size. Each chunk
// is min(size - addr%size, end-addr) bytes long.
func PlanChunks(start, end, size int) []Chunk {
	if size <= 0 || end <= start {
		return nil
	}

	chunks := make([]Chunk, 0, (end-start)/size+2)
	for addr := start; addr < end; {
		n := size - addr%size
		if rem := end - addr; rem < n {
			n = rem
		}
		chunks = append(chunks, Chunk{Addr: addr, Len: n})
		addr += n
	}
	return chunks
}
