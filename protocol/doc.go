// Package protocol implements the serial upload protocol spoken by the radio's
// boot firmware.
//
// The protocol is a plain byte stream with fixed ASCII command tokens and a
// single-byte acknowledgement ('A') after every frame. Two product variants
// share one state machine and differ only in the parameters captured by
// Variant:
//
//	              VariantFont            VariantUpgrade
//	handshake     wake + "Font"          "DOWNLOAD" -> signature, 'A',
//	                                     F-ERASE frame, "PROGRAM1"
//	chunk size    4096                   1024
//	chunk header  none                   [ADDR(4, BE)][0x00]
//	end frame     "END" + 0xFF padding   "END" FF FF [SUM(4, BE)]
//	payload       image[0:458752]        image[0x50:], end address at 0x40
//
// # Chunking
//
// The payload is split into chunks aligned to the chunk size starting at
// address 0. PlanChunks returns the plan:
//
//	chunks := protocol.PlanChunks(0, 2048, 1024)
//	// [{Addr:0 Len:1024} {Addr:1024 Len:1024}]
//
// # Frame Builders
//
//	header := protocol.BuildChunkHeader(addr)
//	end := protocol.BuildEndFrame(v, sum.Value())
//	erase := protocol.BuildEraseFrame()
//
// # Checksum
//
// The upgrade variant appends the sum of every payload byte, modulo 2^32, to
// the END frame. Sum32 accumulates it across chunks.
//
// # Error Handling
//
// Unexpected replies are reported as *ProtocolError:
//
//	if !protocol.IsAck(b) {
//	    return &protocol.ProtocolError{Operation: "chunk", Got: []byte{b}, Want: []byte{protocol.Ack}}
//	}
//	// err.Error() returns: "chunk failed: got 4E (NACK), want 41 (ACK)"
package protocol
