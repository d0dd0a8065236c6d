// Package store holds the radio's working EEPROM image together with the
// decoded configuration records.
//
// A Store is created per image and passed by reference; there is no package
// level instance.
//
//	st := store.New(protocol.VariantUpgrade)
//	if err := st.LoadFile("radio.bin"); err != nil {
//	    log.Fatal(err)
//	}
//	st.Channels.Slots[4].RxFreq = "446.00625"
//	if err := st.SaveFile("radio.bin"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Image and records
//
// ImageToRecords decodes every record from its window of the working image,
// model first so frequency decoding sees the active band. RecordsToImage
// encodes the records into a fresh 0xFF image, passing the current window
// bytes as the base so reserved bits survive. Commit stores that result
// back as the working image. Overlay encodes in place instead and keeps
// everything outside the windows, which is what a firmware image needs.
//
// Channel, basic, TOT, DTMF, contact, scan and skip frequency records
// round-trip through the image. The model record does not (its decode
// installs the default band) and neither do the index bitmaps, which are
// rebuilt from the channel and contact tables on every encode.
//
// # Codeplugs
//
// ExportYAML and ImportYAML render the records as an editable YAML
// document:
//
//	variant: upgrade
//	channels:
//	  - number: 1
//	    rx_freq: "435.02500"
//	    tx_freq: "435.02500"
//	    rx_tone: None
//	    tx_tone: "88.5"
//	    power: high
//	    bandwidth: narrow
//	    scan: allow
//	    squelch: none
//
// ImportYAML validates the whole document before touching any record.
package store
