package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/moffa90/go-radiocps/codec"
	"github.com/moffa90/go-radiocps/protocol"
	"github.com/moffa90/go-radiocps/record"
)

// MinImageSize is the smallest image that holds every record window.
var MinImageSize = record.SkipFrequencyWindow.End()

// Store owns the working EEPROM image and one instance of every record.
// It is not safe for concurrent use.
type Store struct {
	// Variant sizes the image
	Variant protocol.Variant

	// Image is the working image. Transfers send it as-is.
	Image []byte

	Model         *record.Model
	Channels      *record.Channels
	Basic         *record.Basic
	TOT           *record.TOT
	Buttons       *record.Buttons
	ChannelIndex  *record.ChannelIndex
	ScanBasic     *record.ScanBasic
	ScanIndex     *record.ScanIndex
	DTMFBasic     *record.DTMFBasic
	ContactIndex  *record.ContactIndex
	DTMFContacts  *record.DTMFContacts
	SkipFrequency *record.SkipFrequency
}

// New creates a store with an erased image sized for v.
//
// Panics if v.ImageSize cannot hold the record windows.
func New(v protocol.Variant) *Store {
	if v.ImageSize < MinImageSize {
		panic(fmt.Sprintf("variant %s image size %d is smaller than %d", v.Name, v.ImageSize, MinImageSize))
	}

	model := record.NewModel()
	channels := record.NewChannels(model)
	contacts := &record.DTMFContacts{}
	tot := record.DefaultTOT

	return &Store{
		Variant:       v,
		Image:         erased(v.ImageSize),
		Model:         model,
		Channels:      channels,
		Basic:         &record.Basic{},
		TOT:           &tot,
		Buttons:       &record.Buttons{},
		ChannelIndex:  &record.ChannelIndex{Channels: channels},
		ScanBasic:     &record.ScanBasic{},
		ScanIndex:     &record.ScanIndex{Channels: channels},
		DTMFBasic:     &record.DTMFBasic{},
		ContactIndex:  &record.ContactIndex{Contacts: contacts},
		DTMFContacts:  contacts,
		SkipFrequency: record.NewSkipFrequency(model),
	}
}

// Records returns every record, model first.
func (s *Store) Records() []record.Record {
	return []record.Record{
		s.Model,
		s.Channels,
		s.Basic,
		s.TOT,
		s.Buttons,
		s.ChannelIndex,
		s.ScanBasic,
		s.ScanIndex,
		s.DTMFBasic,
		s.ContactIndex,
		s.DTMFContacts,
		s.SkipFrequency,
	}
}

// ImageToRecords decodes every record from the working image.
func (s *Store) ImageToRecords() {
	for _, r := range s.Records() {
		w := r.Window()
		r.Decode(s.Image[w.Offset:w.End()])
	}
}

// RecordsToImage encodes every record into a fresh erased image, using the
// working image as the base for each window. The working image is not
// modified.
func (s *Store) RecordsToImage() []byte {
	image := erased(s.Variant.ImageSize)
	for _, r := range s.Records() {
		w := r.Window()
		copy(image[w.Offset:w.End()], r.Encode(s.Image[w.Offset:w.End()]))
	}
	return image
}

// Commit replaces the working image with RecordsToImage.
func (s *Store) Commit() {
	s.Image = s.RecordsToImage()
}

// Overlay encodes every record over the working image in place. Bytes
// outside the record windows, such as a firmware header, are kept.
func (s *Store) Overlay() {
	for _, r := range s.Records() {
		w := r.Window()
		copy(s.Image[w.Offset:w.End()], r.Encode(s.Image[w.Offset:w.End()]))
	}
}

// Reset erases the working image and decodes the records from it.
func (s *Store) Reset() {
	s.Image = erased(s.Variant.ImageSize)
	s.ImageToRecords()
}

// InitFirstChannel programs channel 1 as a simplex channel on freq (MHz).
func (s *Store) InitFirstChannel(freq string) error {
	dec, err := codec.FreqToDec(freq)
	if err != nil {
		return err
	}
	if r := s.Model.Range(); !r.Contains(dec) {
		return fmt.Errorf("frequency %s outside %s-%s MHz",
			freq, codec.DecToFreq(r.Min), codec.DecToFreq(r.Max))
	}

	s.Channels.InitFirst(dec)
	return nil
}

// Load copies up to len(Image) bytes from r into the head of the working
// image and decodes the records. Bytes past the end of a short input keep
// their previous value.
func (s *Store) Load(r io.Reader) error {
	buf := make([]byte, len(s.Image))
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read image: %w", err)
	}

	copy(s.Image, buf[:n])
	s.ImageToRecords()
	return nil
}

// LoadFile loads the working image from path.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image file: %w", err)
	}
	defer f.Close()

	return s.Load(f)
}

// Save commits the records and writes the whole image to w.
func (s *Store) Save(w io.Writer) error {
	s.Commit()
	if _, err := w.Write(s.Image); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// SaveFile saves the image to path, replacing any existing file.
func (s *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func erased(size int) []byte {
	image := make([]byte, size)
	for i := range image {
		image[i] = 0xFF
	}
	return image
}
