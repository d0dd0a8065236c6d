package store

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-radiocps/codec"
	"github.com/moffa90/go-radiocps/record"
)

// Codeplug is the editable YAML rendering of the records. Empty channels,
// free contacts and unused skip groups are omitted.
type Codeplug struct {
	Variant         string           `yaml:"variant"`
	Channels        []ChannelEntry   `yaml:"channels"`
	Basic           record.Basic     `yaml:"basic"`
	TOT             record.TOT       `yaml:"tot"`
	Buttons         record.Buttons   `yaml:"buttons"`
	Scan            record.ScanBasic `yaml:"scan"`
	DTMF            record.DTMFBasic `yaml:"dtmf"`
	Contacts        []ContactEntry   `yaml:"contacts,omitempty"`
	SkipFrequencies []SkipGroup      `yaml:"skip_frequencies,omitempty"`
}

// ChannelEntry is a programmed channel and its 1-based number.
type ChannelEntry struct {
	Number         int `yaml:"number"`
	record.Channel `yaml:",inline"`
}

// ContactEntry is a DTMF contact and its 1-based number.
type ContactEntry struct {
	Number int    `yaml:"number"`
	Code   string `yaml:"code"`
}

// SkipGroup is one skip frequency group (1-based) with all of its entries;
// unused entries are "".
type SkipGroup struct {
	Group       int      `yaml:"group"`
	Frequencies []string `yaml:"frequencies,flow"`
}

// Codeplug renders the current records.
func (s *Store) Codeplug() *Codeplug {
	cp := &Codeplug{
		Variant: s.Variant.Name,
		Basic:   *s.Basic,
		TOT:     *s.TOT,
		Buttons: *s.Buttons,
		Scan:    *s.ScanBasic,
		DTMF:    *s.DTMFBasic,
	}

	for i, ch := range s.Channels.Slots {
		if !ch.Empty() {
			cp.Channels = append(cp.Channels, ChannelEntry{Number: i + 1, Channel: ch})
		}
	}
	for i, code := range s.DTMFContacts.Codes {
		if code != "" {
			cp.Contacts = append(cp.Contacts, ContactEntry{Number: i + 1, Code: code})
		}
	}
	for g, group := range s.SkipFrequency.Groups {
		if groupUsed(group[:]) {
			cp.SkipFrequencies = append(cp.SkipFrequencies, SkipGroup{
				Group:       g + 1,
				Frequencies: append([]string(nil), group[:]...),
			})
		}
	}
	return cp
}

// Apply validates cp and, only if it is valid, replaces the records with
// its contents. Channels, contacts and skip groups not listed are cleared.
func (s *Store) Apply(cp *Codeplug) error {
	if cp.Variant != "" && cp.Variant != s.Variant.Name {
		return fmt.Errorf("codeplug is for variant %q, store is %q", cp.Variant, s.Variant.Name)
	}

	r := s.Model.Range()

	var channels [record.ChannelCount]record.Channel
	for _, e := range cp.Channels {
		if e.Number < 1 || e.Number > record.ChannelCount {
			return fmt.Errorf("channel %d: number out of range 1-%d", e.Number, record.ChannelCount)
		}
		if !channels[e.Number-1].Empty() {
			return fmt.Errorf("channel %d: listed twice", e.Number)
		}
		if err := checkChannel(&e.Channel, r); err != nil {
			return fmt.Errorf("channel %d: %w", e.Number, err)
		}
		channels[e.Number-1] = e.Channel
	}

	var contacts [record.ContactCount]string
	for _, e := range cp.Contacts {
		if e.Number < 1 || e.Number > record.ContactCount {
			return fmt.Errorf("contact %d: number out of range 1-%d", e.Number, record.ContactCount)
		}
		code := strings.ToUpper(e.Code)
		if !codec.ValidDTMF(code) {
			return fmt.Errorf("contact %d: invalid DTMF code %q", e.Number, e.Code)
		}
		contacts[e.Number-1] = code
	}

	dtmf := cp.DTMF
	for _, c := range []*string{&dtmf.UpCode, &dtmf.DownCode, &dtmf.StunCode, &dtmf.KillCode} {
		*c = strings.ToUpper(*c)
		if !codec.ValidDTMF(*c) {
			return fmt.Errorf("dtmf: invalid code %q", *c)
		}
	}

	var groups [record.SkipGroupCount][record.SkipEntryCount]string
	for _, g := range cp.SkipFrequencies {
		if g.Group < 1 || g.Group > record.SkipGroupCount {
			return fmt.Errorf("skip group %d: number out of range 1-%d", g.Group, record.SkipGroupCount)
		}
		if len(g.Frequencies) > record.SkipEntryCount {
			return fmt.Errorf("skip group %d: %d frequencies, maximum %d",
				g.Group, len(g.Frequencies), record.SkipEntryCount)
		}
		for i, f := range g.Frequencies {
			if f != "" && !codec.FreqIsValid(f, r) {
				return fmt.Errorf("skip group %d: invalid frequency %q", g.Group, f)
			}
			groups[g.Group-1][i] = f
		}
	}

	s.Channels.Slots = channels
	s.DTMFContacts.Codes = contacts
	s.SkipFrequency.Groups = groups
	*s.Basic = cp.Basic
	*s.TOT = cp.TOT
	s.TOT.Verify()
	*s.Buttons = cp.Buttons
	*s.ScanBasic = cp.Scan
	*s.DTMFBasic = dtmf
	return nil
}

// ExportYAML writes the current records as a YAML codeplug.
func (s *Store) ExportYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s.Codeplug()); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return encoder.Close()
}

// ImportYAML reads a YAML codeplug and applies it. Unknown keys are
// rejected.
func (s *Store) ImportYAML(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var cp Codeplug
	if err := decoder.Decode(&cp); err != nil {
		if err == io.EOF {
			return fmt.Errorf("parse codeplug YAML: empty document")
		}
		return fmt.Errorf("parse codeplug YAML: %w", err)
	}
	return s.Apply(&cp)
}

// ExportYAMLFile writes the codeplug to path.
func (s *Store) ExportYAMLFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create codeplug file: %w", err)
	}

	if err := s.ExportYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportYAMLFile reads and applies the codeplug at path.
func (s *Store) ImportYAMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open codeplug file: %w", err)
	}
	defer f.Close()

	return s.ImportYAML(f)
}

func checkChannel(ch *record.Channel, r codec.Range) error {
	if ch.RxFreq == "" {
		return fmt.Errorf("rx_freq is required")
	}
	if !codec.FreqIsValid(ch.RxFreq, r) {
		return fmt.Errorf("invalid rx_freq %q", ch.RxFreq)
	}
	if ch.TxFreq == "" {
		ch.TxFreq = ch.RxFreq
	}
	if !codec.FreqIsValid(ch.TxFreq, r) {
		return fmt.Errorf("invalid tx_freq %q", ch.TxFreq)
	}
	ch.RxFreq = codec.NormalizeFreq(ch.RxFreq, r)
	ch.TxFreq = codec.NormalizeFreq(ch.TxFreq, r)

	for _, t := range []*string{&ch.RxTone, &ch.TxTone} {
		if !validTone(*t) {
			return fmt.Errorf("invalid tone %q", *t)
		}
		if *t == "" {
			*t = codec.ToneNone
		}
	}
	return nil
}

// validTone accepts "", None and any tone that survives an encode.
func validTone(t string) bool {
	if t == "" || t == codec.ToneNone {
		return true
	}
	got := codec.BytesToTone(bytesOf(codec.ToneToBytes(t)))
	return got != "" && got != codec.ToneNone
}

func bytesOf(b [2]byte) []byte {
	return b[:]
}

func groupUsed(group []string) bool {
	for _, f := range group {
		if f != "" {
			return true
		}
	}
	return false
}
