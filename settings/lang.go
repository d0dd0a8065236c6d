package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/moffa90/go-radiocps/transfer"
)

const langSection = "Common"

// Lang is a resolved table of display strings.
type Lang struct {
	Prompt          string
	ReadData        string
	ReadCompleted   string
	WriteData       string
	WriteCompleted  string
	ErrComm         string
	ErrOpenPort     string
	ErrModel        string
	ErrFreqRange    string
	ErrReadSupport  string
	InitData        string
	InitFreq        string
	SaveDone        string
	None            string
	Off             string
	On              string
	Close           string
	Group           string
	Power           []string
	Bandwidth       []string
	Scan            []string
	SquelchMode     []string
	VoiceLang       []string
	BusyLock        []string
	Saving          []string
	APO             []string
	ScanMode        []string
	PriorityScan    []string
	RevertChannel   []string
	Rate            []string
	ButtonFunctions []string
}

// English returns the built-in English table.
func English() *Lang {
	return &Lang{
		Prompt:         "Prompt",
		ReadData:       "Read data",
		ReadCompleted:  "Reading completed",
		WriteData:      "Write data",
		WriteCompleted: "Write completed",
		ErrComm:        "Communication error",
		ErrOpenPort:    "Failed to open the serial port",
		ErrModel:       "Model mismatch",
		ErrFreqRange:   "Frequency band mismatch",
		ErrReadSupport: "Reading from the radio is not supported",
		InitData:       "Data Initialization",
		InitFreq:       "Clear frequency",
		SaveDone:       "Save successfully",
		None:           "None",
		Off:            "Off",
		On:             "On",
		Close:          "Close",
		Group:          "Group",
		Power:          []string{"Lo", "Hi"},
		Bandwidth:      []string{"12.5", "25"},
		Scan:           []string{"Allow", "Prohibit"},
		SquelchMode: []string{"None", "CTDCS", "Optional Signaling",
			"CTDCS or Optional Signaling", "CTDCS and Optional Signaling"},
		VoiceLang:    []string{"Close", "Chinese", "English"},
		BusyLock:     []string{"Off", "Repeater", "Busy"},
		Saving:       []string{"Off", "1:1", "1:2", "1:4", "1:8"},
		APO:          []string{"Off", "10M", "30M", "1H", "2H"},
		ScanMode:     []string{"Time", "Carrier", "Search"},
		PriorityScan: []string{"Close", "Open"},
		RevertChannel: []string{"Selected", "Select + Current Call", "Last Received Call Channel",
			"Last Used Channel", "Priority Channel", "Priority Channel + Current Call"},
		Rate: []string{"50", "100", "200", "300", "500"},
		ButtonFunctions: []string{"None", "Monitor key", "Scan key", "Voice control",
			"Power detection", "Power control", "One-key call", "Alarm", "Flashlight",
			"Inverted frequency", "Offnet", "Bandwidth", "1750Hz", "2100Hz", "1000Hz", "1450Hz"},
	}
}

// stringKeys maps language file keys to single string fields.
func (l *Lang) stringKeys() map[string]*string {
	return map[string]*string{
		"SZ_PROMPT":               &l.Prompt,
		"SZ_READ_DATA":            &l.ReadData,
		"SZ_READ_COMPLETED":       &l.ReadCompleted,
		"SZ_WRITE_DATA":           &l.WriteData,
		"SZ_WRITE_COMPLETED":      &l.WriteCompleted,
		"SZ_ERR_COMM":             &l.ErrComm,
		"SZ_ERR_OPEN_PORT":        &l.ErrOpenPort,
		"SZ_ERR_MODEL":            &l.ErrModel,
		"SZ_ERR_FREQ_RANGE":       &l.ErrFreqRange,
		"SZ_ERR_READ_UNSUPPORTED": &l.ErrReadSupport,
		"SZ_INIT_DATA":            &l.InitData,
		"SZ_INIT_FREQ":            &l.InitFreq,
		"SZ_SAVE_DONE":            &l.SaveDone,
		"SZ_NONE":                 &l.None,
		"SZ_OFF":                  &l.Off,
		"SZ_ON":                   &l.On,
		"SZ_CLOSE":                &l.Close,
		"SZ_GROUP":                &l.Group,
	}
}

// listKeys maps language file keys to comma separated list fields.
func (l *Lang) listKeys() map[string][]string {
	return map[string][]string{
		"SZ_POWER":         l.Power,
		"SZ_BANDWIDTH":     l.Bandwidth,
		"SZ_SCAN":          l.Scan,
		"SZ_SQL_MODE":      l.SquelchMode,
		"SZ_VOICE_LANG":    l.VoiceLang,
		"SZ_BUSY_LOCK":     l.BusyLock,
		"SZ_SAVING":        l.Saving,
		"SZ_APO":           l.APO,
		"SZ_SCAN_MODE":     l.ScanMode,
		"SZ_PRIORITY_SCAN": l.PriorityScan,
		"SZ_REVERT_CH":     l.RevertChannel,
		"SZ_RATE":          l.Rate,
		"SZ_BUTTON_KEY":    l.ButtonFunctions,
	}
}

// Apply overrides the strings named in the [Common] section of src. List
// values are comma separated and replace entries position by position; extra
// values are ignored and missing ones keep the current text. Unknown keys
// are ignored.
func (l *Lang) Apply(src interface{}) error {
	cfg, err := ini.Load(src)
	if err != nil {
		return fmt.Errorf("load language: %w", err)
	}

	sec := cfg.Section(langSection)
	for key, field := range l.stringKeys() {
		if sec.HasKey(key) {
			*field = sec.Key(key).String()
		}
	}
	for key, list := range l.listKeys() {
		if !sec.HasKey(key) {
			continue
		}
		values := strings.Split(sec.Key(key).String(), ",")
		for i := 0; i < len(list) && i < len(values); i++ {
			list[i] = strings.TrimSpace(values[i])
		}
	}
	return nil
}

// LoadLang returns the table for name, reading "<name>.ini" from dir on top
// of English. English itself needs no file; a missing file for another
// language is an error.
func LoadLang(dir, name string) (*Lang, error) {
	l := English()
	if name == "" {
		return l, nil
	}

	path := filepath.Join(dir, name+".ini")
	if !exists(path) {
		if name == DefaultLanguage {
			return l, nil
		}
		return nil, fmt.Errorf("language %q: %w", name, fs.ErrNotExist)
	}
	if err := l.Apply(path); err != nil {
		return nil, fmt.Errorf("language %q: %w", name, err)
	}
	return l, nil
}

// Messages returns the transfer event strings in this language.
func (l *Lang) Messages() transfer.Messages {
	return transfer.Messages{
		Success:         l.WriteCompleted,
		CommError:       l.ErrComm,
		OpenPortError:   l.ErrOpenPort,
		ReadUnsupported: l.ErrReadSupport,
	}
}

// IsNotExist reports whether err says a language or settings file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
