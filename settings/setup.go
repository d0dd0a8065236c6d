// Package settings loads the application's Setup.ini and language tables.
//
// Setup.ini holds the last used serial port, baud rate and language:
//
//	[Setup]
//	Com      = COM3
//	Baudrate = 115200
//	CurLang  = English
//
// Language files are named after the language ("Chinese.ini") and carry a
// [Common] section whose keys override the built-in English strings.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

// Setup.ini section and key names.
const (
	setupSection = "Setup"
	infoSection  = "Info"

	keyCom      = "Com"
	keyBaudrate = "Baudrate"
	keyCurLang  = "CurLang"
	keyVersion  = "Version"
	keyCompany  = "Company"
)

// Defaults applied for missing keys.
const (
	DefaultCom      = "COM1"
	DefaultBaudrate = 115200
	DefaultLanguage = "English"
	DefaultVersion  = "v1.0.0"
	DefaultCompany  = "---"
)

// Setup is the content of Setup.ini.
type Setup struct {
	Com      string
	Baudrate int
	CurLang  string
	Version  string
	Company  string
}

// DefaultSetup returns the settings used when Setup.ini is absent.
func DefaultSetup() Setup {
	return Setup{
		Com:      DefaultCom,
		Baudrate: DefaultBaudrate,
		CurLang:  DefaultLanguage,
		Version:  DefaultVersion,
		Company:  DefaultCompany,
	}
}

// LoadSetup reads path. A missing file yields DefaultSetup; missing keys
// keep their defaults.
func LoadSetup(path string) (Setup, error) {
	s := DefaultSetup()

	cfg, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("load %s: %w", path, err)
	}

	sec := cfg.Section(setupSection)
	s.Com = sec.Key(keyCom).MustString(DefaultCom)
	s.CurLang = sec.Key(keyCurLang).MustString(DefaultLanguage)

	if sec.HasKey(keyBaudrate) {
		baud, err := sec.Key(keyBaudrate).Int()
		if err != nil || baud <= 0 {
			return s, fmt.Errorf("%s Baudrate value is '%s', must be a positive integer",
				setupSection, sec.Key(keyBaudrate).String())
		}
		s.Baudrate = baud
	}

	info := cfg.Section(infoSection)
	s.Version = info.Key(keyVersion).MustString(DefaultVersion)
	s.Company = info.Key(keyCompany).MustString(DefaultCompany)

	return s, nil
}

// Save writes the [Setup] keys to path, keeping any other content of an
// existing file.
func (s Setup) Save(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
		cfg = ini.Empty()
	}

	sec := cfg.Section(setupSection)
	sec.Key(keyCom).SetValue(s.Com)
	sec.Key(keyBaudrate).SetValue(fmt.Sprint(s.Baudrate))
	sec.Key(keyCurLang).SetValue(s.CurLang)

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
