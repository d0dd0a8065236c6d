package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/moffa90/go-radiocps/logging"
	"github.com/moffa90/go-radiocps/protocol"
	"github.com/moffa90/go-radiocps/serialport"
	"github.com/moffa90/go-radiocps/settings"
	"github.com/moffa90/go-radiocps/store"
	"github.com/moffa90/go-radiocps/transfer"
)

type globalFlags struct {
	port      string
	baud      int
	variant   string
	logLevel  string
	setupPath string
	langDir   string
}

// env is everything a subcommand needs, resolved from flags and Setup.ini.
type env struct {
	setup   settings.Setup
	lang    *settings.Lang
	log     zerolog.Logger
	variant protocol.Variant
	port    string
	baud    int

	setupPath string
}

func (g *globalFlags) load() (*env, error) {
	log, err := logging.New(os.Stderr, g.logLevel)
	if err != nil {
		return nil, err
	}

	setup, err := settings.LoadSetup(g.setupPath)
	if err != nil {
		return nil, err
	}

	lang, err := settings.LoadLang(g.langDir, setup.CurLang)
	if err != nil {
		if !settings.IsNotExist(err) {
			return nil, err
		}
		log.Warn().Str("language", setup.CurLang).Msg("language table not found, using English")
		lang = settings.English()
	}

	variant, err := protocol.LookupVariant(g.variant)
	if err != nil {
		return nil, err
	}

	e := &env{
		setup:   setup,
		lang:    lang,
		log:     log,
		variant: variant,
		port:    setup.Com,
		baud:    setup.Baudrate,

		setupPath: g.setupPath,
	}
	if g.port != "" {
		e.port = g.port
	}
	if g.baud > 0 {
		e.baud = g.baud
	}
	return e, nil
}

// engine returns a transfer engine on the configured serial port.
func (e *env) engine(opts ...transfer.Option) *transfer.Engine {
	base := []transfer.Option{
		transfer.WithVariant(e.variant),
		transfer.WithLogger(logging.NewAdapter(e.log)),
		transfer.WithMessages(e.lang.Messages()),
	}
	return transfer.New(serialport.Opener(e.port, e.baud), append(base, opts...)...)
}

// newStore returns an erased store for the configured variant.
func (e *env) newStore() *store.Store {
	return store.New(e.variant)
}
