package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/cardwar/internal/config"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"HCL config file" default:"${config_file}" type:"path"`
	NoColor bool   `help:"Disable coloured output" env:"NO_COLOR"`
}

// load reads the config file and applies global overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.NoColor {
		off := false
		cfg.UI.Color = &off
	}
	if !cfg.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return cfg, nil
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play War against the bot (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many games headlessly and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardwar"),
		kong.Description("War card game: you against the bot, seven cards each"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
