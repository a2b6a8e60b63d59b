// p3dtool is a CLI utility for inspecting and indexing Pure3D asset files.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/Faultbox/pure3d/internal/config"
	"github.com/Faultbox/pure3d/internal/logger"
	"github.com/Faultbox/pure3d/internal/source"
	"github.com/Faultbox/pure3d/pkg/p3d"
)

const version = "0.1.0"

// cacheEntryLimit keeps very large dumps out of the loader cache.
const cacheEntryLimit = 64 << 20

// CLI defines the command-line interface for p3dtool.
type CLI struct {
	Config  string `name:"config" help:"Path to config file" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `name:"log-file" help:"Also write logs to this file" type:"path"`

	Info     InfoCmd     `cmd:"" help:"Show file variant, record count and kinds"`
	Tree     TreeCmd     `cmd:"" help:"Print the chunk tree"`
	Objects  ObjectsCmd  `cmd:"" help:"List reconstructed meshes, skins and skeletons"`
	Textures TexturesCmd `cmd:"" help:"List and optionally extract embedded textures"`
	Index    IndexCmd    `cmd:"" help:"Scan a directory into the texture catalogue"`
	Lookup   LookupCmd   `cmd:"" help:"Find catalogued textures by digest"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// app carries the state shared by every command.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	loader *source.Loader
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("p3dtool"),
		kong.Description("Pure3D chunk file inspector"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(config.Overrides{
		Path:    cli.Config,
		Debug:   cli.Debug,
		LogFile: cli.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := &app{
		cfg:    cfg,
		log:    logger.Named("p3dtool"),
		loader: source.NewLoader(cacheEntryLimit),
	}

	if err := ctx.Run(a); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parserOptions maps the parser settings onto p3d options. The logger is
// left to the caller.
func (a *app) parserOptions() []p3d.Option {
	return []p3d.Option{
		p3d.WithHexdumpLimit(a.cfg.Parser.HexdumpLimit),
		p3d.WithTolerantPayloads(a.cfg.Parser.ToleratePayloadErrors),
		p3d.WithLogUnknown(a.cfg.Parser.LogUnknown),
	}
}

// open loads and parses one file.
func (a *app) open(path string) (*p3d.Forest, p3d.FileType, error) {
	data, err := a.loader.Load(path)
	if err != nil {
		return nil, 0, err
	}
	ft, err := p3d.DetectFileType(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	opts := append(a.parserOptions(), p3d.WithLogger(a.log.Named("parser")))
	f, err := p3d.NewParser(opts...).Parse(data)
	if err != nil {
		return nil, ft, fmt.Errorf("%s: %w", path, err)
	}
	return f, ft, nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("p3dtool %s (%d record kinds)\n", version, p3d.KindCount())
	return nil
}
