package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/skillsenselab/scribekit/config"
	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/version"
)

// CLI is the scribekit command tree.
type CLI struct {
	Config   string `help:"Path to config.yml." short:"c" type:"path"`
	EnvFile  string `help:"Path to a .env file." type:"path"`
	LogLevel string `help:"Override log level (trace, debug, info, warn, error)." enum:",trace,debug,info,warn,error" default:""`

	Run     RunCmd     `cmd:"" help:"Transcribe a local recording and write <prefix>.srt and <prefix>.json."`
	Serve   ServeCmd   `cmd:"" help:"Start the HTTP transcription service."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Println(version.String())
	return nil
}

// loadConfig loads, defaults, and validates configuration, honoring CLI
// overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	var opts []config.LoaderOption
	if c.Config != "" {
		opts = append(opts, config.WithConfigFile(c.Config))
	}
	if c.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(c.EnvFile))
	}

	var cfg config.Config
	if err := config.LoadConfig("scribekit", &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging)
	return &cfg, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("scribekit"),
		kong.Description("Speaker-labeled transcription for recorded audio."),
		kong.UsageOnError(),
		kong.Bind(cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
