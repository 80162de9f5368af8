package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind         string
	data         string
	databaseURL  string
	guessRate    int
	metrics      bool
	port         int
	prefix       string
	profile      bool
	roundTimeout time.Duration
	tlsCert      string
	tlsKey       string
	verbose      bool
	version      bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.guessRate < 0 {
		return fmt.Errorf("invalid guess rate (must be 0 or greater): %d", c.guessRate)
	}
	if c.roundTimeout <= 0 {
		return fmt.Errorf("invalid round timeout (must be greater than 0): %s", c.roundTimeout)
	}
	if c.data == "" && c.databaseURL == "" {
		return errors.New("one of --data or --database-url must be provided")
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DUGOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "dugout",
		Short:         "Guess the starting lineup of a random baseball team and season.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: DUGOUT_BIND)")
	fs.StringVarP(&cfg.data, "data", "d", "baseball_data.csv", "path to appearance csv, created with sample data if missing (env: DUGOUT_DATA)")
	fs.StringVar(&cfg.databaseURL, "database-url", "", "postgres connection string to load appearances from instead of --data (env: DUGOUT_DATABASE_URL)")
	fs.IntVar(&cfg.guessRate, "guess-rate", 30, "guess submissions allowed per minute per client, 0 to disable (env: DUGOUT_GUESS_RATE)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "expose prometheus metrics at /metrics (env: DUGOUT_METRICS)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: DUGOUT_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: DUGOUT_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: DUGOUT_PROFILE)")
	fs.DurationVar(&cfg.roundTimeout, "round-timeout", 60*time.Minute, "time before idle rounds are discarded (env: DUGOUT_ROUND_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: DUGOUT_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: DUGOUT_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: DUGOUT_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: DUGOUT_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("dugout v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
