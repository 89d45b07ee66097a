package main

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"berkotech.co/datawrangling/frameio"
)

const envPrefix = "DATAWRANGLING"

// config is resolved once per command run from flags, DATAWRANGLING_*
// environment variables and the optional config file, in that order of
// precedence.
type config struct {
	DataDir   string   `mapstructure:"data-dir"`
	OutDir    string   `mapstructure:"out-dir"`
	NAValues  []string `mapstructure:"na-values"`
	Delimiter string   `mapstructure:"delimiter"`
	Online    bool     `mapstructure:"online"`
	Verbose   int      `mapstructure:"verbose"`

	log logr.Logger
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	fs := cmd.PersistentFlags()
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("data-dir", "data", "directory holding the sample data files")
	fs.String("out-dir", "output", "directory for written files and charts")
	fs.StringSlice("na-values", frameio.DefaultNAValues(), "tokens read as missing")
	fs.String("delimiter", ",", `field delimiter for delimited text ("\t" for tab)`)
	fs.Bool("online", false, "fetch the demo signals over HTTP instead of from data-dir")
	fs.CountP("verbose", "v", "log more (repeat for more detail)")

	for _, name := range []string{"data-dir", "out-dir", "na-values", "delimiter", "online", "verbose"} {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	cfg.log = log
	cfg.log.V(1).Info("configuration loaded", "data-dir", cfg.DataDir, "out-dir", cfg.OutDir,
		"delimiter", cfg.Delimiter, "online", cfg.Online)
	return cfg, nil
}

// newLogger builds a zap development logger behind logr. Each -v lowers
// the zap level by one, which is what logr.V(n) maps onto.
func newLogger(verbose int) (logr.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbose))
	zc.OutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	z, err := zc.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to build logger: %w", err)
	}
	return zapr.NewLogger(z).WithName("datawrangling"), nil
}

func delimiterRune(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return rs[0], nil
}

// readerOptions turns the resolved settings into frameio options.
func (c *config) readerOptions(extra ...frameio.Option) ([]frameio.Option, error) {
	d, err := delimiterRune(c.Delimiter)
	if err != nil {
		return nil, err
	}
	opts := []frameio.Option{
		frameio.WithDelimiter(d),
		frameio.WithNAValues(c.NAValues...),
		frameio.WithLogger(c.log),
	}
	return append(opts, extra...), nil
}
