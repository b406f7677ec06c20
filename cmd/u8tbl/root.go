package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/u8tbl"
	"github.com/bjaus/u8tbl/internal/config"
	"github.com/bjaus/u8tbl/internal/input"
)

const defaultDelimiter = " "

type options struct {
	style      string
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "u8tbl [delimiter]",
		Short: "Print delimited input as a table",
		Long: `u8tbl reads lines from stdin, splits each line into cells on the
delimiter (a single space by default) and prints the cells as a table.

The style is taken from --style, then $TABLE_FORMAT, then the config
file, and defaults to unicode.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	addFlags(cmd.Flags(), &opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.style, "style", "s", "", fmt.Sprintf("table style, one of %v", u8tbl.Styles()))
	fs.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fs.BoolVar(&opts.debug, "debug", false, "log debug information to stderr")
}

func run(cmd *cobra.Command, args []string, opts options) error {
	log := newLogger(cmd.ErrOrStderr(), opts.debug)

	cfgPath, required := opts.configPath, true
	if cfgPath == "" {
		cfgPath, required = config.DefaultPath(), false
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	style, source, err := resolveStyle(opts.style, cfg)
	if err != nil {
		return err
	}

	delim := defaultDelimiter
	if cfg.Delimiter != nil {
		delim = *cfg.Delimiter
	}
	if len(args) > 0 && args[0] != "" {
		delim = args[0]
	}

	log.WithFields(logrus.Fields{
		"style":     style,
		"source":    source,
		"delimiter": fmt.Sprintf("%q", delim),
		"config":    cfgPath,
	}).Debug("resolved settings")

	rows, err := input.ReadGrid(cmd.Context(), cmd.InOrStdin(), delim)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.WithFields(logrus.Fields{
		"rows":    len(rows),
		"columns": len(u8tbl.ColumnWidths(rows)),
	}).Debug("read grid")

	out := cmd.OutOrStdout()
	if err := u8tbl.Write(out, style, rows); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// resolveStyle picks the style from the flag, the environment, the config
// file and the default, in that order. It also reports which one won.
func resolveStyle(flag string, cfg config.Config) (u8tbl.Style, string, error) {
	if flag != "" {
		s, err := u8tbl.ParseStyle(flag)
		if err != nil {
			return "", "", fmt.Errorf("--style: %w", err)
		}
		return s, "flag", nil
	}
	if s, ok := u8tbl.LookupEnvStyle(); ok {
		return s, "env", nil
	}
	if cfg.Style != "" {
		s, err := u8tbl.ParseStyle(cfg.Style)
		if err != nil {
			return "", "", fmt.Errorf("config: %w", err)
		}
		return s, "config", nil
	}
	return u8tbl.DefaultStyle, "default", nil
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
