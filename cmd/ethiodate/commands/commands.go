// Package commands builds the ethiodate command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rabitt1ove/ethiocal"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/config"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/logger"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/server"
)

// Version is set at build time with -ldflags "-X ...commands.Version=v1.2.3".
var Version = "dev"

// ExitCode returns the process exit status for an error returned by a
// command: 2 for bad input, 3 for dates inside the 1582 reform gap and 1
// for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ethiocal.ErrMalformedInput):
		return 2
	case errors.Is(err, ethiocal.ErrInvalidHistoricalDate):
		return 3
	}
	return 1
}

// app carries the state shared by all subcommands once the configuration
// has been loaded.
type app struct {
	configFile string
	cfg        *config.Config
	log        *logger.Logger
}

func (a *app) load() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

// Execute runs ethiodate with the process arguments, printing results to
// stdout.
func Execute() error {
	return run(os.Args[1:], os.Stdout)
}

// run executes the command tree and closes the logger afterwards, also when
// a command fails.
func run(args []string, out io.Writer) error {
	a := &app{}
	defer a.close()

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

// newRootCommand creates the ethiodate command with all subcommands.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ethiodate",
		Short: "Convert dates between the Ethiopian and Gregorian calendars",
		Long: `ethiodate converts dates between the Ethiopian and Gregorian calendars,
prints Julian Day Numbers and serves the conversions over HTTP.

Dates are given as YYYY-MM-DD or as three separate numbers. A negative year
would be read as a flag, so put "--" in front of the numbers:

  ethiodate to-gregorian -- -5 3 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if isNegativeNumber(err) {
			return fmt.Errorf("%w: %v (put -- in front of a negative year)", ethiocal.ErrMalformedInput, err)
		}
		return err
	})
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./ethiodate.yaml if present)")

	root.AddCommand(newToGregorianCommand(a))
	root.AddCommand(newToEthiopianCommand(a))
	root.AddCommand(newJDNCommand(a))
	root.AddCommand(newServeCommand(a))
	root.AddCommand(newVersionCommand(a))
	return root
}

// isNegativeNumber reports whether err is pflag rejecting an argument such
// as -5, which is a negative year rather than a shorthand flag.
func isNegativeNumber(err error) bool {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	return strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) &&
		msg[len(prefix)] >= '0' && msg[len(prefix)] <= '9'
}

// dateArgs accepts "YYYY-MM-DD" or "YYYY MM DD".
func dateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("%w: expected a date as YYYY-MM-DD or as year month day", ethiocal.ErrMalformedInput)
	}
	return nil
}

func parseDateArgs(args []string) (ethiocal.Date, error) {
	if len(args) == 1 {
		return ethiocal.ParseDate(args[0])
	}
	parts := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ethiocal.Date{}, fmt.Errorf("%w: non-numeric component %q", ethiocal.ErrMalformedInput, s)
		}
		parts[i] = n
	}
	return ethiocal.DateFromSlice(parts)
}

// converter builds a Converter for the method flag, falling back to the
// configured method.
func (a *app) converter(cmd *cobra.Command) (*ethiocal.Converter, error) {
	name, _ := cmd.Flags().GetString("method")
	if name == "" {
		name = a.cfg.Convert.Method
	}
	m, err := ethiocal.ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return ethiocal.New(ethiocal.WithMethod(m)), nil
}

func (a *app) outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = a.cfg.Output.Format
	}
	if !config.ValidOutputFormat(format) {
		return "", fmt.Errorf("unknown output format %q (expected ymd, dmy, mdy or long)", format)
	}
	return format, nil
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format: ymd, dmy, mdy or long (default from config)")
	cmd.Flags().String("method", "", "conversion method: direct or jdn (default from config)")
}

func newToGregorianCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "to-gregorian <date>",
		Aliases: []string{"g"},
		Short:   "Convert an Ethiopian date to the Gregorian calendar",
		Example: "  ethiodate to-gregorian 2015-01-01\n  ethiodate to-gregorian 2015 13 6 --format long\n  ethiodate to-gregorian -- -5 3 4",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			format, err := a.outputFormat(cmd)
			if err != nil {
				return err
			}
			conv, err := a.converter(cmd)
			if err != nil {
				return err
			}

			res, err := conv.Gregorian(d)
			a.log.LogConversion("to_gregorian", conv.Method().String(), d.String(), res.YMD, err)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "long":
				fmt.Fprintln(out, res.Formatted)
			default:
				fmt.Fprintln(out, formatDate(res.Date, format))
			}
			return nil
		},
	}
	addConvertFlags(cmd)
	return cmd
}

func newToEthiopianCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "to-ethiopian <date>",
		Aliases: []string{"e"},
		Short:   "Convert a Gregorian date to the Ethiopian calendar",
		Example: "  ethiodate to-ethiopian 2022-09-11\n  ethiodate to-ethiopian 2022 9 11 --format long --locale ti\n  ethiodate to-ethiopian 2022-09-11 --format long --locale all",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			format, err := a.outputFormat(cmd)
			if err != nil {
				return err
			}
			conv, err := a.converter(cmd)
			if err != nil {
				return err
			}

			res, err := conv.Ethiopian(d)
			a.log.LogConversion("to_ethiopian", conv.Method().String(), d.String(), res.YMD, err)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "long" {
				fmt.Fprintln(out, formatDate(res.Date, format))
				return nil
			}

			locale, _ := cmd.Flags().GetString("locale")
			if locale == "all" {
				printLocalized(out, res.Localized)
				return nil
			}
			tag := a.cfg.Locale.Tag()
			if locale != "" {
				if tag, err = language.Parse(locale); err != nil {
					return fmt.Errorf("invalid locale %q: %w", locale, err)
				}
			}
			names, ok := conv.Names(tag)
			if !ok {
				return fmt.Errorf("no names for locale %q", tag)
			}
			fmt.Fprintln(out, names.Format(res.Weekday, res.Date))
			return nil
		},
	}
	addConvertFlags(cmd)
	cmd.Flags().String("locale", "", `locale for --format long, or "all" (default from config)`)
	return cmd
}

func printLocalized(out io.Writer, localized map[string]string) {
	tags := make([]string, 0, len(localized))
	for tag := range localized {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(out, "%s\t%s\n", tag, localized[tag])
	}
}

func newJDNCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdn <date>",
		Short: "Print the Julian Day Number of a Gregorian date",
		Long: `Print the Julian Day Number of a proleptic Gregorian date, or with
--ethiopian of an Ethiopian date, together with the weekday.`,
		Example: "  ethiodate jdn 2022-09-11\n  ethiodate jdn 2015-01-01 --ethiopian\n  ethiodate jdn --ethiopian -- -5 3 4",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			ethiopian, _ := cmd.Flags().GetBool("ethiopian")

			var jdn int
			if ethiopian {
				jdn = ethiocal.EthiopicToJDN(d.Year, d.Month, d.Day)
			} else {
				jdn = ethiocal.GregorianToJDN(d.Year, d.Month, d.Day)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", jdn, ethiocal.Weekday(jdn))
			return nil
		},
	}
	cmd.Flags().Bool("ethiopian", false, "interpret the date as Ethiopian")
	return cmd
}

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion API server",
		Long:  "Start the HTTP server exposing the conversion API, health check and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			conv, err := a.converter(cmd)
			if err != nil {
				return err
			}
			return runServer(ctx, a.cfg, conv, a.log)
		},
	}
	cmd.Flags().String("method", "", "conversion method: direct or jdn (default from config)")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config, conv *ethiocal.Converter, log *logger.Logger) error {
	srv := server.New(cfg, conv, log)

	log.Infow("Starting ethiodate API server",
		"address", cfg.Server.Address(),
		"environment", cfg.App.Environment,
		"method", conv.Method().String(),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start(cfg.Server.Address())
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ethiodate version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.cfg.App.Name, Version)
		},
	}
}

func formatDate(d ethiocal.Date, format string) string {
	switch format {
	case "dmy":
		return d.DMY()
	case "mdy":
		return d.MDY()
	}
	return d.YMD()
}
