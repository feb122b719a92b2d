// Public domain.

// Package tcprog implements the timecorr command.
package tcprog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"

	"github.com/soniakeys/timecorr/usno"
)

const versionString = "timecorr version 0.1 Go source."

// Main runs the timecorr command with os.Args.
func Main() {
	defer exit.Handler()
	cmd := newRootCmd(os.Stdout, os.Stderr, func(dir string) usno.Store {
		return usno.Dir(dir)
	})
	if err := cmd.Execute(); err != nil {
		exit.Log(err)
	}
}

// values of --download-table
const (
	tableLeap = "leap"
	tableTime = "time"
	tableBoth = "both"
)

// resource names by --download-table value
var tableFiles = map[string][]string{
	tableLeap: {usno.LeapSecondFile},
	tableTime: {usno.UT1File},
	tableBoth: {usno.LeapSecondFile, usno.UT1File},
}

type commandLine struct {
	download   string  // --download-table
	showLeap   float64 // JD
	showTime   float64 // MJD
	preview    bool
	at         string
	configFile string
	dir        string
	baseURL    string
	logLevel   string
}

// errStop ends an invocation early after a guidance message has been
// printed.  It is not reported as a failure.
var errStop = errors.New("stop")

func newRootCmd(out, errOut io.Writer, newStore func(dir string) usno.Store) *cobra.Command {
	var cl commandLine
	cmd := &cobra.Command{
		Use:   "timecorr",
		Short: "Leap second and UT1-UTC time corrections",
		Long: `Timecorr downloads the USNO leap second table (tai-utc.dat) and the
UT1-UTC table (finals.daily.extended) and looks up corrections in them.

Operations given together run in the order download, show-leap, show-time,
preview, at.`,
		Version:       versionString,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if cl.download == "" && !flags.Changed("show-leap") &&
				!flags.Changed("show-time") && !cl.preview && cl.at == "" {
				return cmd.Help()
			}
			if cl.download != "" && tableFiles[cl.download] == nil {
				return fmt.Errorf("invalid --download-table %q, want leap, time, or both", cl.download)
			}
			c, err := resolveConfig(flags, &cl)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(errOut,
				&slog.HandlerOptions{Level: c.slogLevel()}))
			p := &program{
				out: out,
				repo: &usno.Repo{
					Store:   newStore(c.Dir),
					Fetcher: &usno.Fetcher{BaseURL: c.BaseURL},
					Log:     log,
				},
				log: log,
			}
			return p.run(cmd, &cl)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	f := cmd.Flags()
	f.StringVarP(&cl.download, "download-table", "t", "",
		"download the leap-second, time correction or both tables (leap|time|both)")
	f.Float64Var(&cl.showLeap, "show-leap", 0,
		"show number of leap seconds for a given JD")
	f.Float64Var(&cl.showTime, "show-time", 0,
		"show time correction for a given MJD")
	f.BoolVar(&cl.preview, "preview", false,
		"show the first entries of both tables")
	f.StringVar(&cl.at, "at", "",
		"show all corrections for a UTC time, RFC 3339 or YYYY-MM-DD")
	f.StringVarP(&cl.configFile, "config", "c", "",
		"config file (default "+defConfigFile+")")
	f.StringVarP(&cl.dir, "dir", "d", "",
		"directory of local table copies (default "+defDir+")")
	f.StringVar(&cl.baseURL, "base-url", "",
		"location of the tables (default "+usno.BaseURL+")")
	f.StringVar(&cl.logLevel, "log-level", "",
		"debug, info, warn, or error (default "+defLogLevel+")")
	return cmd
}

// run performs the requested operations in order.
//
// A failed download is logged and does not prevent later operations.
// A missing table prints guidance and ends the run without error.
func (p *program) run(cmd *cobra.Command, cl *commandLine) error {
	var errs []error
	if cl.download != "" {
		for _, name := range tableFiles[cl.download] {
			if err := p.repo.Download(cmd.Context(), name); err != nil {
				p.log.Error("download failed", "table", name, "err", err)
				errs = append(errs, err)
			}
		}
	}
	flags := cmd.Flags()
	var ops []func() error
	if flags.Changed("show-leap") {
		ops = append(ops, func() error { return p.showLeap(cl.showLeap) })
	}
	if flags.Changed("show-time") {
		ops = append(ops, func() error { return p.showTime(cl.showTime) })
	}
	if cl.preview {
		ops = append(ops, p.preview)
	}
	if cl.at != "" {
		ops = append(ops, func() error { return p.showAt(cl.at) })
	}
	for _, op := range ops {
		err := op()
		if errors.Is(err, errStop) {
			break
		}
		if err != nil {
			errs = append(errs, err)
			break
		}
	}
	return errors.Join(errs...)
}
