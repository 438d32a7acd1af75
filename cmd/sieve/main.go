package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sieve"
	"sieve/config"
	nt "sieve/entity"
	"sieve/kinds"
	"sieve/locale"
	"sieve/store/duck"
	"sieve/style"
)

// app is what every subcommand needs, built before it runs.
type app struct {
	cfg      *config.Config
	logger   nt.Logger
	store    *duck.Duck
	registry *sieve.Registry
	kind     *sieve.Descriptor[int]
	ext      *sieve.Descriptor[string]
	closers  []func()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "sieve",
		Short:         "Search file records with in/not-in filters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "sieve.yaml", "config file")

	root.AddCommand(
		newFiltersCommand(&cfgFile),
		newSearchCommand(&cfgFile),
		newPickCommand(&cfgFile),
		newConfigCommand(&cfgFile),
	)
	return root
}

// setup loads config, opens the store on path and registers the filters.
func setup(ctx context.Context, cfgFile, path string) (ap *app, err error) {

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return
	}
	ap = &app{cfg: cfg}

	var logOut io.Writer = os.Stderr
	if cfg.LogPath != "" {
		var file *os.File
		file, err = os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			err = errors.Wrapf(err, "failed to open log")
			return
		}
		logOut = file
		ap.closers = append(ap.closers, func() { file.Close() })
	}
	ap.logger = &sabot.Sabot{Writer: logOut}

	var res locale.Resolver = locale.Identity{}
	if cfg.Catalog != "" {
		res, err = locale.Load(cfg.Catalog)
		if err != nil {
			return
		}
	}

	ap.store, err = duck.New(ap.logger)
	if err != nil {
		return
	}
	ap.closers = append(ap.closers, ap.store.Close)

	if path != "" {
		_, err = ap.store.Load(ctx, path)
		if err != nil {
			return
		}
	}

	ap.kind = kinds.KindFilter(res)
	ap.ext = kinds.ExtensionFilter(ap.store, res)

	ap.registry = sieve.NewRegistry(ap.logger)
	for _, flt := range []sieve.Filter{ap.kind, ap.ext} {
		err = ap.registry.Register(flt)
		if err != nil {
			return
		}
	}
	return
}

func (ap *app) close() {
	for i := len(ap.closers) - 1; i >= 0; i-- {
		ap.closers[i]()
	}
}

// catalogue loads every filter's options within the configured timeout.
func (ap *app) catalogue(ctx context.Context) (sieve.OptionsIndex, error) {

	ctx, cancel := context.WithTimeout(ctx, ap.cfg.Timeout)
	defer cancel()

	return ap.registry.Catalogue(ctx)
}

// results runs the search's query against the store and prints it.
func (ap *app) results(ctx context.Context, out io.Writer, search *sieve.Search, index sieve.OptionsIndex) (err error) {

	for _, line := range ap.registry.Summary(search, index) {
		fmt.Fprintf(out, "where %s\n", line)
	}

	flt := ap.registry.Query(ctx, search)
	count, err := ap.store.Count(ctx, flt)
	if err != nil {
		return
	}

	recs, err := ap.store.Find(ctx, flt, ap.cfg.Limit)
	if err != nil {
		return
	}

	fmt.Fprintf(out, "%d matching\n", count)
	if len(recs) == 0 {
		return
	}

	rows := make([][]string, len(recs))
	for i, rec := range recs {
		name, _ := rec.Lookup("name")
		row := []string{fmt.Sprintf("%v", name), "", ""}

		kind, ok := ap.kind.Extract(rec)
		if ok {
			row[1] = kinds.ObjectKind(kind).String()
		}
		ext, ok := ap.ext.Extract(rec)
		if ok {
			row[2] = ext
		}
		rows[i] = row
	}

	fmt.Fprintln(out, style.Table([]string{"name", ap.kind.Name(), ap.ext.Name()}, rows))
	return
}
