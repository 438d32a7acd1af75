package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sieve"
	"sieve/config"
	"sieve/kinds"
)

func newFiltersCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "filters <records.ndjson>",
		Short: "List filters and their options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()

			ap, err := setup(ctx, *cfgFile, args[0])
			if err != nil {
				return
			}
			defer ap.close()

			index, err := ap.catalogue(ctx)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for _, name := range ap.registry.Names() {
				flt, _ := ap.registry.Get(name)
				fmt.Fprintf(out, "%s %s (%s)\n", flt.Icon(), name, flt.TranslationKey())

				switch name {
				case ap.kind.Name():
					for _, opt := range sieve.Lookup[int](index, name) {
						fmt.Fprintf(out, "  %d %s\n", opt.Value, opt.Name)
					}
				case ap.ext.Name():
					for _, opt := range sieve.Lookup[string](index, name) {
						fmt.Fprintf(out, "  %s\n", opt.Name)
					}
				}
			}
			return
		},
	}
}

func newSearchCommand(cfgFile *string) *cobra.Command {
	var kindNames, notKindNames, exts, notExts []string

	cmd := &cobra.Command{
		Use:   "search <records.ndjson>",
		Short: "Print records matching kind and extension filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()

			if len(kindNames) > 0 && len(notKindNames) > 0 {
				return errors.New("use either --kind or --not-kind")
			}
			if len(exts) > 0 && len(notExts) > 0 {
				return errors.New("use either --ext or --not-ext")
			}

			ap, err := setup(ctx, *cfgFile, args[0])
			if err != nil {
				return
			}
			defer ap.close()

			search := sieve.NewSearch()
			err = addKinds(search, ap.kind.Name(), append(kindNames, notKindNames...))
			if err != nil {
				return
			}
			if len(notKindNames) > 0 {
				search.SetMode(ap.kind.Name(), sieve.NotIn)
			}

			for _, ext := range append(exts, notExts...) {
				if !search.Has(ap.ext.Name(), ext) {
					search.Toggle(ap.ext.Name(), ext)
				}
			}
			if len(notExts) > 0 {
				search.SetMode(ap.ext.Name(), sieve.NotIn)
			}

			index, err := ap.catalogue(ctx)
			if err != nil {
				return
			}

			return ap.results(ctx, cmd.OutOrStdout(), search, index)
		},
	}

	cmd.Flags().StringSliceVar(&kindNames, "kind", nil, "include kinds, by name")
	cmd.Flags().StringSliceVar(&notKindNames, "not-kind", nil, "exclude kinds, by name")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "include extensions")
	cmd.Flags().StringSliceVar(&notExts, "not-ext", nil, "exclude extensions")
	return cmd
}

func newConfigCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write a sample config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Write(*cfgFile, 0o644)
		},
	}
}

func addKinds(search *sieve.Search, name string, kindNames []string) error {
	for _, kn := range kindNames {
		kind, ok := kinds.ParseKind(kn)
		if !ok {
			return errors.Errorf("unknown kind: %s", kn)
		}
		if !search.Has(name, int(kind)) {
			search.Toggle(name, int(kind))
		}
	}
	return nil
}
