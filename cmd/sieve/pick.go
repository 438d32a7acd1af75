package main

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sieve"
	"sieve/message"
	"sieve/picker"
)

func newPickCommand(cfgFile *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "pick <records.ndjson>",
		Short: "Choose a filter's values interactively, then search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()

			ap, err := setup(ctx, *cfgFile, args[0])
			if err != nil {
				return
			}
			defer ap.close()

			if name == "" {
				name = ap.kind.Name()
			}
			flt, ok := ap.registry.Get(name)
			if !ok {
				return errors.Errorf("no such filter: %s", name)
			}

			index, err := ap.catalogue(ctx)
			if err != nil {
				return
			}

			mdl := newPickModel(ctx, ap, flt, index)
			final, err := tea.NewProgram(mdl).Run()
			if err != nil {
				return errors.Wrapf(err, "picker failed")
			}

			done := final.(pickModel)
			if !done.apply {
				return
			}
			return ap.results(ctx, cmd.OutOrStdout(), done.search, index)
		},
	}

	cmd.Flags().StringVarP(&name, "filter", "f", "", "filter to pick from, default kind")
	return cmd
}

// pickModel keeps the search in step with the picker's messages.
type pickModel struct {
	ctx    context.Context
	app    *app
	filter sieve.Filter
	index  sieve.OptionsIndex
	search *sieve.Search
	picker tea.Model
	negate bool
	apply  bool
}

func newPickModel(ctx context.Context, ap *app, flt sieve.Filter, index sieve.OptionsIndex) pickModel {

	search := sieve.NewSearch()
	return pickModel{
		ctx:    ctx,
		app:    ap,
		filter: flt,
		index:  index,
		search: search,
		picker: flt.RenderIndex(index, search),
	}
}

func (m pickModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		msg2 := picker.SizeMsg{Width: msg.Width, Height: msg.Height}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg2)
		return m, cmd

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case message.ToggleMsg:
		m.search.Toggle(msg.Filter, msg.Value)
		m.search.SetMode(msg.Filter, m.mode())
		return m, nil

	case message.ModeMsg:
		m.negate = msg.Negate
		m.search.SetMode(msg.Filter, m.mode())
		return m, nil

	case message.ApplyMsg:
		m.apply = true
		return m, tea.Quit

	case message.CloseMsg:
		m.app.logger.Info(m.ctx, "picker closed without applying", "filter", msg.Filter)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m pickModel) View() tea.View {
	return m.picker.View()
}

func (m pickModel) mode() sieve.Mode {
	if m.negate {
		return sieve.NotIn
	}
	return sieve.In
}
