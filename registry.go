package sieve

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	nt "sieve/entity"
	"sieve/query"
)

// Registry maps filter names to filters, populated at startup.
type Registry struct {
	names   []string
	filters map[string]Filter
	logger  nt.Logger
}

func NewRegistry(lgr nt.Logger) *Registry {
	return &Registry{
		filters: map[string]Filter{},
		logger:  lgr,
	}
}

// Register adds a filter under its name.
func (reg *Registry) Register(flt Filter) (err error) {

	name := flt.Name()
	if name == "" {
		return errors.Errorf("cannot register filter with empty name, key: %s", flt.TranslationKey())
	}
	if _, ok := reg.filters[name]; ok {
		return errors.Errorf("filter already registered: %s", name)
	}

	reg.names = append(reg.names, name)
	reg.filters[name] = flt
	return
}

// Get returns the named filter.
func (reg *Registry) Get(name string) (flt Filter, ok bool) {
	flt, ok = reg.filters[name]
	return
}

// Names lists filters in registration order.
func (reg *Registry) Names() []string {
	return slices.Clone(reg.names)
}

// Catalogue fetches every filter's options concurrently.
func (reg *Registry) Catalogue(ctx context.Context) (index OptionsIndex, err error) {

	var mu sync.Mutex
	index = OptionsIndex{}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, name := range reg.names {
		flt := reg.filters[name]
		eg.Go(func() error {
			catalogue, err := flt.Load(egCtx)
			if err != nil {
				return errors.Wrapf(err, "failed to load catalogue for %s", name)
			}

			mu.Lock()
			index[name] = catalogue
			mu.Unlock()
			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		reg.logger.Error(ctx, "failed to load catalogues", err)
		return nil, err
	}

	reg.logger.Info(ctx, "loaded filter catalogues", "count", len(index))
	return
}

// Query builds the composite predicate for the search's active conditions.
func (reg *Registry) Query(ctx context.Context, search *Search) nt.Filter {

	var clauses []query.Clause
	for _, name := range search.Names() {
		flt, ok := reg.filters[name]
		if !ok {
			reg.logger.Info(ctx, "skipping unregistered filter", "name", name)
			continue
		}

		cond, _ := search.Active(name)
		frags := flt.Fragments(cond.Values)
		if len(frags) == 0 {
			continue
		}

		clauses = append(clauses, query.Clause{
			Negate:    cond.Mode == NotIn,
			Fragments: frags,
		})
	}

	return query.Build(clauses...)
}

// Matches checks rec against every active condition in memory.
func (reg *Registry) Matches(search *Search, rec nt.Record) bool {

	for _, name := range search.Names() {
		flt, ok := reg.filters[name]
		if !ok {
			continue
		}
		cond, _ := search.Active(name)
		if !flt.Matches(cond, rec) {
			return false
		}
	}
	return true
}

// Summary describes each active condition, such as "kind in Image, Video".
// Values missing from the catalogue are left out.
func (reg *Registry) Summary(search *Search, index OptionsIndex) (lines []string) {

	for _, name := range search.Names() {
		flt, ok := reg.filters[name]
		if !ok {
			continue
		}

		cond, _ := search.Active(name)
		labels := flt.Labels(cond.Values, index)
		if len(labels) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", name, cond.Mode, strings.Join(labels, ", ")))
	}
	return
}
