package kinds

import (
	"context"
	"path"

	"github.com/pkg/errors"

	"sieve"
	nt "sieve/entity"
	"sieve/locale"
)

const (
	kindPath      = "object.kind"
	extensionPath = "path.extension"

	kindIcon      sieve.Icon = "▣"
	extensionIcon sieve.Icon = "◇"
)

// KindFilter filters records on object.kind.
func KindFilter(res locale.Resolver) *sieve.Descriptor[int] {

	return sieve.New(sieve.Definition[int]{
		Name:           res.Resolve("kind"),
		TranslationKey: "kind",
		Icon:           kindIcon,
		Extract:        intAt(kindPath),
		Create: func(kind int) nt.Record {
			return nt.Fragment(kindPath, kind)
		},
		Options: func(_ context.Context) ([]sieve.Option[int], error) {
			kinds := AllKinds()
			options := make([]sieve.Option[int], len(kinds))
			for i, kind := range kinds {
				options[i] = sieve.Option[int]{
					Name:  res.Resolve(kind.String()),
					Value: int(kind),
					Icon:  kindIcon,
				}
			}
			return options, nil
		},
	})
}

// ExtensionSource lists the file extensions present in a store.
type ExtensionSource interface {
	Extensions(ctx context.Context) (exts []string, err error)
}

// ExtensionFilter filters records on path.extension, with options fetched
// from the store.
func ExtensionFilter(src ExtensionSource, res locale.Resolver) *sieve.Descriptor[string] {

	return sieve.New(sieve.Definition[string]{
		Name:           res.Resolve("extension"),
		TranslationKey: "extension",
		Icon:           extensionIcon,
		Extract: func(rec nt.Record) (ext string, ok bool) {
			val, ok := rec.Lookup(extensionPath)
			if !ok {
				return
			}
			ext, ok = val.(string)
			return
		},
		Create: func(ext string) nt.Record {
			return nt.Fragment(extensionPath, ext)
		},
		Options: func(ctx context.Context) (options []sieve.Option[string], err error) {
			exts, err := src.Extensions(ctx)
			if err != nil {
				err = errors.Wrapf(err, "failed to list extensions")
				return
			}

			for _, ext := range exts {
				options = append(options, sieve.Option[string]{
					Name:  "." + ext,
					Value: ext,
					Icon:  extensionIcon,
				})
			}
			return
		},
	})
}

// Extension returns a file name's extension without the dot.
func Extension(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}
	return ext[1:]
}

// unexported

// intAt reads an integer at a record path, accepting the float64 that
// decoded json carries.
func intAt(at string) func(nt.Record) (int, bool) {
	return func(rec nt.Record) (int, bool) {
		val, ok := rec.Lookup(at)
		if !ok {
			return 0, false
		}

		switch n := val.(type) {
		case int:
			return n, true
		case int32:
			return int(n), true
		case int64:
			return int(n), true
		case float64:
			if n != float64(int(n)) {
				return 0, false
			}
			return int(n), true
		}
		return 0, false
	}
}
