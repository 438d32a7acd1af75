// Package locale resolves translation keys to display text.
package locale

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Resolver maps a translation key to display text.
type Resolver interface {
	Resolve(key string) string
}

// Catalog is a flat key to text table for one language.
type Catalog struct {
	Language string            `yaml:"language"`
	Texts    map[string]string `yaml:"texts"`
}

// Resolve returns the text for key, or key itself when untranslated.
func (cat *Catalog) Resolve(key string) string {
	if cat == nil {
		return key
	}

	text, ok := cat.Texts[key]
	if !ok || text == "" {
		return key
	}
	return text
}

// Parse reads a catalog from yaml.
func Parse(data []byte) (cat *Catalog, err error) {

	cat = &Catalog{}
	err = yaml.Unmarshal(data, cat)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal catalog")
		return nil, err
	}

	if cat.Texts == nil {
		cat.Texts = map[string]string{}
	}
	return
}

// Load reads a catalog from a yaml file.
func Load(path string) (cat *Catalog, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read catalog from %s", path)
		return
	}

	cat, err = Parse(data)
	err = errors.Wrapf(err, "failed to parse %s", path)
	return
}

// Identity resolves every key to itself.
type Identity struct{}

func (Identity) Resolve(key string) string {
	return key
}
