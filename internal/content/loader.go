package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/dilation"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/effarig"
	"github.com/osse101/prestige/internal/validation"
)

// Catalog is the resolved content every session is built from.
type Catalog struct {
	Effarig  []effarig.UnlockConfig
	Dilation dilation.Table
}

// Default returns the built-in tables with no overrides.
func Default() Catalog {
	return Catalog{
		Effarig:  effarig.DefaultUnlocks(),
		Dilation: dilation.DefaultTable(),
	}
}

// Load reads an override file. An empty path yields Default.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read content %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse validates data against the content schema and the field rules, then
// applies it on top of Default. Every failure wraps domain.ErrInvalidContent.
func Parse(data []byte) (Catalog, error) {
	cat := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cat, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	if doc == nil {
		return cat, nil
	}
	if err := validation.NewSchemaValidator().ValidateDocument(doc, validation.ContentSchema); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	if err := newValidator().Struct(file); err != nil {
		return Catalog{}, fmt.Errorf("%w: %s", domain.ErrInvalidContent, formatValidationError(err))
	}

	if err := cat.apply(file); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return cat, nil
}

func (c *Catalog) apply(f File) error {
	var unknown []string

	unlocks := make(map[string]int, len(c.Effarig))
	for i, u := range c.Effarig {
		unlocks[u.Key] = i
	}
	for key, o := range f.Effarig.Unlocks {
		i, ok := unlocks[key]
		if !ok {
			unknown = append(unknown, "effarig.unlocks."+key)
			continue
		}
		if c.Effarig[i].GrantOnly && o.Cost != "" {
			return fmt.Errorf("effarig.unlocks.%s: granted unlocks have no cost", key)
		}
		if err := setCost(&c.Effarig[i].Cost, o.Cost); err != nil {
			return err
		}
	}

	rebuyables := make(map[string]int, len(c.Dilation.Rebuyables))
	for i, r := range c.Dilation.Rebuyables {
		rebuyables[r.Key] = i
	}
	for key, o := range f.Dilation.Rebuyables {
		i, ok := rebuyables[key]
		if !ok {
			unknown = append(unknown, "dilation.rebuyables."+key)
			continue
		}
		r := &c.Dilation.Rebuyables[i]
		if err := setCost(&r.InitialCost, o.InitialCost); err != nil {
			return err
		}
		if err := setCost(&r.Increment, o.Increment); err != nil {
			return err
		}
		if o.PurchaseCap != nil {
			r.PurchaseCap = *o.PurchaseCap
		}
	}

	upgrades := make(map[string]int, len(c.Dilation.Upgrades))
	for i, u := range c.Dilation.Upgrades {
		upgrades[u.Key] = i
	}
	for key, o := range f.Dilation.Upgrades {
		i, ok := upgrades[key]
		if !ok {
			unknown = append(unknown, "dilation.upgrades."+key)
			continue
		}
		if err := setCost(&c.Dilation.Upgrades[i].Cost, o.Cost); err != nil {
			return err
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func setCost(dst *bignum.Value, lit Literal) error {
	if lit == "" {
		return nil
	}
	v, err := lit.Value()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
