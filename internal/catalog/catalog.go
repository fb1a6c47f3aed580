// Package catalog loads the localized curated question catalog.
//
// Each locale is a YAML file named <locale>.yaml holding category display
// names and questions keyed q1, q2, ... The first missing key ends the
// catalog, so a translation that stops early simply yields a shorter list.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// MaxQuestions is the largest catalog a locale file may define.
const MaxQuestions = 100

//go:embed data/*.yaml
var dataFS embed.FS

type file struct {
	Categories map[string]string       `yaml:"categories"`
	Questions  map[string]fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	Category string `yaml:"category"`
	Text     string `yaml:"text"`
}

// CategoryInfo summarizes one category of a catalog.
type CategoryInfo struct {
	ID            domain.Category
	Name          string
	QuestionCount int
	FreeCount     int
}

// Catalog is the question catalog of a single locale. It is immutable after
// loading and safe for concurrent use.
type Catalog struct {
	locale        string
	questions     []domain.CuratedQuestion
	byID          map[string]int
	categoryNames map[domain.Category]string
}

// Locale returns the catalog's locale code.
func (c *Catalog) Locale() string { return c.locale }

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Get looks up a question by catalog ID.
func (c *Catalog) Get(id string) (domain.CuratedQuestion, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CuratedQuestion{}, false
	}
	return c.questions[i], true
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []domain.CuratedQuestion {
	out := make([]domain.CuratedQuestion, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionsByCategory returns the questions of one category in catalog order.
func (c *Catalog) QuestionsByCategory(cat domain.Category) []domain.CuratedQuestion {
	var out []domain.CuratedQuestion
	for _, q := range c.questions {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns every category in display order with question counts.
func (c *Catalog) Categories() []CategoryInfo {
	counts := make(map[domain.Category]*CategoryInfo)
	out := make([]CategoryInfo, 0, len(domain.AllCategories()))
	for _, cat := range domain.AllCategories() {
		name := c.categoryNames[cat]
		if name == "" {
			name = string(cat)
		}
		out = append(out, CategoryInfo{ID: cat, Name: name})
	}
	for i := range out {
		counts[out[i].ID] = &out[i]
	}
	for _, q := range c.questions {
		info := counts[q.Category]
		info.QuestionCount++
		if q.IsFree {
			info.FreeCount++
		}
	}
	return out
}

// Registry holds the catalogs of all supported locales.
type Registry struct {
	catalogs      map[string]*Catalog
	tags          []language.Tag
	locales       []string
	matcher       language.Matcher
	defaultLocale string
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded(freeCount int, defaultLocale string) (*Registry, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded data: %w", err)
	}
	return Load(sub, freeCount, defaultLocale)
}

// Load reads every *.yaml file at the root of fsys. The first freeCount
// questions of each locale are marked free.
func Load(fsys fs.FS, freeCount int, defaultLocale string) (*Registry, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: list files: %w", err)
	}
	sort.Strings(names)

	r := &Registry{
		catalogs:      make(map[string]*Catalog, len(names)),
		defaultLocale: defaultLocale,
	}

	for _, name := range names {
		locale := strings.TrimSuffix(path.Base(name), ".yaml")
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}
		c, err := parse(locale, raw, freeCount)
		if err != nil {
			return nil, err
		}
		r.catalogs[locale] = c
	}

	def, ok := r.catalogs[defaultLocale]
	if !ok {
		return nil, fmt.Errorf("catalog: default locale %q not found", defaultLocale)
	}

	// The default locale goes first so the matcher falls back to it.
	r.locales = append(r.locales, def.locale)
	for _, name := range names {
		locale := strings.TrimSuffix(path.Base(name), ".yaml")
		if locale != defaultLocale {
			r.locales = append(r.locales, locale)
		}
	}
	for _, l := range r.locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("catalog: locale %q: %w", l, err)
		}
		r.tags = append(r.tags, tag)
	}
	r.matcher = language.NewMatcher(r.tags)

	return r, nil
}

func parse(locale string, raw []byte, freeCount int) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", locale, err)
	}

	c := &Catalog{
		locale:        locale,
		byID:          make(map[string]int),
		categoryNames: make(map[domain.Category]string, len(f.Categories)),
	}
	for k, v := range f.Categories {
		c.categoryNames[domain.Category(k)] = v
	}

	for n := 1; n <= MaxQuestions; n++ {
		id := domain.CatalogQuestionID(n)
		fq, ok := f.Questions[id]
		if !ok {
			break
		}
		cat := domain.Category(fq.Category)
		if !cat.IsValid() {
			return nil, fmt.Errorf("catalog: %s %s: unknown category %q", locale, id, fq.Category)
		}
		text := strings.TrimSpace(fq.Text)
		if text == "" {
			return nil, fmt.Errorf("catalog: %s %s: empty text", locale, id)
		}
		c.byID[id] = len(c.questions)
		c.questions = append(c.questions, domain.CuratedQuestion{
			ID:       id,
			Text:     text,
			Category: cat,
			IsFree:   n <= freeCount,
		})
	}

	if len(c.questions) == 0 {
		return nil, fmt.Errorf("catalog: %s has no questions", locale)
	}
	return c, nil
}

// Locales returns the supported locales, default first.
func (r *Registry) Locales() []string {
	out := make([]string, len(r.locales))
	copy(out, r.locales)
	return out
}

// DefaultLocale returns the fallback locale.
func (r *Registry) DefaultLocale() string { return r.defaultLocale }

// Default returns the catalog of the fallback locale.
func (r *Registry) Default() *Catalog { return r.catalogs[r.defaultLocale] }

// Match picks the supported locale that best fits the given preferences,
// most preferred first. Unparseable or unsupported preferences fall back to
// the default locale.
func (r *Registry) Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	return r.MatchTags(tags...)
}

// MatchTags is Match for already parsed tags.
func (r *Registry) MatchTags(tags ...language.Tag) string {
	if len(tags) == 0 {
		return r.defaultLocale
	}
	if _, idx, conf := r.matcher.Match(tags...); conf != language.No {
		return r.locales[idx]
	}

	// Regional or script variants the matcher rejects still share a base
	// language with a supported locale.
	for _, t := range tags {
		base, _ := t.Base()
		for i, st := range r.tags {
			if sb, _ := st.Base(); sb == base {
				return r.locales[i]
			}
		}
	}
	return r.defaultLocale
}

// For returns the catalog that best fits locale.
func (r *Registry) For(locale string) *Catalog {
	if c, ok := r.catalogs[locale]; ok {
		return c
	}
	return r.catalogs[r.Match(locale)]
}
