// Package category maps free-text POI type tags onto the closed set of
// wellness categories used across the app.
package category

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// Rule assigns Category to any input containing one of Keywords.
type Rule struct {
	Category models.Category
	Keywords []string
}

// DefaultRules are evaluated in order; the first match wins.
var DefaultRules = []Rule{
	{Category: models.CategoryMeditation, Keywords: []string{"yoga", "meditat"}},
	{Category: models.CategoryHerbalTherapy, Keywords: []string{"ayur", "spa", "herbal"}},
	{Category: models.CategoryCooking, Keywords: []string{"cook"}},
	{Category: models.CategoryNature, Keywords: []string{"park", "forest", "nature"}},
}

type compiledRule struct {
	category models.Category
	matcher  ahocorasick.AhoCorasick
}

type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles one automaton per rule so precedence stays the rule order
// even when keywords of different rules overlap in the input.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			continue
		}
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: true,
			MatchOnlyWholeWords:  false,
			MatchKind:            ahocorasick.LeftMostFirstMatch,
			DFA:                  true,
		})
		c.rules = append(c.rules, compiledRule{
			category: r.Category,
			matcher:  builder.Build(keywords),
		})
	}
	return c
}

// Classify returns the category of rawType, or Other when nothing matches.
func (c *Classifier) Classify(rawType string) models.Category {
	s := strings.ToLower(strings.TrimSpace(rawType))
	if s == "" {
		return models.CategoryOther
	}
	for _, r := range c.rules {
		if len(r.matcher.FindAll(s)) > 0 {
			return r.category
		}
	}
	return models.CategoryOther
}

var defaultClassifier = NewClassifier(DefaultRules)

// Classify uses DefaultRules.
func Classify(rawType string) models.Category {
	return defaultClassifier.Classify(rawType)
}

// Filters lists the grid filter options in display order.
func Filters() []string {
	return []string{
		models.CategoryAll,
		models.CategoryMeditation.String(),
		models.CategoryHerbalTherapy.String(),
		models.CategoryCooking.String(),
		models.CategoryNature.String(),
	}
}

// Parse resolves a filter value to a category. "All" and blank report ok=false.
func Parse(value string) (models.Category, bool) {
	v := strings.TrimSpace(value)
	for _, c := range []models.Category{
		models.CategoryMeditation,
		models.CategoryHerbalTherapy,
		models.CategoryCooking,
		models.CategoryNature,
		models.CategoryOther,
	} {
		if strings.EqualFold(v, c.String()) {
			return c, true
		}
	}
	return "", false
}
