package copilot

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge/*.yaml
var knowledgeFS embed.FS

type Kind string

const (
	KindAI       Kind = "ai"
	KindCloud    Kind = "cloud"
	KindIndustry Kind = "industry"
)

const GeneralIndustry = "general"

type Knowledge struct {
	UseCases   []string `yaml:"use_cases" json:"use_cases"`
	Challenges []string `yaml:"challenges" json:"challenges"`
	Solutions  []string `yaml:"solutions" json:"solutions"`
}

type Topic struct {
	Name      string     `yaml:"name"`
	Any       []string   `yaml:"any"`
	Industry  string     `yaml:"industry"`
	Knowledge *Knowledge `yaml:"knowledge"`
	Response  string     `yaml:"response"`
}

func (t Topic) matches(text string) bool {
	for _, needle := range t.Any {
		n := strings.ToLower(strings.TrimSpace(needle))
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// Book is one responder's ordered topic list. Order is significant: the
// first matching topic wins.
type Book struct {
	Kind     Kind    `yaml:"kind"`
	Topics   []Topic `yaml:"topics"`
	Fallback Topic   `yaml:"fallback"`
}

// Match returns the first topic with a needle contained in query, compared
// case-insensitively. ok is false when the fallback was returned.
func (b Book) Match(query string) (t Topic, ok bool) {
	text := strings.ToLower(query)
	for _, topic := range b.Topics {
		if topic.matches(text) {
			return topic, true
		}
	}
	return b.Fallback, false
}

func (b Book) ByIndustry(industry string) (Topic, bool) {
	key := NormalizeIndustry(industry)
	if key == "" {
		return Topic{}, false
	}
	for _, t := range b.Topics {
		if t.Industry == key {
			return t, true
		}
	}
	return Topic{}, false
}

// NormalizeIndustry lowercases and snake-cases a caller supplied industry
// name, so "Financial Services" and "financial_services" agree.
func NormalizeIndustry(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
	return s
}

func (b Book) validate() error {
	var errs []error
	if strings.TrimSpace(b.Fallback.Response) == "" {
		errs = append(errs, fmt.Errorf("%s: fallback response is empty", b.Kind))
	}
	seen := map[string]bool{}
	for i, t := range b.Topics {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s: topic %d has no name", b.Kind, i))
			continue
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate topic %q", b.Kind, t.Name))
		}
		seen[t.Name] = true
		if len(t.Any) == 0 {
			errs = append(errs, fmt.Errorf("%s: topic %q has no keywords", b.Kind, t.Name))
		}
		if strings.TrimSpace(t.Response) == "" {
			errs = append(errs, fmt.Errorf("%s: topic %q has no response", b.Kind, t.Name))
		}
	}
	return errors.Join(errs...)
}

type Library struct {
	books map[Kind]Book
}

// Load parses the embedded knowledge books.
func Load() (*Library, error) {
	files, err := knowledgeFS.ReadDir("knowledge")
	if err != nil {
		return nil, err
	}
	lib := &Library{books: make(map[Kind]Book, len(files))}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		raw, err := knowledgeFS.ReadFile("knowledge/" + f.Name())
		if err != nil {
			return nil, err
		}
		var b Book
		if err := yaml.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name(), err)
		}
		if err := b.validate(); err != nil {
			return nil, err
		}
		lib.books[b.Kind] = b
	}
	for _, k := range []Kind{KindAI, KindCloud, KindIndustry} {
		if _, ok := lib.books[k]; !ok {
			return nil, fmt.Errorf("knowledge book %q missing", k)
		}
	}
	return lib, nil
}

func (l *Library) Book(k Kind) (Book, bool) {
	if l == nil {
		return Book{}, false
	}
	b, ok := l.books[k]
	return b, ok
}
