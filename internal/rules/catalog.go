package rules

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/revguard/cli/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// RuleSpec is the serialized form of one anti-pattern rule, as it
// appears in the embedded catalog or a user configuration file.
type RuleSpec struct {
	ID       string `yaml:"id"`
	Language string `yaml:"language"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
}

// Rule is a compiled anti-pattern rule. Rules are immutable after
// catalog construction.
type Rule struct {
	ID       string
	Language string
	Message  string
	Severity domain.Severity
	Pattern  string

	re *regexp.Regexp
}

// Matches reports whether the rule's pattern matches the given line.
func (r *Rule) Matches(line string) bool {
	return r.re.MatchString(line)
}

// Catalog is the process-lifetime set of anti-pattern rules, read-only
// after construction.
type Catalog struct {
	version int
	rules   []Rule
}

type catalogFile struct {
	Version int        `yaml:"version"`
	Rules   []RuleSpec `yaml:"rules"`
}

// NewCatalog loads and compiles the embedded rule catalog. A malformed
// pattern or an unknown severity is a catalog defect and fails here,
// never at scan time.
func NewCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(embeddedCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule catalog: %w", err)
	}

	c := &Catalog{version: file.Version}
	if err := c.Append(file.Rules); err != nil {
		return nil, err
	}
	return c, nil
}

// Append compiles and adds rules to the catalog, validating each one.
// It is intended for catalog construction time only (embedded rules
// plus any user-configured extras); the catalog must not be mutated
// once scanning begins.
func (c *Catalog) Append(specs []RuleSpec) error {
	for _, spec := range specs {
		rule, err := compileRule(spec)
		if err != nil {
			return err
		}
		c.rules = append(c.rules, rule)
	}
	return nil
}

func compileRule(spec RuleSpec) (Rule, error) {
	if spec.ID == "" {
		return Rule{}, fmt.Errorf("rule with pattern %q has no id", spec.Pattern)
	}
	severity := domain.Severity(spec.Severity)
	if !severity.Valid() {
		return Rule{}, fmt.Errorf("rule %s: invalid severity %q", spec.ID, spec.Severity)
	}
	re, err := regexp.Compile("(?i)" + spec.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: invalid pattern: %w", spec.ID, err)
	}
	return Rule{
		ID:       spec.ID,
		Language: strings.ToLower(spec.Language),
		Message:  spec.Message,
		Severity: severity,
		Pattern:  spec.Pattern,
		re:       re,
	}, nil
}

// Version returns the catalog's declared version.
func (c *Catalog) Version() int {
	return c.version
}

// Rules returns every rule in catalog order.
func (c *Catalog) Rules() []Rule {
	return c.rules
}

// ForLanguage returns the rules applicable to the given language tag:
// the language's own rules plus the "general" fallback set, in catalog
// order.
func (c *Catalog) ForLanguage(language string) []Rule {
	language = strings.ToLower(strings.TrimSpace(language))
	var matched []Rule
	for _, rule := range c.rules {
		if rule.Language == language {
			matched = append(matched, rule)
		}
	}
	for _, rule := range c.rules {
		if rule.Language == "general" && language != "general" {
			matched = append(matched, rule)
		}
	}
	return matched
}
