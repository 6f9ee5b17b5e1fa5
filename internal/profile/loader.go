package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Document is the on-disk representation of a profile together with the
// evidence and the job it is evaluated against.
type Document struct {
	Profile    UserProfile  `json:"profile" mapstructure:"profile"`
	Projects   []Project    `json:"projects" mapstructure:"projects"`
	Experience []Experience `json:"experience" mapstructure:"experience"`
	Job        *JobPosting  `json:"job,omitempty" mapstructure:"job"`
}

// Load reads a profile document from a yaml, json or toml file.
func Load(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile file is not configured")
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading profile file %q: %w", path, err)
	}

	raw := v.AllSettings()
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("profile file %q: %w", path, err)
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding profile file %q: %w", path, err)
	}

	return doc, nil
}

// Decode converts generic settings into a Document. Scalars are weakly typed,
// so "2" is accepted for numeric fields. A missing project count is taken from
// the number of listed projects.
func Decode(raw map[string]any) (*Document, error) {
	doc := &Document{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           doc,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	if _, ok := lookup(raw, "profile", "project-count"); !ok {
		doc.Profile.ProjectCount = len(doc.Projects)
	}

	return doc, nil
}

func lookup(raw map[string]any, section, key string) (any, bool) {
	inner, ok := raw[section].(map[string]any)
	if !ok {
		return nil, false
	}
	for k, value := range inner {
		if strings.EqualFold(k, key) {
			return value, true
		}
	}
	return nil, false
}
