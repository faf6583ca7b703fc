package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lozambet/brutedict/pkg/passgen"
)

// Profile is the on-disk representation of one generation run. Field names
// mirror passgen.Config; zero values defer to the engine's defaults.
type Profile struct {
	Mode string `yaml:"mode"`

	FirstName       string   `yaml:"first_name"`
	LastName        string   `yaml:"last_name"`
	Nicknames       []string `yaml:"nicknames"`
	SurnameVariants []string `yaml:"surname_variants"`
	Numbers         []string `yaml:"numbers"`
	MaxArity        int      `yaml:"max_arity"`

	Keywords []string `yaml:"keywords"`
	MaxWords int      `yaml:"max_words"`

	Symbols    []string `yaml:"symbols"`
	Separators struct {
		MaxPerGap   int  `yaml:"max_per_gap"`
		AllowRepeat bool `yaml:"allow_repeat"`
	} `yaml:"separators"`

	Capitalization      string `yaml:"capitalization"`
	CapitalizationScope string `yaml:"capitalization_scope"`
}

// Config converts the profile into an engine config. The result still goes
// through passgen's own validation when handed to a Generator.
func (p Profile) Config() passgen.Config {
	return passgen.Config{
		Mode:            passgen.Mode(p.Mode),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Nicknames:       p.Nicknames,
		SurnameVariants: p.SurnameVariants,
		Numbers:         p.Numbers,
		MaxArity:        p.MaxArity,
		Keywords:        p.Keywords,
		MaxWords:        p.MaxWords,
		Symbols:         p.Symbols,
		Separator: passgen.SeparatorSpec{
			MaxPerGap:   p.Separators.MaxPerGap,
			AllowRepeat: p.Separators.AllowRepeat,
		},
		Caps:      passgen.CapsMode(p.Capitalization),
		CapsScope: passgen.CapsScope(p.CapitalizationScope),
	}
}

// Parse decodes a YAML profile. Unknown fields are rejected so typos fail
// loudly instead of silently producing a different wordlist.
func Parse(data []byte) (Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, errors.Join(ErrInvalidProfile, ErrEmptyProfile)
		}
		return Profile{}, errors.Join(ErrInvalidProfile, err)
	}
	return p, nil
}

// Load reads and parses a profile file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}
