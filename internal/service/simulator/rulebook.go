package simulator

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Rulebook is the on-disk form of a rule table.
type Rulebook struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

// LoadRulebook reads a YAML rulebook from path and builds a simulator from it.
func LoadRulebook(path string) (*Simulator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open rulebook %s", path)
	}
	defer f.Close()

	sim, err := DecodeRulebook(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load rulebook %s", path)
	}
	return sim, nil
}

// DecodeRulebook parses YAML from r. A missing fallback inherits the built-in
// one.
func DecodeRulebook(r io.Reader) (*Simulator, error) {
	var book Rulebook
	if err := yaml.NewDecoder(r).Decode(&book); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRulebook
		}
		return nil, errors.Wrap(err, "decode rulebook")
	}
	if book.Fallback == "" {
		book.Fallback = Fallback
	}
	return New(book.Rules, book.Fallback)
}

// EncodeRulebook writes the simulator's table as YAML.
func EncodeRulebook(w io.Writer, s *Simulator) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	book := Rulebook{Rules: s.Rules(), Fallback: s.FallbackReply()}
	if err := enc.Encode(book); err != nil {
		return errors.Wrap(err, "encode rulebook")
	}
	return enc.Close()
}
