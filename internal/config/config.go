// Package config holds run settings and the optional YAML config file.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"

	"github.com/tsawler/docxdump"
)

// EnvConfigPath names the environment variable consulted when no
// --config flag is given.
const EnvConfigPath = "DOCXDUMP_CONFIG"

// Settings are the resolved options of a single run.
type Settings struct {
	Input    string
	Output   string
	Encoding string
	CRLF     bool
	Fallback bool // Open the document with the default application when no reader is built in
	Verbose  bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Input:    docxdump.DefaultInput,
		Output:   docxdump.DefaultOutput,
		Encoding: "utf-8",
		Fallback: true,
	}
}

// FileConfig is the YAML config file schema.
type FileConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Encoding string `yaml:"encoding"`
	CRLF     *bool  `yaml:"crlf"`
	Fallback *bool  `yaml:"fallback"`
	Verbose  *bool  `yaml:"verbose"`
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.WithStack(err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, errors.Wrapf(err, "parse yaml %s", path)
	}
	return fc, nil
}

// Flag names used by Apply's changed callback.
const (
	FlagInput    = "input"
	FlagOutput   = "output"
	FlagEncoding = "encoding"
	FlagCRLF     = "crlf"
	FlagNoOpen   = "no-open"
	FlagVerbose  = "verbose"
)

// Apply overlays file values onto s for every setting whose flag was not
// set explicitly. changed reports whether a flag was given on the command
// line; a nil changed treats every flag as unset.
func Apply(s *Settings, fc FileConfig, changed func(flag string) bool) {
	if s == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if !changed(FlagInput) && fc.Input != "" {
		s.Input = fc.Input
	}
	if !changed(FlagOutput) && fc.Output != "" {
		s.Output = fc.Output
	}
	if !changed(FlagEncoding) && fc.Encoding != "" {
		s.Encoding = fc.Encoding
	}
	if !changed(FlagCRLF) && fc.CRLF != nil {
		s.CRLF = *fc.CRLF
	}
	if !changed(FlagNoOpen) && fc.Fallback != nil {
		s.Fallback = *fc.Fallback
	}
	if !changed(FlagVerbose) && fc.Verbose != nil {
		s.Verbose = *fc.Verbose
	}
}

// Path returns the config file to load: the flag value if set, otherwise
// the value of EnvConfigPath. An empty result means no config file.
func Path(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}
