package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pranshuparmar/bundlecheck/internal/manifest"
	"github.com/pranshuparmar/bundlecheck/internal/provision"
)

type Resource struct {
	Name string `yaml:"name"`
	Ext  string `yaml:"ext"`
}

// FileName is the resource's name as it appears on disk
func (r Resource) FileName() string {
	if r.Ext == "" {
		return r.Name
	}
	return r.Name + "." + r.Ext
}

type Manifest struct {
	Resource `yaml:",inline"`
	Key      string `yaml:"key"`
}

type Descriptor struct {
	Resource       `yaml:",inline"`
	AppIDMarker    string `yaml:"app_id_marker"`
	TeamNameMarker string `yaml:"team_name_marker"`
	OpenDelimiter  string `yaml:"open_delimiter"`
	CloseDelimiter string `yaml:"close_delimiter"`
}

type Config struct {
	Manifest   Manifest   `yaml:"manifest"`
	Descriptor Descriptor `yaml:"descriptor"`
}

func Default() Config {
	return Config{
		Manifest: Manifest{
			Resource: Resource{Name: "Info", Ext: "plist"},
			Key:      manifest.IdentifierKey,
		},
		Descriptor: Descriptor{
			Resource:       Resource{Name: "embedded", Ext: "mobileprovision"},
			AppIDMarker:    provision.AppIDMarker,
			TeamNameMarker: provision.TeamNameMarker,
			OpenDelimiter:  provision.OpenDelimiter,
			CloseDelimiter: provision.CloseDelimiter,
		},
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML on top of the defaults. Unknown fields are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Manifest.Name == "" {
		errs = append(errs, errors.New("manifest.name must not be empty"))
	}
	if c.Manifest.Key == "" {
		errs = append(errs, errors.New("manifest.key must not be empty"))
	}
	if c.Descriptor.Name == "" {
		errs = append(errs, errors.New("descriptor.name must not be empty"))
	}
	for _, f := range []struct{ field, val string }{
		{"descriptor.app_id_marker", c.Descriptor.AppIDMarker},
		{"descriptor.team_name_marker", c.Descriptor.TeamNameMarker},
		{"descriptor.open_delimiter", c.Descriptor.OpenDelimiter},
		{"descriptor.close_delimiter", c.Descriptor.CloseDelimiter},
	} {
		if f.val == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", f.field))
		}
	}
	return errors.Join(errs...)
}
