package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samvad-hq/jsonfetch/pkg/httpclient"
	"gopkg.in/yaml.v3"
)

// Profile is a named, file-configurable fetcher setup: base URL, default
// body, and the global headers applied to every request.
type Profile struct {
	Name        string   `json:"name" yaml:"name"`
	BaseURL     string   `json:"base_url" yaml:"base_url"`
	DefaultBody string   `json:"default_body" yaml:"default_body"`
	Headers     []string `json:"headers" yaml:"headers"`
}

type profileFile struct {
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

var (
	profMu      sync.RWMutex
	currentProf []Profile
	profilesIdx map[string]Profile
)

// Profiles returns a copy of the currently loaded profiles.
func Profiles() []Profile {
	profMu.RLock()
	defer profMu.RUnlock()

	if len(currentProf) == 0 {
		return nil
	}
	out := make([]Profile, len(currentProf))
	copy(out, currentProf)
	return out
}

// ProfileByName returns the profile for the given name, if loaded.
func ProfileByName(name string) (Profile, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, false
	}

	profMu.RLock()
	defer profMu.RUnlock()

	if profilesIdx == nil {
		return Profile{}, false
	}
	p, ok := profilesIdx[name]
	return p, ok
}

// LoadProfiles loads the profile registry from a YAML or JSON file,
// replacing whatever was loaded before.
func LoadProfiles(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("profiles file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}

	pf, err := parseProfiles(raw, filepath.Ext(path))
	if err != nil {
		return err
	}

	if len(pf.Profiles) == 0 {
		return errors.New("profiles file contains no profiles entries")
	}

	idx := make(map[string]Profile, len(pf.Profiles))
	for i := range pf.Profiles {
		p := pf.Profiles[i]
		p.Name = strings.TrimSpace(p.Name)
		p.BaseURL = strings.TrimSpace(p.BaseURL)

		if err := validateProfile(p); err != nil {
			return fmt.Errorf("profile[%d]: %w", i, err)
		}
		if _, dup := idx[p.Name]; dup {
			return fmt.Errorf("profile[%d]: duplicate profile name %q", i, p.Name)
		}
		idx[p.Name] = p
		pf.Profiles[i] = p
	}

	profMu.Lock()
	currentProf = pf.Profiles
	profilesIdx = idx
	profMu.Unlock()

	return nil
}

func parseProfiles(raw []byte, ext string) (profileFile, error) {
	var pf profileFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(raw, &pf); err != nil {
			return pf, fmt.Errorf("parse profiles json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &pf); err != nil {
			return pf, fmt.Errorf("parse profiles yaml: %w", err)
		}
	}
	return pf, nil
}

func validateProfile(p Profile) error {
	if p.Name == "" {
		return errors.New("profile name is empty")
	}
	if p.BaseURL == "" {
		return errors.New("profile base_url is empty")
	}
	return nil
}

// NewFromProfile builds a Fetcher from a loaded profile, applying the
// profile's headers as global headers.
func NewFromProfile[T any](client httpclient.Client, name string) (*Fetcher[T], error) {
	p, ok := ProfileByName(name)
	if !ok {
		return nil, fmt.Errorf("profile %q is not loaded", name)
	}

	f, err := New[T](client, Config{BaseURL: p.BaseURL, DefaultBody: p.DefaultBody})
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	if len(p.Headers) > 0 {
		f.SetGlobalHeaders(p.Headers)
	}
	return f, nil
}
