package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ProjectCredentials identifies and authorizes access to one remote project.
type ProjectCredentials struct {
	ProjectID  string
	ProjectKey string
}

// AccountCredentials holds the account-level API key. No production verb uses
// it, but the settings file carries the section.
type AccountCredentials struct {
	AccountID  string
	AccountKey string
}

// Settings is the merged configuration view. Sources, lowest priority first:
// appsettings.json in the working directory (optional), process environment
// variables, command-line flags bound via BindFlags.
type Settings struct {
	v *viper.Viper
}

// envKeys is the fixed set of keys resolvable from the environment. Section
// keys map to underscore-joined variable names, so project.projectid is read
// from PROJECT_PROJECTID.
var envKeys = []string{
	"api",
	"files",
	"project.projectid",
	"project.projectkey",
	"account.accountid",
	"account.accountkey",
}

// Load builds the settings view. A missing appsettings.json is not an error;
// a malformed one is.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("appsettings")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading appsettings.json: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	return &Settings{v: v}, nil
}

// BindFlags layers a flag set over the file and environment sources. Only
// flags actually set on the command line override the lower layers.
func (s *Settings) BindFlags(flags *pflag.FlagSet) error {
	return s.v.BindPFlags(flags)
}

// GetString returns the raw value for a key, or "" when absent. Absent
// required keys are not an error here; they surface downstream (typically as
// a malformed request URL).
func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

// Files splits the semicolon-delimited "files" key into individual paths.
// Empty segments are dropped.
func (s *Settings) Files() []string {
	raw := s.v.GetString("files")
	if raw == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(raw, ";") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Project extracts the "project" credential section. Missing fields come
// back empty rather than erroring.
func (s *Settings) Project() ProjectCredentials {
	return ProjectCredentials{
		ProjectID:  s.v.GetString("project.projectid"),
		ProjectKey: s.v.GetString("project.projectkey"),
	}
}

// Account extracts the "account" credential section.
func (s *Settings) Account() AccountCredentials {
	return AccountCredentials{
		AccountID:  s.v.GetString("account.accountid"),
		AccountKey: s.v.GetString("account.accountkey"),
	}
}

// AllSettings returns the merged view for rendering.
func (s *Settings) AllSettings() map[string]any {
	return s.v.AllSettings()
}
