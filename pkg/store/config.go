package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Config describes where and how the planner document is stored, plus the
// few presentation knobs the runners need.
type Config interface {
	BasePath() string
	Backend() string
	Locale() string
	AutoSave() time.Duration
	MinTasks() int
}

// LoadConfig reads .dayplan (yaml, toml or json) from DAYPLAN_CONFIG_PATH,
// the working directory or the home directory, then applies DAYPLAN_*
// environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.dayplan.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("locale", "fr")
	v.SetDefault("autosave", "30s")
	v.SetDefault("tasks", 5)
	v.SetConfigName(".dayplan")
	v.SetEnvPrefix("DAYPLAN")
	v.AutomaticEnv()

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	backend := v.GetString("backend")
	switch backend {
	case BackendDiskv, BackendSQLite:
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}

	interval := v.GetDuration("autosave")
	if interval <= 0 {
		interval = 30 * time.Second
	}
	tasks := v.GetInt("tasks")
	if tasks < 0 {
		tasks = 0
	}

	return &fileConfig{
		Path:        path,
		Kind:        backend,
		Lang:        v.GetString("locale"),
		Interval:    interval,
		Placeholder: tasks,
	}, nil
}

type fileConfig struct {
	Path        string        `json:"path"`
	Kind        string        `json:"backend"`
	Lang        string        `json:"locale"`
	Interval    time.Duration `json:"autosave"`
	Placeholder int           `json:"tasks"`
}

func (f *fileConfig) BasePath() string        { return f.Path }
func (f *fileConfig) Backend() string         { return f.Kind }
func (f *fileConfig) Locale() string          { return f.Lang }
func (f *fileConfig) AutoSave() time.Duration { return f.Interval }
func (f *fileConfig) MinTasks() int           { return f.Placeholder }
