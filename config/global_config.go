package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type IConfig interface {
	Validate() []error
}

type GlobalConfig struct {
	Reviewer     *ReviewerConfig `json:"reviewer" yaml:"reviewer"`
	DuckDBConfig *DuckDBConfig   `json:"duckdb" yaml:"duckdb"`
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	if g.Reviewer != nil {
		if es := g.Reviewer.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	if g.DuckDBConfig != nil {
		if es := g.DuckDBConfig.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Reviewer:     NewDefaultReviewerConfig(),
		DuckDBConfig: NewDefaultDuckDBConfig(),
	}
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	v := viper.New()
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, fileType))
	v.SetConfigType(strings.TrimPrefix(fileType, "."))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("parse config file: %s", err.Error())
	}
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = strings.TrimPrefix(fileType, ".")
	}); err != nil {
		return nil, err
	}
	if cfg.Reviewer == nil {
		cfg.Reviewer = NewDefaultReviewerConfig()
	}
	if err := cfg.Reviewer.SetExcludedHashtags(cfg.Reviewer.ExcludedHashtags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path. A missing file falls back to the
// defaults unless the caller named the file explicitly.
func Load(path string, explicit bool) (*GlobalConfig, error) {
	cfg, err := TryLoadFromDisk(path)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) && !explicit {
		return NewDefaultGlobalConfig(), nil
	}
	return nil, errors.Wrapf(err, "load config %s", path)
}
