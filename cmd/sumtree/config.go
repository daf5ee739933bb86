package main

import (
	"os"

	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/verifyreq"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Hasher      string `yaml:"hasher"`
	KeyEncoding string `yaml:"key_encoding"`
	KeyWidth    int    `yaml:"key_width"`
	LogLevel    string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Hasher:      hashers.NameKeccak256,
		KeyEncoding: verifyreq.KeyEncodingBigEndian,
		KeyWidth:    verifyreq.MaxKeyWidth,
		LogLevel:    "INFO",
	}
}

// parseConfig reads the YAML file at path over the defaults. Keys absent
// from the file keep their default values.
func parseConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	rawFile, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to read configuration")
	}
	if err = yaml.Unmarshal(rawFile, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode configuration")
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if _, err := hashers.New(cfg.Hasher); err != nil {
		return errors.Wrap(err, "invalid hasher")
	}
	if _, err := verifyreq.EncoderByName(cfg.KeyEncoding, cfg.KeyWidth); err != nil {
		return errors.Wrap(err, "invalid key encoding")
	}
	return nil
}
