package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

func fromTomlFile(path string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
	}
	cfg.capacitySet = md.IsDefined("capacity")
	return cfg, nil
}

// searchTomlFile returns customPath if it exists, otherwise the first of
// lookupPaths that exists. An empty result means no file should be loaded.
func searchTomlFile(customPath string, lookupPaths []string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("no such file: %s", customPath)
		}
		return customPath, nil
	}

	for _, p := range lookupPaths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	// a missing default file is not an error
	return "", nil
}
