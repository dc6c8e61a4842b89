package configs

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"

	"codeberg.org/iklabib/takar/rlimit"
)

// Limits is the optional per-run limits file. Envs, when set, replace the
// child environment instead of extending it.
type Limits struct {
	Envs    map[string]string `config:"envs" json:"envs" yaml:"envs"`
	Rlimits []rlimit.Rlimit   `config:"rlimits" json:"rlimits" yaml:"rlimits"`
}

func Load(path string) (Limits, error) {
	var limits Limits

	cfg, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return limits, err
	}

	if err := cfg.Unpack(&limits); err != nil {
		return limits, err
	}

	return limits, nil
}
