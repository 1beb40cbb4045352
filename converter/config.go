package converter

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config is an optional per-model conversion config, discovered next
// to the input file as <input>.vmeshconv.yaml.
type Config struct {
	OutputDir  string   `yaml:"outputDir"`
	Skin       string   `yaml:"skin"`
	Animations []string `yaml:"animations"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// AnimationEnabled reports whether the named animation should be
// converted. An empty filter list enables everything.
func (c *Config) AnimationEnabled(name string) bool {
	if len(c.Animations) == 0 {
		return true
	}
	for _, n := range c.Animations {
		if n == name {
			return true
		}
	}
	return false
}
