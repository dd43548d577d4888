package tabeval

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config defines the command's configuration.
type Config struct {
	Target       string   `json:"target"`
	Categorical  []string `json:"categorical"`
	Numeric      []string `json:"numeric"`
	Standardize  bool     `json:"standardize"`
	DropFirst    bool     `json:"dropFirst"`
	AllowUnseen  bool     `json:"allowUnseen"`
	TestFraction float64  `json:"testFraction"`
	Folds        int      `json:"folds"`
	Seed         int64    `json:"seed"`
	Model        string   `json:"model,omitempty"`
	Neighbors    int      `json:"neighbors,omitempty"`
	LearningRate float64  `json:"learningRate,omitempty"`
	Ntrain       int      `json:"ntrain,omitempty"`
}

// ReadConfig reads the config from a json or toml file.
func ReadConfig(file string) (*Config, error) {
	is, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", file, err)
	}
	defer is.Close()
	var config Config
	if strings.HasSuffix(file, ".toml") {
		if _, err := toml.DecodeReader(is, &config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", file, err)
		}
		return &config, nil
	}
	if err := json.NewDecoder(is).Decode(&config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", file, err)
	}
	return &config, nil
}

// Overwrite overwrites the appropriate variables in the config file
// with the given values.  Values only overwrite the variables if they
// are not go's default zero value.
func (c *Config) Overwrite(model string, folds int, testFraction float64, seed int64) {
	if model != "" {
		c.Model = model
	}
	if folds != 0 {
		c.Folds = folds
	}
	if testFraction != 0 {
		c.TestFraction = testFraction
	}
	if seed != 0 {
		c.Seed = seed
	}
}
