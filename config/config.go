package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xyproto/env/v2"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
)

const DefaultConfigPath = "rv32asm.json"

type Config struct {
	DebugPadding       bool   `json:"debugPadding"`
	OutputFormat       string `json:"outputFormat"` // hex, mif or json
	LanguageServerAddr string `json:"languageServerAddr"`
	WebAddr            string `json:"webAddr"`
	Logging            bool   `json:"logging"`
}

func Default() *Config {
	return &Config{
		OutputFormat:       "hex",
		LanguageServerAddr: ":2035",
		WebAddr:            ":2036",
	}
}

// Load reads the json config file at path, if there is one, and then applies the
// RV32ASM_* environment variables on top. An empty path means RV32ASM_CONFIG or
// rv32asm.json in the working directory.
func Load(path string) (*Config, error) {
	conf := Default()

	if path == "" {
		path = env.Str("RV32ASM_CONFIG", DefaultConfigPath)
	}

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := json.Unmarshal(b, conf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	applyEnvironment(conf)
	return conf, nil
}

func applyEnvironment(conf *Config) {
	if env.Has("RV32ASM_DEBUG_PADDING") {
		conf.DebugPadding = env.Bool("RV32ASM_DEBUG_PADDING")
	}
	if env.Has("RV32ASM_LOG") {
		conf.Logging = env.Bool("RV32ASM_LOG")
	}
	conf.OutputFormat = env.Str("RV32ASM_FORMAT", conf.OutputFormat)
	conf.LanguageServerAddr = env.Str("RV32ASM_LSP_ADDR", conf.LanguageServerAddr)
	conf.WebAddr = env.Str("RV32ASM_WEB_ADDR", conf.WebAddr)
}

func (c *Config) AssemblerConfig() assembler.AssemblerConfig {
	return assembler.AssemblerConfig{DebugPadding: c.DebugPadding}
}
