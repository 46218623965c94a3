// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type BenchConfig struct {
	Keys int   `yaml:"keys"`
	Seed int64 `yaml:"seed"`
}

type RenderConfig struct {
	Format string `yaml:"format"`
}

type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Render RenderConfig `yaml:"render"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Keys: 100000,
		Seed: 42,
	},
	Render: RenderConfig{
		Format: "ascii",
	},
}

// LoadConfig reads ~/.structura.yaml. Any failure falls back to the
// defaults silently; a missing or broken config file never stops the
// CLI.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".structura.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	if config.Bench.Keys <= 0 {
		config.Bench.Keys = defaultConfig.Bench.Keys
	}
	if config.Render.Format == "" {
		config.Render.Format = defaultConfig.Render.Format
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".structura.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Structura Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n", configPath)
	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %skeys%s: %d (random keys inserted by 'structura bench')\n", Green, Reset, config.Bench.Keys)
	fmt.Printf("  • %sseed%s: %d (deterministic key generation)\n\n", Green, Reset, config.Bench.Seed)

	fmt.Printf("🌳 %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %sformat%s: %s (one of ascii, dot, json)\n\n", Green, Reset, config.Render.Format)

	fmt.Printf("💡 Edit %s to change these, for example:\n", configPath)
	fmt.Printf("   render:\n     format: dot\n")
}
