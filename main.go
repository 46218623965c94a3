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
	"log"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
███████╗████████╗██████╗ ██╗   ██╗ ██████╗████████╗██╗   ██╗██████╗  █████╗
██╔════╝╚══██╔══╝██╔══██╗██║   ██║██╔════╝╚══██╔══╝██║   ██║██╔══██╗██╔══██╗
███████╗   ██║   ██████╔╝██║   ██║██║        ██║   ██║   ██║██████╔╝███████║
╚════██║   ██║   ██╔══██╗██║   ██║██║        ██║   ██║   ██║██╔══██╗██╔══██║
███████║   ██║   ██║  ██║╚██████╔╝╚██████╗   ██║   ╚██████╔╝██║  ██║██║  ██║
╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝  ╚═════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝
Classic container data structures with a live AVL-tree workbench [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/structura)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	loadConfigOrDefault := func() *Config {
		config, err := LoadConfig()
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
			fallback := defaultConfig
			config = &fallback
		}
		return config
	}

	var cmdTui = &cobra.Command{
		Use:   "tui",
		Short: "Launches the interactive AVL workbench",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tui opens a live tree view: insert, delete and search keys and watch the rotations`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runTUI(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running workbench: %v", err)
			}
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Replay the classic rotation scenarios",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo builds the textbook RR, LR and delete-the-root trees and draws each one`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			InitializeColors()
			if err := runDemo(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running demo: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Build a large random tree and verify every invariant",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts random keys, checks balance/height/count invariants, deletes half and checks again`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			InitializeColors()
			config := loadConfigOrDefault()
			if keys, _ := cmd.Flags().GetInt("keys"); keys > 0 {
				config.Bench.Keys = keys
			}
			if err := runBench(config); err != nil {
				log.Fatalf("Bench failed: %v", err)
			}
		},
	}
	cmdBench.Flags().Int("keys", 0, "number of random keys to insert (overrides config)")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Show a depth-distribution dashboard for a random tree",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runStatsDashboard(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running stats dashboard: %v", err)
			}
		},
	}

	var cmdExplain = &cobra.Command{
		Use:   "explain [structure]",
		Short: "Print a styled explainer for one of the containers",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			page, err := GetOrRenderExplainPage(NewExplainCache(), args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Print(page)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the Structura usage guide",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration, creating a default file if needed",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			InitializeColors()
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Structura version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "structura",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the workbench when no subcommand is provided
			if err := runTUI(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running workbench: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdTui, cmdDemo, cmdBench, cmdStats, cmdExplain, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
