// Copyright 2026 The Router Authors
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

package command

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/view"
)

var (
	formatFlag  string
	verboseFlag bool
	noColorFlag bool
	rootCmd     *cobra.Command
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "router",
		Short: Highlight("router [global options] <subcommand> [args]") + "\n" +
			"A CLI for working with federated GraphQL supergraphs",
		Long: Highlight("Usage: router [global options] <subcommand> [args]\n") +
			"\n" +
			"router is a CLI utility for working with federated GraphQL supergraphs.\n" +
			"It can decompose a composed supergraph schema back into the per-service\n" +
			"subgraph schemas it was built from, ready to serve as a gateway's\n" +
			"services configuration.\n\n",
		Version:       version.GetVersionInfo().GitVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "o", "", "Output format. One of: (json | yaml)")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable color output")
	return cmd
}

func setCobraUsageTemplate() {
	cobra.AddTemplateFunc("StyleHeading", color.RGB(225, 0, 152).SprintFunc())
	usageTemplate := rootCmd.UsageTemplate()
	usageTemplate = strings.NewReplacer(
		`Usage:`, `{{StyleHeading "Usage:"}}`,
		`Examples:`, `{{StyleHeading "Examples:"}}`,
		`Available Commands:`, `{{StyleHeading "Available Commands:"}}`,
		`Additional Commands:`, `{{StyleHeading "Additional Commands:"}}`,
		`Flags:`, `{{StyleHeading "Options:"}}`,
		`Global Flags:`, `{{StyleHeading "Global Options:"}}`,
	).Replace(usageTemplate)
	rootCmd.SetUsageTemplate(usageTemplate)
}

func setVersionTemplate() {
	rootCmd.SetVersionTemplate("{{.Version}}")
}

func Execute() {
	rootCmd = NewRootCommand()

	// Templates are used to standardize the output format of router.
	setCobraUsageTemplate()
	setVersionTemplate()

	// Disable color output if NO_COLOR is set in the environment
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}

	// Create a temporary CLI instance with default settings
	// The viewer will be reconfigured in PersistentPreRun after flags are parsed
	cli := NewCLI(view.ViewHuman, os.Stdout, view.LogLevelSilent)

	// Add all subcommands to the root command
	AddCommands(rootCmd, cli)

	// Configure viewer after flags are parsed by Cobra
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			color.NoColor = true
		}

		// Set up the view type based on the `-o`/`--format` flag
		viewType, err := view.ParseOutputFormat(formatFlag)
		if err != nil {
			cli.Errorln("Error: invalid output format:", formatFlag)
			os.Exit(1)
		}

		logLevel := view.LogLevelSilent
		logEnv := os.Getenv("ROUTER_LOG")
		switch strings.ToLower(logEnv) {
		case "debug":
			logLevel = view.LogLevelDebug
		case "info":
			logLevel = view.LogLevelInfo
		default:
			// Unknown value: keep default (silent)
		}
		if verboseFlag {
			logLevel = view.LogLevelDebug
		}

		// Update the CLI viewer with the correct configuration.
		// Results go to stdout, logs and errors to stderr.
		s := view.NewStreams(os.Stdout, os.Stderr)
		cli.Viewer = view.NewViewer(viewType, s, logLevel)
		cli.Stream = s
		cli.Log = newPipelineLogger(cli.Viewer.Logger())
	}

	// Walk and execute the resolved command with flags.
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			cli.Errorln(msg)
		}
		os.Exit(1)
	}

	os.Exit(0)
}

// newPipelineLogger bridges the extraction pipeline's logr calls onto the
// CLI's diagnostic logger. Without --verbose the pipeline stays silent.
func newPipelineLogger(sink view.Logger) logr.Logger {
	if !verboseFlag {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			sink.Debug(prefix + ": " + args)
			return
		}
		sink.Debug(args)
	}, funcr.Options{Verbosity: 2})
}

// AddCommands registers all subcommands to the root command.
func AddCommands(root *cobra.Command, cli *CLI) {
	root.AddCommand(
		NewVersionCommand(cli),
		NewExtractCommand(cli),
	)
}
