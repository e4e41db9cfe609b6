package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitscribe/internal/cli"
	"gitscribe/internal/config"
)

const version = "0.1.0"

var cfgFile string

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitscribe",
		Short: "Gitscribe suggests conventional commit messages for your staged changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd)
		},
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() {
		if err := config.Init(cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./.gitscribe.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "Generator base URL (OpenAI-compatible)")
	rootCmd.PersistentFlags().String("api-key", "", "Generator API key")
	rootCmd.PersistentFlags().String("model", "", "Generator model name")
	rootCmd.PersistentFlags().Int("timeout-seconds", 30, "Per-attempt generator timeout")
	rootCmd.PersistentFlags().Int("max-attempts", 3, "Generation attempts before degrading")
	rootCmd.PersistentFlags().Bool("fallback", true, "Synthesize a message when all attempts fail")
	rootCmd.PersistentFlags().BoolP("auto-stage", "a", false, "Stage all changes before suggesting")

	bind := map[string]string{
		"base_url":        "base-url",
		"api_key":         "api-key",
		"model":           "model",
		"timeout_seconds": "timeout-seconds",
		"max_attempts":    "max-attempts",
		"fallback":        "fallback",
		"auto_stage":      "auto-stage",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	rootCmd.AddCommand(newSuggestCmd(), newCheckCmd(), newVersionCmd())
	return rootCmd
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Generate suggestions for the current diff and commit the chosen one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd)
		},
	}
}

func runSuggest(cmd *cobra.Command) error {
	return cli.NewRunner(config.Load()).Suggest(cmd.Context())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [message]",
		Short: "Validate a commit message against the conventional grammar",
		Long:  "Validate a commit message passed as an argument, or read from stdin when the argument is - or absent.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return cli.NewRunner(config.Load()).Check(msg)
		},
	}
}

func messageArg(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read message from stdin: %w", err)
	}
	msg := strings.TrimRight(string(raw), "\n")
	if strings.TrimSpace(msg) == "" {
		return "", fmt.Errorf("no message given")
	}
	return msg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gitscribe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gitscribe %s\n", version)
		},
	}
}
