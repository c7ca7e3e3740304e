package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/codearea"
	"github.com/iw2rmb/codearea/internal/config"
	"github.com/iw2rmb/codearea/internal/log"
)

func init() {
	// Query the terminal background before Bubble Tea owns the input loop.
	_ = lipgloss.HasDarkBackground()
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "codearea-demo [file]",
		Short:        "Browse a file in a hex code area",
		Long:         "Browse a file as a grid of code digits and preview characters. Without a file a sample byte table is shown.",
		Version:      codearea.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cfg, args)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	cmd.Flags().Bool("debug", false, "write a debug log (see log_file)")
	cmd.Flags().String("view", "", "view mode: dual, code or preview")
	cmd.Flags().String("code", "", "code type: hex, dec, oct or bin")
	cmd.Flags().Bool("wrap", false, "wrap rows to the terminal width")

	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	_ = v.BindPFlag("layout.view_mode", cmd.Flags().Lookup("view"))
	_ = v.BindPFlag("layout.code_type", cmd.Flags().Lookup("code"))
	_ = v.BindPFlag("layout.wrap", cmd.Flags().Lookup("wrap"))

	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "codearea.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func run(cfg config.Config, args []string) error {
	if cfg.Debug {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	data := sampleData()
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		data = b
	}
	log.Info(log.CatUI, "Starting demo", "bytes", len(data))

	m, err := newModel(cfg, data)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.ErrorErr(log.CatUI, "Program failed", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func sampleData() []byte {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
