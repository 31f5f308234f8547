// Command authqr generates QR codes that carry a URL and a secret key.
//
// Without a subcommand it runs the demo: generate a secret, print the JSON
// payload, draw the QR code in the terminal and save it as auth_qr.png.
// "authqr serve" exposes the same generation over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authqr/internal/requestid"
	"github.com/dmitrymomot/authqr/pkg/config"
	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

// Set by the linker.
var (
	version   = "dev"
	gitCommit = "none"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg     appConfig
	log     *slog.Logger
	encoder *qrcode.Encoder
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	a.log = newLogger(a.cfg, cmd.ErrOrStderr())

	enc, err := qrcode.NewFromConfig(a.cfg.QR)
	if err != nil {
		return err
	}
	a.encoder = enc
	return nil
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	opts := defaultGenerateOptions()

	cmd := &cobra.Command{
		Use:   "authqr",
		Short: "Generate authentication QR codes",
		Long: `authqr packs a URL and a secret key into a compact JSON payload and
renders it as a QR code PNG.

Run without a subcommand to generate a random secret, print the payload,
draw the code in the terminal and save it as auth_qr.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}

	opts.bind(cmd)
	cmd.AddCommand(newServeCmd(a), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, commit := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\ncommit: %s\n", v, commit)
		},
	}
}

// resolveBuildVersion prefers module and VCS data embedded by the Go
// toolchain over the linker-provided defaults. A nil info reads the running
// binary's build info.
func resolveBuildVersion(info *debug.BuildInfo) (string, string) {
	v, commit := version, gitCommit
	if info == nil {
		var ok bool
		if info, ok = debug.ReadBuildInfo(); !ok {
			return v, commit
		}
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			commit = s.Value
		}
	}
	return v, commit
}
