package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/pipeline"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
	"github.com/dmitrymomot/authqr/pkg/secretkey"
	"github.com/dmitrymomot/authqr/pkg/storage"
)

const (
	defaultURL     = "http://localhost:8080/"
	defaultOutFile = "auth_qr.png"
)

type generateOptions struct {
	url          string
	secret       string
	secretLength int
	out          string
	noTerminal   bool
	validate     bool
}

func defaultGenerateOptions() *generateOptions {
	return &generateOptions{
		url:          defaultURL,
		secretLength: secretkey.DefaultLength,
		out:          defaultOutFile,
	}
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.url, "url", o.url, "URL to embed in the payload")
	f.StringVar(&o.secret, "secret", "", "secret key to embed (random when empty)")
	f.IntVar(&o.secretLength, "secret-length", o.secretLength, "number of random bytes in a generated secret")
	f.StringVarP(&o.out, "out", "o", o.out, "output file or object key for the PNG")
	f.BoolVar(&o.noTerminal, "no-terminal", false, "do not draw the QR code in the terminal")
	f.BoolVar(&o.validate, "validate", false, "reject invalid url or secret values before encoding")
}

func runGenerate(ctx context.Context, a *app, o *generateOptions, stdout io.Writer) error {
	secret := o.secret
	if secret == "" {
		var err error
		if secret, err = secretkey.Generate(o.secretLength); err != nil {
			return err
		}
	}

	pipeOpts := []pipeline.Option{pipeline.WithLogger(a.log)}
	if o.validate {
		pipeOpts = append(pipeOpts, pipeline.WithValidation())
	}
	res, err := pipeline.New(a.encoder, pipeOpts...).Run(o.url, secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "JSON payload (scannable content):")
	fmt.Fprintln(stdout, res.Payload)

	if !o.noTerminal {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "QR code in terminal:")
		if err := qrcode.RenderTerminal(stdout, res.Payload); err != nil {
			return err
		}
	}

	st, key, err := outputStorage(ctx, a.cfg.Storage, o.out)
	if err != nil {
		return err
	}
	obj, err := st.Put(ctx, key, res.Image, storage.ContentTypePNG)
	if err != nil {
		return err
	}
	a.log.DebugContext(ctx, "qr image stored", logger.Location(obj.Location), logger.ImageBytes(int(obj.Size)))

	fmt.Fprintf(stdout, "\nQR PNG size: %d bytes\n", len(res.Image))
	saved := o.out
	if !isLocal(a.cfg.Storage) {
		saved = obj.Location
	}
	fmt.Fprintf(stdout, "QR code saved as '%s'\n", saved)
	return nil
}

// outputStorage returns the backend and key for out. For the local driver the
// directory part of out is folded into the base directory so both relative
// and absolute paths work.
func outputStorage(ctx context.Context, cfg storage.Config, out string) (storage.Storage, string, error) {
	if isLocal(cfg) {
		dir, file := filepath.Split(out)
		switch {
		case filepath.IsAbs(out):
			cfg.LocalDir = dir
		case dir != "":
			cfg.LocalDir = filepath.Join(cfg.LocalDir, dir)
		}
		out = file
	}

	st, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	return st, out, nil
}

func isLocal(cfg storage.Config) bool {
	driver := strings.ToLower(cfg.Driver)
	return driver == "" || driver == storage.DriverLocal
}
