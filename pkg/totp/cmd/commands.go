package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/logger"
	"github.com/dmitrymomot/otpkit/pkg/qrcode"
	"github.com/dmitrymomot/otpkit/pkg/totp"
)

type command struct {
	out io.Writer
	log *slog.Logger
}

// sessionFlags are the per-session options shared by most commands.
type sessionFlags struct {
	secret      string
	algorithm   string
	digits      int
	period      int
	windowRange int
	zeroPad     bool
}

func (f *sessionFlags) register(fs *flag.FlagSet, defaults totp.Config) {
	fs.StringVar(&f.secret, "secret", "", "Base32 secret")
	fs.StringVar(&f.algorithm, "algorithm", defaults.Algorithm.String(), "HMAC algorithm: SHA1, SHA256, SHA384 or SHA512")
	fs.IntVar(&f.digits, "digits", defaults.Digits, "number of code digits")
	fs.IntVar(&f.period, "period", defaults.Period, "time step in seconds")
	fs.IntVar(&f.windowRange, "window-range", defaults.WindowRange, "periods accepted on each side when verifying")
	fs.BoolVar(&f.zeroPad, "zero-pad", defaults.ZeroPad, "left-pad codes with zeros (RFC 4226)")
}

func (f *sessionFlags) config() totp.Config {
	return totp.Config{
		Algorithm:   totp.Algorithm(f.algorithm),
		Digits:      f.digits,
		Period:      f.period,
		WindowRange: f.windowRange,
		ZeroPad:     f.zeroPad,
	}
}

func (c *command) session(f *sessionFlags) (*totp.Session, error) {
	return totp.New(f.secret, totp.WithConfig(f.config()), totp.WithLogger(c.log))
}

func (c *command) flagSet(name string) (*flag.FlagSet, *sessionFlags, error) {
	defaults, err := totp.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	sf := &sessionFlags{}
	sf.register(fs, defaults)
	return fs, sf, nil
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func (c *command) runSecret(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("secret", flag.ContinueOnError)
	fs.SetOutput(c.out)
	length := fs.Int("length", totp.DefaultSecretLength, "number of Base32 symbols")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, err := totp.GenerateSecret(*length)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, secret)
	return nil
}

func (c *command) runCode(ctx context.Context, args []string) error {
	fs, sf, err := c.flagSet("code")
	if err != nil {
		return err
	}
	at := fs.Int64("time", 0, "unix time in seconds (default now)")
	window := fs.Int("window", 0, "period offset")
	file := fs.String("file", "", "YAML accounts file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req := totp.CodeRequest{Time: unixTime(*at), Window: *window}

	if *file == "" {
		if sf.secret == "" {
			return totp.ErrMissingSecret
		}
		s, err := c.session(sf)
		if err != nil {
			return err
		}
		code, err := s.Code(req)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, code)
		return nil
	}

	records, err := loadAccounts(*file)
	if err != nil {
		return err
	}
	for _, rec := range records {
		// -zero-pad forces padding; otherwise the record's own setting applies.
		rec.ZeroPad = rec.ZeroPad || sf.zeroPad
		s, err := rec.Session(totp.WithLogger(c.log))
		if err != nil {
			return fmt.Errorf("account %s: %w", label(rec), err)
		}
		code, err := s.Code(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s\t%s\n", label(rec), code)
	}
	c.log.DebugContext(ctx, "codes generated", slog.Int("accounts", len(records)))
	return nil
}

func (c *command) runVerify(ctx context.Context, args []string) error {
	fs, sf, err := c.flagSet("verify")
	if err != nil {
		return err
	}
	code := fs.String("code", "", "code to verify")
	at := fs.Int64("time", 0, "unix time in seconds (default now)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if sf.secret == "" {
		return totp.ErrMissingSecret
	}
	if *code == "" {
		return errors.New("missing code")
	}

	s, err := c.session(sf)
	if err != nil {
		return err
	}
	t := unixTime(*at)
	if t.IsZero() {
		t = time.Now()
	}
	window, ok := s.Match(*code, t)
	if !ok {
		return errMismatch
	}
	c.log.DebugContext(ctx, "code verified", logger.Window(window), logger.Algorithm(s.Config().Algorithm.String()))
	fmt.Fprintf(c.out, "valid (window %+d)\n", window)
	return nil
}

func (c *command) provisioningURI(sf *sessionFlags, issuer, account string) (string, error) {
	s, err := c.session(sf)
	if err != nil {
		return "", err
	}
	return totp.FormatURI(s.Key(issuer, account))
}

func (c *command) runURI(ctx context.Context, args []string) error {
	fs, sf, err := c.flagSet("uri")
	if err != nil {
		return err
	}
	issuer := fs.String("issuer", "", "service name shown in authenticator apps")
	account := fs.String("account", "", "account name, e.g. an email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	uri, err := c.provisioningURI(sf, *issuer, *account)
	if err != nil {
		return err
	}
	c.log.DebugContext(ctx, "uri created", logger.Issuer(*issuer), logger.Account(*account))
	fmt.Fprintln(c.out, uri)
	return nil
}

func (c *command) runQR(ctx context.Context, args []string) error {
	fs, sf, err := c.flagSet("qr")
	if err != nil {
		return err
	}
	uri := fs.String("uri", "", "otpauth:// URI (default: built from the session flags)")
	issuer := fs.String("issuer", "", "service name, used without -uri")
	account := fs.String("account", "", "account name, used without -uri")
	pngPath := fs.String("png", "", "write a PNG image to this file instead of printing")
	size := fs.Int("size", qrcode.DefaultSize, "PNG size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	content := *uri
	if content == "" {
		if content, err = c.provisioningURI(sf, *issuer, *account); err != nil {
			return err
		}
	} else if _, err := totp.ParseURI(content); err != nil {
		return err
	}

	if *pngPath == "" {
		text, err := qrcode.Terminal(content)
		if err != nil {
			return err
		}
		fmt.Fprint(c.out, text)
		return nil
	}

	png, err := qrcode.Generate(content, *size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*pngPath, png, 0o600); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "qr code written", slog.String("path", *pngPath))
	return nil
}

func (c *command) runWatch(ctx context.Context, args []string) error {
	fs, sf, err := c.flagSet("watch")
	if err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if sf.secret == "" {
		return totp.ErrMissingSecret
	}

	s, err := c.session(sf)
	if err != nil {
		return err
	}
	err = s.Watch(ctx, func(code string) {
		fmt.Fprintln(c.out, code)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
