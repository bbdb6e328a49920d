// Command messctl runs settlement reports and admin tasks directly against
// the messbook database.
//
// Usage:
//
//	messctl settle -period ID
//	messctl overview
//	messctl periods
//	messctl token -user ID
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/messbook/internal/auth"
	"github.com/mmynk/messbook/internal/config"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/internal/report"
	"github.com/mmynk/messbook/internal/settlement"
	"github.com/mmynk/messbook/internal/storage/sqlite"
	"github.com/mmynk/messbook/pkg/logging"
)

var errUsage = errors.New("usage: messctl <settle|overview|periods|token> [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "messctl: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg   config.Config
	store *sqlite.SQLiteStore
	out   io.Writer
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Keep stdout for reports.
	slog.SetDefault(logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level)))

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	a := &app{cfg: cfg, store: store, out: out}
	switch args[0] {
	case "settle":
		return a.settle(ctx, args[1:])
	case "overview":
		return a.overview(ctx)
	case "periods":
		return a.periods(ctx)
	case "token":
		return a.token(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func (a *app) currency(ctx context.Context) string {
	s, err := a.store.GetSettings(ctx)
	if err != nil {
		return models.DefaultCurrency
	}
	return s.Currency
}

func (a *app) settle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	fs.SetOutput(a.out)
	periodID := fs.Int64("period", 0, "meal period id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *periodID <= 0 {
		return fmt.Errorf("settle: -period is required")
	}

	res, err := settlement.NewEngine(a.store, a.store).Generate(ctx, *periodID)
	if err != nil {
		return err
	}
	return report.Render(a.out, res, a.currency(ctx))
}

func (a *app) overview(ctx context.Context) error {
	reports, err := settlement.NewEngine(a.store, a.store).Overview(ctx)
	if err != nil {
		return err
	}
	return report.RenderOverview(a.out, reports, a.currency(ctx))
}

func (a *app) periods(ctx context.Context) error {
	list, err := period.NewRegistry(a.store).List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No meal periods.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "%d\t%s %s\n", p.ID, p.Month, p.Year)
	}
	return nil
}

func (a *app) token(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(a.out)
	userID := fs.Int64("user", 0, "user id the token is issued to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID <= 0 {
		return fmt.Errorf("token: -user is required")
	}
	if a.cfg.Auth.Secret == "" {
		return fmt.Errorf("token: auth.secret is not configured")
	}

	authenticator := auth.NewAuthenticator(a.store, auth.NewJWTManager(a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL))
	token, err := authenticator.IssueToken(ctx, *userID)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	fmt.Fprintln(a.out, token)
	return nil
}
