package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/briancito0432-afk/gestomoney-proyect/infra"
	"github.com/briancito0432-afk/gestomoney-proyect/infra/initializer"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]

Commands:
  migrate up|down                          apply or revert the database schema
  register -name <name> -email <email>     create a user (prompts for the password)
  verify-token <token>                     show the user a session token belongs to`

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
)

type cli struct {
	cfg    *config.App
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	open   func() (repository.UnitOfWork, func(), error)
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		failure.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	logger := initializer.NewLogger(cfg.Log, os.Stderr)
	c := &cli{
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		open: func() (repository.UnitOfWork, func(), error) {
			return initializer.OpenUnitOfWork(cfg, logger)
		},
	}
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		failure.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.stdout, usage)
		return flag.ErrHelp
	}
	switch args[0] {
	case "migrate":
		return c.migrate(args[1:])
	case "register":
		return c.register(ctx, args[1:])
	case "verify-token":
		return c.verifyToken(ctx, args[1:])
	default:
		fmt.Fprintln(c.stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) migrate(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: migrate up|down")
	}
	direction := infra.MigrationDirection(args[0])
	if direction != infra.MigrateUp && direction != infra.MigrateDown {
		return fmt.Errorf("unknown migration direction %q", args[0])
	}
	if c.cfg.DB.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations need the %s driver, got %q", config.DriverPostgres, c.cfg.DB.Driver)
	}

	db, err := infra.NewDBConnection(c.cfg.DB, c.cfg.Env)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close() //nolint:errcheck
	}
	if err := infra.RunMigrations(db, direction); err != nil {
		return err
	}
	success.Fprintf(c.stdout, "Migrations applied (%s)\n", direction)
	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		fs.PrintDefaults()
		return errors.New("missing required flags: name, email")
	}

	fmt.Fprint(c.stdout, "Password: ")
	password, err := c.password()
	fmt.Fprintln(c.stdout)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	uow, cleanup, err := c.open()
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := auth.New(uow, c.cfg.Auth, c.logger).Register(ctx, *name, *email, password)
	if err != nil {
		return err
	}
	success.Fprintf(c.stdout, "User %s registered with ID %d\n", *email, id)
	return nil
}

func (c *cli) verifyToken(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: verify-token <token>")
	}
	uow, cleanup, err := c.open()
	if err != nil {
		return err
	}
	defer cleanup()

	u, err := auth.New(uow, c.cfg.Auth, c.logger).VerifyToken(ctx, args[0])
	if err != nil {
		return err
	}
	success.Fprintf(c.stdout, "Token valid for user %d (%s, %s)\n", u.ID, u.FullName, u.Email)
	return nil
}

// password reads without echo from a terminal, or one line otherwise.
func (c *cli) password() (string, error) {
	if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	line, err := bufio.NewReader(c.stdin).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
