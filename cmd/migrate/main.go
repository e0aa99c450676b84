package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"apparel/config"
	"apparel/internal/errors"
	"apparel/internal/infra/auth"
	logs "apparel/internal/infra/log"
	"apparel/internal/infra/persistence/migrate"
	"apparel/internal/infra/persistence/postgres"
	"apparel/internal/infra/pubsub"
	"apparel/internal/usecase"
	"apparel/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:           apply every pending migration
// - down:         revert the last -steps migrations
// - version:      print the applied schema version
// - create-admin: provision an active admin account

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	createAdminCmd := flag.NewFlagSet("create-admin", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to revert")

	adminUsername := createAdminCmd.String("username", "admin", "Username of the admin account")
	adminEmail := createAdminCmd.String("email", "", "E-mail address used to log in")
	adminPassword := createAdminCmd.String("password", "", "Initial password (defaults to $ADMIN_PASSWORD)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = withDB(ctx, func(db *gorm.DB) error {
			return runUp(ctx, db)
		})
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		err = withDB(ctx, func(db *gorm.DB) error {
			return runDown(ctx, db, *downSteps)
		})
	case "version":
		_ = versionCmd.Parse(os.Args[2:])
		err = withDB(ctx, func(db *gorm.DB) error {
			return runVersion(ctx, db)
		})
	case "create-admin":
		_ = createAdminCmd.Parse(os.Args[2:])
		password := *adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		err = runCreateAdmin(ctx, &usecase.CreateAdminInput{
			Username: *adminUsername,
			Email:    *adminEmail,
			Password: password,
		})
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up            Apply all pending migrations")
	fmt.Println("  down          Revert migrations (-steps N, default 1)")
	fmt.Println("  version       Print the applied schema version")
	fmt.Println("  create-admin  Create an admin account (-username, -email, -password)")
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// withDB starts only the database module, so schema commands work before
// the rest of the configuration is complete.
func withDB(ctx context.Context, fn func(db *gorm.DB) error) error {
	var db *gorm.DB
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		fx.Populate(&db),
	)

	return runApp(ctx, app, func() error {
		return fn(db)
	})
}

func runApp(ctx context.Context, app *fx.App, fn func() error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn()

	if err := app.Stop(context.Background()); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func runUp(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if err := migrate.Apply(ctx, sqlDB); err != nil {
		return err
	}

	fmt.Println("Migrations applied")

	return nil
}

func runDown(ctx context.Context, db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if err := migrate.Rollback(ctx, sqlDB, steps); err != nil {
		return err
	}

	fmt.Printf("Reverted %d migration(s)\n", steps)

	return nil
}

func runVersion(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	version, dirty, err := migrate.Version(ctx, sqlDB)
	if err != nil {
		return err
	}

	fmt.Printf("Schema version: %d (dirty: %t)\n", version, dirty)

	return nil
}

// runCreateAdmin wires the auth use case the same way the API does and
// provisions the account through it.
func runCreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) error {
	if input.Email == "" || input.Password == "" {
		return errors.New("create-admin requires -email and a password")
	}

	var authUC usecase.AuthUsecase
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			pubsub.NewEventPublisher,
			impl.NewAuthService,
		),
		fx.Populate(&authUC),
	)

	return runApp(ctx, app, func() error {
		admin, err := authUC.CreateAdmin(ctx, input)
		if err != nil {
			return err
		}

		fmt.Printf("Admin %s created (%s)\n", admin.Code, admin.Email)

		return nil
	})
}
