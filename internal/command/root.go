package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"newsdigest/internal/config"
	"newsdigest/internal/publisher"
	"newsdigest/internal/service"
	"newsdigest/internal/source"
	"newsdigest/internal/storage/postgres"
	"newsdigest/internal/textfetch"
)

// deps is the shared wiring for all subcommands, built once from the
// config in the root command's PersistentPreRunE.
type deps struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	records    *postgres.RecordStore
	keywords   *postgres.KeywordStore
	sources    *postgres.SourceStore
	projects   *postgres.ProjectStore
	iterations *postgres.IterationStore
	attempts   *postgres.AttemptStore
	txManager  *postgres.TransactionManager

	registry  *source.Registry
	publisher service.Publisher
}

func (d *deps) init(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	d.cfg = cfg
	d.logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	d.db = db

	d.records = postgres.NewRecordStore(db)
	d.keywords = postgres.NewKeywordStore(db)
	d.sources = postgres.NewSourceStore(db)
	d.projects = postgres.NewProjectStore(db)
	d.iterations = postgres.NewIterationStore(db)
	d.attempts = postgres.NewAttemptStore(db)
	d.txManager = postgres.NewTransactionManager(db)

	d.registry = source.Builtin()

	if cfg.RabbitMQ.Enabled {
		pub, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, d.logger)
		if err != nil {
			db.Close()
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		d.publisher = pub
	}

	return nil
}

func (d *deps) close() {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			d.logger.Error("failed to close publisher", "error", err)
		}
	}
	if d.db != nil {
		d.db.Close()
	}
}

func (d *deps) gatherService() *service.GatherService {
	return service.NewGatherService(
		d.sources,
		d.keywords,
		d.records,
		d.iterations,
		d.registry,
		d.txManager,
		d.publisher,
		d.logger,
		d.cfg.Gather,
	)
}

func (d *deps) textFetchService() *service.TextFetchService {
	extractor := textfetch.NewExtractor(d.cfg.Fetch.Timeout, d.cfg.Gather.UserAgent, d.logger)
	return service.NewTextFetchService(d.records, d.sources, extractor, d.logger)
}

// NewRootCommand builds the CLI. Every subcommand shares one config
// flag and one wired dependency set.
func NewRootCommand() *cobra.Command {
	var configPath string
	d := &deps{}

	root := &cobra.Command{
		Use:           "newsdigest",
		Short:         "Gather, filter and categorize news for digest publishing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.init(configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			d.close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		newGatherCommand(d),
		newFetchTextCommand(d),
		newUpdateKeywordsCommand(d),
		newDumpForMLCommand(d),
		newGuessCommand(d),
		newLoadSourcesCommand(d),
	)

	return root
}

// Execute runs the CLI and reports failures on stderr.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
