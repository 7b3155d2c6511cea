// cmd/bookshelf/main.go
package main

import (
	"fmt"
	"os"
	"strconv"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/shell"
	"bookshelf/pkg/bookfile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgPath  string
	filePath string
	verbose  bool

	cfg    *config.Config
	logger *zap.Logger
	svc    catalog.Service
)

// rootCmd represents the base command. Without arguments it starts the
// interactive menu.
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "bookshelf - file-backed book catalog",
	Long: `bookshelf manages a catalog of books persisted as a single JSON file.

Run without arguments to start the interactive menu, or use the subcommands
for scripting. Every mutation is flushed to the backing file before the
command reports success.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if filePath != "" {
			cfg.Library.Path = filePath
		}

		logger, err = buildLogger(cmd.CalledAs() == "bookshelf")
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		logger = logger.With(zap.String("session", uuid.NewString()))

		store := bookfile.NewStore(cfg.Library.Path)
		svc = catalog.NewService(store, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.Run(svc, logger)
	},
}

// buildLogger constructs the zap logger. The interactive shell owns the
// terminal, so without a configured log file its logger is a no-op.
func buildLogger(interactive bool) (*zap.Logger, error) {
	if interactive && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Logging.Level))
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.Logging.File != "" {
		zc.OutputPaths = []string{cfg.Logging.File}
	}
	return zc.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		year, _ := cmd.Flags().GetInt("year")

		book, err := svc.Add(cmd.Context(), title, author, year)
		if err != nil {
			return err
		}
		fmt.Printf("Added: %s (%d), id %d\n", book.Title, book.Year, book.ID)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a book by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := svc.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Book with id %d removed.\n", id)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		books := svc.ListAll(cmd.Context())
		if len(books) == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}
		for _, b := range books {
			fmt.Printf("ID: %d | Title: %s | Author: %s | Year: %d | Status: %s\n",
				b.ID, b.Title, b.Author, b.Year, b.Status)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search books by title, author, or year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		results, err := svc.Search(cmd.Context(), args[0], field)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No books found for %q.\n", args[0])
			return nil
		}
		for _, b := range results {
			fmt.Printf("ID: %d | Title: %s | Author: %s | Year: %d | Status: %s\n",
				b.ID, b.Title, b.Author, b.Year, b.Status)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [id] [AVAILABLE|CHECKED_OUT]",
	Short: "Change a book's lending status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		status, err := catalog.ParseStatus(args[1])
		if err != nil {
			return err
		}
		if err := svc.ChangeStatus(cmd.Context(), id, status); err != nil {
			return err
		}
		fmt.Printf("Status of book %d changed to %s.\n", id, status)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "bookshelf.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "backing file path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addCmd.Flags().String("title", "", "book title (required)")
	addCmd.Flags().String("author", "", "book author")
	addCmd.Flags().Int("year", 0, "publication year, 0 for unknown")
	_ = addCmd.MarkFlagRequired("title")

	searchCmd.Flags().String("field", "title", "field to search: title, author, or year")

	rootCmd.AddCommand(addCmd, removeCmd, listCmd, searchCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
