package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/todokata/todoapi/internal/stub"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local TODO service double",
	Long: `Run a local stand-in for the TODO service, seeded with the same
200 sample tasks. Point the CLI at it with --base-url http://<addr>.

The database is in memory unless --db names a file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		dsn, _ := cmd.Flags().GetString("db")

		if err := runStub(addr, dsn); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stubCmd)

	stubCmd.Flags().String("addr", stub.DefaultAddress, "Address to listen on")
	stubCmd.Flags().String("db", ":memory:", "SQLite database path")
}

func runStub(addr, dsn string) error {
	store, err := openStubStore(dsn)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[stub] ", log.LstdFlags)
	srv := stub.New(addr, store, logger)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openStubStore seeds new databases. A file that already has todos is
// served as is.
func openStubStore(dsn string) (*stub.Store, error) {
	if dsn == ":memory:" {
		return stub.NewSeededStore(dsn)
	}

	store, err := stub.NewStore(dsn)
	if err != nil {
		return nil, err
	}

	todos, err := store.List()
	if err != nil {
		store.Close()
		return nil, err
	}
	if len(todos) > 0 {
		return store, nil
	}

	seed, err := stub.SeedTodos()
	if err == nil {
		err = store.Seed(seed)
	}
	if err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
