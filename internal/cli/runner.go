package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vbonduro/unitregistry/internal/blobstore"
	"github.com/vbonduro/unitregistry/internal/blobstore/local"
	sqliteblob "github.com/vbonduro/unitregistry/internal/blobstore/sqlite"
	"github.com/vbonduro/unitregistry/internal/config"
	"github.com/vbonduro/unitregistry/internal/db"
	"github.com/vbonduro/unitregistry/internal/domain"
	"github.com/vbonduro/unitregistry/internal/service"
	"github.com/vbonduro/unitregistry/internal/store"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Runner builds the command tree and owns the store opened by it.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	svc     *service.ManagementService
	closeFn func() error
}

func NewRunner(cfg *config.Config, logger *slog.Logger, out io.Writer) *Runner {
	return &Runner{cfg: cfg, logger: logger, out: out}
}

func (r *Runner) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unitregistry",
		Short:         "Register condominium and rental units",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(r.out)

	root.PersistentFlags().StringVarP(&r.cfg.StorePath, "store", "s", r.cfg.StorePath, "Unit store location")
	root.PersistentFlags().StringVar(&r.cfg.StoreBackend, "backend", r.cfg.StoreBackend, "Unit store backend (file or sqlite)")

	root.AddCommand(
		ListCmd(r),
		AddCmd(r),
		DeleteCmd(r),
		CountCmd(r),
		MeanCostsCmd(r),
		OldestCmd(r),
	)
	return root
}

// Execute runs the command named by args. Errors that do not come from the
// registry itself (unknown commands, bad flags) are reported as invalid
// parameters.
func (r *Runner) Execute(ctx context.Context, args []string) error {
	root := r.RootCmd()
	flags := root.PersistentFlags()
	root.SetArgs(positionalNegatives(args, func(arg string) bool {
		if strings.HasPrefix(arg, "--") {
			return !strings.Contains(arg, "=") && flags.Lookup(arg[2:]) != nil
		}
		return len(arg) == 2 && arg[0] == '-' && flags.ShorthandLookup(arg[1:]) != nil
	}))

	err := root.ExecuteContext(ctx)
	if err == nil || isRegistryError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
}

// Close releases the store if a command opened one.
func (r *Runner) Close() error {
	if r.closeFn == nil {
		return nil
	}
	err := r.closeFn()
	r.closeFn = nil
	r.svc = nil
	return err
}

// ExitCode maps a command error to the process exit status: 2 for storage
// failures, 1 for any other error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrStorageFailure):
		return 2
	default:
		return 1
	}
}

func isRegistryError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidParameter,
		domain.ErrInvalidConstructionDate,
		domain.ErrDuplicateIdentifier,
		domain.ErrNotFound,
		domain.ErrStorageFailure,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (r *Runner) service() (*service.ManagementService, error) {
	if r.svc != nil {
		return r.svc, nil
	}

	blobs, closeFn, err := openBlobStore(r.cfg.StoreBackend, r.cfg.StorePath)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("unit store opened", "backend", r.cfg.StoreBackend, "location", r.cfg.StorePath)

	r.svc = service.NewManagementService(store.NewFileRepository(blobs, r.logger), r.logger)
	r.closeFn = closeFn
	return r.svc, nil
}

func openBlobStore(backend, location string) (blobstore.BlobStore, func() error, error) {
	switch backend {
	case BackendFile:
		blobs, err := local.NewFileBlobStore(location)
		if err != nil {
			return nil, nil, &domain.StorageError{Op: "open", Location: location, Err: err}
		}
		return blobs, func() error { return nil }, nil
	case BackendSQLite:
		database, err := db.Open(location)
		if err != nil {
			return nil, nil, &domain.StorageError{Op: "open", Location: location, Err: err}
		}
		return sqliteblob.NewBlobStore(database, location), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store backend %q", domain.ErrInvalidParameter, backend)
	}
}
