package uploads

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/projectkrs/krs/internal/config"
)

// Module provides the upload store rooted at the configured directory.
var Module = fx.Provide(newStore)

func newStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	store, err := New(cfg.UploadDir, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("upload directory ready", slog.String("dir", store.Dir()))
	return store, nil
}
