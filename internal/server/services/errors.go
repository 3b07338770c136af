package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/logging"
)

// mapStoreError passes through the outcomes a caller can act on and hides
// every other store failure behind common.ErrorInternal.
func mapStoreError(ctx context.Context, log logging.Logger, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorAlreadyExists):
		return err
	default:
		log.Error(ctx, op+" failed", "error", err)
		return common.ErrorInternal
	}
}
