package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/settlement"
	"github.com/mmynk/messbook/internal/storage"
)

// errSettlementUnavailable is the message callers see when settlement
// generation fails on a storage read.
var errSettlementUnavailable = errors.New("could not generate settlement: check period validity and underlying data")

// toConnectError maps domain and storage errors to Connect codes and logs
// the failure. Unknown errors become CodeInternal.
func toConnectError(op string, err error) error {
	code := codeOf(err)
	if code == connect.CodeInternal || code == connect.CodeUnavailable {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Warn(op+" rejected", "code", code, "error", err)
	}

	if errors.Is(err, settlement.ErrStorageUnavailable) {
		return connect.NewError(connect.CodeUnavailable, errSettlementUnavailable)
	}
	return connect.NewError(code, err)
}

func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return connect.CodeInvalidArgument
	case errors.Is(err, storage.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.CodeAlreadyExists
	case errors.Is(err, settlement.ErrStorageUnavailable):
		return connect.CodeUnavailable
	default:
		return connect.CodeInternal
	}
}

func invalidArgument(op string, err error) error {
	slog.Warn(op+" rejected", "error", err)
	return connect.NewError(connect.CodeInvalidArgument, err)
}
