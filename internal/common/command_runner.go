package common

import (
	"context"

	"careerpilot/internal/errors"
)

// BackendOperationFunc is a generic function signature for any backend
// operation a command runs.
type BackendOperationFunc[Output any] func(context.Context) (Output, error)

// LogDetailsFunc logs the start of an operation.
type LogDetailsFunc func(cfg CommandConfig)

// RunBackendCommand encapsulates the common logic for one-shot CLI
// commands: run the backend operation, then format and write the
// result per the command configuration.
func RunBackendCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	operation BackendOperationFunc[Output],
	logDetails LogDetailsFunc,
) error {
	outputHandler := NewOutputHandler(logger)

	if logDetails != nil {
		logDetails(cmdConfig)
	}

	result, err := operation(ctx)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
