package tabular

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when an agent is constructed with
// invalid hyperparameters or asked to learn from a malformed transition
var ErrInvalidArgument = errors.New("invalid argument")
