package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrEmptyMessage = fmt.Errorf("%w: message is required", ErrValidation)
)
