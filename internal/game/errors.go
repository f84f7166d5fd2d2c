package game

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors wrap one of these so callers can branch with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInsufficient = errors.New("insufficient resource")
	ErrIO           = errors.New("io failure")
	ErrInput        = errors.New("invalid input")
)

var (
	ErrNotOwned        = fmt.Errorf("%w: item not in inventory", ErrNotFound)
	ErrNotUsable       = fmt.Errorf("%w: item has no use", ErrValidation)
	ErrInventoryFull   = fmt.Errorf("%w: inventory too heavy", ErrInsufficient)
	ErrNoAmmo          = fmt.Errorf("%w: no ammunition", ErrInsufficient)
	ErrMissingParts    = fmt.Errorf("%w: missing parts", ErrInsufficient)
	ErrNoVehicle       = fmt.Errorf("%w: no working vehicle", ErrInsufficient)
	ErrNoPartsSelected = fmt.Errorf("%w: no parts selected", ErrInput)
)
