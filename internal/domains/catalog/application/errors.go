package application

import (
	"errors"
	"fmt"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid catalog input")

	errBlankName = errors.New("category name must not be blank")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrWrongType) ||
		errors.Is(err, domain.ErrInvalidValue) ||
		errors.Is(err, types.ErrUnknownKind) ||
		errors.Is(err, errBlankName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
