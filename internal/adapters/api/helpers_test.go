package api

import (
	"errors"

	"vetcare-web/internal/core/domain"
)

func asError(err error, target **domain.Error) bool {
	return errors.As(err, target)
}
