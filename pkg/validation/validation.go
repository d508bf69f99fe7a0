package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	conform      *mold.Transformer
	validateOnce sync.Once
	conformOnce  sync.Once
)

func Validate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Conform applies the `mod` tag modifiers (trim, lcase, ...) to v in place.
func Conform(ctx context.Context, v interface{}) error {
	conformOnce.Do(func() {
		conform = modifiers.New()
	})

	return conform.Struct(ctx, v)
}
