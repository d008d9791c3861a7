package dictionary

import "context"

type Repository interface {
	// IDByName resolves a category name to its id. A missing name is reported
	// as errors.ErrCategoryNotFound, not a database failure.
	IDByName(ctx context.Context, name string) (uint, error)
	// NameByID resolves a category id back to its name, with the same miss
	// semantics as IDByName.
	NameByID(ctx context.Context, id uint) (string, error)
}
