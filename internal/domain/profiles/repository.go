package profiles

import "context"

// Repository guarda cada rol en su propia colección.
// Los adapters devuelven ErrNotFound cuando no hay registro.
type Repository interface {
	ListAll(ctx context.Context, role Role) ([]Profile, error)
	// Save hace upsert por ID (último en escribir gana).
	Save(ctx context.Context, p Profile) error
	FindByID(ctx context.Context, id string) (Profile, error)
	FindByEmail(ctx context.Context, role Role, email string) (Profile, error)
}
