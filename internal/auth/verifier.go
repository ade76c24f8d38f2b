package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ajeet990/myfacebook/internal/repository"
)

// CredentialVerifier checks submitted email/password pairs against
// stored bcrypt hashes.
type CredentialVerifier struct {
	users repository.UserRepository
}

// NewCredentialVerifier constructs the verifier.
func NewCredentialVerifier(users repository.UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify looks up the account by exact email match and compares the
// password against the stored hash. The returned claim set never
// includes the hash.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (*Identity, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredential
	}
	return &Identity{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IssuedAt: time.Now(),
	}, nil
}
