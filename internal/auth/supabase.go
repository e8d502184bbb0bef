package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	supabase "github.com/nedpals/supabase-go"
)

// SupabaseVerifier validates access tokens against the Supabase auth API.
// Supabase only acts as the identity provider here; all marketplace data
// lives in postgres.
type SupabaseVerifier struct {
	client *supabase.Client
}

func NewSupabaseVerifier(url, key string) *SupabaseVerifier {
	return &SupabaseVerifier{client: supabase.CreateClient(url, key)}
}

func (v *SupabaseVerifier) Verify(ctx context.Context, accessToken string) (*Session, error) {
	user, err := v.client.Auth.User(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id %q", ErrSessionExpired, user.ID)
	}

	return &Session{UserID: id, Email: user.Email}, nil
}
