package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/ecuabus/user-api/internal/users/domain"
)

// IdentityStore wraps the Firebase Auth admin client. Duplicate-identity
// errors are translated to domain sentinels here; everything else passes
// through untouched.
type IdentityStore struct {
	client *auth.Client
}

func NewIdentityStore(client *auth.Client) *IdentityStore {
	return &IdentityStore{client: client}
}

func (s *IdentityStore) Create(ctx context.Context, p domain.IdentityParams) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(p.Email).
		Password(p.Password).
		DisplayName(p.DisplayName)
	if p.Phone != "" {
		params = params.PhoneNumber(p.Phone)
	}

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		return "", classify(err)
	}
	return record.UID, nil
}

func (s *IdentityStore) Update(ctx context.Context, id string, u domain.IdentityUpdate) error {
	params := (&auth.UserToUpdate{}).DisplayName(u.DisplayName)
	if u.Email != nil {
		params = params.Email(*u.Email)
	}
	if u.Phone != nil {
		params = params.PhoneNumber(*u.Phone)
	}
	if u.Password != nil {
		params = params.Password(*u.Password)
	}

	if _, err := s.client.UpdateUser(ctx, id, params); err != nil {
		return classify(err)
	}
	return nil
}

func (s *IdentityStore) Delete(ctx context.Context, id string) error {
	return s.client.DeleteUser(ctx, id)
}

// classify maps the SDK's coded errors onto domain sentinels, keeping the
// raw detail in the wrapped message.
func classify(err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return fmt.Errorf("%w: %v", domain.ErrEmailTaken, err)
	case auth.IsPhoneNumberAlreadyExists(err):
		return fmt.Errorf("%w: %v", domain.ErrPhoneTaken, err)
	}
	return err
}
