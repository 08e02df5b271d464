package service

import (
	"context"

	"github.com/ecuabus/user-api/internal/users/domain"
)

// IdentityStore is the credential side of a user record (Firebase Auth in
// production).
type IdentityStore interface {
	Create(ctx context.Context, p domain.IdentityParams) (string, error)
	Update(ctx context.Context, id string, u domain.IdentityUpdate) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore is the document side of a user record (Firestore in
// production).
type ProfileStore interface {
	Set(ctx context.Context, idCoop, recordType, uid string, p *domain.Profile) error
	Update(ctx context.Context, idCoop, recordType, id string, fields map[string]any) error
	Delete(ctx context.Context, idCoop, recordType, id string) error
}

// UserService orchestrates the dual write across the identity store and the
// document store. The two calls are strictly sequential; there is no
// rollback of the first when the second fails, so a failed profile write
// after a successful credential creation leaves an orphaned credential
// behind.
type UserService struct {
	identity IdentityStore
	profiles ProfileStore
}

func NewUserService(identity IdentityStore, profiles ProfileStore) *UserService {
	return &UserService{
		identity: identity,
		profiles: profiles,
	}
}

// Create provisions the credential first, then writes the profile document
// keyed by the generated uid. Returns the uid of the new record.
func (s *UserService) Create(ctx context.Context, idCoop, recordType string, req *domain.CreateUserRequest) (string, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.LastName == "" {
		return "", domain.ErrMissingFields
	}

	params := domain.IdentityParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: domain.DisplayName(req.Name, req.LastName),
	}
	if req.Phone != nil {
		params.Phone = *req.Phone
	}

	uid, err := s.identity.Create(ctx, params)
	if err != nil {
		return "", err
	}

	profile := &domain.Profile{
		Email:          req.Email,
		Name:           req.Name,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		Card:           req.Card,
		Photo:          req.Photo,
		IsBlocked:      req.IsBlocked,
		Rol:            req.Rol,
		UID:            uid,
		UIDCooperative: idCoop,
	}

	if err := s.profiles.Set(ctx, idCoop, recordType, uid, profile); err != nil {
		// The credential already exists at this point; it is left in
		// place (no compensating delete).
		return "", err
	}

	return uid, nil
}

// Update applies the identity update first; the document update is only
// attempted when it succeeds. The display name is recomputed from whatever
// name/lastName the caller sent, even when absent. The document update
// always carries address, card, name, lastName and photo, supplied or not;
// email and phone only when supplied.
func (s *UserService) Update(ctx context.Context, id, idCoop, recordType string, req *domain.UpdateUserRequest) error {
	update := domain.IdentityUpdate{
		DisplayName: domain.DisplayName(strOrEmpty(req.Name), strOrEmpty(req.LastName)),
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
	}

	if err := s.identity.Update(ctx, id, update); err != nil {
		return err
	}

	fields := map[string]any{
		"address":  req.Address,
		"card":     req.Card,
		"name":     req.Name,
		"lastName": req.LastName,
		"photo":    req.Photo,
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	return s.profiles.Update(ctx, idCoop, recordType, id, fields)
}

// Delete removes the credential, then the document. A missing id surfaces
// whatever the identity store reports; there is no dedicated not-found
// handling, and the document delete is skipped when the credential delete
// fails.
func (s *UserService) Delete(ctx context.Context, id, idCoop, recordType string) error {
	if err := s.identity.Delete(ctx, id); err != nil {
		return err
	}
	return s.profiles.Delete(ctx, idCoop, recordType, id)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
