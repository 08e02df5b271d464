package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"github.com/ecuabus/user-api/config"
	"github.com/ecuabus/user-api/internal/users/domain"
)

// ProfileRepo stores user documents in Firestore. Depending on the
// configured layout, documents live under cooperatives/{idCoop}/{type} or
// in a single flat users collection.
type ProfileRepo struct {
	client *firestore.Client
	layout string
}

func NewProfileRepo(client *firestore.Client, layout string) *ProfileRepo {
	return &ProfileRepo{client: client, layout: layout}
}

func (r *ProfileRepo) doc(idCoop, recordType, uid string) *firestore.DocumentRef {
	if r.layout == config.LayoutFlat {
		return r.client.Collection("users").Doc(uid)
	}
	return r.client.Collection("cooperatives").Doc(idCoop).Collection(recordType).Doc(uid)
}

func (r *ProfileRepo) Set(ctx context.Context, idCoop, recordType, uid string, p *domain.Profile) error {
	_, err := r.doc(idCoop, recordType, uid).Set(ctx, p)
	return err
}

// Update applies a partial document update. Nil values in fields are
// written as Firestore nulls, mirroring how the original service forwarded
// absent payload fields.
func (r *ProfileRepo) Update(ctx context.Context, idCoop, recordType, id string, fields map[string]any) error {
	paths := make([]string, 0, len(fields))
	for k := range fields {
		paths = append(paths, k)
	}
	sort.Strings(paths)

	updates := make([]firestore.Update, 0, len(fields))
	for _, p := range paths {
		updates = append(updates, firestore.Update{Path: p, Value: fields[p]})
	}

	_, err := r.doc(idCoop, recordType, id).Update(ctx, updates)
	return err
}

func (r *ProfileRepo) Delete(ctx context.Context, idCoop, recordType, id string) error {
	_, err := r.doc(idCoop, recordType, id).Delete(ctx)
	return err
}
