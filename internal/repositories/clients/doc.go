// Package clients is the gateway for client records.
//
// Clients are soft-deletable. Listings default to the active set;
// models.ViewTrash lists only trashed clients and models.ViewAll lists both.
// The id-document number is unique among active clients, which the schema
// enforces with a partial unique index, so Create and Restore report a
// collision as common.ErrDuplicateKey.
//
// Typical usage:
//
//	repo := clients.NewSQLiteRepository(db)
//	id, err := repo.Create(ctx, &models.Client{Name: "Ana García", IDType: "DNI", IDNumber: "123"})
//	list, _ := repo.Search(ctx, "garcía", models.ViewActive)
//	_ = repo.SoftDelete(ctx, id)
//	_ = repo.Restore(ctx, id)
package clients
