package sqlite

import (
	"context"
	"database/sql"

	"github.com/foliohq/folio/internal/portfolio/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Roles() store.Roles               { return &rolesRepo{q: t.tx} }
func (t *txStore) Accounts() store.Accounts         { return &accountsRepo{q: t.tx} }
func (t *txStore) Invitations() store.Invitations   { return &invitationsRepo{q: t.tx} }
func (t *txStore) Projects() store.Projects         { return &projectsRepo{q: t.tx} }
func (t *txStore) Skills() store.Skills             { return &skillsRepo{q: t.tx} }
func (t *txStore) About() store.About               { return &aboutRepo{q: t.tx} }
func (t *txStore) Experiences() store.Experiences   { return &experiencesRepo{q: t.tx} }
func (t *txStore) Educations() store.Educations     { return &educationsRepo{q: t.tx} }
func (t *txStore) Testimonials() store.Testimonials { return &testimonialsRepo{q: t.tx} }
func (t *txStore) SocialLinks() store.SocialLinks   { return &socialLinksRepo{q: t.tx} }
func (t *txStore) Settings() store.Settings         { return &settingsRepo{q: t.tx} }
func (t *txStore) Services() store.Services         { return &servicesRepo{q: t.tx} }
func (t *txStore) Contacts() store.Contacts         { return &contactsRepo{q: t.tx} }
func (t *txStore) Analytics() store.Analytics       { return &analyticsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations should be applied before starting a tx
