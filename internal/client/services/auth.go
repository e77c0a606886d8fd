// Package services contains the application services of the Time Report
// client. AuthService owns the session: it logs in and out, registers new
// accounts and keeps the session in the local database so it survives a
// restart. NoteService validates note operations before they reach the
// transport.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/timereport/internal/dbx"
	"github.com/dmitrijs2005/timereport/internal/logging"
)

const (
	keyCredential  = "credential"
	keyRole        = "role"
	keyDisplayName = "display_name"
)

// AuthService defines the session lifecycle.
//
//   - Login validates the form, authenticates once and persists the session.
//   - Register creates an account without logging in.
//   - Restore loads a persisted session, if any, at start-up.
//   - Logout forgets the session in memory and on disk, even when the disk
//     write fails.
//   - Current returns the in-memory session; the zero Session when logged out.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	Register(ctx context.Context, creds models.Credentials, isTeacher bool) error
	Restore(ctx context.Context) (models.Session, error)
	Logout(ctx context.Context) error
	Current() models.Session
	Close(ctx context.Context) error
}

// repoFactory binds a metadata repository to a connection or transaction.
type repoFactory func(db dbx.DBTX) metadata.Repository

func sqliteRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

type authService struct {
	client  client.Client
	db      *sql.DB
	log     logging.Logger
	newRepo repoFactory
	session models.Session
}

func NewAuthService(c client.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: c, db: db, log: log.With("component", "auth"), newRepo: sqliteRepo}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return a.newRepo(a.db)
}

func (a *authService) Current() models.Session {
	return a.session
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := models.Validate(creds); err != nil {
		return models.Session{}, err
	}

	sess, err := a.client.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		return models.Session{}, err
	}

	if err := a.saveSession(ctx, sess); err != nil {
		a.client.SetCredential("")
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}

	a.session = sess
	a.client.SetCredential(sess.Credential)
	a.log.Info(ctx, "logged in", "user", sess.DisplayName, "role", sess.Role)
	return sess, nil
}

func (a *authService) saveSession(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return a.newRepo(tx).SetMany(ctx, map[string][]byte{
			keyCredential:  []byte(sess.Credential),
			keyRole:        []byte(sess.Role),
			keyDisplayName: []byte(sess.DisplayName),
		})
	})
}

func (a *authService) Register(ctx context.Context, creds models.Credentials, isTeacher bool) error {
	if err := models.Validate(creds); err != nil {
		return err
	}
	if err := a.client.Register(ctx, creds.Username, creds.Password, isTeacher); err != nil {
		return err
	}
	a.log.Info(ctx, "registered", "user", creds.Username, "teacher", isTeacher)
	return nil
}

// Restore returns the zero Session when nothing usable is stored. A stored
// session with an unknown role is discarded.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	repo := a.getMetadataRepo()

	credential, ok, err := repo.Get(ctx, keyCredential)
	if err != nil {
		return models.Session{}, err
	}
	if !ok || len(credential) == 0 {
		return models.Session{}, nil
	}

	rawRole, _, err := repo.Get(ctx, keyRole)
	if err != nil {
		return models.Session{}, err
	}
	role, err := models.ParseRole(string(rawRole))
	if err != nil {
		a.log.Warn(ctx, "discarding stored session", "error", err)
		return models.Session{}, a.Logout(ctx)
	}

	name, _, err := repo.Get(ctx, keyDisplayName)
	if err != nil {
		return models.Session{}, err
	}

	a.session = models.Session{
		Credential:  string(credential),
		Role:        role,
		DisplayName: string(name),
	}
	a.client.SetCredential(a.session.Credential)
	a.log.Info(ctx, "session restored", "user", a.session.DisplayName, "role", role)
	return a.session, nil
}

// Logout wipes the local metadata store; it only ever holds the session.
func (a *authService) Logout(ctx context.Context) error {
	a.session = models.Session{}
	a.client.SetCredential("")

	if err := a.getMetadataRepo().Clear(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
