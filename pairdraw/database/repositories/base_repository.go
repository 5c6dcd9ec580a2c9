package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const defaultQueryTimeout = 10 * time.Second

// BaseRepository provides common repository functionality.
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{
		db:             db,
		defaultTimeout: defaultQueryTimeout,
	}
}

// RepositoryError represents an unexpected storage-level failure.
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

// NotFoundError: the referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", nfe.Entity, nfe.ID)
}

// ConflictError: the entity is already in the requested terminal state,
// or a non-idempotent transition was attempted twice.
type ConflictError struct {
	Entity string
	Field  string
	Value  interface{}
}

func (ce *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict on %s %v", ce.Entity, ce.Field, ce.Value)
}

// ForbiddenError: the caller lacks the relationship or role the action
// requires.
type ForbiddenError struct {
	Action string
	Reason string
}

func (fe *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s (%s)", fe.Action, fe.Reason)
}

// InvalidArgumentError: missing or malformed input.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (ie *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", ie.Field, ie.Reason)
}

// InvalidCredentialError: the supplied credential does not match the
// stored one.
type InvalidCredentialError struct {
	Name string
}

func (ice *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid credential for %s", ice.Name)
}

// InvalidStateError: no entity is in a state that allows the requested
// transition (e.g. drawing with no approved request outstanding).
type InvalidStateError struct {
	Entity string
	Reason string
}

func (ise *InvalidStateError) Error() string {
	return fmt.Sprintf("%s in invalid state: %s", ise.Entity, ise.Reason)
}

func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// HandleError standardizes error handling across repositories.
func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: "unknown"}
	}
	return &RepositoryError{Operation: operation, Entity: entity, Err: err}
}

// HandleErrorWithID standardizes error handling with a specific ID.
func (br *BaseRepository) HandleErrorWithID(operation, entity string, id interface{}, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return &RepositoryError{Operation: operation, Entity: entity, Err: err}
}

// Transaction executes a function within a database transaction.
func (br *BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.db.RunInTx(timeoutCtx, nil, fn)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

func IsInvalidArgument(err error) bool {
	var ie *InvalidArgumentError
	return errors.As(err, &ie)
}

func IsInvalidCredential(err error) bool {
	var ice *InvalidCredentialError
	return errors.As(err, &ice)
}

func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}
