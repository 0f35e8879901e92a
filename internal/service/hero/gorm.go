package hero

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/janisto/echo-heroes/internal/platform/database"
	applog "github.com/janisto/echo-heroes/internal/platform/logging"
)

// GormStore implements Service on the sqlite database through gorm.
// Every call runs on its own session derived from the request context.
type GormStore struct {
	db *database.DB
}

// NewGormStore creates a store backed by db.
func NewGormStore(db *database.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, params CreateParams) (*Hero, error) {
	h := &Hero{Name: params.Name, SecretName: params.SecretName}
	if params.ID != nil {
		h.ID = *params.ID
	}

	err := mapError(s.db.Session(ctx).Create(h).Error)

	resourceID := ""
	if err == nil {
		resourceID = strconv.FormatInt(h.ID, 10)
	}
	applog.LogAuditEvent(ctx, "create", "hero", resourceID, outcome(err), map[string]any{"name": params.Name})

	if err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}
	return h, nil
}

func (s *GormStore) Get(ctx context.Context, id int64) (*Hero, error) {
	var h Hero
	if err := s.db.Session(ctx).First(&h, id).Error; err != nil {
		return nil, fmt.Errorf("get hero %d: %w", id, mapError(err))
	}
	return &h, nil
}

func (s *GormStore) List(ctx context.Context, afterID int64, limit int) ([]Hero, error) {
	heroes := make([]Hero, 0, limit)
	err := s.db.Session(ctx).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&heroes).Error
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", mapError(err))
	}
	return heroes, nil
}

// mapError classifies gorm errors into the package sentinels, keeping the
// original error in the chain.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}

var _ Service = (*GormStore)(nil)
