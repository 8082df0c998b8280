package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realestate-listings/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ PropertyStore = (*GormStore)(nil)

// GormStore persists listings in MySQL through GORM.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(host, port, user, password, dbname string) (*GormStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return NewGormStoreFromDB(db), nil
}

// NewGormStoreFromDB wraps an existing gorm.DB.
func NewGormStoreFromDB(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// InitSchema creates or migrates the properties table.
func (s *GormStore) InitSchema() error {
	return s.db.AutoMigrate(&models.Property{})
}

func (s *GormStore) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := s.ordered(ctx).Find(&properties).Error
	if err != nil {
		return nil, err
	}
	for i := range properties {
		normalize(&properties[i])
	}
	return properties, nil
}

// ordered scopes a query to insertion order.
func (s *GormStore) ordered(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Order("seq")
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	normalize(&property)
	return &property, nil
}

func (s *GormStore) Insert(ctx context.Context, in models.PropertyInput) (models.Property, error) {
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}
	p := in.ToProperty(uuid.NewString(), s.now())
	p.DateListed = storedTime(p.DateListed)
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// IncrementViews updates the counter in SQL so concurrent requests never lose a view.
func (s *GormStore) IncrementViews(ctx context.Context, id string) (*models.Property, error) {
	var updated *models.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Property{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var property models.Property
		if err := tx.Where("id = ?", id).First(&property).Error; err != nil {
			return err
		}
		normalize(&property)
		updated = &property
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// storedTime drops what datetime(6) and TIMESTAMPTZ cannot hold, so the
// record Insert returns matches the one read back.
func storedTime(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

// normalize replaces NULL json columns with empty lists.
func normalize(p *models.Property) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}
