package storage

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	// cgo-free sqlite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

type snapshotRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRow) TableName() string { return "crm_snapshots" }

// GormKV stores snapshots in a single key/value table. PostgreSQL is
// used when the DSN looks like a postgres URL, SQLite otherwise.
type GormKV struct {
	db *gorm.DB
}

func OpenGormKV(dsn string) (*GormKV, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("storage: connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		log.Println("storage: using SQLite:", dsn)
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        dsn,
			}),
			&gorm.Config{},
		)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}

	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(key string) ([]byte, error) {
	var row snapshotRow
	err := g.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (g *GormKV) Set(key string, value []byte) error {
	err := g.upsert(key, value)
	if isRetryablePgError(err) {
		err = g.upsert(key, value)
	}
	return err
}

func (g *GormKV) upsert(key string, value []byte) error {
	row := snapshotRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// isRetryablePgError reports serialization failures and deadlocks,
// which postgres asks the client to retry.
func isRetryablePgError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func (g *GormKV) Delete(key string) error {
	return g.db.Where("key = ?", key).Delete(&snapshotRow{}).Error
}

func (g *GormKV) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
