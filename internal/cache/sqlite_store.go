package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// snapshotRow is the single-table schema backing the SQLite snapshot store.
type snapshotRow struct {
	Clave         string `gorm:"primaryKey"`
	Datos         []byte `gorm:"not null"`
	ActualizadoEn time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// SQLiteStore persists snapshots in a local SQLite file — the single-node
// equivalent of the browser's storage slot, for deployments without Redis.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(ruta string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(ruta), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cache: abrir sqlite: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("cache: migrar snapshots: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Guardar(ctx context.Context, clave string, datos []byte) error {
	row := snapshotRow{Clave: clave, Datos: datos, ActualizadoEn: time.Now()}
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *SQLiteStore) Recuperar(ctx context.Context, clave string) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "clave = ?", clave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotVacio
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer snapshot de sqlite: %w", err)
	}
	return row.Datos, nil
}
