package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
)

const (
	DriverFile   = "file"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// Open selects a Gateway from the storage config.
func Open(ctx context.Context, cfg config.StorageConfig) (Gateway, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverFile:
		return NewFileGateway(cfg.DataDir)
	case DriverMySQL:
		db, err := OpenMySQL(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewDBGateway(db)
	case DriverSQLite:
		db, err := OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		return NewDBGateway(db)
	case DriverS3:
		return NewS3Gateway(ctx, cfg.S3)
	case DriverMemory:
		return NewMemoryGateway(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
