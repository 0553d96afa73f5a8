package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRecord is one whole collection document in a SQL table.
type collectionRecord struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (collectionRecord) TableName() string { return "hub_collections" }

// DBGateway stores collection documents as rows keyed by name.
type DBGateway struct {
	db *gorm.DB
}

// NewDBGateway migrates the collections table on db.
func NewDBGateway(db *gorm.DB) (*DBGateway, error) {
	if err := db.AutoMigrate(&collectionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate collections: %w", err)
	}
	return &DBGateway{db: db}, nil
}

func (g *DBGateway) Load(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var rec collectionRecord
	err := g.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

func (g *DBGateway) Save(ctx context.Context, name string, doc []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	rec := collectionRecord{Name: name, Payload: doc, UpdatedAt: time.Now().UTC()}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

// OpenMySQL connects through the go-sql-driver connector and hands the pool
// to gorm.
func OpenMySQL(c config.DatabaseConfig) (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	cfg.DBName = c.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// OpenSQLite opens (or creates) the database file at path; ":memory:" is
// accepted for tests.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = "data/hub.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	// every connection to ":memory:" would see its own empty database
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
