package database

import (
	"errors"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	sqlite "modernc.org/sqlite" // also registers the cgo-free "sqlite" driver
	sqlite3 "modernc.org/sqlite/lib"

	"modelo/internal/domain/application"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/chat"
	"modelo/internal/domain/listing"
	"modelo/internal/domain/notification"
	"modelo/internal/domain/profile"
	"modelo/internal/domain/upload"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		sqliteDialector{gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		})},
		&gorm.Config{TranslateError: true},
	)
}

// sqliteDialector adds error translation for the modernc driver. The stock
// sqlite dialector only recognizes mattn's error type, so constraint
// violations from modernc would otherwise never become gorm.ErrDuplicatedKey.
type sqliteDialector struct {
	gorm.Dialector
}

func (d sqliteDialector) Translate(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return gorm.ErrDuplicatedKey
		}
		return err
	}
	if t, ok := d.Dialector.(gorm.ErrorTranslator); ok {
		return t.Translate(err)
	}
	return err
}

// Migrate creates or updates all application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&profile.ModelProfile{},
		&profile.ProfessionalProfile{},
		&listing.Listing{},
		&application.Application{},
		&chat.Conversation{},
		&chat.Message{},
		&notification.Notification{},
		&upload.Upload{},
	)
}
