// Package database handles the SQLite database initialization, migrations and
// seed data for the blog panel.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"blogtask/config"
	"blogtask/database/model"
	"blogtask/util/crypto"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultLogin    = "admin"
	defaultPassword = "admin"
)

var defaultRoles = []model.Role{
	{Name: "Administrator", Description: "Full access to users, roles and content"},
	{Name: "Moderator", Description: "Can edit and remove any article or comment"},
	{Name: "User", Description: "Can publish articles and comments"},
}

func initModels() error {
	models := []any{
		&model.Role{},
		&model.User{},
		&model.Article{},
		&model.Tag{},
		&model.Comment{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func initRoles() error {
	empty, err := isTableEmpty("roles")
	if err != nil {
		log.Printf("Error checking if roles table is empty: %v", err)
		return err
	}
	if empty {
		for i := range defaultRoles {
			if err := db.Create(&defaultRoles[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func initUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if empty {
		hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
		if err != nil {
			return err
		}
		admin := &model.Role{}
		if err := db.Where("name = ?", "Administrator").First(admin).Error; err != nil {
			return err
		}
		user := &model.User{
			Id:       uuid.NewString(),
			Login:    defaultLogin,
			Password: hash,
			RoleId:   &admin.Id,
		}
		return db.Create(user).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=1"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initRoles(); err != nil {
		return err
	}
	if err := initUser(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
