package repo

import (
	"LabSite/config"
	"LabSite/model"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var Db *gorm.DB

// autoMigrateAll migrates all database models.
func autoMigrateAll(db *gorm.DB) {
	db.AutoMigrate(&model.Admin{})
	db.AutoMigrate(&model.Professor{})
	db.AutoMigrate(&model.TeamMember{})
	db.AutoMigrate(&model.Project{})
	db.AutoMigrate(&model.Publication{})
	db.AutoMigrate(&model.News{})
	db.AutoMigrate(&model.GalleryEvent{})
	db.AutoMigrate(&model.AboutContent{})
	db.AutoMigrate(&model.PageMeta{})
}

func dsnFor(dbName string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPass,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		dbName,
	)
}

// InitMysql initializes the main MySQL connection.
func InitMysql() {
	db, err := openMysql(config.AppConfig.DBName)
	if err != nil {
		log.Fatal("init mysql fail", err)
	}
	Db = db
	log.Println("init mysql success")
}

// InitMysqlTest initializes the test MySQL connection. It returns the
// error instead of exiting so tests can skip when no server is reachable.
func InitMysqlTest() error {
	db, err := openMysql(config.AppConfig.DBNameTest)
	if err != nil {
		return err
	}
	Db = db
	return nil
}

func openMysql(dbName string) (*gorm.DB, error) {
	db, err := gorm.Open(gormMysql.Open(dsnFor(dbName)), &gorm.Config{})
	if err != nil && isUnknownDatabaseError(err) {
		if err = ensureMySQLDatabase(dbName); err != nil {
			return nil, err
		}
		db, err = gorm.Open(gormMysql.Open(dsnFor(dbName)), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	autoMigrateAll(db)
	return db, nil
}

func isUnknownDatabaseError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1049
	}
	return strings.Contains(strings.ToLower(err.Error()), "unknown database")
}

// IsDuplicateKey reports whether err is a MySQL unique-constraint violation.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func ensureMySQLDatabase(dbName string) error {
	dbName = strings.TrimSpace(dbName)
	if dbName == "" {
		return errors.New("empty database name")
	}

	serverDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPass,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
	)

	serverDB, err := sql.Open("mysql", serverDSN)
	if err != nil {
		return err
	}
	defer serverDB.Close()

	if err = serverDB.Ping(); err != nil {
		return err
	}

	_, err = serverDB.Exec(
		"CREATE DATABASE IF NOT EXISTS " + quoteMySQLIdentifier(dbName) + " CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci",
	)
	return err
}

func quoteMySQLIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
