package model

import (
	"os"

	"packlist/backend/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createRootAccountIfNeed() error {
	var userCount int64
	if err := DB.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		common.SysLog("no user exists, create a root user for you: username is root, password is 123456")
		hashedPassword, err := common.Password2Hash("123456")
		if err != nil {
			return err
		}
		rootUser := User{
			Username:    "root",
			Password:    hashedPassword,
			DisplayName: "Root User",
			Email:       "root@localhost",
			Role:        RoleRootUser,
			Status:      common.UserStatusEnabled,
		}
		if err := DB.Create(&rootUser).Error; err != nil {
			return err
		}
		common.SysLog("root user created successfully")
	}
	return nil
}

func InitDB() (err error) {
	var dbInstance *gorm.DB
	dsn := os.Getenv("SQL_DSN")

	if dsn != "" {
		common.SysLog("using MySQL database")
		dbInstance, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("SQL_DSN not set, using SQLite as database: " + common.SQLitePath)
		dbInstance, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		return err
	}

	DB = dbInstance

	err = DB.AutoMigrate(
		&User{},
		&Option{},
		&Checklist{},
		&Category{},
		&Item{},
		&CategoryFile{},
		&ItemFile{},
		&ShareLink{},
	)
	if err != nil {
		return err
	}

	if err = createRootAccountIfNeed(); err != nil {
		return err
	}

	if err = InitOptionMap(); err != nil {
		return err
	}

	common.SysLog("database initialized successfully")
	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("closing database connection")
	return sqlDB.Close()
}
