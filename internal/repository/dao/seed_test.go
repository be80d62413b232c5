package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, InitTables(db))

	return db
}

func TestSeed_PopulatesFreshDatabase(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	var productCount, userCount int64
	require.NoError(t, db.Model(&Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&User{}).Count(&userCount).Error)

	assert.Equal(t, int64(8), productCount)
	assert.Equal(t, int64(3), userCount)
}

func TestSeed_NoOpWhenProductsExist(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var productCount int64
	require.NoError(t, db.Model(&Product{}).Count(&productCount).Error)
	assert.Equal(t, int64(8), productCount)
}
