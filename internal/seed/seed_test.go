package seed

import (
	"testing"

	"titiktemu/internal/database"
	"titiktemu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		db.Exec("DELETE FROM laporan")
		db.Exec("DELETE FROM users")
	})
	return db
}

func TestRun(t *testing.T) {
	db := setupDB(t)

	err := NewSeeder(db).Run(Options{NumUsers: 5, NumLaporan: 20, ShouldClean: true})
	require.NoError(t, err)

	var userCount, laporanCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Laporan{}).Count(&laporanCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 20, laporanCount)

	t.Run("seeded users can log in with the shared password", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.First(&user).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
		assert.Contains(t, user.Email, "@kampus.ac.id")
	})

	t.Run("every laporan has a valid owner and enum values", func(t *testing.T) {
		var laporan []models.Laporan
		require.NoError(t, db.Find(&laporan).Error)
		for _, l := range laporan {
			assert.NotZero(t, l.UserID)
			assert.Contains(t, []models.TipeLaporan{models.TipeHilang, models.TipeTemukan}, l.Tipe)
			assert.Contains(t, []models.StatusLaporan{models.StatusAktif, models.StatusSelesai}, l.Status)
			assert.NotEmpty(t, l.Judul)
			assert.NotEmpty(t, l.Lokasi)
		}
	})
}

func TestClearAll(t *testing.T) {
	db := setupDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(3)
	require.NoError(t, err)
	require.NoError(t, s.SeedLaporan(users, 10))

	require.NoError(t, s.ClearAll())

	var userCount, laporanCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Laporan{}).Count(&laporanCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, laporanCount)
}

func TestSeedLaporanRequiresUsers(t *testing.T) {
	db := setupDB(t)

	err := NewSeeder(db).SeedLaporan(nil, 5)
	assert.Error(t, err)
}
