package repository

import (
	"context"
	"testing"
	"time"

	"titiktemu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaporanRepository_CreateAndGet(t *testing.T) {
	truncateTables(t)
	repo := NewLaporanRepository(testDB)
	ctx := context.Background()

	owner := mustCreateUser(t, "alice", "alice@x.com")

	laporan := &models.Laporan{
		UserID:          owner.ID,
		Tipe:            models.TipeHilang,
		Judul:           "Dompet coklat",
		Deskripsi:       "Hilang di sekitar kantin",
		Kategori:        models.KategoriDokumen,
		Lokasi:          "Kantin",
		TanggalKejadian: time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
		Status:          models.StatusAktif,
	}
	require.NoError(t, repo.Create(ctx, laporan))
	assert.NotZero(t, laporan.ID)

	t.Run("GetByID Preloads Owner", func(t *testing.T) {
		got, err := repo.GetByID(ctx, laporan.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dompet coklat", got.Judul)
		assert.Equal(t, owner.ID, got.User.ID)

		resp := got.ToResponse()
		assert.Equal(t, "Test User", resp.PelaporNama)
		assert.Equal(t, "alice@x.com", resp.PelaporEmail)
		assert.Equal(t, "2025-10-25", resp.TanggalKejadian)
	})

	t.Run("GetByID Not Found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 9999)
		assert.Nil(t, got)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "Laporan tidak ditemukan", appErr.Message)
	})
}

func TestLaporanRepository_List(t *testing.T) {
	truncateTables(t)
	repo := NewLaporanRepository(testDB)
	ctx := context.Background()

	owner := mustCreateUser(t, "bob", "bob@x.com")
	base := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	oldest := mustCreateLaporan(t, owner, "Laptop Asus hilang", base, func(l *models.Laporan) {
		l.Tipe = models.TipeHilang
		l.Kategori = models.KategoriElektronik
		l.Lokasi = "Ruang Kelas 3A"
	})
	middle := mustCreateLaporan(t, owner, "Botol minum ditemukan", base.Add(time.Hour), func(l *models.Laporan) {
		l.Tipe = models.TipeTemukan
		l.Kategori = models.KategoriAlatMakan
		l.Lokasi = "Kantin Utama"
		l.Status = models.StatusSelesai
	})
	newest := mustCreateLaporan(t, owner, "KTM atas nama Budi", base.Add(2*time.Hour), func(l *models.Laporan) {
		l.Tipe = models.TipeTemukan
		l.Kategori = models.KategoriDokumen
		l.Lokasi = "Perpustakaan"
		l.Deskripsi = "Ditemukan KTM di meja baca lantai 2"
	})

	t.Run("No Filter Returns All Newest First", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, newest.ID, got[0].ID)
		assert.Equal(t, middle.ID, got[1].ID)
		assert.Equal(t, oldest.ID, got[2].ID)
		// Owner preloaded for the denormalized response fields.
		assert.Equal(t, "bob@x.com", got[0].User.Email)
	})

	t.Run("Filter By Tipe", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{Tipe: models.TipeHilang})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, oldest.ID, got[0].ID)
	})

	t.Run("Filter By Kategori And Status", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{
			Kategori: models.KategoriAlatMakan,
			Status:   models.StatusSelesai,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, middle.ID, got[0].ID)

		none, err := repo.List(ctx, ListFilter{
			Kategori: models.KategoriAlatMakan,
			Status:   models.StatusAktif,
		})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Filter By Lokasi Substring Case Insensitive", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{Lokasi: "kantin"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, middle.ID, got[0].ID)
	})

	t.Run("Search Matches Judul Or Deskripsi", func(t *testing.T) {
		byJudul, err := repo.List(ctx, ListFilter{Search: "asus"})
		require.NoError(t, err)
		require.Len(t, byJudul, 1)
		assert.Equal(t, oldest.ID, byJudul[0].ID)

		byDeskripsi, err := repo.List(ctx, ListFilter{Search: "meja baca"})
		require.NoError(t, err)
		require.Len(t, byDeskripsi, 1)
		assert.Equal(t, newest.ID, byDeskripsi[0].ID)
	})

	t.Run("Combined Filters AND Semantics", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{
			Tipe:   models.TipeTemukan,
			Search: "ktm",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, newest.ID, got[0].ID)
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		got, err := repo.List(ctx, ListFilter{Search: "tidak ada barang ini"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLaporanRepository_Update(t *testing.T) {
	truncateTables(t)
	repo := NewLaporanRepository(testDB)
	ctx := context.Background()

	owner := mustCreateUser(t, "carol", "carol@x.com")
	laporan := mustCreateLaporan(t, owner, "Payung hitam", time.Now().UTC())

	laporan.Status = models.StatusSelesai
	laporan.Lokasi = "Pos Satpam"
	require.NoError(t, repo.Update(ctx, laporan))

	got, err := repo.GetByID(ctx, laporan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSelesai, got.Status)
	assert.Equal(t, "Pos Satpam", got.Lokasi)
	assert.Equal(t, "Payung hitam", got.Judul)
}

func TestLaporanRepository_Delete(t *testing.T) {
	truncateTables(t)
	repo := NewLaporanRepository(testDB)
	ctx := context.Background()

	owner := mustCreateUser(t, "dave", "dave@x.com")
	laporan := mustCreateLaporan(t, owner, "Flashdisk 32GB", time.Now().UTC())

	require.NoError(t, repo.Delete(ctx, laporan.ID))

	got, err := repo.GetByID(ctx, laporan.ID)
	assert.Nil(t, got)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
