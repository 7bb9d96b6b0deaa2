package repository

import (
	"context"
	"errors"
	"strings"

	"titiktemu/internal/models"

	"gorm.io/gorm"
)

// ListFilter holds the optional, AND-combined predicates for listing laporan.
// Zero values mean "no filter".
type ListFilter struct {
	Tipe     models.TipeLaporan
	Kategori models.KategoriBarang
	Status   models.StatusLaporan
	Lokasi   string
	Search   string
}

// LaporanRepository defines persistence operations for laporan.
type LaporanRepository interface {
	Create(ctx context.Context, laporan *models.Laporan) error
	GetByID(ctx context.Context, id uint) (*models.Laporan, error)
	List(ctx context.Context, filter ListFilter) ([]models.Laporan, error)
	Update(ctx context.Context, laporan *models.Laporan) error
	Delete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type laporanRepository struct {
	db *gorm.DB
}

// NewLaporanRepository returns a new LaporanRepository implementation.
func NewLaporanRepository(db *gorm.DB) LaporanRepository {
	return &laporanRepository{db: db}
}

// Create persists the laporan. The User association is omitted so the owner
// row is never written through this path.
func (r *laporanRepository) Create(ctx context.Context, laporan *models.Laporan) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(laporan).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *laporanRepository) GetByID(ctx context.Context, id uint) (*models.Laporan, error) {
	var laporan models.Laporan
	if err := readDB(r.db).WithContext(ctx).Preload("User").First(&laporan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Laporan tidak ditemukan")
		}
		return nil, models.NewInternalError(err)
	}
	return &laporan, nil
}

// List returns laporan matching every supplied predicate, newest first.
// Lokasi and Search match case-insensitively anywhere in their fields;
// LOWER(...) LIKE keeps the query portable across postgres and sqlite.
func (r *laporanRepository) List(ctx context.Context, filter ListFilter) ([]models.Laporan, error) {
	query := readDB(r.db).WithContext(ctx).Preload("User").Order("created_at DESC")

	if filter.Tipe != "" {
		query = query.Where("tipe = ?", filter.Tipe)
	}
	if filter.Kategori != "" {
		query = query.Where("kategori = ?", filter.Kategori)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Lokasi != "" {
		query = query.Where("LOWER(lokasi) LIKE ?", "%"+strings.ToLower(filter.Lokasi)+"%")
	}
	if filter.Search != "" {
		kw := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(judul) LIKE ? OR LOWER(deskripsi) LIKE ?", kw, kw)
	}

	var laporan []models.Laporan
	if err := query.Find(&laporan).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return laporan, nil
}

func (r *laporanRepository) Update(ctx context.Context, laporan *models.Laporan) error {
	if err := r.db.WithContext(ctx).Omit("User").Save(laporan).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *laporanRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Laporan{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *laporanRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).Model(&models.Laporan{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
