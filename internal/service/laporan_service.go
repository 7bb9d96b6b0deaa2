package service

import (
	"context"
	"strings"

	"titiktemu/internal/middleware"
	"titiktemu/internal/models"
	"titiktemu/internal/repository"
)

// LaporanService implements the lost-and-found listing operations. Every
// mutating call takes the acting user explicitly; there is no ambient
// caller state.
type LaporanService struct {
	laporanRepo repository.LaporanRepository
}

// CreateLaporanInput carries the raw request fields for creating a laporan.
// Enum and date fields arrive as strings and are parsed here.
type CreateLaporanInput struct {
	Tipe            string `json:"tipe"`
	Judul           string `json:"judul"`
	Deskripsi       string `json:"deskripsi"`
	Kategori        string `json:"kategori"`
	Lokasi          string `json:"lokasi"`
	TanggalKejadian string `json:"tanggal_kejadian"`
	FotoURL         string `json:"-"`
}

// UpdateLaporanInput carries the partial-update fields. Blank fields leave
// the existing values untouched. The tipe of a laporan is fixed at creation.
type UpdateLaporanInput struct {
	Judul           string `json:"judul"`
	Deskripsi       string `json:"deskripsi"`
	Kategori        string `json:"kategori"`
	Lokasi          string `json:"lokasi"`
	TanggalKejadian string `json:"tanggal_kejadian"`
	Status          string `json:"status"`
	FotoURL         string `json:"-"`
}

// ListLaporanInput carries the raw, optional filter values from the query string.
type ListLaporanInput struct {
	Tipe     string
	Kategori string
	Status   string
	Lokasi   string
	Search   string
}

// NewLaporanService returns a new LaporanService.
func NewLaporanService(laporanRepo repository.LaporanRepository) *LaporanService {
	return &LaporanService{laporanRepo: laporanRepo}
}

// Create validates the input, forces status AKTIF, and persists the laporan
// owned by the caller.
func (s *LaporanService) Create(ctx context.Context, caller *models.User, in CreateLaporanInput) (*models.LaporanResponse, error) {
	if strings.TrimSpace(in.Judul) == "" {
		return nil, models.NewValidationError("Judul tidak boleh kosong")
	}
	if strings.TrimSpace(in.Deskripsi) == "" {
		return nil, models.NewValidationError("Deskripsi tidak boleh kosong")
	}
	if strings.TrimSpace(in.Lokasi) == "" {
		return nil, models.NewValidationError("Lokasi tidak boleh kosong")
	}

	tipe, err := models.ParseTipeLaporan(in.Tipe)
	if err != nil {
		return nil, err
	}
	kategori, err := models.ParseKategoriBarang(in.Kategori)
	if err != nil {
		return nil, err
	}
	tanggal, err := models.ParseTanggal(in.TanggalKejadian)
	if err != nil {
		return nil, err
	}

	laporan := &models.Laporan{
		UserID:          caller.ID,
		Tipe:            tipe,
		Judul:           strings.TrimSpace(in.Judul),
		Deskripsi:       strings.TrimSpace(in.Deskripsi),
		Kategori:        kategori,
		Lokasi:          strings.TrimSpace(in.Lokasi),
		TanggalKejadian: tanggal,
		Status:          models.StatusAktif,
		FotoURL:         in.FotoURL,
	}

	if err := s.laporanRepo.Create(ctx, laporan); err != nil {
		return nil, err
	}

	middleware.LaporanCreated.WithLabelValues(string(tipe)).Inc()
	middleware.Logger.InfoContext(ctx, "laporan created", "id", laporan.ID, "tipe", tipe)

	// Owner contact fields are projected from the caller without re-reading.
	laporan.User = *caller
	resp := laporan.ToResponse()
	return &resp, nil
}

// List returns laporan matching the optional filters, newest first. Supplied
// enum filters are validated; unknown values are a validation error rather
// than an empty result.
func (s *LaporanService) List(ctx context.Context, in ListLaporanInput) ([]models.LaporanResponse, error) {
	var filter repository.ListFilter
	var err error

	if in.Tipe != "" {
		if filter.Tipe, err = models.ParseTipeLaporan(in.Tipe); err != nil {
			return nil, err
		}
	}
	if in.Kategori != "" {
		if filter.Kategori, err = models.ParseKategoriBarang(in.Kategori); err != nil {
			return nil, err
		}
	}
	if in.Status != "" {
		if filter.Status, err = models.ParseStatusLaporan(in.Status); err != nil {
			return nil, err
		}
	}
	filter.Lokasi = strings.TrimSpace(in.Lokasi)
	filter.Search = strings.TrimSpace(in.Search)

	laporan, err := s.laporanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]models.LaporanResponse, 0, len(laporan))
	for i := range laporan {
		responses = append(responses, laporan[i].ToResponse())
	}
	return responses, nil
}

// GetByID returns a single laporan with the owner's contact fields.
func (s *LaporanService) GetByID(ctx context.Context, id uint) (*models.LaporanResponse, error) {
	laporan, err := s.laporanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := laporan.ToResponse()
	return &resp, nil
}

// Update applies the non-blank fields of the input to the caller's laporan,
// re-validating enum and date fields.
func (s *LaporanService) Update(ctx context.Context, caller *models.User, id uint, in UpdateLaporanInput) (*models.LaporanResponse, error) {
	laporan, err := s.laporanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if laporan.UserID != caller.ID {
		return nil, models.NewForbiddenError("Anda tidak memiliki akses untuk mengupdate laporan ini")
	}

	if strings.TrimSpace(in.Judul) != "" {
		laporan.Judul = strings.TrimSpace(in.Judul)
	}
	if strings.TrimSpace(in.Deskripsi) != "" {
		laporan.Deskripsi = strings.TrimSpace(in.Deskripsi)
	}
	if in.Kategori != "" {
		if laporan.Kategori, err = models.ParseKategoriBarang(in.Kategori); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(in.Lokasi) != "" {
		laporan.Lokasi = strings.TrimSpace(in.Lokasi)
	}
	if in.TanggalKejadian != "" {
		if laporan.TanggalKejadian, err = models.ParseTanggal(in.TanggalKejadian); err != nil {
			return nil, err
		}
	}
	if in.Status != "" {
		// SELESAI can be reverted to AKTIF; the status field is freely
		// settable by the owner.
		if laporan.Status, err = models.ParseStatusLaporan(in.Status); err != nil {
			return nil, err
		}
	}
	if in.FotoURL != "" {
		laporan.FotoURL = in.FotoURL
	}

	if err := s.laporanRepo.Update(ctx, laporan); err != nil {
		return nil, err
	}

	resp := laporan.ToResponse()
	return &resp, nil
}

// Delete permanently removes the caller's laporan.
func (s *LaporanService) Delete(ctx context.Context, caller *models.User, id uint) error {
	laporan, err := s.laporanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if laporan.UserID != caller.ID {
		return models.NewForbiddenError("Anda tidak memiliki akses untuk menghapus laporan ini")
	}

	if err := s.laporanRepo.Delete(ctx, laporan.ID); err != nil {
		return err
	}

	middleware.Logger.InfoContext(ctx, "laporan deleted", "id", id)
	return nil
}
