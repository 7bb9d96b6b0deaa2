package models

import (
	"strings"
	"time"
)

// TipeLaporan is the report kind.
type TipeLaporan string

// KategoriBarang is the fixed item-category enumeration.
type KategoriBarang string

// StatusLaporan is the report lifecycle flag.
type StatusLaporan string

const (
	TipeHilang  TipeLaporan = "HILANG"
	TipeTemukan TipeLaporan = "TEMUKAN"
)

const (
	KategoriElektronik       KategoriBarang = "ELEKTRONIK"
	KategoriAlatTulis        KategoriBarang = "ALAT_TULIS"
	KategoriAksesorisPribadi KategoriBarang = "AKSESORIS_PRIBADI"
	KategoriAlatMakan        KategoriBarang = "ALAT_MAKAN"
	KategoriDokumen          KategoriBarang = "DOKUMEN"
	KategoriAtributKampus    KategoriBarang = "ATRIBUT_KAMPUS"
	KategoriLainnya          KategoriBarang = "LAINNYA"
)

const (
	StatusAktif   StatusLaporan = "AKTIF"
	StatusSelesai StatusLaporan = "SELESAI"
)

// TanggalFormat is the ISO calendar-date layout used for tanggal_kejadian.
const TanggalFormat = "2006-01-02"

// ParseTipeLaporan validates a report kind from request input. Matching is
// case-insensitive; anything outside the enumeration is a validation error.
func ParseTipeLaporan(s string) (TipeLaporan, error) {
	switch TipeLaporan(strings.ToUpper(strings.TrimSpace(s))) {
	case TipeHilang:
		return TipeHilang, nil
	case TipeTemukan:
		return TipeTemukan, nil
	}
	return "", NewValidationError("Tipe laporan tidak valid. Gunakan HILANG atau TEMUKAN")
}

// ParseKategoriBarang validates an item category from request input.
func ParseKategoriBarang(s string) (KategoriBarang, error) {
	switch KategoriBarang(strings.ToUpper(strings.TrimSpace(s))) {
	case KategoriElektronik:
		return KategoriElektronik, nil
	case KategoriAlatTulis:
		return KategoriAlatTulis, nil
	case KategoriAksesorisPribadi:
		return KategoriAksesorisPribadi, nil
	case KategoriAlatMakan:
		return KategoriAlatMakan, nil
	case KategoriDokumen:
		return KategoriDokumen, nil
	case KategoriAtributKampus:
		return KategoriAtributKampus, nil
	case KategoriLainnya:
		return KategoriLainnya, nil
	}
	return "", NewValidationError("Kategori tidak valid. Gunakan ELEKTRONIK, ALAT_TULIS, AKSESORIS_PRIBADI, ALAT_MAKAN, DOKUMEN, ATRIBUT_KAMPUS, atau LAINNYA")
}

// ParseStatusLaporan validates a report status from request input.
func ParseStatusLaporan(s string) (StatusLaporan, error) {
	switch StatusLaporan(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusAktif:
		return StatusAktif, nil
	case StatusSelesai:
		return StatusSelesai, nil
	}
	return "", NewValidationError("Status tidak valid. Gunakan AKTIF atau SELESAI")
}

// ParseTanggal validates an ISO calendar date (YYYY-MM-DD).
func ParseTanggal(s string) (time.Time, error) {
	t, err := time.Parse(TanggalFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, NewValidationError("Format tanggal tidak valid. Gunakan format YYYY-MM-DD")
	}
	return t, nil
}

// Laporan is a lost-or-found item listing owned by exactly one user.
type Laporan struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"-"`
	User            User           `gorm:"foreignKey:UserID" json:"-"`
	Tipe            TipeLaporan    `gorm:"type:varchar(10);not null" json:"tipe"`
	Judul           string         `gorm:"size:200;not null" json:"judul"`
	Deskripsi       string         `gorm:"type:text;not null" json:"deskripsi"`
	Kategori        KategoriBarang `gorm:"type:varchar(20);not null" json:"kategori"`
	Lokasi          string         `gorm:"size:200;not null" json:"lokasi"`
	TanggalKejadian time.Time      `gorm:"type:date;not null" json:"-"`
	Status          StatusLaporan  `gorm:"type:varchar(10);not null;default:AKTIF" json:"status"`
	FotoURL         string         `gorm:"size:500" json:"foto_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TableName overrides the pluralized default.
func (Laporan) TableName() string {
	return "laporan"
}

// LaporanResponse is the outward projection of a report with the owner's
// contact fields joined at read time.
type LaporanResponse struct {
	ID              uint           `json:"id"`
	Tipe            TipeLaporan    `json:"tipe"`
	Judul           string         `json:"judul"`
	Deskripsi       string         `json:"deskripsi"`
	Kategori        KategoriBarang `json:"kategori"`
	Lokasi          string         `json:"lokasi"`
	TanggalKejadian string         `json:"tanggal_kejadian"`
	Status          StatusLaporan  `json:"status"`
	FotoURL         string         `json:"foto_url,omitempty"`
	PelaporNama     string         `json:"pelapor_nama"`
	PelaporJabatan  string         `json:"pelapor_jabatan"`
	PelaporNoHp     string         `json:"pelapor_no_hp"`
	PelaporEmail    string         `json:"pelapor_email"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ToResponse converts a Laporan to its outward projection. The User
// association must be preloaded.
func (l *Laporan) ToResponse() LaporanResponse {
	return LaporanResponse{
		ID:              l.ID,
		Tipe:            l.Tipe,
		Judul:           l.Judul,
		Deskripsi:       l.Deskripsi,
		Kategori:        l.Kategori,
		Lokasi:          l.Lokasi,
		TanggalKejadian: l.TanggalKejadian.Format(TanggalFormat),
		Status:          l.Status,
		FotoURL:         l.FotoURL,
		PelaporNama:     l.User.NamaLengkap,
		PelaporJabatan:  l.User.Jabatan,
		PelaporNoHp:     l.User.NoHp,
		PelaporEmail:    l.User.Email,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
