// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"titiktemu/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumLaporan  int
	ShouldClean bool
}

var (
	jabatanOptions = []string{"Mahasiswa", "Dosen", "Staff", "Satpam"}

	lokasiOptions = []string{
		"Kantin Utama", "Perpustakaan", "Ruang Kelas 2A", "Ruang Kelas 3B",
		"Aula", "Lapangan Basket", "Parkiran Motor", "Parkiran Mobil",
		"Musholla", "Laboratorium Komputer", "Gedung Rektorat", "Taman Kampus",
	}

	barangByKategori = map[models.KategoriBarang][]string{
		models.KategoriElektronik:       {"Laptop Asus", "Charger HP", "Earphone", "Powerbank", "Kalkulator", "Flashdisk 32GB"},
		models.KategoriAlatTulis:        {"Pulpen Pilot", "Buku catatan", "Penggaris", "Kotak pensil"},
		models.KategoriAksesorisPribadi: {"Jam tangan", "Kacamata", "Dompet coklat", "Gelang", "Topi hitam"},
		models.KategoriAlatMakan:        {"Botol minum", "Kotak makan", "Tumbler abu-abu"},
		models.KategoriDokumen:          {"KTM", "KTP", "Map berisi berkas", "Sertifikat"},
		models.KategoriAtributKampus:    {"Almamater", "Name tag", "Lanyard kampus"},
		models.KategoriLainnya:          {"Payung hitam", "Kunci motor", "Helm", "Kardigan"},
	}

	kategoriList = []models.KategoriBarang{
		models.KategoriElektronik, models.KategoriAlatTulis, models.KategoriAksesorisPribadi,
		models.KategoriAlatMakan, models.KategoriDokumen, models.KategoriAtributKampus,
		models.KategoriLainnya,
	}
)

// Seeder populates the database with fake users and laporan.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Laporan first because of the owner
// foreign key.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM laporan").Error; err != nil {
		return err
	}
	return s.db.Exec("DELETE FROM users").Error
}

// SeedUsers creates n users. Every seeded user has the password "password123".
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s%s%d", first, last, s.rnd.Intn(1000)))

		user := models.User{
			Username:    username,
			Email:       fmt.Sprintf("%s@kampus.ac.id", username),
			Password:    string(hashed),
			NamaLengkap: first + " " + last,
			Jabatan:     jabatanOptions[s.rnd.Intn(len(jabatanOptions))],
			NimNip:      fmt.Sprintf("2221%05d", s.rnd.Intn(100000)),
			NoHp:        fmt.Sprintf("08%d", 100000000+s.rnd.Intn(900000000)),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedLaporan creates n laporan spread across the given users with a
// realistic created_at spread over the past 90 days.
func (s *Seeder) SeedLaporan(users []models.User, n int) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to own laporan")
	}

	for i := 0; i < n; i++ {
		owner := users[s.rnd.Intn(len(users))]
		kategori := kategoriList[s.rnd.Intn(len(kategoriList))]
		barang := barangByKategori[kategori][s.rnd.Intn(len(barangByKategori[kategori]))]
		lokasi := lokasiOptions[s.rnd.Intn(len(lokasiOptions))]

		tipe := models.TipeHilang
		verb := "hilang di"
		if s.rnd.Intn(2) == 0 {
			tipe = models.TipeTemukan
			verb = "ditemukan di"
		}

		status := models.StatusAktif
		if s.rnd.Intn(4) == 0 {
			status = models.StatusSelesai
		}

		createdAt := time.Now().Add(-time.Duration(s.rnd.Intn(90*24)) * time.Hour)

		laporan := models.Laporan{
			UserID:          owner.ID,
			Tipe:            tipe,
			Judul:           fmt.Sprintf("%s %s %s", barang, verb, lokasi),
			Deskripsi:       gofakeit.Sentence(12),
			Kategori:        kategori,
			Lokasi:          lokasi,
			TanggalKejadian: createdAt.Truncate(24 * time.Hour),
			Status:          status,
			CreatedAt:       createdAt,
		}
		if err := s.db.Omit("User").Create(&laporan).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d laporan", n)
	return nil
}

// Run executes the full seeding pass.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("user seeding failed: %w", err)
	}
	if err := s.SeedLaporan(users, opts.NumLaporan); err != nil {
		return fmt.Errorf("laporan seeding failed: %w", err)
	}
	return nil
}
