package server

import (
	"os"
	"path/filepath"
	"strings"

	"titiktemu/internal/models"
	"titiktemu/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// savePhoto stores an uploaded photo under the configured upload directory
// with a random name and returns its public URL. Returns "" when the request
// carries no photo.
func (s *Server) savePhoto(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("foto")
	if err != nil {
		// No file field in the request.
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", models.NewValidationError("Format foto tidak didukung. Gunakan JPG, PNG, atau WEBP")
	}

	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(s.config.UploadDir, name)); err != nil {
		return "", models.NewInternalError(err)
	}

	return "/uploads/" + name, nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// CreateLaporan handles POST /api/laporan
// @Summary Create a laporan
// @Description Create a lost (HILANG) or found (TEMUKAN) item report. Accepts JSON or multipart with an optional "foto" file.
// @Tags laporan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateLaporanInput true "Laporan fields"
// @Success 201 {object} models.LaporanResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /laporan [post]
func (s *Server) CreateLaporan(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}

	var req service.CreateLaporanInput
	if isMultipart(c) {
		req = service.CreateLaporanInput{
			Tipe:            c.FormValue("tipe"),
			Judul:           c.FormValue("judul"),
			Deskripsi:       c.FormValue("deskripsi"),
			Kategori:        c.FormValue("kategori"),
			Lokasi:          c.FormValue("lokasi"),
			TanggalKejadian: c.FormValue("tanggal_kejadian"),
		}
		fotoURL, err := s.savePhoto(c)
		if err != nil {
			return mapServiceError(c, err)
		}
		req.FotoURL = fotoURL
	} else if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Request body tidak valid"))
	}

	resp, err := s.laporanService.Create(c.UserContext(), caller, req)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAllLaporan handles GET /api/laporan
// @Summary List laporan
// @Description List laporan with optional AND-combined filters, newest first
// @Tags laporan
// @Produce json
// @Security BearerAuth
// @Param tipe query string false "HILANG or TEMUKAN"
// @Param kategori query string false "Item category"
// @Param status query string false "AKTIF or SELESAI"
// @Param lokasi query string false "Location substring, case-insensitive"
// @Param search query string false "Keyword in judul or deskripsi, case-insensitive"
// @Success 200 {array} models.LaporanResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /laporan [get]
func (s *Server) GetAllLaporan(c *fiber.Ctx) error {
	resp, err := s.laporanService.List(c.UserContext(), service.ListLaporanInput{
		Tipe:     c.Query("tipe"),
		Kategori: c.Query("kategori"),
		Status:   c.Query("status"),
		Lokasi:   c.Query("lokasi"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(resp)
}

// GetLaporanByID handles GET /api/laporan/:id
// @Summary Laporan detail
// @Description Full laporan detail including the owner's contact fields
// @Tags laporan
// @Produce json
// @Security BearerAuth
// @Param id path int true "Laporan ID"
// @Success 200 {object} models.LaporanResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /laporan/{id} [get]
func (s *Server) GetLaporanByID(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	resp, err := s.laporanService.GetByID(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(resp)
}

// UpdateLaporan handles PUT /api/laporan/:id
// @Summary Update a laporan (owner only)
// @Description Partial update: only non-empty fields change. Accepts JSON or multipart with an optional new "foto".
// @Tags laporan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Laporan ID"
// @Param request body service.UpdateLaporanInput true "Fields to change"
// @Success 200 {object} models.LaporanResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /laporan/{id} [put]
func (s *Server) UpdateLaporan(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req service.UpdateLaporanInput
	if isMultipart(c) {
		req = service.UpdateLaporanInput{
			Judul:           c.FormValue("judul"),
			Deskripsi:       c.FormValue("deskripsi"),
			Kategori:        c.FormValue("kategori"),
			Lokasi:          c.FormValue("lokasi"),
			TanggalKejadian: c.FormValue("tanggal_kejadian"),
			Status:          c.FormValue("status"),
		}
		fotoURL, err := s.savePhoto(c)
		if err != nil {
			return mapServiceError(c, err)
		}
		req.FotoURL = fotoURL
	} else if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Request body tidak valid"))
	}

	resp, err := s.laporanService.Update(c.UserContext(), caller, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(resp)
}

// DeleteLaporan handles DELETE /api/laporan/:id
// @Summary Delete a laporan (owner only)
// @Tags laporan
// @Produce json
// @Security BearerAuth
// @Param id path int true "Laporan ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /laporan/{id} [delete]
func (s *Server) DeleteLaporan(c *fiber.Ctx) error {
	caller, err := s.caller(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.laporanService.Delete(c.UserContext(), caller, id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan berhasil dihapus",
	})
}
