package service

import (
	"context"
	"errors"
	"testing"

	"titiktemu/internal/models"
	"titiktemu/internal/repository"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, user *models.User) error {
	return s.deleteFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, *models.User) error { return nil },
	}
}

type laporanRepoStub struct {
	createFn      func(context.Context, *models.Laporan) error
	getByIDFn     func(context.Context, uint) (*models.Laporan, error)
	listFn        func(context.Context, repository.ListFilter) ([]models.Laporan, error)
	updateFn      func(context.Context, *models.Laporan) error
	deleteFn      func(context.Context, uint) error
	countByUserFn func(context.Context, uint) (int64, error)
}

func (s *laporanRepoStub) Create(ctx context.Context, l *models.Laporan) error {
	return s.createFn(ctx, l)
}
func (s *laporanRepoStub) GetByID(ctx context.Context, id uint) (*models.Laporan, error) {
	return s.getByIDFn(ctx, id)
}
func (s *laporanRepoStub) List(ctx context.Context, f repository.ListFilter) ([]models.Laporan, error) {
	return s.listFn(ctx, f)
}
func (s *laporanRepoStub) Update(ctx context.Context, l *models.Laporan) error {
	return s.updateFn(ctx, l)
}
func (s *laporanRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *laporanRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}

func noopLaporanRepo() *laporanRepoStub {
	return &laporanRepoStub{
		createFn:      func(context.Context, *models.Laporan) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Laporan, error) { return &models.Laporan{}, nil },
		listFn:        func(context.Context, repository.ListFilter) ([]models.Laporan, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Laporan) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		countByUserFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError with code %s, got %#v", code, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}
