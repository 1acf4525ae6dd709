package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
)

const (
	msgDuplicateTheme = "이미 존재하는 테마 이름입니다."
	msgThemeInUse     = "예약이 존재하는 테마는 삭제할 수 없습니다."
)

type ThemeService struct {
	themes ThemeStore
}

func NewThemeService(themes ThemeStore) *ThemeService {
	return &ThemeService{themes: themes}
}

func (s *ThemeService) FindAll(ctx context.Context) ([]model.Theme, error) {
	out, err := s.themes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return out, nil
}

// Create stores a new theme.  Names are trimmed and must be unique.
func (s *ThemeService) Create(ctx context.Context, in model.Theme) (*model.Theme, error) {
	in.Name = strings.TrimSpace(in.Name)
	exists, err := s.themes.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("check theme: %w", err)
	}
	if exists {
		return nil, apperror.BadRequest(msgDuplicateTheme)
	}
	th := in
	if err := s.themes.Create(ctx, &th); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.BadRequest(msgDuplicateTheme)
		}
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return &th, nil
}

func (s *ThemeService) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.themes.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return apperror.BadRequest(msgThemeInUse)
		}
		return fmt.Errorf("delete theme %d: %w", id, err)
	}
	return nil
}
