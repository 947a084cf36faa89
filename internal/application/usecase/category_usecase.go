package usecase

import (
	"strconv"
	"strings"

	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/internal/domain/validation"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// CategoryUseCase listado y alta de categorías.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	audit      *audit.Recorder
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, recorder *audit.Recorder, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, audit: recorder, log: log}
}

// List devuelve las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar categorías")
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			Icon:        c.Icon,
		})
	}
	return out, nil
}

// Create valida el nombre y persiste la categoría. Nombre duplicado retorna
// domain.ErrDuplicate.
func (uc *CategoryUseCase) Create(actor dto.Actor, in dto.CreateCategoryRequest, client dto.ClientInfo) (*dto.CategoryResponse, error) {
	if err := validation.CategoryName(in.Name); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Color:       in.Color,
		Icon:        in.Icon,
	}
	if err := uc.categories.Create(category); err != nil {
		if err != domain.ErrDuplicate {
			uc.log.Error().Err(err).Msg("crear categoría")
		}
		return nil, err
	}

	uc.audit.Activity(actor, entity.ActionCategoryCreate, "CATEGORY", strconv.FormatInt(category.ID, 10),
		"Created category "+category.Name, client)

	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		Icon:        category.Icon,
	}, nil
}
