package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/itemstore/pkg/auth"
	pkgcache "github.com/ghuser/itemstore/pkg/cache"
	"github.com/ghuser/itemstore/services/item/application/dto"
	itemdomain "github.com/ghuser/itemstore/services/item/domain"
	"github.com/ghuser/itemstore/services/item/domain/repositories"
)

// ItemService orchestrates creation and retrieval of Items across the DTO
// boundary. Event publishing is handled by the repository layer (outbox
// pattern). Single-item reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and
// cache. A nil cache disables read-through caching.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create converts the DTO to an entity attributed to principal, persists it,
// and returns the stored row's projection so the generated ID is reflected.
func (s *ItemService) Create(ctx context.Context, d dto.ItemDTO, principal *auth.Principal) (dto.ItemDTO, error) {
	item, err := dto.ToItem(d, principal)
	if err != nil {
		return dto.ItemDTO{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return dto.ItemDTO{}, fmt.Errorf("save item: %w", err)
	}

	return dto.FromItem(item), nil
}

// GetAll returns every item as DTOs in the repository's stable creation order.
// An empty table yields an empty slice, never nil.
func (s *ItemService) GetAll(ctx context.Context) ([]dto.ItemDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	out := make([]dto.ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromItem(item))
	}
	return out, nil
}

// GetByID retrieves one item using a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (dto.ItemDTO, error) {
	if s.cache != nil {
		// Misses and cache errors both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return dto.ItemDTO{
				ID:          cached.ID.String(),
				Name:        cached.Name,
				Description: cached.Description,
			}, nil
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ItemDTO{}, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:          item.ID,
				Name:        item.Name.String(),
				Description: item.Description,
			})
		}()
	}

	return dto.FromItem(item), nil
}
