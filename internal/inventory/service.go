package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
	"github.com/suryalovesjs/dema-inventory-service/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type integrityChecker interface {
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
	CategoriesExist(ctx context.Context, categoryID, subCategoryID uuid.UUID) (bool, error)
}

// Service exposes inventory query and mutation operations.
type Service interface {
	FindAll(ctx context.Context, input ListInput) ([]InventoryDTO, error)
	CreateOne(ctx context.Context, input CreateInventoryInput) (*InventoryDTO, error)
	UpdateOne(ctx context.Context, input UpdateInventoryInput) (*InventoryDTO, error)
	UpdateMany(ctx context.Context, inputs []UpdateInventoryInput) ([]InventoryDTO, error)
	DeleteOne(ctx context.Context, productID uuid.UUID) (bool, error)
}

type service struct {
	repo    *Repository
	checker integrityChecker
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository, checker integrityChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if checker == nil {
		return nil, fmt.Errorf("integrity checker required")
	}
	return &service{repo: repo, checker: checker}, nil
}

// FindAll returns the matching page of items enriched with their category,
// subcategory, and orders. The result is the logical AND of all supplied
// predicates; result size never exceeds the page size.
func (s *service) FindAll(ctx context.Context, input ListInput) ([]InventoryDTO, error) {
	offset, limit := pagination.OffsetLimit(input.Pagination)

	rows, err := s.repo.List(ctx, ListQuery{
		Search: input.Search,
		Filter: input.Filter,
		Sort:   input.Sort,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list inventory")
	}
	return NewInventoryDTOs(rows), nil
}

// CreateOne persists a new item under a generated product id. The
// category/subcategory pair must form a valid parent-child relationship.
func (s *service) CreateOne(ctx context.Context, input CreateInventoryInput) (*InventoryDTO, error) {
	if err := s.ensureCategoryPair(ctx, input.CategoryID, input.SubCategoryID); err != nil {
		return nil, err
	}

	item := &models.Inventory{
		ProductID:     uuid.New(),
		Name:          input.Name,
		Quantity:      input.Quantity,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert inventory")
	}

	detail, err := s.repo.GetDetail(ctx, created.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load inventory detail")
	}
	return NewInventoryDTO(detail), nil
}

// UpdateOne applies a partial update: only fields present in the input
// change, omitted fields retain prior values. When category or subcategory
// is supplied, the effective pair after the update must still be valid.
func (s *service) UpdateOne(ctx context.Context, input UpdateInventoryInput) (*InventoryDTO, error) {
	current, err := s.repo.FindByProductID(ctx, input.ProductID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound,
				fmt.Sprintf("inventory with id %s not found", input.ProductID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load inventory")
	}

	if input.CategoryID != nil || input.SubCategoryID != nil {
		categoryID := current.CategoryID
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
		}
		subCategoryID := current.SubCategoryID
		if input.SubCategoryID != nil {
			subCategoryID = *input.SubCategoryID
		}
		if err := s.ensureCategoryPair(ctx, categoryID, subCategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.ApplyUpdate(ctx, input.ProductID, buildUpdates(input)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update inventory")
	}

	detail, err := s.repo.GetDetail(ctx, input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load inventory detail")
	}
	return NewInventoryDTO(detail), nil
}

// UpdateMany applies UpdateOne's semantics to each input concurrently.
// Best effort, not transactional: the first failing item's error is
// returned, and sibling updates that already committed stay committed.
func (s *service) UpdateMany(ctx context.Context, inputs []UpdateInventoryInput) ([]InventoryDTO, error) {
	results := make([]InventoryDTO, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			dto, err := s.UpdateOne(gctx, input)
			if err != nil {
				return err
			}
			results[i] = *dto
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteOne removes the item with the given product id.
func (s *service) DeleteOne(ctx context.Context, productID uuid.UUID) (bool, error) {
	exists, err := s.checker.ProductExists(ctx, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product")
	}
	if !exists {
		return false, pkgerrors.New(pkgerrors.CodeNotFound,
			fmt.Sprintf("inventory with id %s not found", productID))
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete inventory")
	}
	return true, nil
}

func (s *service) ensureCategoryPair(ctx context.Context, categoryID, subCategoryID uuid.UUID) error {
	ok, err := s.checker.CategoriesExist(ctx, categoryID, subCategoryID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check categories")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeInvalidReference, "category/subcategory invalid or mismatched").
			WithDetails(map[string]any{
				"category_id":     categoryID.String(),
				"sub_category_id": subCategoryID.String(),
			})
	}
	return nil
}

// buildUpdates collects only the fields the caller supplied.
func buildUpdates(input UpdateInventoryInput) map[string]any {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.SubCategoryID != nil {
		updates["sub_category_id"] = *input.SubCategoryID
	}
	return updates
}
