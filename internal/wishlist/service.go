package wishlist

import (
	"context"
	"errors"

	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Repo    *Repository
	Catalog *catalog.Catalog
	Logger  *logger.Logger
}

// Service exposes wishlist operations. Every mutation persists the full
// identity list before returning.
type Service interface {
	Items(ctx context.Context, sessionID string) ([]catalog.Product, error)
	AddItem(ctx context.Context, sessionID, productID string) error
	RemoveItem(ctx context.Context, sessionID, productID string) error
	Toggle(ctx context.Context, sessionID, productID string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
	Contains(ctx context.Context, sessionID, productID string) (bool, error)
}

type service struct {
	repo    *Repository
	catalog *catalog.Catalog
	logg    *logger.Logger
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	return &service{
		repo:    params.Repo,
		catalog: params.Catalog,
		logg:    params.Logger,
	}, nil
}

// Items returns the session's liked products in insertion order.
func (s *service) Items(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	wl, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return wl.Items(), nil
}

// AddItem likes the product; liking it twice is a no-op.
func (s *service) AddItem(ctx context.Context, sessionID, productID string) error {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	wl, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	wl.Add(product)
	return s.persist(ctx, sessionID, wl)
}

// RemoveItem drops the entry regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	wl, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	wl.Remove(productID)
	return s.persist(ctx, sessionID, wl)
}

// Toggle flips membership and reports whether the product is now liked.
func (s *service) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	wl, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	wl.Toggle(product)
	if err := s.persist(ctx, sessionID, wl); err != nil {
		return false, err
	}
	return wl.Contains(productID), nil
}

// Clear drops every entry for the session.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.persist(ctx, sessionID, &Wishlist{})
}

// Contains reports wishlist membership for a product identity.
func (s *service) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	wl, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return wl.Contains(productID), nil
}

// load rehydrates the wishlist, resolving stored identities against the live
// catalog. Unknown identities are silently dropped; corrupt stored data is
// logged and discarded entirely.
func (s *service) load(ctx context.Context, sessionID string) (*Wishlist, error) {
	ids, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		var corrupt *CorruptStateError
		if errors.As(err, &corrupt) {
			if s.logg != nil {
				s.logg.Error(ctx, "wishlist.state.discarded", err)
			}
			return &Wishlist{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}

	wl := &Wishlist{}
	for _, id := range ids {
		product, ok := s.catalog.FindByID(id)
		if !ok {
			continue
		}
		wl.Add(product)
	}
	return wl, nil
}

func (s *service) persist(ctx context.Context, sessionID string, wl *Wishlist) error {
	items := wl.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	if err := s.repo.Save(ctx, sessionID, ids); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist wishlist")
	}
	return nil
}
