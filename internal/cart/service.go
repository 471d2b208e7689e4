package cart

import (
	"context"
	"errors"

	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo    *Repository
	Catalog *catalog.Catalog
	Logger  *logger.Logger
}

// Summary is the derived cart view: lines plus totals.
type Summary struct {
	Lines []Line
	Total decimal.Decimal
	Count int
}

// Service exposes the cart operations. Every mutation persists the full line
// set before returning.
type Service interface {
	Get(ctx context.Context, sessionID string) (Summary, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (Summary, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (Summary, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Summary, error)
	Clear(ctx context.Context, sessionID string) error
	Contains(ctx context.Context, sessionID, productID string) (bool, error)
}

type service struct {
	repo    *Repository
	catalog *catalog.Catalog
	logg    *logger.Logger
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
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

// Get rehydrates the session's cart and derives its totals.
func (s *service) Get(ctx context.Context, sessionID string) (Summary, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(cart)
}

// AddItem increments an existing line or creates one, then persists.
func (s *service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (Summary, error) {
	if quantity < 1 {
		return Summary{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return Summary{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	cart.Add(product, quantity)
	if err := s.persist(ctx, sessionID, cart); err != nil {
		return Summary{}, err
	}
	return s.summarize(cart)
}

// RemoveItem deletes the line if present; removing an absent line is not an
// error.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (Summary, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	cart.Remove(productID)
	if err := s.persist(ctx, sessionID, cart); err != nil {
		return Summary{}, err
	}
	return s.summarize(cart)
}

// UpdateQuantity sets the exact quantity; zero or negative removes the line.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Summary, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	cart.SetQuantity(productID, quantity)
	if err := s.persist(ctx, sessionID, cart); err != nil {
		return Summary{}, err
	}
	return s.summarize(cart)
}

// Clear drops every line for the session.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	cart := &Cart{}
	return s.persist(ctx, sessionID, cart)
}

// Contains reports cart membership for a product identity.
func (s *service) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return cart.Contains(productID), nil
}

// load rehydrates the cart from storage, resolving each stored identity
// against the live catalog. Identities no longer in the catalog are silently
// dropped; corrupt stored data is logged and discarded entirely.
func (s *service) load(ctx context.Context, sessionID string) (*Cart, error) {
	stored, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		var corrupt *CorruptStateError
		if errors.As(err, &corrupt) {
			if s.logg != nil {
				s.logg.Error(ctx, "cart.state.discarded", err)
			}
			return &Cart{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	cart := &Cart{}
	for _, line := range stored {
		if line.Quantity < 1 {
			continue
		}
		product, ok := s.catalog.FindByID(line.ProductID)
		if !ok {
			continue
		}
		cart.Add(product, line.Quantity)
	}
	return cart, nil
}

func (s *service) persist(ctx context.Context, sessionID string, cart *Cart) error {
	lines := cart.Lines()
	stored := make([]StoredLine, 0, len(lines))
	for _, line := range lines {
		stored = append(stored, StoredLine{ProductID: line.Product.ID, Quantity: line.Quantity})
	}
	if err := s.repo.Save(ctx, sessionID, stored); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func (s *service) summarize(cart *Cart) (Summary, error) {
	total, err := cart.Total()
	if err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "compute cart total")
	}
	return Summary{
		Lines: cart.Lines(),
		Total: total,
		Count: cart.Count(),
	}, nil
}
