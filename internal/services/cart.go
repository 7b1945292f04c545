package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hogarfix/storefront-api/internal/cart"
	"github.com/hogarfix/storefront-api/internal/errors"
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/hogarfix/storefront-api/internal/pricing"
)

type CartService interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, id uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartResponse, error)
	SetZone(ctx context.Context, id uuid.UUID, req *models.SetZoneRequest) (*models.CartResponse, error)
	ClearCart(ctx context.Context, id uuid.UUID) error
}

type cartService struct {
	store cart.Store
}

func NewCartService(store cart.Store) CartService {
	return &cartService{store: store}
}

func (s *cartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	newCart := &models.Cart{
		ID:        uuid.New(),
		Items:     make(map[string]models.CartItem),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.store.Create(ctx, newCart); err != nil {
		return nil, errors.InternalError("Failed to create cart").WithError(err)
	}

	return newCart, nil
}

func (s *cartService) GetCart(ctx context.Context, id uuid.UUID) (*models.CartResponse, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	return s.respond(session), nil
}

func (s *cartService) AddItem(ctx context.Context, id uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	item := models.CartItem{
		ID:             req.ID,
		Name:           req.Name,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		CategoryID:     req.CategoryID,
		ImageURL:       req.ImageURL,
		ProductID:      req.ProductID,
		DetailID:       req.DetailID,
		Commission:     req.Commission,
		CommissionType: req.CommissionType,
	}

	// Adding an item that is already in the cart accumulates its quantity.
	if existing, ok := session.Items[req.ID]; ok {
		item.Quantity += existing.Quantity
	}

	session.Items[req.ID] = item
	session.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, session); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return s.respond(session), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, id uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartResponse, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	item, exists := session.Items[req.ItemID]
	if !exists {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	if req.Quantity == 0 {
		delete(session.Items, req.ItemID)
	} else {
		item.Quantity = req.Quantity
		session.Items[req.ItemID] = item
	}

	session.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, session); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return s.respond(session), nil
}

func (s *cartService) SetZone(ctx context.Context, id uuid.UUID, req *models.SetZoneRequest) (*models.CartResponse, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	session.ZoneID = req.ZoneID
	session.ZoneSurcharge = req.Surcharge
	session.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, session); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return s.respond(session), nil
}

func (s *cartService) ClearCart(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return errors.InternalError("Failed to clear cart").WithError(err)
	}

	return nil
}

// respond recomputes the quote from scratch; it is never cached.
func (s *cartService) respond(session *models.Cart) *models.CartResponse {
	return &models.CartResponse{
		Cart:  session,
		Quote: pricing.Quote(session.ItemList(), session.ZoneSurcharge),
	}
}
