package cart

import (
	"context"
	"fmt"

	"github.com/netyark/storefront-backend/internal/catalog"
	"github.com/netyark/storefront-backend/internal/inventory"
	"github.com/netyark/storefront-backend/pkg/enums"
	pkgerrors "github.com/netyark/storefront-backend/pkg/errors"
)

// ProductLoader resolves catalog records for cart mutations.
type ProductLoader interface {
	GetProductByID(ctx context.Context, id string) *catalog.Product
}

// Store owns cart mutations and their persisted mirror. Every mutating
// operation re-persists the whole cart before returning.
type Store struct {
	repo              Repository
	products          ProductLoader
	lowStockThreshold int
}

// NewStore builds a cart store backed by the provided stack.
func NewStore(repo Repository, products ProductLoader, lowStockThreshold int) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = inventory.DefaultLowStockThreshold
	}
	return &Store{
		repo:              repo,
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}, nil
}

// Get loads the cart for the given session.
func (s *Store) Get(ctx context.Context, cartID string) (Cart, error) {
	lines, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return Cart{Lines: lines}, nil
}

// AddItem adds the product to the cart, merging into an existing line.
// The inventory check always covers the prospective total quantity, not
// just the delta being added.
func (s *Store) AddItem(ctx context.Context, cartID, productID string, quantity int) (*LineItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product := s.products.GetProductByID(ctx, productID)
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, inventory.ReasonNotFound)
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	prospective := quantity
	idx := cart.Find(productID)
	if idx >= 0 {
		prospective = cart.Lines[idx].Quantity + quantity
	}

	if check := inventory.Check(product, prospective, s.lowStockThreshold); !check.Available {
		return nil, checkError(check)
	}

	if idx >= 0 {
		cart.Lines[idx].Quantity = prospective
	} else {
		cart.Lines = append(cart.Lines, newLine(product, productID, quantity))
		idx = len(cart.Lines) - 1
	}

	if err := s.persist(ctx, cartID, cart); err != nil {
		return nil, err
	}
	line := cart.Lines[idx]
	return &line, nil
}

// AddWholesaleItem adds a wholesale product, defaulting the quantity to
// the product MOQ when none is given. The path is additive only.
func (s *Store) AddWholesaleItem(ctx context.Context, cartID, productID string, quantity int) (*LineItem, error) {
	product := s.products.GetProductByID(ctx, productID)
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, inventory.ReasonNotFound)
	}
	if !product.IsWholesale {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not a wholesale item")
	}

	moq := product.EffectiveMOQ()
	if quantity <= 0 {
		quantity = moq
	}
	if quantity < moq {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("minimum order quantity is %d", moq))
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	prospective := quantity
	idx := cart.Find(productID)
	if idx >= 0 {
		prospective = cart.Lines[idx].Quantity + quantity
	}

	if check := inventory.Check(product, prospective, s.lowStockThreshold); !check.Available {
		return nil, checkError(check)
	}

	if idx >= 0 {
		cart.Lines[idx].Quantity = prospective
	} else {
		cart.Lines = append(cart.Lines, newLine(product, productID, quantity))
		idx = len(cart.Lines) - 1
	}

	if err := s.persist(ctx, cartID, cart); err != nil {
		return nil, err
	}
	line := cart.Lines[idx]
	return &line, nil
}

// SetQuantity overwrites a line quantity. Zero or below removes the
// line; wholesale lines may not drop below their MOQ; increases are
// re-validated against inventory, decreases are not.
func (s *Store) SetQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return err
	}

	idx := cart.Find(productID)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	if quantity <= 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
		return s.persist(ctx, cartID, cart)
	}

	line := cart.Lines[idx]
	if quantity < line.MinQuantity() {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("minimum order quantity is %d", line.MinQuantity()))
	}

	if quantity > line.Quantity {
		product := s.products.GetProductByID(ctx, productID)
		if check := inventory.Check(product, quantity, s.lowStockThreshold); !check.Available {
			return checkError(check)
		}
	}

	cart.Lines[idx].Quantity = quantity
	return s.persist(ctx, cartID, cart)
}

// RemoveItem deletes the line unconditionally.
func (s *Store) RemoveItem(ctx context.Context, cartID, productID string) error {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return err
	}
	idx := cart.Find(productID)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	return s.persist(ctx, cartID, cart)
}

// Clear empties the cart, used after a successful order and on explicit
// user action.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.repo.Delete(ctx, cartID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *Store) persist(ctx context.Context, cartID string, cart Cart) error {
	if err := s.repo.Save(ctx, cartID, cart.Lines); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func newLine(product *catalog.Product, productID string, quantity int) LineItem {
	kind := enums.LineKindRetail
	if product.IsWholesale {
		kind = enums.LineKindWholesale
	}
	return LineItem{
		ProductID: productID,
		Name:      product.Name,
		Price:     product.UnitPrice(),
		Image:     product.Image,
		Quantity:  quantity,
		Kind:      kind,
		MOQ:       product.EffectiveMOQ(),
	}
}

func checkError(check inventory.CheckResult) error {
	if check.Reason == inventory.ReasonNotFound {
		return pkgerrors.New(pkgerrors.CodeNotFound, check.Reason)
	}
	return pkgerrors.New(pkgerrors.CodeConflict, check.Reason)
}
