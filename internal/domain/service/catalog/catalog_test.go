package catalog_test

import (
	"context"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/service/catalog"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/errcodes"
)

type fakeCatalogStore struct {
	equipments    map[value.EquipmentID]entity.Equipment
	bids          []entity.Bid
	quotes        []entity.Quote
	cart          []entity.CartItem
	notifications []entity.Notification
	sellers       map[value.UserID]entity.Seller
}

func (f *fakeCatalogStore) GetByID(_ context.Context, id value.EquipmentID) (*entity.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, failure.NewNotFoundError("equipment not found", failure.WithCode(errcodes.EquipmentNotFound))
	}

	return &e, nil
}

func (f *fakeCatalogStore) List(_ context.Context) ([]entity.Equipment, error) {
	out := make([]entity.Equipment, 0, len(f.equipments))
	for _, e := range f.equipments {
		out = append(out, e)
	}

	return out, nil
}

func (f *fakeCatalogStore) Delete(_ context.Context, id value.EquipmentID) error {
	delete(f.equipments, id)
	return nil
}

func (f *fakeCatalogStore) ListByEquipment(_ context.Context, id value.EquipmentID) ([]entity.Bid, error) {
	var out []entity.Bid
	for _, b := range f.bids {
		if b.EquipmentID == id {
			out = append(out, b)
		}
	}

	return out, nil
}

func (f *fakeCatalogStore) ListByUser(_ context.Context, userID value.UserID) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, item := range f.cart {
		if item.UserID == userID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (f *fakeCatalogStore) ExistsForEquipment(_ context.Context, id value.EquipmentID) (bool, error) {
	for _, item := range f.cart {
		if item.EquipmentID == id {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeCatalogStore) GetByUserID(_ context.Context, userID value.UserID) (*entity.Seller, error) {
	s, ok := f.sellers[userID]
	if !ok {
		return nil, failure.NewNotFoundError("seller not found", failure.WithCode(errcodes.SellerNotFound))
	}

	return &s, nil
}

type quoteListAdapter struct{ *fakeCatalogStore }

func (a quoteListAdapter) ListByEquipment(_ context.Context, id value.EquipmentID) ([]entity.Quote, error) {
	var out []entity.Quote
	for _, q := range a.quotes {
		if q.EquipmentID == id {
			out = append(out, q)
		}
	}

	return out, nil
}

type notificationListAdapter struct{ *fakeCatalogStore }

func (a notificationListAdapter) ListByUser(_ context.Context, userID value.UserID) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range a.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}

	return out, nil
}

func newCatalog(store *fakeCatalogStore) *catalog.Service {
	return catalog.NewService(
		store,
		store,
		quoteListAdapter{store},
		store,
		notificationListAdapter{store},
		store,
	)
}

func seeded() *fakeCatalogStore {
	return &fakeCatalogStore{
		equipments: map[value.EquipmentID]entity.Equipment{
			"equipment-1": {ID: "equipment-1", SellerID: "seller-1", Name: "Tower Crane"},
		},
		sellers: map[value.UserID]entity.Seller{
			"user-seller": {ID: "seller-1", UserID: "user-seller"},
			"user-other":  {ID: "seller-2", UserID: "user-other"},
		},
	}
}

func TestDeleteEquipment(t *testing.T) {
	store := seeded()
	svc := newCatalog(store)

	err := svc.DeleteEquipment(context.Background(), "user-seller", "equipment-1")
	require.NoError(t, err)
	require.Empty(t, store.equipments)
}

func TestDeleteEquipmentHeldInCart(t *testing.T) {
	store := seeded()
	store.cart = append(store.cart, entity.CartItem{UserID: "user-buyer", EquipmentID: "equipment-1"})
	svc := newCatalog(store)

	err := svc.DeleteEquipment(context.Background(), "user-seller", "equipment-1")
	require.Error(t, err)
	require.True(t, failure.IsConflictError(err))
	require.Equal(t, errcodes.EquipmentInCheckout, failure.Code(err))
	require.Contains(t, store.equipments, value.EquipmentID("equipment-1"))
}

func TestDeleteEquipmentForeignSeller(t *testing.T) {
	store := seeded()
	svc := newCatalog(store)

	err := svc.DeleteEquipment(context.Background(), "user-other", "equipment-1")
	require.Error(t, err)
	require.True(t, failure.IsForbiddenError(err))
}

func TestListEquipmentBidsRequiresOwnership(t *testing.T) {
	store := seeded()
	store.bids = append(store.bids, entity.Bid{ID: "bid-1", EquipmentID: "equipment-1"})
	svc := newCatalog(store)

	bids, err := svc.ListEquipmentBids(context.Background(), "user-seller", "equipment-1")
	require.NoError(t, err)
	require.Len(t, bids, 1)

	_, err = svc.ListEquipmentBids(context.Background(), "user-other", "equipment-1")
	require.Error(t, err)
	require.True(t, failure.IsForbiddenError(err))
}

func TestCartScopedToCaller(t *testing.T) {
	store := seeded()
	store.cart = append(store.cart,
		entity.CartItem{ID: "cart-1", UserID: "user-buyer", EquipmentID: "equipment-1"},
		entity.CartItem{ID: "cart-2", UserID: "user-other-buyer", EquipmentID: "equipment-1"},
	)
	svc := newCatalog(store)

	items, err := svc.Cart(context.Background(), "user-buyer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, value.CartItemID("cart-1"), items[0].ID)
}
