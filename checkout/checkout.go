package checkout

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alialzoriki7-lab/kado-store/config"
	"github.com/alialzoriki7-lab/kado-store/models"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingReference = errors.New("payment reference is required for electronic payment")
)

// Store is the persistence boundary of the order lifecycle: one order
// insert followed by per-product stock decrements at checkout, and the
// status update used by admin approval.
type Store interface {
	InsertOrder(order *models.Order) error
	DecrementStock(productID string, qty int) error
	UpdateOrderStatus(orderID string, status models.PaymentStatus) error
}

// Outcome enumerates how far a checkout got. The order insert and the stock
// decrements are not a transaction: an order can exist with some decrements
// missing, and that window is accepted rather than rolled back.
type Outcome int

const (
	// OutcomeFailed means the order insert itself failed; nothing persisted.
	OutcomeFailed Outcome = iota
	// OutcomePartialStock means the order was written but one or more stock
	// decrements did not go through.
	OutcomePartialStock
	// OutcomeCompleted means the order and every decrement succeeded.
	OutcomeCompleted
)

// Request carries everything a checkout needs. Items are the cart snapshot
// at the moment the buyer confirmed.
type Request struct {
	User      models.User
	Items     []models.CartItem
	AreaID    string
	Method    models.PaymentMethod
	Wallet    string
	Reference string
}

type Service struct {
	store Store
	log   *logrus.Entry
}

func NewService(store Store, log *logrus.Entry) *Service {
	return &Service{store: store, log: log}
}

// Validate rejects a request before anything is persisted. Electronic
// payments need a reference code the admin can verify against the wallet.
func (s *Service) Validate(req Request) error {
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}
	if req.Method == models.PaymentElectronic && req.Reference == "" {
		return ErrMissingReference
	}
	return nil
}

// Subtotal sums price times quantity over the requested items.
func Subtotal(items []models.CartItem) int {
	total := 0
	for _, i := range items {
		total += i.LineTotal()
	}
	return total
}

// BuildOrder derives the order record from a request: pending status,
// denormalized customer fields, full item snapshots, and the price equation
// final = total + delivery fee. Discount is a reserved field and stays zero.
func BuildOrder(req Request) *models.Order {
	total := Subtotal(req.Items)
	fee := config.DeliveryFee(req.AreaID)

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, i := range req.Items {
		items = append(items, models.NewOrderItem(i))
	}

	wallet := ""
	if req.Method == models.PaymentElectronic {
		wallet = req.Wallet
	}

	return &models.Order{
		UserID:           req.User.ID,
		UserName:         req.User.Name,
		UserPhone:        req.User.Phone,
		UserEmail:        req.User.Email,
		Items:            items,
		TotalPrice:       total,
		Discount:         0,
		DeliveryArea:     config.AreaDisplayName(req.AreaID),
		DeliveryFee:      fee,
		FinalPrice:       total + fee,
		PaymentMethod:    req.Method,
		ElectronicWallet: wallet,
		PaymentReference: req.Reference,
		PaymentStatus:    models.PaymentPending,
		CreatedAt:        time.Now(),
	}
}

// Place runs the checkout: validate, insert the order, then decrement stock
// for each item in cart order. The order insert happens-before every
// decrement. Decrements already issued before a failure are not undone; the
// caller keeps the cart unless the outcome is OutcomeCompleted.
func (s *Service) Place(req Request) (*models.Order, Outcome, error) {
	if err := s.Validate(req); err != nil {
		return nil, OutcomeFailed, err
	}

	order := BuildOrder(req)
	if err := s.store.InsertOrder(order); err != nil {
		s.log.Errorf("order insert failed for user %s: %v", req.User.ID, err)
		return nil, OutcomeFailed, err
	}

	for _, item := range req.Items {
		if err := s.store.DecrementStock(item.ID, item.CartQuantity); err != nil {
			s.log.Warnf("order %s: stock decrement failed for product %s: %v", order.ID, item.ID, err)
			return order, OutcomePartialStock, err
		}
	}

	s.log.Infof("order %s placed: %d items, final price %d", order.ID, len(order.Items), order.FinalPrice)
	return order, OutcomeCompleted, nil
}

// Approve marks an order's payment as completed. The update is blind: it
// does not read the current status first, so approving twice just rewrites
// the same value.
func (s *Service) Approve(orderID string) error {
	return s.store.UpdateOrderStatus(orderID, models.PaymentCompleted)
}
