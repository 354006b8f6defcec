package orders

import (
	"errors"
	"fmt"

	"cakehouse-pos/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Manager owns every multi-row mutation that touches product stock.
// Each operation runs in a single transaction and takes row locks on
// the products it reads, so a concurrent order for the same product
// cannot pass the stock check twice and oversell.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// LineRequest is one cart line as the client sends it: the product id,
// how much, and the price/unit the client saw. Price and unit are
// snapshotted onto the order item.
type LineRequest struct {
	ProductID uint    `json:"id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
}

// PlaceOrderRequest carries everything POST /api/orders accepts.
type PlaceOrderRequest struct {
	CustomerName    string        `json:"customer_name"`
	CustomerContact string        `json:"customer_contact"`
	Items           []LineRequest `json:"items"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   string        `json:"payment_method"`
	Type            string        `json:"type"`
	PickupDatetime  string        `json:"pickup_datetime"`
	DeliveryFee     float64       `json:"delivery_fee"`
}

// Tolerance when comparing the client's total against our own sum.
// Anything beyond a cent is a lying client, not float noise.
var totalTolerance = decimal.NewFromFloat(0.01)

// checkTotal recomputes sum(quantity x price) + delivery fee with
// decimal arithmetic and compares it to the client-supplied total.
// We do not trust the client's number blindly: a buggy cart must not
// record an order whose total disagrees with its lines.
func checkTotal(req PlaceOrderRequest) error {
	sum := decimal.NewFromFloat(req.DeliveryFee)
	for _, line := range req.Items {
		lineTotal := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromFloat(line.Quantity))
		sum = sum.Add(lineTotal)
	}

	supplied := decimal.NewFromFloat(req.TotalAmount)
	if supplied.Sub(sum).Abs().GreaterThan(totalTolerance) {
		return fmt.Errorf("total_amount %s does not match items + delivery fee (%s): %w",
			supplied.StringFixed(2), sum.StringFixed(2), ErrInvalidArgument)
	}
	return nil
}

// PlaceOrder validates stock for every line, then creates the order,
// its items (with sale-time price/unit snapshots) and decrements each
// product's stock - all inside one transaction. If any line fails
// validation nothing is written.
func (m *Manager) PlaceOrder(req PlaceOrderRequest) (uint, error) {
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("order must have at least one item: %w", ErrInvalidArgument)
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("quantity must be greater than 0 for product %d: %w",
				line.ProductID, ErrInvalidArgument)
		}
	}
	if err := checkTotal(req); err != nil {
		return 0, err
	}

	order := models.Order{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		Status:          "completed",
		Type:            req.Type,
		PickupDatetime:  req.PickupDatetime,
		DeliveryFee:     req.DeliveryFee,
	}
	if order.Type == "" {
		order.Type = "immediate"
	}

	// A cart may list the same product on several lines; the stock
	// check must see their combined quantity, not each line alone.
	wanted := make(map[uint]float64, len(req.Items))
	productIDs := make([]uint, 0, len(req.Items))
	for _, line := range req.Items {
		if _, seen := wanted[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		wanted[line.ProductID] += line.Quantity
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		// Pass 1: lock each product row once and check its aggregate
		// quantity. No writes happen until the whole cart has passed.
		products := make(map[uint]*models.Product, len(productIDs))
		for _, pid := range productIDs {
			var product models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, pid).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", pid, ErrNotFound)
			}
			if err != nil {
				return err
			}
			if product.StockQuantity < wanted[pid] {
				return &InsufficientStockError{
					ProductName: product.Name,
					Available:   product.StockQuantity,
				}
			}
			products[product.ID] = &product
		}

		// Pass 2: build the snapshot items (one per line) and deduct
		// each product's combined quantity in a single update.
		for _, line := range req.Items {
			unit := line.Unit
			if unit == "" {
				unit = products[line.ProductID].Unit
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				PriceAtSale: line.Price,
				UnitAtSale:  unit,
			})
		}
		for _, pid := range productIDs {
			err := tx.Model(&models.Product{}).
				Where("id = ?", pid).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", wanted[pid])).Error
			if err != nil {
				return err
			}
		}

		// GORM inserts the items along with the header
		return tx.Create(&order).Error
	})
	if err != nil {
		return 0, err
	}

	return order.ID, nil
}

// restoreStock gives each line's quantity back to its product.
// Best-effort on purpose: a product deleted since the sale simply gets
// skipped, it must not block the order from being removed.
func restoreStock(tx *gorm.DB, items []models.OrderItem) error {
	for _, item := range items {
		err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteOrder removes one order and returns its stock. Restoration is
// computed from the still-present line items before they are deleted.
func (m *Manager) DeleteOrder(orderID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.First(&order, orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}
		if err := restoreStock(tx, items); err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
}

// BulkDeleteOrders deletes a set of orders with the same stock
// restoration as DeleteOrder. All-or-nothing: if any id in the list
// does not exist the whole batch is rejected and nothing is restored.
func (m *Manager) BulkDeleteOrders(orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return fmt.Errorf("ids must be a non-empty list: %w", ErrInvalidArgument)
	}

	// Dedup so a repeated id can't skew the existence check
	seen := make(map[uint]bool, len(orderIDs))
	ids := make([]uint, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id == 0 {
			return fmt.Errorf("ids must be valid order ids: %w", ErrInvalidArgument)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return fmt.Errorf("one or more orders do not exist: %w", ErrNotFound)
		}

		var items []models.OrderItem
		if err := tx.Where("order_id IN ?", ids).Find(&items).Error; err != nil {
			return err
		}
		if err := restoreStock(tx, items); err != nil {
			return err
		}

		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Order{}).Error
	})
}

// ClearAllOrders wipes the order history, returning every line item's
// quantity to stock first. There is no confirmation here - the client
// asks "are you sure", we just do it.
func (m *Manager) ClearAllOrders() error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		if err := tx.Find(&items).Error; err != nil {
			return err
		}
		if err := restoreStock(tx, items); err != nil {
			return err
		}

		if err := tx.Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Order{}).Error
	})
}

// ItemDetail is an order item plus the product's *current* name.
// The name is a display convenience and follows renames; price,
// quantity and unit stay the sale-time snapshot.
type ItemDetail struct {
	models.OrderItem
	Name string `json:"name"`
}

// OrderDetail is what GET /api/orders/:id returns.
type OrderDetail struct {
	models.Order
	Items []ItemDetail `json:"items"`
}

// GetOrderWithItems loads one order and its lines, joined with the
// current product names.
func (m *Manager) GetOrderWithItems(orderID uint) (*OrderDetail, error) {
	var order models.Order
	err := m.db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	// LEFT JOIN so lines survive their product being deleted;
	// COALESCE keeps the scan happy when that happens.
	var items []ItemDetail
	err = m.db.Table("order_items").
		Select("order_items.*, COALESCE(products.name, '') AS name").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	detail := OrderDetail{Order: order, Items: items}
	detail.Order.Items = nil
	return &detail, nil
}
