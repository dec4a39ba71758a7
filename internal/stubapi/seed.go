package stubapi

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/ecom-admin-console/internal/model"
)

var seedCategories = []struct {
	name, description string
	products          []string
}{
	{"Electronics", "Phones, audio and accessories", []string{
		"Wireless Headphones", "Smart Watch", "USB-C Charger", "Bluetooth Speaker", "Phone Case",
	}},
	{"Clothing", "Apparel for every season", []string{
		"Cotton T-Shirt", "Denim Jacket", "Running Shoes", "Wool Scarf",
	}},
	{"Home & Garden", "Furniture, decor and outdoor", []string{
		"Desk Lamp", "Ceramic Planter", "Garden Hose", "Throw Pillow", "Wall Clock",
		"Herb Seed Kit", "Bamboo Cutting Board", "Watering Can", "Door Mat", "Candle Set",
		"Picture Frame", "Bird Feeder", "Storage Basket", "Outdoor Lantern", "Table Runner",
		"Pruning Shears", "Bath Towel Set", "Coffee Mug", "Cushion Cover", "Flower Vase",
		"Garden Gloves", "Kitchen Timer", "Shoe Rack", "Solar Path Light", "Compost Bin",
	}},
	{"Books", "Fiction and non-fiction", []string{
		"The Go Programming Language", "Designing Data-Intensive Applications",
	}},
}

// Seed fills the store with a deterministic catalogue, a handful of orders,
// customers, coupons and notifications.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC().Truncate(time.Second)
	at := func(daysAgo int) model.Time { return model.NewTime(now.AddDate(0, 0, -daysAgo)) }

	var pid int64
	for i, c := range seedCategories {
		cat := &model.Category{
			ID:          int64(i + 1),
			Name:        c.name,
			Description: c.description,
			ItemCount:   len(c.products),
			CreatedAt:   at(90),
			UpdatedAt:   at(90),
		}
		s.categories[cat.ID] = cat
		for j, name := range c.products {
			pid++
			stock := (j * 7) % 40
			s.products[pid] = &model.Product{
				ID:            pid,
				Name:          name,
				SKU:           fmt.Sprintf("SKU-%d-%03d", cat.ID, j+1),
				Description:   name + " from our " + c.name + " range",
				Price:         decimal.NewFromInt(int64(10 + (j*13)%90)).Add(decimal.RequireFromString("0.99")),
				CategoryID:    cat.ID,
				CategoryName:  cat.Name,
				StockQuantity: stock,
				InStock:       stock > 0,
				IsActive:      true,
				Rating:        4.5,
				CreatedAt:     at(60 - j),
				UpdatedAt:     at(30),
			}
		}
	}

	customers := []model.User{
		{Name: "Jane Cooper", Email: "jane@example.com", Phone: "+1 555 0101", Status: model.UserStatusActive},
		{Name: "Wade Warren", Email: "wade@example.com", Phone: "+1 555 0102", Status: model.UserStatusActive},
		{Name: "Esther Howard", Email: "esther@example.com", Phone: "+1 555 0103", Status: model.UserStatusBlocked},
		{Name: "Cameron Williamson", Email: "cameron@example.com", Phone: "+1 555 0104", Status: model.UserStatusActive},
	}
	for i := range customers {
		u := customers[i]
		u.ID = int64(i + 1)
		u.JoinedAt = at(120 - i*10)
		s.users[u.ID] = &u
	}

	statuses := []model.OrderStatus{
		model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled, model.OrderStatusDelivered,
	}
	for i, st := range statuses {
		u := s.users[int64(i%len(customers)+1)]
		p := s.products[int64(i+1)]
		qty := i%3 + 1
		total := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		pay := model.PaymentStatusPaid
		switch st {
		case model.OrderStatusPending:
			pay = model.PaymentStatusPending
		case model.OrderStatusCancelled:
			pay = model.PaymentStatusRefunded
		}
		o := &model.Order{
			ID:          int64(i + 1),
			OrderNumber: fmt.Sprintf("ORD-2024-%04d", i+1),
			Customer:    model.Customer{Name: u.Name, Email: u.Email, Phone: u.Phone},
			Items: []model.OrderItem{{
				ID: p.ID, Name: p.Name, Quantity: qty, Price: p.Price,
			}},
			Total:         total,
			Status:        st,
			PaymentStatus: pay,
			ShippingAddress: model.ShippingAddress{
				Street: fmt.Sprintf("%d Market St", 100+i), City: "San Francisco",
				State: "CA", ZipCode: "94103", Country: "US",
			},
			CreatedAt: at(i * 2),
			UpdatedAt: at(i * 2),
		}
		s.orders[o.ID] = o
		if st != model.OrderStatusCancelled {
			u.TotalOrders++
			u.TotalSpent = u.TotalSpent.Add(total)
		}
	}

	maxDiscount := decimal.NewFromInt(50)
	s.coupons[1] = &model.Coupon{
		ID: 1, Code: "WELCOME10", Type: model.CouponTypePercentage,
		Value: decimal.NewFromInt(10), MinPurchase: decimal.NewFromInt(25), MaxDiscount: &maxDiscount,
		UsageLimit: 1000, UsageCount: 42, ExpiresAt: at(-60), IsActive: true,
	}
	s.coupons[2] = &model.Coupon{
		ID: 2, Code: "FLAT5", Type: model.CouponTypeFixed,
		Value: decimal.NewFromInt(5), MinPurchase: decimal.NewFromInt(20),
		UsageLimit: 200, UsageCount: 200, ExpiresAt: at(5), IsActive: false,
	}

	orderRef := int64(1)
	productRef := int64(3)
	s.notifications[1] = &model.Notification{
		ID: 1, Title: "New order", Message: "Order ORD-2024-0001 was placed",
		Type: "order", ReferenceType: "order", ReferenceID: &orderRef, CreatedAt: at(0),
	}
	s.notifications[2] = &model.Notification{
		ID: 2, Title: "Low stock", Message: "USB-C Charger is running low",
		Type: "inventory", ReferenceType: "product", ReferenceID: &productRef, CreatedAt: at(1),
	}
	readAt := at(2)
	s.notifications[3] = &model.Notification{
		ID: 3, Title: "New customer", Message: "Cameron Williamson signed up",
		Type: "user", IsRead: true, CreatedAt: at(3), ReadAt: &readAt,
	}
}
