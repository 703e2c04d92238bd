package checkout

import (
	"gorm.io/gorm"

	"multivende-sync/core/reconcile"
)

// Line pairs a sale summary with one of its items; it is the row shape of
// the checkouts table.
type Line struct {
	Sale *Summary
	Item Item
}

// LineAdapter reconciles the checkouts table, keyed by sale and child
// product.
type LineAdapter struct{}

func (LineAdapter) Match(tx *gorm.DB, row Line) *gorm.DB {
	return tx.Model(&Checkout{}).
		Where("id_venta = ? AND id_hijo_producto = ?", row.Item.SaleID, row.Item.ChildProductID)
}

func (LineAdapter) Skip(row Line) bool { return row.Sale.CustomerName == nil }

func (LineAdapter) Record(row Line) any {
	m := &Checkout{
		SaleID:          row.Item.SaleID,
		ChildProductID:  row.Item.ChildProductID,
		ParentProductID: row.Item.ParentProductID,
		ProductCode:     row.Item.ProductCode,
		ProductName:     row.Item.ProductName,
		Quantity:        row.Item.Quantity,
		Price:           row.Item.Price,
		CustomerName:    row.Sale.CustomerName,
		Email:           row.Sale.Email,
		Phone:           row.Sale.Phone,
		Market:          row.Sale.Market,
		OrderNumber:     row.Sale.OrderNumber,
		SoldAt:          row.Sale.SoldAt,
		DeliveryStatus:  row.Sale.DeliveryStatus,
		BillingStatus:   row.Sale.BillingStatus,
		BillingURL:      row.Sale.BillingURL,
		PaymentStatus:   row.Sale.PaymentStatus,
	}
	if row.Sale.Delivery != nil {
		m.DeliveryCost = row.Sale.Delivery.Cost
	}
	return m
}

func (a LineAdapter) Values(row Line) map[string]any {
	m := a.Record(row).(*Checkout)
	return map[string]any{
		"id_venta":          m.SaleID,
		"id_hijo_producto":  m.ChildProductID,
		"id_padre_producto": m.ParentProductID,
		"codigo_producto":   m.ProductCode,
		"nombre_producto":   m.ProductName,
		"cantidad":          m.Quantity,
		"precio":            m.Price,
		"nombre_cliente":    m.CustomerName,
		"mail":              m.Email,
		"phone":             m.Phone,
		"market":            m.Market,
		"n_venta":           m.OrderNumber,
		"fecha":             m.SoldAt,
		"estado_entrega":    m.DeliveryStatus,
		"costo_envio":       m.DeliveryCost,
		"estado_boleta":     m.BillingStatus,
		"url_boleta":        m.BillingURL,
		"estado_venta":      m.PaymentStatus,
	}
}

// FullAdapter reconciles the checkouts_full table, keyed by sale alone.
type FullAdapter struct{}

func (FullAdapter) Match(tx *gorm.DB, row *Summary) *gorm.DB {
	return tx.Model(&CheckoutFull{}).Where("id_venta = ?", row.SaleID)
}

func (FullAdapter) Skip(row *Summary) bool { return row.CustomerName == nil }

func (FullAdapter) Record(row *Summary) any {
	m := &CheckoutFull{
		SaleID:         row.SaleID,
		SaleCode:       row.SaleCode,
		OrderNumber:    row.OrderNumber,
		CustomerName:   row.CustomerName,
		Email:          row.Email,
		Phone:          row.Phone,
		Market:         row.Market,
		SoldAt:         row.SoldAt,
		DeliveryStatus: row.DeliveryStatus,
		BillingStatus:  row.BillingStatus,
		BillingURL:     row.BillingURL,
		PaymentStatus:  row.PaymentStatus,
	}
	if d := row.Delivery; d != nil {
		m.DeliveryCost = d.Cost
		m.TrackingNumber = d.TrackingNumber
		m.DeliveryCode = d.Code
		m.Courier = d.Courier
		m.ShippingMode = d.ShippingMode
		m.CourierStatus = d.CourierStatus
		m.Address = d.Address
		m.LabelStatus = d.LabelStatus
		m.LabelPrintStatus = d.LabelPrintStatus
		m.HandlingDate = d.HandlingDate
		m.PromisedDate = d.PromisedDate
	}
	return m
}

func (a FullAdapter) Values(row *Summary) map[string]any {
	m := a.Record(row).(*CheckoutFull)
	return map[string]any{
		"id_venta":           m.SaleID,
		"codigo_venta":       m.SaleCode,
		"n_venta":            m.OrderNumber,
		"nombre_cliente":     m.CustomerName,
		"mail":               m.Email,
		"phone":              m.Phone,
		"market":             m.Market,
		"fecha":              m.SoldAt,
		"estado_entrega":     m.DeliveryStatus,
		"costo_envio":        m.DeliveryCost,
		"estado_boleta":      m.BillingStatus,
		"url_boleta":         m.BillingURL,
		"estado_venta":       m.PaymentStatus,
		"n_seguimiento":      m.TrackingNumber,
		"codigo":             m.DeliveryCode,
		"courier":            m.Courier,
		"clase_de_envio":     m.ShippingMode,
		"delivery_status":    m.CourierStatus,
		"direccion":          m.Address,
		"status_etiqueta":    m.LabelStatus,
		"impresion_etiqueta": m.LabelPrintStatus,
		"fecha_despacho":     m.HandlingDate,
		"fecha_promesa":      m.PromisedDate,
	}
}

// ItemAdapter reconciles the checkout_items table, keyed by sale and child
// product.
type ItemAdapter struct{}

func (ItemAdapter) Match(tx *gorm.DB, row Item) *gorm.DB {
	return tx.Model(&CheckoutItem{}).
		Where("id_venta = ? AND id_hijo_producto = ?", row.SaleID, row.ChildProductID)
}

func (ItemAdapter) Skip(row Item) bool { return row.ProductName == nil }

func (ItemAdapter) Record(row Item) any {
	return &CheckoutItem{
		SaleID:          row.SaleID,
		ChildProductID:  row.ChildProductID,
		ParentProductID: row.ParentProductID,
		ProductCode:     row.ProductCode,
		ProductName:     row.ProductName,
		Quantity:        row.Quantity,
		Price:           row.Price,
	}
}

func (a ItemAdapter) Values(row Item) map[string]any {
	m := a.Record(row).(*CheckoutItem)
	return map[string]any{
		"id_venta":          m.SaleID,
		"id_hijo_producto":  m.ChildProductID,
		"id_padre_producto": m.ParentProductID,
		"codigo_producto":   m.ProductCode,
		"nombre_producto":   m.ProductName,
		"cantidad":          m.Quantity,
		"precio":            m.Price,
	}
}

var (
	_ reconcile.Adapter[Line]     = LineAdapter{}
	_ reconcile.Adapter[*Summary] = FullAdapter{}
	_ reconcile.Adapter[Item]     = ItemAdapter{}
)
