package delivery

import (
	"gorm.io/gorm"

	"multivende-sync/core/reconcile"
)

// Adapter reconciles the deliverys table, keyed by sale and order number.
type Adapter struct{}

func (Adapter) Match(tx *gorm.DB, row Delivery) *gorm.DB {
	return tx.Model(&Delivery{}).
		Where("id_venta = ? AND n_venta = ?", row.SaleID, row.OrderNumber)
}

// Skip never triggers; incomplete deliveries are filtered out in Build.
func (Adapter) Skip(Delivery) bool { return false }

func (Adapter) Record(row Delivery) any { return &row }

func (Adapter) Values(row Delivery) map[string]any {
	return map[string]any{
		"id_venta":           row.SaleID,
		"n_venta":            row.OrderNumber,
		"codigo_venta":       row.SaleCode,
		"n_seguimiento":      row.TrackingNumber,
		"codigo":             row.DeliveryCode,
		"courier":            row.Courier,
		"clase_de_envio":     row.ShippingMode,
		"delivery_status":    row.CourierStatus,
		"direccion":          row.Address,
		"status_etiqueta":    row.LabelStatus,
		"impresion_etiqueta": row.LabelPrintStatus,
		"fecha_despacho":     row.HandlingDate,
		"fecha_promesa":      row.PromisedDate,
	}
}

var _ reconcile.Adapter[Delivery] = Adapter{}
