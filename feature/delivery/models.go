package delivery

import "time"

// Delivery is one shippable delivery order, keyed by (id_venta, n_venta).
type Delivery struct {
	ID               uint       `gorm:"primaryKey;column:id"`
	SaleID           string     `gorm:"column:id_venta"`
	OrderNumber      string     `gorm:"column:n_venta"`
	SaleCode         *string    `gorm:"column:codigo_venta"`
	TrackingNumber   string     `gorm:"column:n_seguimiento"`
	DeliveryCode     *string    `gorm:"column:codigo"`
	Courier          string     `gorm:"column:courier"`
	ShippingMode     string     `gorm:"column:clase_de_envio"`
	CourierStatus    *string    `gorm:"column:delivery_status"`
	Address          *string    `gorm:"column:direccion"`
	LabelStatus      *string    `gorm:"column:status_etiqueta"`
	LabelPrintStatus *string    `gorm:"column:impresion_etiqueta"`
	HandlingDate     time.Time  `gorm:"column:fecha_despacho"`
	PromisedDate     *time.Time `gorm:"column:fecha_promesa"`
}

func (Delivery) TableName() string { return "deliverys" }
