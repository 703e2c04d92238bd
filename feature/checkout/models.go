package checkout

import "time"

// Checkout is the line-item granularity mirror: one row per sale and child
// product, keyed by (id_venta, id_hijo_producto).
type Checkout struct {
	ID              uint     `gorm:"primaryKey;column:id"`
	SaleID          string   `gorm:"column:id_venta"`
	ChildProductID  string   `gorm:"column:id_hijo_producto"`
	ParentProductID string   `gorm:"column:id_padre_producto"`
	ProductCode     *string  `gorm:"column:codigo_producto"`
	ProductName     *string  `gorm:"column:nombre_producto"`
	Quantity        int      `gorm:"column:cantidad"`
	Price           *float64 `gorm:"column:precio"`
	CustomerName    *string  `gorm:"column:nombre_cliente"`
	Email           *string  `gorm:"column:mail"`
	Phone           *string  `gorm:"column:phone"`
	Market          *string  `gorm:"column:market"`
	OrderNumber     *string  `gorm:"column:n_venta"`
	SoldAt          time.Time `gorm:"column:fecha"`
	DeliveryStatus  *string  `gorm:"column:estado_entrega"`
	DeliveryCost    *float64 `gorm:"column:costo_envio"`
	BillingStatus   *string  `gorm:"column:estado_boleta"`
	BillingURL      *string  `gorm:"column:url_boleta"`
	PaymentStatus   *string  `gorm:"column:estado_venta"`
}

func (Checkout) TableName() string { return "checkouts" }

// CheckoutFull is the sale granularity mirror with the delivery columns
// folded in, keyed by id_venta alone.
type CheckoutFull struct {
	ID               uint       `gorm:"primaryKey;column:id"`
	SaleID           string     `gorm:"column:id_venta"`
	SaleCode         *string    `gorm:"column:codigo_venta"`
	OrderNumber      *string    `gorm:"column:n_venta"`
	CustomerName     *string    `gorm:"column:nombre_cliente"`
	Email            *string    `gorm:"column:mail"`
	Phone            *string    `gorm:"column:phone"`
	Market           *string    `gorm:"column:market"`
	SoldAt           time.Time  `gorm:"column:fecha"`
	DeliveryStatus   *string    `gorm:"column:estado_entrega"`
	DeliveryCost     *float64   `gorm:"column:costo_envio"`
	BillingStatus    *string    `gorm:"column:estado_boleta"`
	BillingURL       *string    `gorm:"column:url_boleta"`
	PaymentStatus    *string    `gorm:"column:estado_venta"`
	TrackingNumber   *string    `gorm:"column:n_seguimiento"`
	DeliveryCode     *string    `gorm:"column:codigo"`
	Courier          *string    `gorm:"column:courier"`
	ShippingMode     *string    `gorm:"column:clase_de_envio"`
	CourierStatus    *string    `gorm:"column:delivery_status"`
	Address          *string    `gorm:"column:direccion"`
	LabelStatus      *string    `gorm:"column:status_etiqueta"`
	LabelPrintStatus *string    `gorm:"column:impresion_etiqueta"`
	HandlingDate     *time.Time `gorm:"column:fecha_despacho"`
	PromisedDate     *time.Time `gorm:"column:fecha_promesa"`
}

func (CheckoutFull) TableName() string { return "checkouts_full" }

// CheckoutItem is one line item, keyed by (id_venta, id_hijo_producto).
type CheckoutItem struct {
	ID              uint     `gorm:"primaryKey;column:id"`
	SaleID          string   `gorm:"column:id_venta"`
	ChildProductID  string   `gorm:"column:id_hijo_producto"`
	ParentProductID string   `gorm:"column:id_padre_producto"`
	ProductCode     *string  `gorm:"column:codigo_producto"`
	ProductName     *string  `gorm:"column:nombre_producto"`
	Quantity        int      `gorm:"column:cantidad"`
	Price           *float64 `gorm:"column:precio"`
}

func (CheckoutItem) TableName() string { return "checkout_items" }
