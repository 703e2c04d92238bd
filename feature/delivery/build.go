package delivery

import "multivende-sync/feature/checkout"

// placeholder for couriers and shipping modes the marketplace left blank
const emptyValue = "Empty"

// Build maps a normalized sale onto a delivery row. ok is false when the
// sale has no shippable delivery yet: no delivery order, no tracking
// number, no order number or no handling date.
func Build(sum *checkout.Summary) (Delivery, bool) {
	d := sum.Delivery
	if d == nil || d.TrackingNumber == nil || d.HandlingDate == nil || sum.OrderNumber == nil {
		return Delivery{}, false
	}

	row := Delivery{
		SaleID:           sum.SaleID,
		OrderNumber:      *sum.OrderNumber,
		SaleCode:         sum.SaleCode,
		TrackingNumber:   *d.TrackingNumber,
		DeliveryCode:     d.Code,
		Courier:          emptyValue,
		ShippingMode:     emptyValue,
		CourierStatus:    d.CourierStatus,
		Address:          d.Address,
		LabelStatus:      d.LabelStatus,
		LabelPrintStatus: d.LabelPrintStatus,
		HandlingDate:     *d.HandlingDate,
		PromisedDate:     d.PromisedDate,
	}
	if d.Courier != nil && *d.Courier != "" {
		row.Courier = *d.Courier
	}
	if d.ShippingMode != nil && *d.ShippingMode != "" {
		row.ShippingMode = *d.ShippingMode
	}
	return row, true
}
