package checkout

import (
	"errors"
	"fmt"
	"time"

	"multivende-sync/feature/multivende"
)

// NeverPromised marks sales the marketplace never committed a delivery
// date for. The value is far enough in the future that no real promise
// can collide with it.
var NeverPromised = time.Date(2262, time.April, 11, 23, 47, 16, 854775000, time.UTC)

const maxAddressLen = 79

// trackingNumberLen is the raw length the courier integration emits; the
// carrier only understands the middle segment of it.
const trackingNumberLen = 21

// Summary is the sale-level slice of a normalized checkout.
type Summary struct {
	SaleID         string
	SaleCode       *string
	OrderNumber    *string
	CustomerName   *string
	Email          *string
	Phone          *string
	Market         *string
	SoldAt         time.Time
	DeliveryStatus *string
	PaymentStatus  *string
	BillingStatus  *string
	BillingURL     *string
	Delivery       *DeliveryInfo
}

// DeliveryInfo carries the fields that only exist when the payload has a
// delivery order attached.
type DeliveryInfo struct {
	Cost             *float64
	Code             *string
	Courier          *string
	ShippingMode     *string
	CourierStatus    *string
	Address          *string
	LabelStatus      *string
	LabelPrintStatus *string
	TrackingNumber   *string
	HandlingDate     *time.Time
	PromisedDate     *time.Time
}

// Item is one normalized line item of a sale.
type Item struct {
	SaleID          string
	ChildProductID  string
	ParentProductID string
	ProductCode     *string
	ProductName     *string
	Quantity        int
	Price           *float64
}

// Normalize flattens one raw checkout payload into a sale summary and its
// line items. billing may be nil; its fields stay null then.
func Normalize(rec multivende.Record, billing multivende.Record) (*Summary, []Item, error) {
	saleID, ok := rec.String("_id")
	if !ok {
		return nil, nil, errors.New("checkout payload has no id")
	}
	soldAt, ok := rec.Time("soldAt")
	if !ok {
		return nil, nil, fmt.Errorf("checkout %s has no sale date", saleID)
	}
	client, ok := rec.Sub("Client")
	if !ok {
		return nil, nil, fmt.Errorf("checkout %s has no client node", saleID)
	}

	sum := &Summary{
		SaleID: saleID,
		SoldAt: soldAt,
	}
	sum.SaleCode = optString(rec, "code")
	sum.OrderNumber = optString(rec, "CheckoutLink", "externalOrderNumber")
	sum.Market = optString(rec, "origin")
	sum.DeliveryStatus = optString(rec, "deliveryStatus")
	sum.CustomerName = optString(client, "fullName")
	sum.Email = optString(client, "email")
	sum.Phone = optString(client, "phoneNumber")

	// The payment list is append-only upstream, the last entry wins.
	if payments, ok := rec.Records("CheckoutPayments"); ok && len(payments) > 0 {
		sum.PaymentStatus = optString(payments[len(payments)-1], "paymentStatus")
	}

	sum.BillingStatus, sum.BillingURL = billingFields(billing)

	if order, ok := rec.Sub("DeliveryOrderInCheckouts", 0, "DeliveryOrder"); ok {
		sum.Delivery = normalizeDelivery(order)
	}

	items, err := normalizeItems(saleID, rec)
	if err != nil {
		return nil, nil, err
	}
	return sum, items, nil
}

func normalizeDelivery(order multivende.Record) *DeliveryInfo {
	d := &DeliveryInfo{
		Code:             optString(order, "code"),
		CourierStatus:    optString(order, "deliveryStatus"),
		Courier:          optString(order, "courierName"),
		ShippingMode:     optString(order, "shippingMode"),
		LabelStatus:      optString(order, "shippingLabelStatus"),
		LabelPrintStatus: optString(order, "shippingLabelPrintStatus"),
	}
	if cost, ok := order.Float("cost"); ok {
		d.Cost = &cost
	}
	if addr, ok := order.String("deliveryAddress"); ok {
		d.Address = ptr(truncate(addr, maxAddressLen))
	}
	d.TrackingNumber = trackingNumber(order)
	if handling, ok := order.Time("handlingDateLimit"); ok {
		d.HandlingDate = &handling
	}
	if promised, ok := order.Time("promisedDeliveryDate"); ok {
		d.PromisedDate = &promised
	} else {
		never := NeverPromised
		d.PromisedDate = &never
	}
	return d
}

func normalizeItems(saleID string, rec multivende.Record) ([]Item, error) {
	raw, ok := rec.Records("CheckoutItems")
	if !ok {
		return nil, fmt.Errorf("checkout %s has no items node", saleID)
	}
	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		childID, ok := entry.String("ProductVersionId")
		if !ok {
			return nil, fmt.Errorf("checkout %s has an item with no product version", saleID)
		}
		item := Item{
			SaleID:         saleID,
			ChildProductID: childID,
			ProductCode:    optString(entry, "code"),
			ProductName:    optString(entry, "ProductVersion", "Product", "name"),
		}
		if parentID, ok := entry.String("ProductVersion", "ProductId"); ok {
			item.ParentProductID = parentID
		}
		if count, ok := entry.Int("count"); ok {
			item.Quantity = count
		}
		if total, ok := entry.Float("totalWithDiscount"); ok {
			item.Price = &total
		}
		items = append(items, item)
	}
	return items, nil
}

// trackingNumber keeps only the carrier-facing segment of the raw tracking
// value. Anything that is not exactly the raw length stays null.
func trackingNumber(order multivende.Record) *string {
	raw, ok := order.String("trackingNumber")
	if !ok || len(raw) != trackingNumberLen {
		return nil
	}
	return ptr(raw[3 : trackingNumberLen-7])
}

// billingFields reads the billing document reference out of a billing
// documents payload. Both fields come from the last file of the last
// entry, or neither does.
func billingFields(billing multivende.Record) (status, url *string) {
	if billing == nil {
		return nil, nil
	}
	file, ok := billing.Sub("entries", -1, "ElectronicBillingDocumentFiles", -1)
	if !ok {
		return nil, nil
	}
	return optString(file, "synchronizationStatus"), optString(file, "url")
}

func optString(rec multivende.Record, path ...any) *string {
	if v, ok := rec.String(path...); ok {
		return &v
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func ptr[T any](v T) *T { return &v }
