package checkout

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multivende-sync/feature/multivende"
)

func parseRecord(t *testing.T, raw string) multivende.Record {
	t.Helper()
	var r multivende.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

// fullPayload is a trimmed but shape-faithful checkout response.
const fullPayload = `{
	"_id": "chk-1",
	"code": "MV-100",
	"origin": "falabella",
	"soldAt": "2025-03-01T12:30:00.000-03:00",
	"deliveryStatus": "delivered",
	"CheckoutLink": {"CheckoutId": "chk-1", "externalOrderNumber": "F-900"},
	"Client": {"fullName": "Ana Rojas", "email": "ana@example.com", "phoneNumber": "+56911112222"},
	"CheckoutPayments": [
		{"paymentStatus": "pending"},
		{"paymentStatus": "paid"}
	],
	"DeliveryOrderInCheckouts": [{
		"DeliveryOrder": {
			"code": "DO-55",
			"cost": 3990,
			"deliveryStatus": "shipped",
			"shippingMode": "normal",
			"shippingLabelStatus": "printed",
			"shippingLabelPrintStatus": "done",
			"trackingNumber": "ABC12345678901XYZ9999",
			"handlingDateLimit": "2025-03-02T10:00:00.000-03:00",
			"promisedDeliveryDate": null,
			"courierName": "Chilexpress",
			"deliveryAddress": "Av. Siempre Viva 742, Springfield"
		}
	}],
	"CheckoutItems": [
		{
			"code": "SKU-1",
			"count": 2,
			"totalWithDiscount": 19990,
			"ProductVersionId": "child-1",
			"ProductVersion": {"ProductId": "parent-1", "Product": {"name": "Polera azul"}}
		},
		{
			"code": "SKU-2",
			"count": 1,
			"totalWithDiscount": 9990,
			"ProductVersionId": "child-2",
			"ProductVersion": {"ProductId": "parent-2", "Product": {"name": "Gorro lana"}}
		},
		{
			"code": "SKU-3",
			"count": 3,
			"totalWithDiscount": 5990,
			"ProductVersionId": "child-3",
			"ProductVersion": {"ProductId": "parent-3", "Product": {"name": "Calcetines"}}
		}
	]
}`

func TestNormalize(t *testing.T) {
	rec := parseRecord(t, fullPayload)

	sum, items, err := Normalize(rec, nil)
	require.NoError(t, err)

	assert.Equal(t, "chk-1", sum.SaleID)
	assert.Equal(t, "MV-100", *sum.SaleCode)
	assert.Equal(t, "F-900", *sum.OrderNumber)
	assert.Equal(t, "Ana Rojas", *sum.CustomerName)
	assert.Equal(t, "falabella", *sum.Market)
	// Sale date in UTC, offset folded in
	assert.Equal(t, time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC), sum.SoldAt)
	// Last payment entry wins
	assert.Equal(t, "paid", *sum.PaymentStatus)
	// No billing payload, both fields null
	assert.Nil(t, sum.BillingStatus)
	assert.Nil(t, sum.BillingURL)

	require.NotNil(t, sum.Delivery)
	assert.Equal(t, 3990.0, *sum.Delivery.Cost)
	assert.Equal(t, "Chilexpress", *sum.Delivery.Courier)
	assert.Equal(t, "Av. Siempre Viva 742, Springfield", *sum.Delivery.Address)
	assert.Equal(t, "printed", *sum.Delivery.LabelStatus)
	assert.Equal(t, "done", *sum.Delivery.LabelPrintStatus)
	require.NotNil(t, sum.Delivery.HandlingDate)
	assert.Equal(t, time.Date(2025, 3, 2, 13, 0, 0, 0, time.UTC), *sum.Delivery.HandlingDate)
	// The raw tracking value loses its prefix and suffix
	require.NotNil(t, sum.Delivery.TrackingNumber)
	assert.Equal(t, "12345678901", *sum.Delivery.TrackingNumber)
	// Null promise maps to the sentinel
	require.NotNil(t, sum.Delivery.PromisedDate)
	assert.Equal(t, NeverPromised, *sum.Delivery.PromisedDate)

	// One item per entry, all sharing the sale id
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "chk-1", item.SaleID)
	}
	assert.Equal(t, "child-1", items[0].ChildProductID)
	assert.Equal(t, "parent-1", items[0].ParentProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 19990.0, *items[0].Price)
	assert.Equal(t, "Polera azul", *items[0].ProductName)
}

func TestNormalizeMissingClient(t *testing.T) {
	rec := parseRecord(t, `{
		"_id": "chk-2",
		"soldAt": "2025-03-01T12:30:00.000-03:00",
		"CheckoutItems": []
	}`)

	_, _, err := Normalize(rec, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client")
}

func TestNormalizeMissingSoldAt(t *testing.T) {
	rec := parseRecord(t, `{"_id": "chk-3", "Client": {"fullName": "x"}, "CheckoutItems": []}`)

	_, _, err := Normalize(rec, nil)
	require.Error(t, err)
}

func TestNormalizeAddressTruncated(t *testing.T) {
	rec := parseRecord(t, fullPayload)
	long := strings.Repeat("calle ", 20) // 120 chars
	rec["DeliveryOrderInCheckouts"].([]any)[0].(map[string]any)["DeliveryOrder"].(map[string]any)["deliveryAddress"] = long

	sum, _, err := Normalize(rec, nil)
	require.NoError(t, err)
	require.NotNil(t, sum.Delivery.Address)
	assert.Len(t, *sum.Delivery.Address, 79)
	assert.Equal(t, long[:79], *sum.Delivery.Address)
}

func TestNormalizeTrackingNumberWrongLength(t *testing.T) {
	rec := parseRecord(t, fullPayload)
	rec["DeliveryOrderInCheckouts"].([]any)[0].(map[string]any)["DeliveryOrder"].(map[string]any)["trackingNumber"] = "SHORT"

	sum, _, err := Normalize(rec, nil)
	require.NoError(t, err)
	assert.Nil(t, sum.Delivery.TrackingNumber)
}

func TestNormalizePromisedDateKept(t *testing.T) {
	rec := parseRecord(t, fullPayload)
	rec["DeliveryOrderInCheckouts"].([]any)[0].(map[string]any)["DeliveryOrder"].(map[string]any)["promisedDeliveryDate"] = "2025-03-05T00:00:00.000-03:00"

	sum, _, err := Normalize(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 3, 0, 0, 0, time.UTC), *sum.Delivery.PromisedDate)
}

func TestNormalizeNoDeliveryOrder(t *testing.T) {
	rec := parseRecord(t, fullPayload)
	delete(rec, "DeliveryOrderInCheckouts")

	sum, _, err := Normalize(rec, nil)
	require.NoError(t, err)
	assert.Nil(t, sum.Delivery)
}

func TestNormalizeBilling(t *testing.T) {
	rec := parseRecord(t, fullPayload)
	billing := parseRecord(t, `{
		"entries": [
			{"ElectronicBillingDocumentFiles": [{"synchronizationStatus": "old", "url": "http://old"}]},
			{"ElectronicBillingDocumentFiles": [
				{"synchronizationStatus": "draft", "url": "http://draft"},
				{"synchronizationStatus": "issued", "url": "http://example.com/boleta.pdf"}
			]}
		]
	}`)

	sum, _, err := Normalize(rec, billing)
	require.NoError(t, err)
	assert.Equal(t, "issued", *sum.BillingStatus)
	assert.Equal(t, "http://example.com/boleta.pdf", *sum.BillingURL)

	// Malformed billing payload leaves both fields null
	sum, _, err = Normalize(rec, parseRecord(t, `{"error": "not found"}`))
	require.NoError(t, err)
	assert.Nil(t, sum.BillingStatus)
	assert.Nil(t, sum.BillingURL)
}
