package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(items []*shipment.Shipment) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.TrackingCode().String())
	}
	return out
}

func TestGroupByBucket_Shipments(t *testing.T) {
	jan17 := time.Date(2026, time.January, 17, 0, 0, 0, 0, time.UTC)
	feb7 := time.Date(2026, time.February, 7, 0, 0, 0, 0, time.UTC)
	windows := []time.Time{jan17, feb7}

	late := newShipment(t, "BB-LATE1", time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC), "Ana", "Luis")
	first := newShipment(t, "BB-FIRS1", time.Date(2026, time.January, 17, 23, 0, 0, 0, time.UTC), "Ana", "Luis")
	second := newShipment(t, "BB-SECO1", time.Date(2026, time.January, 18, 0, 0, 1, 0, time.UTC), "Ana", "Luis")
	early := newShipment(t, "BB-EARL1", time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC), "Ana", "Luis")

	buckets := services.GroupByBucket([]*shipment.Shipment{late, first, second, early}, services.ShipmentBuckets(windows))

	require.Len(t, buckets, 3)
	assert.Equal(t, "ENVÍO DEL 17 DE ENERO DE 2026", buckets[0].Key)
	assert.Equal(t, []string{"BB-FIRS1", "BB-EARL1"}, codes(buckets[0].Items))
	assert.Equal(t, "ENVÍO DEL 7 DE FEBRERO DE 2026", buckets[1].Key)
	assert.Equal(t, []string{"BB-SECO1"}, codes(buckets[1].Items))
	assert.Equal(t, schedule.FallbackLabel, buckets[2].Key)
	assert.Nil(t, buckets[2].WindowDate)
	assert.Equal(t, []string{"BB-LATE1"}, codes(buckets[2].Items))

	t.Run("should put every item in exactly one bucket", func(t *testing.T) {
		total := 0
		for _, b := range buckets {
			total += len(b.Items)
		}
		assert.Equal(t, 4, total)
	})

	t.Run("should fall back when there are no windows", func(t *testing.T) {
		got := services.GroupByBucket([]*shipment.Shipment{first}, services.ShipmentBuckets(nil))
		require.Len(t, got, 1)
		assert.Equal(t, "PRÓXIMOS ENVÍOS", got[0].Key)
	})

	t.Run("should return no buckets for no items", func(t *testing.T) {
		assert.Empty(t, services.GroupByBucket(nil, services.ShipmentBuckets(windows)))
	})
}

func TestGroupByBucket_Transfers(t *testing.T) {
	amount, err := kernel.NewMoney(50000, "XAF")
	require.NoError(t, err)
	ref, err := transfer.ParseReference("TR-00001")
	require.NoError(t, err)
	tr, err := transfer.NewTransfer(kernel.NewUUID(), ref, transfer.Parties{
		SenderName:      "Ana",
		BeneficiaryName: "Carmen",
		Origin:          "Madrid",
		Destination:     "Malabo",
	}, amount, intake)
	require.NoError(t, err)

	buckets := services.GroupByBucket([]*transfer.Transfer{tr}, services.TransferBuckets())

	require.Len(t, buckets, 1)
	assert.Equal(t, services.TransfersBucketLabel, buckets[0].Key)
	assert.Len(t, buckets[0].Items, 1)
}

func TestFilterWithinBucket(t *testing.T) {
	a := newShipment(t, "BB-QX001", intake, "María Obiang", "Pedro Nsue")
	b := newShipment(t, "BB-QX002", intake, "Juan Ela", "Rosa Mba")
	items := []*shipment.Shipment{a, b}

	t.Run("should match names ignoring case", func(t *testing.T) {
		assert.Equal(t, []string{"BB-QX001"}, codes(services.FilterWithinBucket(items, "maría")))
	})

	t.Run("should match tracking code fragments", func(t *testing.T) {
		assert.Equal(t, []string{"BB-QX002"}, codes(services.FilterWithinBucket(items, "qx002")))
	})

	t.Run("should match regions", func(t *testing.T) {
		assert.Len(t, services.FilterWithinBucket(items, "BATA"), 2)
	})

	t.Run("should keep everything for blank query", func(t *testing.T) {
		assert.Len(t, services.FilterWithinBucket(items, "  "), 2)
	})

	t.Run("should drop buckets emptied by the filter", func(t *testing.T) {
		buckets := []services.Bucket[*shipment.Shipment]{
			{Key: "one", Items: []*shipment.Shipment{a}},
			{Key: "two", Items: []*shipment.Shipment{b}},
		}
		got := services.FilterBuckets(buckets, "rosa")
		require.Len(t, got, 1)
		assert.Equal(t, "two", got[0].Key)
	})
}
