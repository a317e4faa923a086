package services

import (
	"sort"
	"strings"
	"time"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
)

// TransfersBucketLabel is the single folder money transfers are grouped into.
const TransfersBucketLabel = "ENVÍOS DE DINERO"

// Bucket is a derived dispatch folder. It is recomputed on every read and never stored.
type Bucket[T any] struct {
	Key        string
	WindowDate *time.Time
	Items      []T
}

// BucketFunc decides the folder of one item.
type BucketFunc[T any] func(item T) schedule.Assignment

// Searchable items expose the texts matched by FilterWithinBucket.
type Searchable interface {
	SearchFields() []string
}

// GroupByBucket partitions items by bucketFn. Dated buckets come first in
// window order; undated ones (fallback, virtual) follow in first-seen order.
// Items keep their input order inside a bucket.
func GroupByBucket[T any](items []T, bucketFn BucketFunc[T]) []Bucket[T] {
	index := make(map[string]int)
	buckets := make([]Bucket[T], 0)

	for _, item := range items {
		a := bucketFn(item)
		i, ok := index[a.Label]
		if !ok {
			i = len(buckets)
			index[a.Label] = i
			buckets = append(buckets, Bucket[T]{Key: a.Label, WindowDate: a.WindowDate})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		wi, wj := buckets[i].WindowDate, buckets[j].WindowDate
		switch {
		case wi != nil && wj != nil:
			return wi.Before(*wj)
		case wi != nil:
			return true
		default:
			return false
		}
	})
	return buckets
}

// FilterWithinBucket keeps items where any search field contains query,
// ignoring case. A blank query keeps everything.
func FilterWithinBucket[T Searchable](items []T, query string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle == "" || matches(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

// FilterBuckets applies FilterWithinBucket to each bucket and drops the ones left empty.
func FilterBuckets[T Searchable](buckets []Bucket[T], query string) []Bucket[T] {
	out := make([]Bucket[T], 0, len(buckets))
	for _, b := range buckets {
		items := FilterWithinBucket(b.Items, query)
		if len(items) == 0 {
			continue
		}
		out = append(out, Bucket[T]{Key: b.Key, WindowDate: b.WindowDate, Items: items})
	}
	return out
}

// ShipmentBuckets assigns shipments to departure windows by creation time.
func ShipmentBuckets(windows []time.Time) BucketFunc[*shipment.Shipment] {
	return func(s *shipment.Shipment) schedule.Assignment {
		return schedule.Assign(s.CreatedAt(), windows)
	}
}

// TransferBuckets puts every transfer into TransfersBucketLabel.
func TransferBuckets() BucketFunc[*transfer.Transfer] {
	return func(*transfer.Transfer) schedule.Assignment {
		return schedule.Assignment{Label: TransfersBucketLabel}
	}
}

func matches(item Searchable, needle string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
