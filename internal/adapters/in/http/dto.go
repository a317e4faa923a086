package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
)

type MoneyBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (m MoneyBody) toDomain() (kernel.Money, error) {
	return kernel.NewMoney(m.Amount, m.Currency)
}

func moneyBody(m kernel.Money) MoneyBody {
	return MoneyBody{Amount: m.Amount(), Currency: m.Currency()}
}

type NewShipment struct {
	SenderName        string    `json:"senderName"`
	RecipientName     string    `json:"recipientName"`
	OriginRegion      string    `json:"originRegion"`
	DestinationRegion string    `json:"destinationRegion"`
	WeightKg          float64   `json:"weightKg"`
	DeclaredPrice     MoneyBody `json:"declaredPrice"`
	Mode              string    `json:"mode"`
}

type CreatedShipment struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type NewTransfer struct {
	SenderName      string    `json:"senderName"`
	BeneficiaryName string    `json:"beneficiaryName"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Amount          MoneyBody `json:"amount"`
}

type CreatedTransfer struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

type ShipmentBucket struct {
	Key        string         `json:"key"`
	WindowDate *time.Time     `json:"windowDate,omitempty"`
	Shipments  []ShipmentItem `json:"shipments"`
}

type ShipmentItem struct {
	ID                string    `json:"id"`
	TrackingCode      string    `json:"trackingCode"`
	Status            string    `json:"status"`
	SenderName        string    `json:"senderName"`
	RecipientName     string    `json:"recipientName"`
	OriginRegion      string    `json:"originRegion"`
	DestinationRegion string    `json:"destinationRegion"`
	WeightKg          float64   `json:"weightKg"`
	DeclaredPrice     MoneyBody `json:"declaredPrice"`
	Mode              string    `json:"mode"`
	CreatedAt         time.Time `json:"createdAt"`
}

func shipmentBuckets(in []queries.ShipmentBucketResponse) []ShipmentBucket {
	out := make([]ShipmentBucket, 0, len(in))
	for _, b := range in {
		items := make([]ShipmentItem, 0, len(b.Shipments))
		for _, s := range b.Shipments {
			items = append(items, ShipmentItem{
				ID:                s.ID.String(),
				TrackingCode:      s.TrackingCode,
				Status:            s.Status.String(),
				SenderName:        s.SenderName,
				RecipientName:     s.RecipientName,
				OriginRegion:      s.OriginRegion,
				DestinationRegion: s.DestinationRegion,
				WeightKg:          s.WeightKg,
				DeclaredPrice:     moneyBody(s.DeclaredPrice),
				Mode:              s.Mode.String(),
				CreatedAt:         s.CreatedAt,
			})
		}
		out = append(out, ShipmentBucket{Key: b.Key, WindowDate: b.WindowDate, Shipments: items})
	}
	return out
}

type TransferBucket struct {
	Key       string         `json:"key"`
	Transfers []TransferItem `json:"transfers"`
}

type TransferItem struct {
	ID              string    `json:"id"`
	Reference       string    `json:"reference"`
	SenderName      string    `json:"senderName"`
	BeneficiaryName string    `json:"beneficiaryName"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Amount          MoneyBody `json:"amount"`
	CreatedAt       time.Time `json:"createdAt"`
}

func transferBuckets(in []queries.TransferBucketResponse) []TransferBucket {
	out := make([]TransferBucket, 0, len(in))
	for _, b := range in {
		items := make([]TransferItem, 0, len(b.Transfers))
		for _, t := range b.Transfers {
			items = append(items, TransferItem{
				ID:              t.ID.String(),
				Reference:       t.Reference,
				SenderName:      t.SenderName,
				BeneficiaryName: t.BeneficiaryName,
				Origin:          t.Origin,
				Destination:     t.Destination,
				Amount:          moneyBody(t.Amount),
				CreatedAt:       t.CreatedAt,
			})
		}
		out = append(out, TransferBucket{Key: b.Key, Transfers: items})
	}
	return out
}

type Tracking struct {
	TrackingCode      string          `json:"trackingCode"`
	Status            string          `json:"status"`
	OriginRegion      string          `json:"originRegion"`
	DestinationRegion string          `json:"destinationRegion"`
	Mode              string          `json:"mode"`
	CreatedAt         time.Time       `json:"createdAt"`
	History           []TrackingEvent `json:"history"`
	Milestones        []Milestone     `json:"milestones"`
}

type TrackingEvent struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Milestone.ReachedAt is null for statuses the shipment never entered.
type Milestone struct {
	Status    string     `json:"status"`
	ReachedAt *time.Time `json:"reachedAt"`
}

func tracking(in queries.TrackingLookupResponse) Tracking {
	history := make([]TrackingEvent, 0, len(in.History))
	for _, h := range in.History {
		history = append(history, TrackingEvent{Status: h.Status.String(), Timestamp: h.Timestamp})
	}
	milestones := make([]Milestone, 0, len(in.Milestones))
	for _, m := range in.Milestones {
		milestones = append(milestones, Milestone{Status: m.Status.String(), ReachedAt: m.ReachedAt})
	}
	return Tracking{
		TrackingCode:      in.TrackingCode,
		Status:            in.Status.String(),
		OriginRegion:      in.OriginRegion,
		DestinationRegion: in.DestinationRegion,
		Mode:              in.Mode.String(),
		CreatedAt:         in.CreatedAt,
		History:           history,
		Milestones:        milestones,
	}
}

// WindowBody carries dates as YYYY-MM-DD in the service time zone.
type WindowBody struct {
	Date string `json:"date"`
	Mode string `json:"mode"`
}

type BlockBody struct {
	MonthLabel string `json:"monthLabel"`
	DaysText   string `json:"daysText"`
	Mode       string `json:"mode"`
}

type ScheduleBody struct {
	Windows []WindowBody `json:"windows"`
	Blocks  []BlockBody  `json:"blocks"`
}

type Schedule struct {
	Windows   []WindowBody     `json:"windows"`
	Blocks    []BlockBody      `json:"blocks"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
	Upcoming  []UpcomingWindow `json:"upcoming"`
}

type UpcomingWindow struct {
	Date  string `json:"date"`
	Mode  string `json:"mode"`
	Label string `json:"label"`
}

const dateLayout = "2006-01-02"

func scheduleView(in queries.GetScheduleQueryResponse) Schedule {
	out := Schedule{
		Windows:  make([]WindowBody, 0, len(in.Settings.Windows)),
		Blocks:   make([]BlockBody, 0, len(in.Settings.Blocks)),
		Upcoming: make([]UpcomingWindow, 0, len(in.Upcoming)),
	}
	for _, w := range in.Settings.Windows {
		out.Windows = append(out.Windows, WindowBody{Date: w.Date.Format(dateLayout), Mode: w.Mode.String()})
	}
	for _, b := range in.Settings.Blocks {
		out.Blocks = append(out.Blocks, BlockBody{MonthLabel: b.MonthLabel, DaysText: b.DaysText, Mode: b.Mode.String()})
	}
	if !in.Settings.UpdatedAt.IsZero() {
		updatedAt := in.Settings.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	for _, u := range in.Upcoming {
		out.Upcoming = append(out.Upcoming, UpcomingWindow{Date: u.Date.Format(dateLayout), Mode: u.Mode.String(), Label: u.Label})
	}
	return out
}
