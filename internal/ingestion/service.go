// Package ingestion receives load postings from scout browser extensions and
// files them into the load table with discovery attribution.
package ingestion

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// LoadInput is one posted load as the scout extension scraped it
type LoadInput struct {
	RefID         string `json:"ref_id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Price         string `json:"price"`
	EquipmentType string `json:"equipment_type"`
	PickupDate    string `json:"pickup_date"`
	LoadSource    string `json:"load_source,omitempty"`
	BrokerEmail   string `json:"broker_email,omitempty"`
	BrokerName    string `json:"broker_name,omitempty"`
	Miles         *int   `json:"miles,omitempty"`
}

// Result reports what an ingestion batch produced. Hot counts postings at or
// above the hot-load threshold regardless of whether they were new; it only
// feeds the scout's UI.
type Result struct {
	New int
	Hot int
}

// Service files scouted loads
type Service struct {
	store store.Store
}

// NewService creates an ingestion service
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Ingest inserts the scouted loads, skipping reference ids already on file,
// and attributes every genuinely new load to the authenticated scout. The
// scout's heartbeat is touched regardless of what the batch contained.
func (s *Service) Ingest(ctx context.Context, driver *schema.Driver, inputs []LoadInput) (*Result, error) {
	now := time.Now().UTC()
	result := &Result{}

	loads := make([]schema.Load, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.RefID) == "" {
			continue
		}

		rate := ParseRate(in.Price)
		if rate != nil && rate.GreaterThanOrEqual(domain.HotLoadThresholdUSD) {
			result.Hot++
		}

		raw, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		loads = append(loads, schema.Load{
			RefID:        strings.TrimSpace(in.RefID),
			Origin:       in.Origin,
			Destination:  in.Destination,
			Equipment:    in.EquipmentType,
			PickupDate:   parsePickupDate(in.PickupDate),
			PostedRate:   in.Price,
			RateUSD:      rate,
			Miles:        in.Miles,
			BrokerEmail:  in.BrokerEmail,
			BrokerName:   in.BrokerName,
			SourceBoard:  strings.ToLower(strings.TrimSpace(in.LoadSource)),
			DiscoveredBy: &driver.MCNumber,
			Raw:          datatypes.JSON(raw),
		})
	}

	if len(loads) > 0 {
		inserted, err := s.store.UpsertLoads(ctx, loads)
		if err != nil {
			return nil, err
		}
		result.New = inserted
	}

	if err := s.store.TouchScoutHeartbeat(ctx, driver.MCNumber, now); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "ingested loads",
		zap.String("scout_mc", driver.MCNumber),
		zap.Int("submitted", len(inputs)),
		zap.Int("new", result.New),
		zap.Int("hot", result.Hot))
	return result, nil
}

// ParseRate turns a board's posted rate string into a numeric USD amount.
// Non-numeric postings ("negotiable", "call") come back nil.
func ParseRate(posted string) *decimal.Decimal {
	cleaned := strings.TrimSpace(posted)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return nil
	}
	rate, err := decimal.NewFromString(cleaned)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	return &rate
}

var pickupLayouts = []string{time.RFC3339, "2006-01-02", "01/02/2006", "01/02"}

func parsePickupDate(raw string) *time.Time {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}
	for _, layout := range pickupLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		// Boards often post day/month with no year.
		if t.Year() == 0 {
			now := time.Now().UTC()
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return &t
	}
	return nil
}
