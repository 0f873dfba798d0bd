package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// ===== Requests =====

type createDriverRequest struct {
	Handle        string  `json:"handle" binding:"required"`
	MCNumber      string  `json:"mc_number" binding:"required"`
	CompanyName   string  `json:"company_name"`
	ContactEmail  string  `json:"contact_email" binding:"required"`
	PhoneNumber   *string `json:"phone_number"`
	AuthorityType string  `json:"authority_type"`
	BillingMethod string  `json:"billing_method"`
}

type startNegotiationRequest struct {
	LoadRefID string `json:"load_id" binding:"required"`
}

type counterRequest struct {
	LoadRefID    string          `json:"load_id" binding:"required"`
	IncrementUSD decimal.Decimal `json:"increment_usd"`
	Truck        string          `json:"truck"`
}

type autopilotRequest struct {
	FloorUSD  decimal.Decimal `json:"floor_usd"`
	TargetUSD decimal.Decimal `json:"target_usd"`
	Enabled   bool            `json:"enabled"`
}

type cardTransferRequest struct {
	AmountCandle decimal.Decimal `json:"amount_candle"`
}

type claimRequest struct {
	WalletAddress string          `json:"wallet_address" binding:"required"`
	AmountCandle  decimal.Decimal `json:"amount_candle"`
}

type setCardStatusRequest struct {
	Status       string  `json:"status" binding:"required"`
	CardLastFour *string `json:"card_last_four"`
}

type markClaimPaidRequest struct {
	TxHash string `json:"tx_hash" binding:"required"`
}

type createBurnBatchRequest struct {
	PeriodStart time.Time `json:"period_start" binding:"required"`
	PeriodEnd   time.Time `json:"period_end" binding:"required"`
	RateBps     int       `json:"rate_bps"`
}

type executeBurnBatchRequest struct {
	USDSpent     decimal.Decimal `json:"usd_spent"`
	CandleBurned decimal.Decimal `json:"candle_burned"`
	BuyTxHash    string          `json:"buy_tx_hash" binding:"required"`
	BurnTxHash   string          `json:"burn_tx_hash" binding:"required"`
}

type registerWalletRequest struct {
	WalletName string `json:"wallet_name" binding:"required"`
	Chain      string `json:"chain" binding:"required"`
	Address    string `json:"address" binding:"required"`
}

// ===== Responses =====

type negotiationResponse struct {
	ID            uint64           `json:"id"`
	LoadRefID     string           `json:"load_id"`
	DriverMC      string           `json:"driver_mc"`
	Status        string           `json:"status"`
	BrokerEmail   string           `json:"broker_email"`
	CurrentOffer  *decimal.Decimal `json:"current_offer,omitempty"`
	FinalRate     *decimal.Decimal `json:"final_rate,omitempty"`
	AssignedTruck string           `json:"assigned_truck,omitempty"`
	DraftSubject  string           `json:"draft_subject,omitempty"`
	DraftBody     string           `json:"draft_body,omitempty"`
	LastHint      *string          `json:"last_hint,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func toNegotiationResponse(n *schema.Negotiation) negotiationResponse {
	resp := negotiationResponse{
		ID:            n.ID,
		LoadRefID:     n.LoadRefID,
		DriverMC:      n.DriverMC,
		Status:        string(n.Status),
		BrokerEmail:   n.BrokerEmail,
		CurrentOffer:  n.CurrentOffer,
		FinalRate:     n.FinalRate,
		AssignedTruck: n.AssignedTruck,
		DraftSubject:  n.DraftSubject,
		DraftBody:     n.DraftBody,
		UpdatedAt:     n.UpdatedAt,
	}
	if n.LastHint != nil {
		hint := string(*n.LastHint)
		resp.LastHint = &hint
	}
	return resp
}

type ingestResponse struct {
	Status  string `json:"status"`
	New     int    `json:"new"`
	Hot     int    `json:"hot"`
	Message string `json:"message"`
}

type balancesResponse struct {
	TotalCandle     decimal.Decimal `json:"total_candle"`
	LockedCandle    decimal.Decimal `json:"locked_candle"`
	ClaimableCandle decimal.Decimal `json:"claimable_candle"`
	ConsumedCandle  decimal.Decimal `json:"consumed_candle"`
	BuybackRate     string          `json:"buyback_rate"`
}

type reinvestResponse struct {
	Reinvested decimal.Decimal `json:"reinvested_candle"`
	Boosted    decimal.Decimal `json:"boosted_candle"`
}

type cardResponse struct {
	Status       string          `json:"status"`
	CardLastFour *string         `json:"card_last_four,omitempty"`
	BalanceUSD   decimal.Decimal `json:"balance_usd"`
	RequestedAt  *time.Time      `json:"requested_at,omitempty"`
	ShippedAt    *time.Time      `json:"shipped_at,omitempty"`
	ActivatedAt  *time.Time      `json:"activated_at,omitempty"`
}

func toCardResponse(card *schema.DebitCard) cardResponse {
	return cardResponse{
		Status:       string(card.Status),
		CardLastFour: card.CardLastFour,
		BalanceUSD:   card.BalanceUSD,
		RequestedAt:  card.RequestedAt,
		ShippedAt:    card.ShippedAt,
		ActivatedAt:  card.ActivatedAt,
	}
}

type notificationResponse struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponses(rows []schema.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, notificationResponse{
			ID:        row.ID,
			Type:      string(row.Type),
			Message:   row.Message,
			Read:      row.Read,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}
