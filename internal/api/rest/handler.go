package rest

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/api/middleware"
	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/ingestion"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
	"github.com/greencandle/dispatch-core/internal/treasury"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IngestLoads files a batch of scouted load postings for the key's driver
	// POST /api/v1/ingest/loads
	IngestLoads(c *gin.Context)

	// ScoutHeartbeat records that the driver's extension is alive
	// POST /api/v1/scout/heartbeat
	ScoutHeartbeat(c *gin.Context)

	// StartNegotiation opens a negotiation thread with an AI draft
	// POST /api/v1/negotiations
	StartNegotiation(c *gin.Context)

	// SendCounter sends the driver's counter offer to the broker
	// POST /api/v1/negotiations/counter
	SendCounter(c *gin.Context)

	// GetNegotiation retrieves one of the driver's negotiation threads
	// GET /api/v1/negotiations/:id
	GetNegotiation(c *gin.Context)

	// ConfirmNegotiation books a PENDING_APPROVAL thread
	// POST /api/v1/negotiations/:id/confirm
	ConfirmNegotiation(c *gin.Context)

	// RejectNegotiation declines a PENDING_APPROVAL thread
	// POST /api/v1/negotiations/:id/reject
	RejectNegotiation(c *gin.Context)

	// ConfigureAutopilot sets the floor/target band for a load
	// PUT /api/v1/autopilot/:load_id
	ConfigureAutopilot(c *gin.Context)

	// GetBalances returns the driver's derived ledger balances
	// GET /api/v1/ledger/balances
	GetBalances(c *gin.Context)

	// Reinvest converts the driver's claimable credit with the tier boost
	// POST /api/v1/ledger/reinvest
	Reinvest(c *gin.Context)

	// TransferToCard moves claimable credit onto the driver's debit card
	// POST /api/v1/ledger/card-transfers
	TransferToCard(c *gin.Context)

	// GetDebitCard returns the driver's card and balance
	// GET /api/v1/ledger/card
	GetDebitCard(c *gin.Context)

	// RequestDebitCard starts the card lifecycle for the driver
	// POST /api/v1/ledger/card
	RequestDebitCard(c *gin.Context)

	// CreateClaim requests an on-chain payout of claimable credit
	// POST /api/v1/claims
	CreateClaim(c *gin.Context)

	// ListNotifications lists the driver's alerts, ?unread=true for unread only
	// GET /api/v1/notifications
	ListNotifications(c *gin.Context)

	// MarkNotificationRead acknowledges an alert
	// POST /api/v1/notifications/:id/read
	MarkNotificationRead(c *gin.Context)

	// CreateDriver onboards an approved carrier and issues the starter pack
	// POST /api/v1/admin/drivers
	CreateDriver(c *gin.Context)

	// CreateBurnBatch opens a burn batch over a revenue period
	// POST /api/v1/admin/burn-batches
	CreateBurnBatch(c *gin.Context)

	// ListBurnBatches lists burn batches newest first
	// GET /api/v1/admin/burn-batches
	ListBurnBatches(c *gin.Context)

	// ReserveBurnBatch attaches eligible revenue to a CREATED batch
	// POST /api/v1/admin/burn-batches/:id/reserve
	ReserveBurnBatch(c *gin.Context)

	// ExecuteBurnBatch records the buy-and-burn transactions for a RESERVED batch
	// POST /api/v1/admin/burn-batches/:id/execute
	ExecuteBurnBatch(c *gin.Context)

	// GetTreasuryStats returns burn totals and eligible revenue
	// GET /api/v1/admin/treasury/stats
	GetTreasuryStats(c *gin.Context)

	// RegisterTreasuryWallet records or updates a named platform wallet
	// PUT /api/v1/admin/treasury/wallets
	RegisterTreasuryWallet(c *gin.Context)

	// ListTreasuryWallets returns the registered platform wallets
	// GET /api/v1/admin/treasury/wallets
	ListTreasuryWallets(c *gin.Context)

	// MarkNegotiationWon books a thread whose rate con never parsed
	// POST /api/v1/admin/negotiations/:id/mark-won
	MarkNegotiationWon(c *gin.Context)

	// MarkNegotiationReplied records an off-channel broker reply
	// POST /api/v1/admin/negotiations/:id/mark-replied
	MarkNegotiationReplied(c *gin.Context)

	// ListClaims lists claim requests by status, default PENDING
	// GET /api/v1/admin/claims
	ListClaims(c *gin.Context)

	// DecideClaim approves or rejects a PENDING claim, ?approve=false to reject
	// POST /api/v1/admin/claims/:id/decide
	DecideClaim(c *gin.Context)

	// MarkClaimPaid records the payout transaction for an APPROVED claim
	// POST /api/v1/admin/claims/:id/paid
	MarkClaimPaid(c *gin.Context)

	// SetCardStatus advances a driver's card one lifecycle step
	// POST /api/v1/admin/cards/:mc/status
	SetCardStatus(c *gin.Context)

	// StripeWebhook records a Stripe-style revenue event
	// POST /webhooks/stripe
	StripeWebhook(c *gin.Context)

	// FactoringWebhook records factoring revenue and confirms settlements
	// POST /webhooks/factoring
	FactoringWebhook(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store        store.Store
	ingestion    *ingestion.Service
	negotiations *negotiation.Service
	autopilot    *autopilot.Engine
	ledger       *ledger.Service
	treasury     *treasury.Service

	stripeSecret    string
	factoringSecret string
}

// NewHandler creates a new REST API handler over the dispatch services
func NewHandler(
	s store.Store,
	ing *ingestion.Service,
	neg *negotiation.Service,
	ap *autopilot.Engine,
	led *ledger.Service,
	tre *treasury.Service,
	stripeSecret string,
	factoringSecret string,
) Handler {
	return &handler{
		store:           s,
		ingestion:       ing,
		negotiations:    neg,
		autopilot:       ap,
		ledger:          led,
		treasury:        tre,
		stripeSecret:    stripeSecret,
		factoringSecret: factoringSecret,
	}
}

// IngestLoads files scouted load postings under the authenticated driver
func (h *handler) IngestLoads(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	if driver == nil {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "Scout key required")
		return
	}

	var inputs []ingestion.LoadInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		respondBadRequest(c, "Invalid load batch: "+err.Error())
		return
	}

	result, err := h.ingestion.Ingest(c.Request.Context(), driver, inputs)
	if err != nil {
		respondDomainError(c, err, "Failed to ingest loads")
		return
	}

	c.JSON(http.StatusOK, ingestResponse{
		Status:  "success",
		New:     result.New,
		Hot:     result.Hot,
		Message: strconv.Itoa(result.New) + " new loads filed",
	})
}

// ScoutHeartbeat stamps the extension's last-seen time
func (h *handler) ScoutHeartbeat(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	if driver == nil {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "Scout key required")
		return
	}

	if err := h.store.TouchScoutHeartbeat(c.Request.Context(), driver.MCNumber, time.Now().UTC()); err != nil {
		respondDomainError(c, err, "Failed to record heartbeat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StartNegotiation opens a thread on a known load and drafts the opener
func (h *handler) StartNegotiation(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	var req startNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "load_id is required")
		return
	}

	load, err := h.store.GetLoadByRefID(c.Request.Context(), req.LoadRefID)
	if err != nil {
		respondDomainError(c, err, "Failed to look up load")
		return
	}
	if load == nil {
		respondNotFound(c, "Load "+req.LoadRefID+" not found")
		return
	}

	created, err := h.negotiations.StartDraft(c.Request.Context(), driver, load)
	if err != nil {
		respondDomainError(c, err, "Failed to start negotiation")
		return
	}
	c.JSON(http.StatusCreated, toNegotiationResponse(created))
}

// SendCounter sends the driver's counter on an open thread
func (h *handler) SendCounter(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	var req counterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "load_id is required")
		return
	}

	load, err := h.store.GetLoadByRefID(c.Request.Context(), req.LoadRefID)
	if err != nil {
		respondDomainError(c, err, "Failed to look up load")
		return
	}
	if load == nil {
		respondNotFound(c, "Load "+req.LoadRefID+" not found")
		return
	}

	updated, err := h.negotiations.SendCounter(c.Request.Context(), driver, load, req.IncrementUSD, req.Truck)
	if err != nil {
		respondDomainError(c, err, "Failed to send counter")
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(updated))
}

// GetNegotiation returns one of the caller's threads
func (h *handler) GetNegotiation(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	negotiation, ok := h.ownedNegotiation(c, driver)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(negotiation))
}

// ConfirmNegotiation is the driver's explicit approval; the only path to WON
func (h *handler) ConfirmNegotiation(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	negotiation, ok := h.ownedNegotiation(c, driver)
	if !ok {
		return
	}

	updated, err := h.negotiations.Confirm(c.Request.Context(), driver, negotiation.ID)
	if err != nil {
		respondDomainError(c, err, "Failed to confirm negotiation")
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(updated))
}

// RejectNegotiation declines the broker's offer
func (h *handler) RejectNegotiation(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	negotiation, ok := h.ownedNegotiation(c, driver)
	if !ok {
		return
	}

	updated, err := h.negotiations.Reject(c.Request.Context(), driver, negotiation.ID)
	if err != nil {
		respondDomainError(c, err, "Failed to reject negotiation")
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(updated))
}

// ConfigureAutopilot sets or updates the band for (driver, load)
func (h *handler) ConfigureAutopilot(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	loadRefID := c.Param("load_id")
	if loadRefID == "" {
		respondBadRequest(c, "load_id is required")
		return
	}

	var req autopilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid autopilot settings: "+err.Error())
		return
	}

	setting, err := h.autopilot.Configure(c.Request.Context(), driver, loadRefID, req.FloorUSD, req.TargetUSD, req.Enabled)
	if err != nil {
		respondDomainError(c, err, "Failed to configure autopilot")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"load_id":    setting.LoadRefID,
		"floor_usd":  setting.FloorUSD,
		"target_usd": setting.TargetUSD,
		"enabled":    setting.Enabled,
	})
}

// GetBalances returns the derived ledger view for the caller
func (h *handler) GetBalances(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	summary, err := h.ledger.Balances(c.Request.Context(), driver)
	if err != nil {
		respondDomainError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, balancesResponse{
		TotalCandle:     summary.TotalCandle,
		LockedCandle:    summary.LockedCandle,
		ClaimableCandle: summary.ClaimableCandle,
		ConsumedCandle:  summary.ConsumedCandle,
		BuybackRate:     summary.BuybackRate,
	})
}

// Reinvest converts the full claimable balance with the tier boost applied
func (h *handler) Reinvest(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	amount, boosted, err := h.ledger.Reinvest(c.Request.Context(), driver)
	if err != nil {
		respondDomainError(c, err, "Failed to reinvest")
		return
	}
	c.JSON(http.StatusOK, reinvestResponse{Reinvested: amount, Boosted: boosted})
}

// TransferToCard moves claimable credit onto the driver's debit card
func (h *handler) TransferToCard(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	var req cardTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "amount_candle is required")
		return
	}

	tx, err := h.ledger.TransferToCard(c.Request.Context(), driver.MCNumber, req.AmountCandle)
	if err != nil {
		respondDomainError(c, err, "Failed to transfer to card")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// GetDebitCard returns the caller's card, 404 until one is requested
func (h *handler) GetDebitCard(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	card, err := h.ledger.Card(c.Request.Context(), driver.MCNumber)
	if err != nil {
		respondDomainError(c, err, "Failed to look up card")
		return
	}
	if card == nil {
		respondNotFound(c, "No card on file")
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

// RequestDebitCard opens the card lifecycle for the caller
func (h *handler) RequestDebitCard(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	card, err := h.ledger.RequestCard(c.Request.Context(), driver.MCNumber)
	if err != nil {
		respondDomainError(c, err, "Failed to request card")
		return
	}
	c.JSON(http.StatusCreated, toCardResponse(card))
}

// CreateClaim opens a PENDING payout request
func (h *handler) CreateClaim(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "wallet_address is required")
		return
	}

	claim, err := h.ledger.RequestClaim(c.Request.Context(), driver.MCNumber, req.WalletAddress, req.AmountCandle)
	if err != nil {
		respondDomainError(c, err, "Failed to create claim")
		return
	}
	c.JSON(http.StatusCreated, claim)
}

// ListNotifications lists the caller's alerts newest first
func (h *handler) ListNotifications(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	unreadOnly := c.Query("unread") == "true"

	rows, err := h.store.ListNotifications(c.Request.Context(), driver.MCNumber, unreadOnly)
	if err != nil {
		respondDomainError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": toNotificationResponses(rows)})
}

// MarkNotificationRead acknowledges one of the caller's alerts
func (h *handler) MarkNotificationRead(c *gin.Context) {
	driver := middleware.DriverFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.MarkNotificationRead(c.Request.Context(), id, driver.MCNumber); err != nil {
		respondDomainError(c, err, "Failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateDriver onboards an approved carrier. A fresh Scout key is minted and
// returned exactly once; the starter pack is granted on first creation only.
func (h *handler) CreateDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid driver: "+err.Error())
		return
	}

	scoutKey, err := newScoutKey()
	if err != nil {
		respondDomainError(c, err, "Failed to mint scout key")
		return
	}
	driver := &schema.Driver{
		Handle:        domain.NormalizeHandle(req.Handle),
		MCNumber:      req.MCNumber,
		CompanyName:   req.CompanyName,
		ContactEmail:  req.ContactEmail,
		PhoneNumber:   req.PhoneNumber,
		AuthorityType: domain.AuthoritySolo,
		BillingMethod: domain.BillingFactoring,
		RewardTier:    domain.TierStandard,
		ScoutAPIKey:   &scoutKey,
	}
	if req.AuthorityType != "" {
		driver.AuthorityType = domain.AuthorityType(req.AuthorityType)
	}
	if req.BillingMethod != "" {
		driver.BillingMethod = domain.BillingMethod(req.BillingMethod)
	}

	if err := h.store.CreateDriver(c.Request.Context(), driver); err != nil {
		respondDomainError(c, err, "Failed to create driver")
		return
	}

	granted, err := h.ledger.GrantStarterPack(c.Request.Context(), driver)
	if err != nil {
		respondDomainError(c, err, "Failed to grant starter pack")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"handle":          driver.Handle,
		"mc_number":       driver.MCNumber,
		"scout_api_key":   scoutKey,
		"starter_granted": granted,
	})
}

// CreateBurnBatch opens a CREATED batch over [period_start, period_end)
func (h *handler) CreateBurnBatch(c *gin.Context) {
	var req createBurnBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "period_start and period_end are required")
		return
	}

	batch, err := h.treasury.CreateBatch(c.Request.Context(), req.PeriodStart, req.PeriodEnd, req.RateBps)
	if err != nil {
		respondDomainError(c, err, "Failed to create burn batch")
		return
	}
	c.JSON(http.StatusCreated, batch)
}

// ListBurnBatches lists recent batches, ?limit=N to page
func (h *handler) ListBurnBatches(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	batches, err := h.store.ListBurnBatches(c.Request.Context(), limit)
	if err != nil {
		respondDomainError(c, err, "Failed to list burn batches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// ReserveBurnBatch attaches eligible revenue and computes the reservation
func (h *handler) ReserveBurnBatch(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	batch, err := h.treasury.Reserve(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to reserve burn batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// ExecuteBurnBatch records the on-chain burn result for a RESERVED batch
func (h *handler) ExecuteBurnBatch(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req executeBurnBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "buy_tx_hash and burn_tx_hash are required")
		return
	}

	batch, err := h.treasury.Execute(c.Request.Context(), id, store.BurnExecution{
		USDSpent:     req.USDSpent,
		CandleBurned: req.CandleBurned,
		BuyTxHash:    req.BuyTxHash,
		BurnTxHash:   req.BurnTxHash,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to execute burn batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// GetTreasuryStats returns lifetime burn totals and pending eligible revenue
func (h *handler) GetTreasuryStats(c *gin.Context) {
	stats, err := h.treasury.Stats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to compute treasury stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterTreasuryWallet records or updates a named platform wallet
func (h *handler) RegisterTreasuryWallet(c *gin.Context) {
	var req registerWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "wallet_name, chain, and address are required")
		return
	}

	wallet, err := h.treasury.RegisterWallet(c.Request.Context(), req.WalletName, req.Chain, req.Address)
	if err != nil {
		respondDomainError(c, err, "Failed to register treasury wallet")
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// ListTreasuryWallets returns the registered platform wallets
func (h *handler) ListTreasuryWallets(c *gin.Context) {
	wallets, err := h.treasury.Wallets(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list treasury wallets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallets": wallets})
}

// MarkNegotiationWon books a thread administratively, optional ?rate=2450.00
func (h *handler) MarkNegotiationWon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var rate *decimal.Decimal
	if raw := c.Query("rate"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			respondBadRequest(c, "rate must be a decimal amount")
			return
		}
		rate = &parsed
	}

	updated, err := h.negotiations.MarkWon(c.Request.Context(), id, rate)
	if err != nil {
		respondDomainError(c, err, "Failed to mark negotiation won")
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(updated))
}

// MarkNegotiationReplied records an off-channel broker reply
func (h *handler) MarkNegotiationReplied(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	updated, err := h.negotiations.MarkReplied(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to mark negotiation replied")
		return
	}
	c.JSON(http.StatusOK, toNegotiationResponse(updated))
}

// ListClaims lists claim requests, ?status=APPROVED to filter
func (h *handler) ListClaims(c *gin.Context) {
	status := domain.ClaimPending
	if raw := c.Query("status"); raw != "" {
		status = domain.ClaimStatus(raw)
	}

	claims, err := h.store.ListClaimRequests(c.Request.Context(), status)
	if err != nil {
		respondDomainError(c, err, "Failed to list claims")
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// DecideClaim approves by default, ?approve=false rejects
func (h *handler) DecideClaim(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	approve := c.DefaultQuery("approve", "true") == "true"

	claim, err := h.store.DecideClaim(c.Request.Context(), id, approve)
	if err != nil {
		respondDomainError(c, err, "Failed to decide claim")
		return
	}
	c.JSON(http.StatusOK, claim)
}

// MarkClaimPaid records the payout transaction hash
func (h *handler) MarkClaimPaid(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req markClaimPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "tx_hash is required")
		return
	}

	claim, err := h.store.MarkClaimPaid(c.Request.Context(), id, req.TxHash)
	if err != nil {
		respondDomainError(c, err, "Failed to mark claim paid")
		return
	}
	c.JSON(http.StatusOK, claim)
}

// SetCardStatus advances a card to SHIPPED or ACTIVE; the lifecycle only
// moves forward one step at a time
func (h *handler) SetCardStatus(c *gin.Context) {
	mcNumber := c.Param("mc")
	if mcNumber == "" {
		respondBadRequest(c, "mc is required")
		return
	}

	var req setCardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	err := h.store.SetDebitCardStatus(c.Request.Context(), mcNumber, domain.CardStatus(req.Status), req.CardLastFour)
	if err != nil {
		respondDomainError(c, err, "Failed to set card status")
		return
	}

	card, err := h.store.GetDebitCard(c.Request.Context(), mcNumber)
	if err != nil {
		respondDomainError(c, err, "Failed to look up card")
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "dispatch-api"})
}

// ownedNegotiation resolves :id and enforces that the caller owns the thread.
// Foreign threads read as not found rather than forbidden so ids don't leak.
func (h *handler) ownedNegotiation(c *gin.Context, driver *schema.Driver) (*schema.Negotiation, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	negotiation, err := h.store.GetNegotiationByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to look up negotiation")
		return nil, false
	}
	if negotiation == nil || driver == nil || negotiation.DriverMC != driver.MCNumber {
		respondNotFound(c, "Negotiation not found")
		return nil, false
	}
	return negotiation, true
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, name+" must be a numeric id")
		return 0, false
	}
	return id, true
}

// newScoutKey mints a 64-hex opaque extension credential.
func newScoutKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to mint scout key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func logWebhookDrop(c *gin.Context, reason string, err error) {
	logger.WarnCtx(c.Request.Context(), reason, zap.Error(err), zap.String("path", c.FullPath()))
}
