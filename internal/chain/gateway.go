// Package chain talks to the buyback execution service that swaps reserved
// treasury USD for CANDLE and burns it. The core never signs or broadcasts
// transactions itself; it hands the service a budget and records the hashes
// the service reports, optionally checking the receipts against an EVM node.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/logger"
)

// BurnResult is what a completed buyback-and-burn execution reports
type BurnResult struct {
	USDSpent     decimal.Decimal `json:"usd_spent"`
	CandleBurned decimal.Decimal `json:"candle_burned"`
	BuyTxHash    string          `json:"buy_tx_hash"`
	BurnTxHash   string          `json:"burn_tx_hash"`
}

// Gateway executes a buyback-and-burn for a reserved batch
//
//go:generate mockgen -source=gateway.go -destination=../mocks/chain.go -package=mocks -mock_names=Gateway=MockChainGateway
type Gateway interface {
	// ExecuteBuyAndBurn spends up to budgetUSD on CANDLE and burns it,
	// returning the executed amounts and transaction hashes.
	ExecuteBuyAndBurn(ctx context.Context, batchID uuid.UUID, budgetUSD decimal.Decimal) (*BurnResult, error)
}

type gateway struct {
	http   adapter.HTTPClient
	dialer adapter.EthClientDialer
	cfg    config.TreasuryConfig
}

// NewGateway creates a gateway against the configured execution service.
func NewGateway(http adapter.HTTPClient, dialer adapter.EthClientDialer, cfg config.TreasuryConfig) Gateway {
	return &gateway{http: http, dialer: dialer, cfg: cfg}
}

func (g *gateway) ExecuteBuyAndBurn(ctx context.Context, batchID uuid.UUID, budgetUSD decimal.Decimal) (*BurnResult, error) {
	if g.cfg.GatewayURL == "" {
		return nil, fmt.Errorf("%w: no burn gateway configured", domain.ErrUnavailable)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"batch_id":   batchID.String(),
		"budget_usd": budgetUSD.StringFixed(2),
		"wallet":     g.cfg.WalletName,
		"chain":      g.cfg.Chain,
	})
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if g.cfg.GatewayAPIKey != "" {
		headers["Authorization"] = "Bearer " + g.cfg.GatewayAPIKey
	}

	body, err := g.http.Post(ctx, g.cfg.GatewayURL+"/v1/burns", headers, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to execute burn: %w", err)
	}

	var result BurnResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode burn result: %w", err)
	}
	if !domain.ValidTxHash(result.BuyTxHash) || !domain.ValidTxHash(result.BurnTxHash) {
		return nil, fmt.Errorf("%w: gateway returned malformed tx hashes", domain.ErrUnavailable)
	}
	if result.USDSpent.GreaterThan(budgetUSD) {
		return nil, fmt.Errorf("%w: gateway spent %s over the %s budget",
			domain.ErrConflict, result.USDSpent, budgetUSD)
	}

	if err := g.verifyReceipts(ctx, result); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "burn executed",
		zap.String("batch_id", batchID.String()),
		zap.String("usd_spent", result.USDSpent.String()),
		zap.String("candle_burned", result.CandleBurned.String()))
	return &result, nil
}

// verifyReceipts checks both transactions landed successfully. Skipped when no
// RPC node is configured.
func (g *gateway) verifyReceipts(ctx context.Context, result BurnResult) error {
	if g.cfg.RPCURL == "" {
		return nil
	}

	client, err := g.dialer.Dial(ctx, g.cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial rpc node: %w", err)
	}
	defer client.Close()

	if _, err := client.HeaderByNumber(ctx, nil); err != nil {
		return fmt.Errorf("rpc node unhealthy: %w", err)
	}

	for _, hash := range []string{result.BuyTxHash, result.BurnTxHash} {
		receipt, err := client.TransactionReceipt(ctx, common.HexToHash(hash))
		if err != nil {
			return fmt.Errorf("failed to fetch receipt for %s: %w", hash, err)
		}
		if receipt.Status != 1 {
			return fmt.Errorf("%w: transaction %s reverted", domain.ErrConflict, hash)
		}
	}
	return nil
}
