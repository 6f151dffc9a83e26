package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const evaluationEndpoint = "/risk-central/api/v1/evaluations/"

// Response is the wire format of the central risk bureau.
type Response struct {
	Document  string `json:"document"`
	Score     int    `json:"score"`
	RiskLevel string `json:"riskLevel"`
	Detail    string `json:"detail"`
}

// BureauClient calls the live risk-central service over HTTP. Transport
// failures are returned as-is; the resilience wrapper owns the fallback.
type BureauClient struct {
	url    string
	client clients.HTTPClientI
}

func NewBureauClient(url string, client clients.HTTPClientI) *BureauClient {
	return &BureauClient{
		url:    url,
		client: client,
	}
}

func (c *BureauClient) Score(ctx context.Context, document string, _ decimal.Decimal, _ int) (*domain.RiskEvaluation, error) {
	url := c.url + evaluationEndpoint + document

	statusCode, respBody, _, err := c.client.GetWithContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("risk bureau request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("risk bureau returned unexpected status %d", statusCode)
	}

	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("can't parse risk bureau response: %w", err)
	}
	if response.Document != document {
		return nil, fmt.Errorf("risk bureau document mismatch: expected %s, got %s", document, response.Document)
	}

	level, err := mapRiskLevel(response.RiskLevel)
	if err != nil {
		return nil, err
	}
	derived, err := domain.RiskLevelForScore(response.Score)
	if err != nil {
		return nil, fmt.Errorf("risk bureau returned invalid score %d: %w", response.Score, err)
	}
	if level != derived {
		// the bureau's own label loses against the score-derived level
		zap.L().Warn("risk bureau level inconsistent with score, deriving from score",
			zap.String("document", document),
			zap.Int("score", response.Score),
			zap.String("reportedLevel", response.RiskLevel))
	}

	return evaluationFor(response.Score, response.Detail)
}

// mapRiskLevel accepts both English and Spanish level labels the bureau is
// known to emit.
func mapRiskLevel(level string) (domain.RiskLevel, error) {
	switch strings.ToUpper(level) {
	case "LOW", "BAJO":
		return domain.LowRisk, nil
	case "MEDIUM", "MEDIO":
		return domain.MediumRisk, nil
	case "HIGH", "ALTO":
		return domain.HighRisk, nil
	default:
		return "", fmt.Errorf("unknown risk level: %s", level)
	}
}
