package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/promptbuild"
)

// DescribeProduct auto-drafts a marketing description from a product image,
// saving the seller from typing a topic by hand.
func (c *Client) DescribeProduct(ctx context.Context, asset *domain.Asset) (string, error) {
	if !asset.Ready() {
		return "", fmt.Errorf("%w: description requires a product image", domain.ErrValidation)
	}

	payload := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{
			assetPart(asset),
			{Text: promptbuild.DescribeProductBrief()},
		}}},
	}
	resp, err := c.generateWithRetry(ctx, c.analysisModel, payload)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(firstText(resp))
	if text == "" {
		return "", domain.ErrEmptyAnalysis
	}
	return text, nil
}

// DraftRequest frames the campaign assistant call.
type DraftRequest struct {
	Product  string
	Audience string
	Goal     string
}

// DraftCampaign sketches hooks and a posting cadence around a product.
func (c *Client) DraftCampaign(ctx context.Context, req DraftRequest) (string, error) {
	if strings.TrimSpace(req.Product) == "" {
		return "", fmt.Errorf("%w: campaign draft requires a product", domain.ErrValidation)
	}

	payload := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{
			{Text: promptbuild.CampaignBrief(req.Product, req.Audience, req.Goal)},
		}}},
	}
	resp, err := c.generateWithRetry(ctx, c.planModel, payload)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(firstText(resp))
	if text == "" {
		return "", domain.ErrEmptyAnalysis
	}
	return text, nil
}
