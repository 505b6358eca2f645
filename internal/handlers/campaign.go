package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnoldagaba/11th-President/internal/config"
	"github.com/arnoldagaba/11th-President/internal/ledger"
	"github.com/arnoldagaba/11th-President/internal/models"
)

// CampaignHandler serves the read-only campaign data: donation settings for
// the donate page and the running ledger for the totals display.
type CampaignHandler struct {
	Ledger *ledger.Ledger
	Config config.Config
}

func NewCampaignHandler(lg *ledger.Ledger, cfg config.Config) *CampaignHandler {
	return &CampaignHandler{Ledger: lg, Config: cfg}
}

// GetCampaign returns the donation tiers, currency and minimum amount the
// donate page renders.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency":         h.Config.CurrencyCode,
		"minimum_donation": h.Config.MinimumDonation,
		"tiers":            models.DonationTiers,
	})
}

// GetDonations returns a snapshot of the ledger: running total, history
// (oldest first) and the loading flag.
func (h *CampaignHandler) GetDonations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Snapshot())
}
