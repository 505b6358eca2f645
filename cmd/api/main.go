package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/arnoldagaba/11th-President/internal/config"
	"github.com/arnoldagaba/11th-President/internal/gateway"
	"github.com/arnoldagaba/11th-President/internal/handlers"
	"github.com/arnoldagaba/11th-President/internal/ledger"
	"github.com/arnoldagaba/11th-President/internal/middleware"
	"github.com/arnoldagaba/11th-President/internal/payment"
	ws "github.com/arnoldagaba/11th-President/internal/websocket"
)

func main() {
	log.Println("Starting campaign donation server...")

	// Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	// One gateway client per configured provider endpoint
	flutterwave := gateway.NewFlutterwave(cfg.FlutterwaveAPIURL, cfg.CurrencyCode, cfg.Timeout())
	mtn := gateway.NewMTN(cfg.MTNAPIURL, cfg.CurrencyCode, cfg.Timeout())
	airtel := gateway.NewAirtel(cfg.AirtelAPIURL, cfg.CurrencyCode, cfg.Timeout())

	// The ledger lives for the lifetime of the process
	lg := ledger.New()
	processor := payment.New(flutterwave, mtn, airtel, lg)

	// Donation alert hub for the live ticker widgets
	hub := ws.NewHub()
	go hub.Run()

	// Set up our Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.Origins()))

	// Simple test route
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	donationHandler := handlers.NewDonationHandler(processor, hub, cfg)
	campaignHandler := handlers.NewCampaignHandler(lg, cfg)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// All API routes under /api
	api := r.Group("/api")
	{
		api.POST("/donate", donationHandler.Donate)
		api.GET("/payment/status", donationHandler.PaymentStatus)
		api.GET("/donations", campaignHandler.GetDonations)
		api.GET("/campaign", campaignHandler.GetCampaign)
	}

	r.GET("/ws/donations", wsHandler.ServeWs)

	// Start the server
	log.Println("Server starting on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("could not start server:", err)
	}
}
