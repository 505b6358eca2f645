package websocket

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Client is one connected donation-ticker widget.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// DonationAlert is pushed to every connected widget when a payment succeeds.
type DonationAlert struct {
	DonorName     string `json:"donor_name"`
	Amount        int    `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	PaymentMethod string `json:"payment_method"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}

// Hub fans completed donations out to every connected client. One campaign,
// one audience, so there is no per-client keying.
type Hub struct {
	Clients        map[*Client]bool
	Register       chan *Client
	Unregister     chan *Client
	BroadcastAlert chan DonationAlert
}

func NewHub() *Hub {
	return &Hub{
		Clients:        make(map[*Client]bool),
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		BroadcastAlert: make(chan DonationAlert),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Printf("WebSocket client registered, %d connected", len(h.Clients))

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Printf("WebSocket client unregistered, %d connected", len(h.Clients))
			}

		case alert := <-h.BroadcastAlert:
			jsonData, err := json.Marshal(alert)
			if err != nil {
				log.Println("Failed to marshal donation alert:", err)
				continue
			}

			for client := range h.Clients {
				select {
				case client.Send <- jsonData:
				default:
					// Slow or dead client, drop it.
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
