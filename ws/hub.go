// Package ws pushes order events to connected dashboard clients.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"heirloom/models"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var clients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var mutex = &sync.Mutex{}

type OrderEvent struct {
	Type        string  `json:"type"`
	OrderID     uint    `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total"`
}

// PublishOrder broadcasts an order-created event. Drops the event if the
// broadcast buffer is full.
func PublishOrder(order *models.Order) {
	payload, err := json.Marshal(OrderEvent{
		Type:        "order_created",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
	})
	if err != nil {
		log.Println("Failed to encode order event:", err)
		return
	}
	select {
	case broadcast <- payload:
	default:
		log.Println("Order event buffer full, dropping event for order", order.OrderNumber)
	}
}

// Start runs the broadcast loop delivering events to all clients.
func Start() {
	go func() {
		for message := range broadcast {
			mutex.Lock()
			for client := range clients {
				err := client.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
			mutex.Unlock()
		}
	}()
}

// Handler upgrades the connection and keeps it registered until it drops.
func Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error upgrading:", err)
		return
	}
	defer conn.Close()

	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
	log.Println("Client connected:", conn.RemoteAddr())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			mutex.Lock()
			delete(clients, conn)
			mutex.Unlock()
			log.Println("Client disconnected:", conn.RemoteAddr())
			break
		}
	}
}
