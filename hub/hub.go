package hub

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"kiosk-server/middlewares"
)

// 推送给管理端的事件名
const (
	EventProductsUpdated  = "products_updated"
	EventNewOrder         = "new_order"
	EventOrderUpdated     = "order_updated"
	EventOrderDeleted     = "order_deleted"
	EventDailyReportReady = "daily_report_ready"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub 易失的尽力而为扇出：无确认、无重放、无投递保证。
// 广播之后才连上的客户端直接错过该事件
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func New() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// HandleConnection 升级连接并保持注册直到客户端断开。
// 客户端没有上行业务事件，读循环只用来探测断连
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	h.register(conn)
	log.Printf("Client connected, total connected: %d", h.ClientCount())

	defer func() {
		h.unregister(conn)
		log.Printf("Client disconnected, total connected: %d", h.ClientCount())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	middlewares.SetConnectedClients(len(h.clients))
	h.mu.Unlock()
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		err := conn.Close()
		if err != nil {
		}
	}
	middlewares.SetConnectedClients(len(h.clients))
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast 向所有在线客户端投递事件，写失败的客户端直接剔除，不重试
func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			err := conn.Close()
			if err != nil {
			}
		}
	}
	middlewares.SetConnectedClients(len(h.clients))
}
