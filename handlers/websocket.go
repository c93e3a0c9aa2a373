package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"cloudbox/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type liveClient struct {
	conn      *websocket.Conn
	writeLock sync.Mutex
	connected bool
}

// send returns true if data was successfully sent
func (lc *liveClient) send(data []byte) bool {
	lc.writeLock.Lock()
	defer lc.writeLock.Unlock()
	if !lc.connected {
		return false
	}
	if err := lc.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println("write err:", err)
		lc.connected = false
		return false
	}
	return true
}

var liveClients = cmap.New[*liveClient]()

// MessageSocket handles GET /api/messages/live: each stored message is
// pushed to every connected client as JSON. The read loop only serves
// "ping" keepalives.
func MessageSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	client := &liveClient{conn: conn, connected: true}
	liveClients.Set(id, client)
	defer liveClients.Remove(id)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			client.writeLock.Lock()
			client.connected = false
			client.writeLock.Unlock()
			break
		}
		if string(message) == "ping" {
			client.send([]byte("pong"))
		}
	}
}

func broadcastMessage(message *models.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	for _, client := range liveClients.Items() {
		client.send(data)
	}
}
