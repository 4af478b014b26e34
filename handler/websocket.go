package handler

import (
	"context"
	"strconv"
	"sync"

	"leave_manager/helper"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[uint]map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// NotificationStream pushes an employee's notifications live. Each
// connection subscribes to the employee's redis channel; rows written by
// helper.Notify arrive here without polling.
func NotificationStream(c *websocket.Conn) {
	employeeIdStr := c.Params("employeeId")
	id64, _ := strconv.ParseUint(employeeIdStr, 10, 64)
	employeeId := uint(id64)

	defer func() {
		wsMu.Lock()
		if wsClients[employeeId] != nil {
			delete(wsClients[employeeId], c)
		}
		wsMu.Unlock()
		c.Close()
	}()

	wsMu.Lock()
	if wsClients[employeeId] == nil {
		wsClients[employeeId] = make(map[*websocket.Conn]bool)
	}
	wsClients[employeeId][c] = true
	wsMu.Unlock()

	pubsub := rdb.Subscribe(context.Background(), helper.NotificationChannel(employeeId))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		wsMu.Lock()
		for conn := range wsClients[employeeId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(wsClients[employeeId], conn)
			}
		}
		wsMu.Unlock()
	}
}
