package helper

import (
	"context"
	"encoding/json"
	"fmt"

	"leave_manager/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Notify persists a notification row and fans it out over Redis so open
// websocket streams see it immediately.
func Notify(ctx context.Context, db *gorm.DB, rdb *redis.Client, employeeID uint, ntype, title, body string) error {
	notification := model.Notification{
		EmployeeId: employeeID,
		Type:       ntype,
		Title:      title,
		Body:       body,
	}
	if err := db.WithContext(ctx).Create(&notification).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return rdb.Publish(ctx, NotificationChannel(employeeID), payload).Err()
}

func NotificationChannel(employeeID uint) string {
	return fmt.Sprintf("notify:%d", employeeID)
}
