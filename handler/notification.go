package handler

import (
	"errors"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetNotifications(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}

	var notifications []model.Notification
	if err := db.Where("employee_id = ?", claim.EmployeeId).
		Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	notificationId := c.Locals("inputId").(int)

	var notification model.Notification
	if err := db.First(&notification, notificationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", err)
	}
	if notification.EmployeeId != claim.EmployeeId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your notification", errors.New("owner mismatch"))
	}

	notification.Read = true
	if err := db.Save(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}
