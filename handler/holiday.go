package handler

import (
	"errors"
	"strconv"
	"time"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHolidays(c *fiber.Ctx) error {
	filter := new(model.HolidayFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Holiday{})
	if filter.Year != nil {
		start := time.Date(*filter.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, -1)
		query = query.Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var holidays []model.Holiday
	query.Order("date").Find(&holidays)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       holidays,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateHoliday(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("createInput").(model.Holiday)
	if err := db.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create holiday", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func UpdateHoliday(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	holidayId := c.Locals("holidayId").(int)

	var holiday model.Holiday
	if err := db.First(&holiday, holidayId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Holiday not found", err)
	}

	input := c.Locals("updateInput").(model.UpdateHolidayInput)
	if input.Name != nil {
		holiday.Name = *input.Name
	}
	if input.Date != nil {
		// already format-checked by the validator
		date, err := utils.ParseDateOnly(*input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
		}
		holiday.Date = date
	}
	if input.Active != nil {
		holiday.Active = *input.Active
	}

	if err := db.Save(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update holiday", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, holiday)
}

func DeleteHoliday(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	id, _ := strconv.ParseUint(c.Params("id"), 10, 32)
	var holiday model.Holiday
	if err := db.First(&holiday, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Holiday not found", err)
	}
	if err := db.Delete(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete holiday", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "holiday deleted"})
}
