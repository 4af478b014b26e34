package validate

import (
	"errors"
	"strconv"

	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateHoliday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHolidayInput
		if !parseBody(c, &input) {
			return nil
		}

		date, err := utils.ParseDateOnly(input.Date)
		if err != nil {
			return utils.ErrorResponse(c, 400, "date must be YYYY-MM-DD", err)
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}
		c.Locals("createInput", model.Holiday{
			Name:   input.Name,
			Date:   date,
			Active: active,
		})
		return c.Next()
	}
}

func UpdateHoliday(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateHolidayInput
		if !parseBody(c, &input) {
			return nil
		}

		if input.Date != nil {
			if _, err := utils.ParseDateOnly(*input.Date); err != nil {
				return utils.ErrorResponse(c, 400, "date must be YYYY-MM-DD", err)
			}
		}

		c.Locals("updateInput", input)
		c.Locals("holidayId", valueKey)
		return c.Next()
	}
}
