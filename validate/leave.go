package validate

import (
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateLeave() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateLeaveInput
		if !parseBody(c, &input) {
			return nil
		}

		start, err := utils.ParseDateOnly(input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "startDate must be YYYY-MM-DD", err)
		}
		end, err := utils.ParseDateOnly(input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "endDate must be YYYY-MM-DD", err)
		}

		c.Locals("leaveInput", input)
		c.Locals("leaveStart", start)
		c.Locals("leaveEnd", end)
		return c.Next()
	}
}
