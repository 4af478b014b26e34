package handler

import (
	"errors"

	"leave_manager/constants"
	"leave_manager/database"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	account, err := helper.GetAccountByUsername(db, loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
	}
	if !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account deactivated"))
	}

	var employee model.Employee
	db.Where(&model.Employee{AccountId: &account.ID}).First(&employee)

	tokenClaim := model.TokenClaim{
		AccountId:  account.ID,
		EmployeeId: employee.ID,
		Username:   account.Username,
		Role:       account.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.StoreRefreshToken(c.Context(), rdb, account.Username, refreshToken); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":         account.ID,
			"username":   account.Username,
			"role":       account.Role,
			"employeeId": employee.ID,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		type RefreshInput struct {
			RefreshToken string `json:"refreshToken"`
		}
		input := new(RefreshInput)
		if err := c.BodyParser(input); err == nil {
			refresh = input.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	username, _ := claims["username"].(string)

	ok, err := database.CheckRefreshToken(c.Context(), rdb, username, refresh)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token revoked", errors.New("token not in store"))
	}

	tokenClaim := model.TokenClaim{
		AccountId:  uintClaim(claims, "accountId"),
		EmployeeId: uintClaim(claims, "employeeId"),
		Username:   username,
	}
	if role, ok := claims["role"].(string); ok {
		tokenClaim.Role = role
	}
	access, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: access, RefreshToken: refresh})
}

func Logout(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.Username != "" {
		if err := database.DeleteRefreshToken(c.Context(), rdb, claim.Username); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func uintClaim(claims map[string]interface{}, key string) uint {
	if v, ok := claims[key].(float64); ok {
		return uint(v)
	}
	return 0
}
