package handlers

import (
	"munshiji/logger"
	"munshiji/models"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var demoShop = models.Shop{ID: "shop_001", Name: "राज किराना", Address: "पटना"}

// HandleSendOTP pretends to send an OTP. Nothing is dispatched or stored; the
// demo OTP is returned in the response.
// POST /api/v1/auth/send-otp
func (h *Handler) HandleSendOTP(c *fiber.Ctx) error {
	var req models.SendOTPRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	return utils.Success(c, fiber.StatusOK, "OTP sent successfully", "OTP भेज दिया गया", fiber.Map{
		"phone_number": req.PhoneNumber,
		"otp":          models.DemoOTP,
		"note":         "For demo, use OTP: " + models.DemoOTP,
	})
}

// HandleVerifyOTP accepts the demo OTP for any phone number and returns a
// fabricated user, a token and the demo shop.
// POST /api/v1/auth/verify-otp
func (h *Handler) HandleVerifyOTP(c *fiber.Ctx) error {
	var req models.VerifyOTPRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if req.OTP != models.DemoOTP {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid OTP (use 123456)", "गलत OTP (123456 डालें)")
	}

	user := models.User{ID: "user_001", Name: req.Name, PhoneNumber: req.PhoneNumber}
	if user.Name == "" {
		user.Name = "Demo User"
	}

	token, err := h.tokens.Issue(user, demoShop, h.now())
	if err != nil {
		return err
	}

	logger.FromFiber(c).Info("Demo login", zap.String("phone_number", req.PhoneNumber))

	return utils.Success(c, fiber.StatusOK, "Login successful", "लॉगिन सफल", models.LoginResult{
		User:  user,
		Token: token,
		Shop:  demoShop,
	})
}
