package models

import "github.com/golang-jwt/jwt/v4"

// --- Demo Auth ---

// DemoOTP is the only OTP the verify step accepts.
const DemoOTP = "123456"

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
	Name        string `json:"name"`
}

// User is the fabricated account echoed back after a successful login.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// Shop is the fixed demo shop every user belongs to.
type Shop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LoginResult is the data returned by verify-otp.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
	Shop  Shop   `json:"shop"`
}

type JwtClaims struct {
	UserID string `json:"userId"`
	Phone  string `json:"phone"`
	ShopID string `json:"shopId"`
	jwt.RegisteredClaims
}
