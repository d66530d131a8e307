package handlers

import (
	"os"
	"runtime"
	"time"

	"munshiji/logger"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

// Endpoints lists every API route with a short description.
var Endpoints = map[string]string{
	"POST /api/v1/auth/send-otp":            "Send OTP to phone",
	"POST /api/v1/auth/verify-otp":          "Verify OTP and login",
	"GET /api/v1/products":                  "Get all products",
	"GET /api/v1/products/:id":              "Get product by ID",
	"POST /api/v1/products":                 "Create new product",
	"GET /api/v1/sales":                     "Get all sales",
	"GET /api/v1/sales/export":              "Export sales as CSV",
	"POST /api/v1/sales":                    "Create new sale",
	"GET /api/v1/customers":                 "Get all customers",
	"GET /api/v1/reports/daily-sales":       "Get daily sales report",
	"GET /api/v1/reports/profit-analysis":   "Get profit analysis",
	"GET /api/v1/reports/seasonal-insights": "Get seasonal insights",
}

// HandleHome returns the service banner.
// GET /
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        utils.StatusSuccess,
		"name":          "Munshi Ji API",
		"version":       apiVersion,
		"state":         "running",
		"message":       "Munshi Ji API is running!",
		"message_hindi": "मुंशी जी API चालू है!",
		"description":   "Complete Kirana Store Management System",
		"timestamp":     h.now().UTC().Format(time.RFC3339),
		"endpoints": fiber.Map{
			"health":    "/health",
			"metrics":   "/metrics",
			"api_docs":  "/api/v1",
			"auth":      "/api/v1/auth/*",
			"products":  "/api/v1/products",
			"sales":     "/api/v1/sales",
			"customers": "/api/v1/customers",
			"reports":   "/api/v1/reports/*",
		},
		"demo_credentials": fiber.Map{
			"phone": "+91-9999900001",
			"otp":   "123456",
			"note":  "Use these credentials to test authentication",
		},
	})
}

// HandleHealth reports liveness, uptime and memory usage.
// GET /health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	memory := fiber.Map{
		"heap_alloc": ms.HeapAlloc,
		"heap_sys":   ms.HeapSys,
		"sys":        ms.Sys,
		"goroutines": runtime.NumGoroutine(),
	}
	if info, err := processMemory(); err != nil {
		logger.FromFiber(c).Debug("Process memory unavailable", zap.Error(err))
	} else {
		memory["rss"] = info.RSS
		memory["vms"] = info.VMS
	}

	return c.JSON(fiber.Map{
		"status":         utils.StatusSuccess,
		"message":        "Server is healthy",
		"message_hindi":  "सर्वर बिल्कुल ठीक है",
		"uptime_seconds": int64(h.now().Sub(h.startedAt).Seconds()),
		"memory_usage":   memory,
		"timestamp":      h.now().UTC().Format(time.RFC3339),
	})
}

// HandleAPIIndex lists the API endpoints.
// GET /api/v1
func (h *Handler) HandleAPIIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        utils.StatusSuccess,
		"message":       "API endpoints",
		"message_hindi": "API endpoints की सूची",
		"version":       apiVersion,
		"endpoints":     Endpoints,
	})
}

func processMemory() (*process.MemoryInfoStat, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return proc.MemoryInfo()
}
