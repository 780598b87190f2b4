package handlers

import (
	"bam-burgers-api/orders"
	"bam-burgers-api/realtime"
	"bam-burgers-api/settings"

	"go.uber.org/zap"
)

// Shared service dependencies, wired once from main.
var (
	Settings *settings.Service
	Orders   *orders.Service
	Hub      *realtime.Hub
	Log      *zap.Logger
)

func Setup(st *settings.Service, ord *orders.Service, hub *realtime.Hub, log *zap.Logger) {
	Settings = st
	Orders = ord
	Hub = hub
	Log = log
}
