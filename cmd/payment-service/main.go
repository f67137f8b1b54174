package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ag-topup/internal/config"
	"ag-topup/internal/logger"
	"ag-topup/internal/payment"
	"ag-topup/internal/payment/handler"
	"ag-topup/internal/payment/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	store, err := storage.NewPostgreSQLStore(cfg.Database, log)
	if err != nil {
		log.Fatal("DATABASE", "Failed to initialize payment storage: "+err.Error())
	}
	defer store.Close()

	qr := payment.NewQRGenerator(cfg.Payment.ReceivingNumber, cfg.Payment.QRSize)
	walletHandler := handler.NewWalletHandler(payment.ManualVerifier{}, qr, store, cfg.Payment.ReceivingNumber, log)

	r := gin.Default()
	walletHandler.Routes(r)

	log.Info("SERVER", "Payment service running on "+cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatal("SERVER", "HTTP server error: "+err.Error())
	}
}
