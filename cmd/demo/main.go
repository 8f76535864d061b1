package main

import (
	"flag"
	"fmt"
	"log"

	checkoutModel "checkout_solid/internal/domain/checkout/model"
	checkoutService "checkout_solid/internal/domain/checkout/service"
	"checkout_solid/internal/domain/checkout/strategy"
	notifyModel "checkout_solid/internal/domain/notification/model"
	"checkout_solid/internal/domain/notification/sender"
	notifyService "checkout_solid/internal/domain/notification/service"
	"checkout_solid/pkg/logger"
)

func main() {
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if err := logger.InitLogger(*level, "dev"); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	runCheckoutScenarios()
	runNotificationScenarios()
}

func runCheckoutScenarios() {
	email := strategy.NewEmailOrderNotifier()

	fmt.Println("\n--- Scenario 1: Credit Card ---")
	andi := checkoutModel.NewOrder("Andi", 500000)
	ok := checkoutService.NewCheckoutService(strategy.NewCreditCardStrategy(), email).RunCheckout(andi)
	fmt.Printf("result=%v status=%s\n", ok, andi.Status)

	fmt.Println("\n--- Scenario 2: QRIS (new channel, CheckoutService unchanged) ---")
	budi := checkoutModel.NewOrder("Budi", 100000)
	ok = checkoutService.NewCheckoutService(strategy.NewQRISStrategy(), email).RunCheckout(budi)
	fmt.Printf("result=%v status=%s\n", ok, budi.Status)
}

func runNotificationScenarios() {
	andi := notifyModel.User{Name: "Andi", Phone: "08123456789", Email: "andi@mail.com"}
	budi := notifyModel.User{Name: "Budi", Phone: "0899991111", Email: "budi@mail.com"}

	scenarios := []struct {
		title   string
		sender  sender.Sender
		user    notifyModel.User
		message string
	}{
		{"Scenario 1: Email", sender.NewEmailSender(), andi, "Pesanan Anda telah diproses."},
		{"Scenario 2: WhatsApp", sender.NewWhatsAppSender(), andi, "Barang sudah dikirim."},
		{"Scenario 3: Telegram (new channel, NotificationService unchanged)", sender.NewTelegramSender(), budi, "Saldo Anda telah bertambah."},
	}

	for _, sc := range scenarios {
		fmt.Printf("\n--- %s ---\n", sc.title)
		notifyService.NewNotificationService(sc.sender).Notify(sc.user, sc.message)
	}
}
