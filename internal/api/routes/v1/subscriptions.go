package v1

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerSubscriptions(r fiber.Router) {
	subscriptionRepo := repo.NewSubscriptionRepository(config.DB)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo)

	r.Get("/subscriptions", subscriptionHandler.GetAllSubscriptions)
	r.Get("/subscriptions/:userId", subscriptionHandler.GetSubscriptionByUser)
	r.Post("/subscriptions", subscriptionHandler.CreateSubscription)
	r.Patch("/subscriptions/:id", subscriptionHandler.UpdateSubscription)
}
