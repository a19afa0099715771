package main

import (
	"hotels/internal/hotels/events"
	"hotels/internal/hotels/handler"
	"hotels/internal/hotels/repository"
	"hotels/internal/hotels/service"
	"hotels/internal/hotels/validator"
	"hotels/pkg/app"
	"hotels/pkg/config"
)

const ServiceName = "hotels"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher, err := events.NewPublisher(cfg, ServiceName)
	if err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Failed to initialize hotel events publisher", "error", err)
	}

	hotelService := service.NewHotelService(
		repository.NewMongoHotelRepository(cfg),
		validator.NewHotelValidator(cfg.Log),
		publisher,
		cfg.Log,
	)
	cfg.Log.Info("Hotel service initialized")

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewHealthHandler(handler.NewMongoPinger(cfg.Client.Mongo), cfg.Log),
		handler.NewHotelHandler(hotelService, cfg.Log),
		publisher,
	)
	application.Run()
}
