package codegap

import "github.com/gofiber/fiber/v2"

// Feature plugs the gap check routes into the loader.
type Feature struct {
	service *Service
}

// NewFeature creates the codegap feature around service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

func (f *Feature) Name() string {
	return "codegap"
}

func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
