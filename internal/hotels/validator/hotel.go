package validator

import (
	"hotels/pkg/logger"
	"hotels/pkg/model"
	"hotels/pkg/validation"
)

type HotelValidator struct {
	validate *validation.Validator
	log      *logger.Logger
}

func NewHotelValidator(log *logger.Logger) *HotelValidator {
	return &HotelValidator{
		validate: validation.New(),
		log:      log,
	}
}

func (v *HotelValidator) Validate(hotel *model.Hotel) error {
	return v.validate.Struct(hotel)
}

func (v *HotelValidator) ValidateUpdate(update *model.HotelUpdate) error {
	return v.validate.Struct(update)
}

// ValidateAmenity rejects a missing or empty amenity. Any other string is accepted as is.
func (v *HotelValidator) ValidateAmenity(req *model.AmenityRequest) error {
	if err := v.validate.Struct(req); err != nil {
		v.log.Debug("Rejected amenity", "error", err)
		return err
	}
	return nil
}
