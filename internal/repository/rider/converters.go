package rider

import "ridermatch/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		TelegramID:    r.TelegramID,
		TransportType: entities.RiderTransportType(r.TransportType),
		MaxDistanceKm: r.MaxDistanceKm,
		Active:        r.Active,
		Rating:        r.Rating,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToAvailabilityDomain(a *AvailabilityDB) entities.AvailabilityWindow {
	return entities.AvailabilityWindow{
		ID:        a.ID,
		RiderID:   a.RiderID,
		DayOfWeek: int(a.DayOfWeek),
		Start:     entities.TimeOfDay(a.StartMin),
		End:       entities.TimeOfDay(a.EndMin),
		Preferred: a.Preferred,
	}
}
