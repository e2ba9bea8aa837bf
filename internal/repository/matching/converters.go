package matching

import "ridermatch/internal/entities"

func ToShiftDomain(s *ShiftDB) entities.Shift {
	return entities.Shift{
		ID:          s.ID,
		PizzeriaID:  s.PizzeriaID,
		Date:        s.Date,
		Start:       entities.TimeOfDay(s.StartMin),
		End:         entities.TimeOfDay(s.EndMin),
		HourlyRate:  s.HourlyRate,
		Description: s.Description,
		Status:      entities.ShiftStatusType(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

func ToRiderDomain(r *RiderDB) entities.Rider {
	return entities.Rider{
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

func ToBookingDomain(b *BookingDB) entities.Booking {
	return entities.Booking{
		AssignmentID: b.AssignmentID,
		ShiftID:      b.ShiftID,
		Date:         b.Date,
		Start:        entities.TimeOfDay(b.StartMin),
		End:          entities.TimeOfDay(b.EndMin),
	}
}

func ToAssignmentDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		ID:                  a.ID,
		ShiftID:             a.ShiftID,
		RiderID:             a.RiderID,
		AssignedAt:          a.AssignedAt,
		ConfirmedByRider:    a.ConfirmedByRider,
		ConfirmedByPizzeria: a.ConfirmedByPizzeria,
	}
}
