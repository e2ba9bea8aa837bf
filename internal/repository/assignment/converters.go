package assignment

import "ridermatch/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
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

func ToShiftDomain(s *ShiftDB) *entities.Shift {
	if s == nil {
		return nil
	}
	return &entities.Shift{
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
