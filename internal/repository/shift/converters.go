package shift

import "ridermatch/internal/entities"

func ToDomain(s *ShiftDB) *entities.Shift {
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

func ToPizzeriaDomain(p *PizzeriaDB) *entities.Pizzeria {
	if p == nil {
		return nil
	}
	return &entities.Pizzeria{
		ID:              p.ID,
		Name:            p.Name,
		Address:         p.Address,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Phone:           p.Phone,
		TelegramContact: p.TelegramContact,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
	}
}
