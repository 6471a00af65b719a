package settings

import (
	"Crenza-Backend/domain"
)

const DefaultAlertDays = 3

type Settings struct {
	AlertDays int `json:"alertDays"`
}

func Default(alertDays int) Settings {
	if alertDays < 0 {
		alertDays = DefaultAlertDays
	}
	return Settings{AlertDays: alertDays}
}

func (s *Settings) SetAlertDays(days int) error {
	if days < 0 {
		return domain.ErrInvalidAlertDays
	}
	s.AlertDays = days
	return nil
}
