package entities

const (
	PreferenceActivePantry = "active_pantry"
	PreferenceActiveDiet   = "active_diet"
	PreferenceAlertDays    = "alert_days"
)

// Preference is a small key/value row for scalar state such as the active
// pantry id or the alert window.
type Preference struct {
	Name  string `gorm:"primaryKey;size:64" json:"name"`
	Value string `gorm:"not null" json:"value"`
	Timestamp
}
