package models

// Patient represents a registered patient. Patients are looked up to confirm
// the acting identity exists; this service never mutates them.
type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
}
