package api

import "github.com/FahadIshaq/scanback/internal/model"

// TagResponse is the public view of a tag record. Owner contact details are
// redacted for activated tags unless the owner opted into showing them.
type TagResponse struct {
	Code        string             `json:"code"`
	Type        model.TagType      `json:"type"`
	IsActivated bool               `json:"is_activated"`
	Details     model.TagDetails   `json:"details,omitempty"`
	Contact     *model.ContactInfo `json:"contact,omitempty"`
	Settings    model.TagSettings  `json:"settings"`
}

// ActivateRequest is the JSON body accepted by the activation endpoint.
// Phone numbers arrive as raw national input plus a country code; the
// composed international value is built server-side.
type ActivateRequest struct {
	Type    model.TagType `json:"type"`
	Contact struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		CountryCode string `json:"country_code"`
		Phone       string `json:"phone"`
		BackupPhone string `json:"backup_phone,omitempty"`
		Message     string `json:"message,omitempty"`
	} `json:"contact"`
	Item      *model.ItemDetails      `json:"item,omitempty"`
	Pet       *model.PetDetails       `json:"pet,omitempty"`
	Emergency *model.EmergencyDetails `json:"emergency,omitempty"`
	Settings  model.TagSettings       `json:"settings"`
}

// ActivateResponse is returned after a successful activation.
type ActivateResponse struct {
	TempPassword string `json:"temp_password,omitempty"`
	UserEmail    string `json:"user_email"`
	IsNewUser    bool   `json:"is_new_user"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
