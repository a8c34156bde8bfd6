package model

import "encoding/json"

// TagType identifies what a physical tag is registered against.
type TagType string

const (
	TagTypeItem      TagType = "item"
	TagTypePet       TagType = "pet"
	TagTypeEmergency TagType = "emergency"

	// TagTypeAny marks a generic tag whose concrete type is chosen by the
	// activator during activation.
	TagTypeAny TagType = "any"
)

// IsValid returns true if the tag type is recognized.
func (t TagType) IsValid() bool {
	switch t {
	case TagTypeItem, TagTypePet, TagTypeEmergency, TagTypeAny:
		return true
	}
	return false
}

// IsConcrete returns true for the types a tag can actually be activated as.
func (t TagType) IsConcrete() bool {
	return t == TagTypeItem || t == TagTypePet || t == TagTypeEmergency
}

// TagDetails is the type-specific detail bag. Exactly one shape is carried
// per tag, selected by the tag's concrete type.
type TagDetails interface {
	TagType() TagType
}

// ItemDetails describes a tagged item (keys, luggage, laptop, ...).
type ItemDetails struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Color       string `json:"color,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"` // base64 data URL
}

// TagType implements TagDetails.
func (ItemDetails) TagType() TagType { return TagTypeItem }

// PedigreeInfo holds optional pedigree registration data for a pet.
type PedigreeInfo struct {
	RegisteredName     string `json:"registeredName,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Breeder            string `json:"breeder,omitempty"`
}

// PetDetails describes a tagged pet.
type PetDetails struct {
	Name             string       `json:"name"`
	Breed            string       `json:"breed,omitempty"`
	Age              string       `json:"age,omitempty"`
	MedicalNotes     string       `json:"medicalNotes,omitempty"`
	VetName          string       `json:"vetName,omitempty"`
	VetPhone         string       `json:"vetPhone,omitempty"`
	EmergencyContact string       `json:"emergencyContact,omitempty"`
	Pedigree         PedigreeInfo `json:"pedigree,omitempty"`
	Image            string       `json:"image,omitempty"`
}

// TagType implements TagDetails.
func (PetDetails) TagType() TagType { return TagTypePet }

// EmergencyContact is one person to reach in an emergency.
type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// EmergencyDetails describes an emergency/medical profile tag.
type EmergencyDetails struct {
	Name        string           `json:"name"`
	MedicalAid  string           `json:"medicalAid,omitempty"`
	BloodType   string           `json:"bloodType,omitempty"`
	Allergies   string           `json:"allergies,omitempty"`
	Medications string           `json:"medications,omitempty"`
	OrganDonor  bool             `json:"organDonor,omitempty"`
	ICENote     string           `json:"iceNote,omitempty"`
	Contact1    EmergencyContact `json:"emergencyContact1,omitempty"`
	Contact2    EmergencyContact `json:"emergencyContact2,omitempty"`
	Image       string           `json:"image,omitempty"`
}

// TagType implements TagDetails.
func (EmergencyDetails) TagType() TagType { return TagTypeEmergency }

// ContactInfo holds the owner's contact details as stored on the tag.
type ContactInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"` // "+<callingcode><national>"
	BackupPhone string `json:"backupPhone,omitempty"`
	Message     string `json:"message,omitempty"` // free-text note shown to finders
}

// TagSettings controls notification behavior and finder-page visibility.
type TagSettings struct {
	InstantAlerts           bool `json:"instantAlerts"`
	LocationSharing         bool `json:"locationSharing"`
	ShowContactOnFinderPage bool `json:"showContactOnFinderPage"`
	UseBackupNumber         bool `json:"useBackupNumber"`
}

// QRTagRecord is the server-owned tag record as returned by the backend.
// Details is kept raw here; DecodeDetails resolves it against Type.
type QRTagRecord struct {
	Code        string          `json:"code"`
	Type        TagType         `json:"type"`
	IsActivated bool            `json:"isActivated"`
	Details     json.RawMessage `json:"details,omitempty"`
	Contact     ContactInfo     `json:"contact"`
	Settings    TagSettings     `json:"settings"`
}

// DecodeDetails unmarshals the raw detail bag into the shape selected by the
// record's type. Returns nil for "any" (no concrete shape yet) and for
// records without details.
func (r *QRTagRecord) DecodeDetails() (TagDetails, error) {
	if len(r.Details) == 0 {
		return nil, nil
	}
	switch r.Type {
	case TagTypeItem:
		var d ItemDetails
		if err := json.Unmarshal(r.Details, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TagTypePet:
		var d PetDetails
		if err := json.Unmarshal(r.Details, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TagTypeEmergency:
		var d EmergencyDetails
		if err := json.Unmarshal(r.Details, &d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, nil
}

// ActivationPayload is the mutation body sent to the backend when a tag is
// activated. The tagged-union Details field guarantees only one type's fields
// can travel on the wire.
type ActivationPayload struct {
	Type     TagType     `json:"type"`
	Contact  ContactInfo `json:"contact"`
	Details  TagDetails  `json:"details"`
	Settings TagSettings `json:"settings"`
}

// ActivationResult is what the backend returns after a successful activation.
type ActivationResult struct {
	TempPassword string `json:"tempPassword,omitempty"`
	UserEmail    string `json:"userEmail"`
	IsNewUser    bool   `json:"isNewUser"`
}
