package activation

import "github.com/FahadIshaq/scanback/internal/validate"

// Banner messages shown above the form when submission is blocked.
const (
	MsgMissingRequired = "Please fill in all required fields."
	MsgFixValidation   = "Please fix validation errors before submitting."
)

// Field identifiers used for focus-jump anchors on validation failure,
// ordered by FirstInvalidField's fixed priority.
const (
	FieldContactName  = "contact-name"
	FieldEmail        = "contact-email"
	FieldPhone        = "contact-phone"
	FieldBackupPhone  = "contact-backup-phone"
	FieldDetailName   = "detail-name"
	FieldAge          = "pet-age"
	FieldVetPhone     = "pet-vet-phone"
	FieldPetEmergency = "pet-emergency-contact"
	FieldEmergency1   = "emergency-contact-1-phone"
	FieldEmergency2   = "emergency-contact-2-phone"
)

// IsValid is the submit-button predicate: the four required-field presences,
// email-format validity, and a clean main/backup phone error map. Section
// phone errors and the age error are checked again by the submit-time guard;
// both gates block independently.
func (f *FormState) IsValid() bool {
	if f.Contact.Name == "" || f.Contact.Email == "" || f.Contact.Phone == "" || f.DetailName() == "" {
		return false
	}
	if validate.Email(f.Contact.Email) != "" {
		return false
	}
	if f.PhoneErrors[PhoneMain] != "" || f.PhoneErrors[PhoneBackup] != "" {
		return false
	}
	return true
}

// HasBlockingErrors reports whether any tracked validation error would make a
// submission unsafe, beyond the required-field checks in IsValid. Phone
// errors on fields hidden by the current type/toggle state do not block:
// their values never reach the payload.
func (f *FormState) HasBlockingErrors() bool {
	if f.EmailError != "" || f.AgeError != "" {
		return true
	}
	for _, msg := range f.VisiblePhoneErrors() {
		if msg != "" {
			return true
		}
	}
	return false
}

// FirstInvalidField returns the anchor of the first offending field in the
// fixed priority order, or "" when the form is submittable.
func (f *FormState) FirstInvalidField() string {
	if f.Contact.Name == "" {
		return FieldContactName
	}
	if f.Contact.Email == "" || validate.Email(f.Contact.Email) != "" {
		return FieldEmail
	}
	if f.Contact.Phone == "" || validate.Phone(f.Contact.Phone) != "" {
		return FieldPhone
	}
	if validate.Phone(f.Contact.BackupPhone) != "" {
		return FieldBackupPhone
	}
	if f.DetailName() == "" {
		return FieldDetailName
	}
	if f.AgeError != "" {
		return FieldAge
	}
	visible := f.VisiblePhoneErrors()
	if visible[PhoneVet] != "" {
		return FieldVetPhone
	}
	if visible[PhonePetEmergency] != "" {
		return FieldPetEmergency
	}
	if visible[PhoneEmergency1] != "" {
		return FieldEmergency1
	}
	if visible[PhoneEmergency2] != "" {
		return FieldEmergency2
	}
	return ""
}
