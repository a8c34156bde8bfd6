package activation

import (
	"github.com/FahadIshaq/scanback/internal/model"
	"github.com/FahadIshaq/scanback/internal/validate"
	"github.com/samber/lo"
)

// BuildPayload assembles the activation mutation body. Only the selected
// type's detail shape travels on the wire, and closed sections contribute
// nothing even when the form still holds stale values for them. Phone values
// are composed with the calling code here and nowhere earlier.
func (f *FormState) BuildPayload() model.ActivationPayload {
	contact := model.ContactInfo{
		Name:    f.Contact.Name,
		Email:   f.Contact.Email,
		Phone:   validate.ComposePhone(f.Contact.CountryCode, f.Contact.Phone),
		Message: f.Contact.Message,
	}
	if f.Contact.BackupPhone != "" {
		contact.BackupPhone = validate.ComposePhone(f.Contact.CountryCode, f.Contact.BackupPhone)
	}

	return model.ActivationPayload{
		Type:     f.SelectedType,
		Contact:  contact,
		Details:  f.buildDetails(),
		Settings: f.Settings,
	}
}

func (f *FormState) buildDetails() model.TagDetails {
	switch f.SelectedType {
	case model.TagTypePet:
		d := model.PetDetails{
			Name:  f.Pet.Name,
			Breed: f.Pet.Breed,
			Age:   f.Pet.Age,
			Image: f.Pet.Image,
		}
		if f.ShowEmergencyDetails {
			d.MedicalNotes = f.Pet.MedicalNotes
			d.VetName = f.Pet.VetName
			d.VetPhone = f.Pet.VetPhone
			d.EmergencyContact = f.Pet.EmergencyContact
		}
		if f.ShowPedigreeInfo {
			d.Pedigree = f.Pet.Pedigree
		}
		return d

	case model.TagTypeEmergency:
		d := model.EmergencyDetails{
			Name:  f.Emergency.Name,
			Image: f.Emergency.Image,
		}
		if f.ShowEmergencyMedicalDetails {
			d.MedicalAid = f.Emergency.MedicalAid
			d.BloodType = f.Emergency.BloodType
			d.Allergies = f.Emergency.Allergies
			d.Medications = f.Emergency.Medications
			d.OrganDonor = f.Emergency.OrganDonor
			d.ICENote = f.Emergency.ICENote
		}
		if f.ShowEmergencyContacts {
			d.Contact1 = f.Emergency.Contact1
			d.Contact2 = f.Emergency.Contact2
		}
		return d

	default:
		return model.ItemDetails{
			Name:        f.Item.Name,
			Category:    f.Item.Category,
			Color:       f.Item.Color,
			Brand:       f.Item.Brand,
			Model:       f.Item.Model,
			Description: f.Item.Description,
			Image:       f.Item.Image,
		}
	}
}

// VisiblePhoneFields lists the phone fields that are actually collected for
// the current type and toggle state; only these can block submission.
func (f *FormState) VisiblePhoneFields() []PhoneField {
	fields := []PhoneField{PhoneMain, PhoneBackup}
	switch f.SelectedType {
	case model.TagTypePet:
		if f.ShowEmergencyDetails {
			fields = append(fields, PhoneVet, PhonePetEmergency)
		}
	case model.TagTypeEmergency:
		if f.ShowEmergencyContacts {
			fields = append(fields, PhoneEmergency1, PhoneEmergency2)
		}
	}
	return fields
}

// VisiblePhoneErrors returns the error entries for visible phone fields only.
func (f *FormState) VisiblePhoneErrors() map[PhoneField]string {
	visible := f.VisiblePhoneFields()
	return lo.PickByKeys(f.PhoneErrors, visible)
}
