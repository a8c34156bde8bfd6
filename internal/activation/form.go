// Package activation implements the scan-page view controller: the state
// machine that decides which view a scanned tag gets (activation form, finder
// display, success, error) and what must be valid before the activation
// mutation is allowed to fire.
package activation

import (
	"encoding/base64"
	"fmt"

	"github.com/FahadIshaq/scanback/internal/model"
	"github.com/FahadIshaq/scanback/internal/validate"
)

// PhoneField identifies one phone-bearing form field. Each is validated and
// tracked independently; a field only blocks submission while it is visible
// for the current type/toggle state.
type PhoneField string

const (
	PhoneMain         PhoneField = "main"
	PhoneBackup       PhoneField = "backup"
	PhoneVet          PhoneField = "vet"
	PhonePetEmergency PhoneField = "petEmergency"
	PhoneEmergency1   PhoneField = "emergencyContact1"
	PhoneEmergency2   PhoneField = "emergencyContact2"
)

// Section identifies a collapsible detail subsection. While a section is
// closed its fields are excluded from the submission payload regardless of
// any stale values left in form state.
type Section string

const (
	SectionEmergencyDetails Section = "emergencyDetails"        // pet: medical/vet/emergency contact
	SectionPedigreeInfo     Section = "pedigreeInfo"            // pet: pedigree registration
	SectionEmergencyMedical Section = "emergencyMedicalDetails" // emergency: medical profile
	SectionEmergencyContact Section = "emergencyContacts"       // emergency: ICE contacts 1/2
)

const (
	// maxImageBytes caps inline image attachments at 5MB.
	maxImageBytes = 5 << 20
)

// ContactForm mirrors ContactInfo during editing. Phone numbers are held as
// raw national input; composition with the calling code happens at
// submission time only.
type ContactForm struct {
	Name        string
	Email       string
	CountryCode string
	Phone       string
	BackupPhone string
	Message     string
}

// ItemForm holds item-specific fields during editing.
type ItemForm struct {
	Name        string
	Category    string
	Color       string
	Brand       string
	Model       string
	Description string
	Image       string
}

// PetForm holds pet-specific fields during editing.
type PetForm struct {
	Name             string
	Breed            string
	Age              string
	MedicalNotes     string
	VetName          string
	VetPhone         string
	EmergencyContact string
	Pedigree         model.PedigreeInfo
	Image            string
}

// EmergencyForm holds emergency-profile fields during editing.
type EmergencyForm struct {
	Name        string
	MedicalAid  string
	BloodType   string
	Allergies   string
	Medications string
	OrganDonor  bool
	ICENote     string
	Contact1    model.EmergencyContact
	Contact2    model.EmergencyContact
	Image       string
}

// FormState is the client-owned activation form state for one session.
// All three detail shapes are held at once so an "any" tag can switch types
// mid-session without losing the current type's input; only the selected
// shape ever reaches the payload.
type FormState struct {
	Code string

	// StoredType is the record's authoritative type. SelectedType is the
	// locally chosen concrete type; for non-"any" tags they coincide.
	StoredType   model.TagType
	SelectedType model.TagType

	Contact   ContactForm
	Item      ItemForm
	Pet       PetForm
	Emergency EmergencyForm
	Settings  model.TagSettings

	ShowEmergencyDetails        bool
	ShowPedigreeInfo            bool
	ShowEmergencyMedicalDetails bool
	ShowEmergencyContacts       bool

	PhoneErrors map[PhoneField]string
	EmailError  string
	AgeError    string

	// MessageClicked is set on first focus of the finder-message textarea;
	// from then on name/type changes regenerate the template (overwriting
	// any manual edits, which matches the shipped behavior).
	MessageClicked bool
}

// NewFormState seeds a form for an unactivated tag. For "any" tags the
// selection defaults to "item" unless a valid concrete preselect is given.
func NewFormState(code string, storedType model.TagType, preselect model.TagType) *FormState {
	selected := storedType
	if storedType == model.TagTypeAny {
		selected = model.TagTypeItem
		if preselect.IsConcrete() {
			selected = preselect
		}
	}
	return &FormState{
		Code:         code,
		StoredType:   storedType,
		SelectedType: selected,
		Contact: ContactForm{
			CountryCode: validate.DefaultRegion,
		},
		Settings: model.TagSettings{
			InstantAlerts:           true,
			LocationSharing:         true,
			ShowContactOnFinderPage: true,
		},
		PhoneErrors: make(map[PhoneField]string),
	}
}

// SetContactField applies one contact field update and re-derives the
// affected error entry.
func (f *FormState) SetContactField(field, value string) {
	switch field {
	case "name":
		f.Contact.Name = value
	case "email":
		f.Contact.Email = value
		f.EmailError = validate.Email(value)
	case "countryCode":
		if validate.Region(value) {
			f.Contact.CountryCode = value
		}
	case "phone":
		f.Contact.Phone = value
		f.setPhoneError(PhoneMain, validate.Phone(value))
	case "backupPhone":
		f.Contact.BackupPhone = value
		f.setPhoneError(PhoneBackup, validate.Phone(value))
	case "message":
		f.Contact.Message = value
	}
}

// SetDetailField applies one detail field update on the currently selected
// type. A change to the detail name regenerates the finder-message template
// when the message has been focused; setting the same name again does not.
func (f *FormState) SetDetailField(field, value string) {
	prevName := f.DetailName()
	switch f.SelectedType {
	case model.TagTypeItem:
		f.setItemField(field, value)
	case model.TagTypePet:
		f.setPetField(field, value)
	case model.TagTypeEmergency:
		f.setEmergencyField(field, value)
	}
	if field == "name" && value != prevName {
		f.RegenerateMessage()
	}
}

func (f *FormState) setItemField(field, value string) {
	switch field {
	case "name":
		f.Item.Name = value
	case "category":
		f.Item.Category = value
	case "color":
		f.Item.Color = value
	case "brand":
		f.Item.Brand = value
	case "model":
		f.Item.Model = value
	case "description":
		f.Item.Description = value
	}
}

func (f *FormState) setPetField(field, value string) {
	switch field {
	case "name":
		f.Pet.Name = value
	case "breed":
		f.Pet.Breed = value
	case "age":
		f.Pet.Age = value
		f.AgeError = validate.Age(value)
	case "medicalNotes":
		f.Pet.MedicalNotes = value
	case "vetName":
		f.Pet.VetName = value
	case "vetPhone":
		f.Pet.VetPhone = value
		f.setPhoneError(PhoneVet, validate.Phone(value))
	case "emergencyContact":
		f.Pet.EmergencyContact = value
		f.setPhoneError(PhonePetEmergency, validate.Phone(value))
	case "pedigreeRegisteredName":
		f.Pet.Pedigree.RegisteredName = value
	case "pedigreeRegistrationNumber":
		f.Pet.Pedigree.RegistrationNumber = value
	case "pedigreeBreeder":
		f.Pet.Pedigree.Breeder = value
	}
}

func (f *FormState) setEmergencyField(field, value string) {
	switch field {
	case "name":
		f.Emergency.Name = value
	case "medicalAid":
		f.Emergency.MedicalAid = value
	case "bloodType":
		f.Emergency.BloodType = value
	case "allergies":
		f.Emergency.Allergies = value
	case "medications":
		f.Emergency.Medications = value
	case "iceNote":
		f.Emergency.ICENote = value
	case "contact1Name":
		f.Emergency.Contact1.Name = value
	case "contact1Phone":
		f.Emergency.Contact1.Phone = value
		f.setPhoneError(PhoneEmergency1, validate.Phone(value))
	case "contact1Relationship":
		f.Emergency.Contact1.Relationship = value
	case "contact2Name":
		f.Emergency.Contact2.Name = value
	case "contact2Phone":
		f.Emergency.Contact2.Phone = value
		f.setPhoneError(PhoneEmergency2, validate.Phone(value))
	case "contact2Relationship":
		f.Emergency.Contact2.Relationship = value
	}
}

// SetOrganDonor toggles the organ-donor flag on the emergency profile.
func (f *FormState) SetOrganDonor(v bool) {
	f.Emergency.OrganDonor = v
}

// SetSetting applies one settings toggle.
func (f *FormState) SetSetting(name string, value bool) {
	switch name {
	case "instantAlerts":
		f.Settings.InstantAlerts = value
	case "locationSharing":
		f.Settings.LocationSharing = value
	case "showContactOnFinderPage":
		f.Settings.ShowContactOnFinderPage = value
	case "useBackupNumber":
		f.Settings.UseBackupNumber = value
	}
}

// ToggleSection flips a detail subsection open or closed.
func (f *FormState) ToggleSection(s Section) {
	switch s {
	case SectionEmergencyDetails:
		f.ShowEmergencyDetails = !f.ShowEmergencyDetails
	case SectionPedigreeInfo:
		f.ShowPedigreeInfo = !f.ShowPedigreeInfo
	case SectionEmergencyMedical:
		f.ShowEmergencyMedicalDetails = !f.ShowEmergencyMedicalDetails
	case SectionEmergencyContact:
		f.ShowEmergencyContacts = !f.ShowEmergencyContacts
	}
}

// SwitchTagType changes the locally selected concrete type of an "any" tag.
// The clearing pass wipes every field belonging to the other types' shapes,
// resets all image slots, collapses every detail section, and regenerates the
// message template. Selecting the already-active type is a no-op, which also
// makes initial seeding safe.
func (f *FormState) SwitchTagType(t model.TagType) {
	if f.StoredType != model.TagTypeAny || !t.IsConcrete() || t == f.SelectedType {
		return
	}
	f.SelectedType = t

	// Image slots are independent per type but all reset on a switch.
	f.Item.Image = ""
	f.Pet.Image = ""
	f.Emergency.Image = ""

	switch t {
	case model.TagTypeItem:
		f.Pet = PetForm{}
		f.Emergency = EmergencyForm{}
	case model.TagTypePet:
		f.Item = ItemForm{}
		f.Emergency = EmergencyForm{}
	case model.TagTypeEmergency:
		f.Item = ItemForm{}
		f.Pet = PetForm{}
	}

	// Stale errors for cleared fields must not keep blocking submission.
	f.AgeError = ""
	for _, pf := range []PhoneField{PhoneVet, PhonePetEmergency, PhoneEmergency1, PhoneEmergency2} {
		delete(f.PhoneErrors, pf)
	}

	f.ShowEmergencyDetails = false
	f.ShowPedigreeInfo = false
	f.ShowEmergencyMedicalDetails = false
	f.ShowEmergencyContacts = false

	f.RegenerateMessage()
}

// FocusMessage marks the finder-message textarea as touched and seeds the
// template on first focus.
func (f *FormState) FocusMessage() {
	if f.MessageClicked {
		return
	}
	f.MessageClicked = true
	if f.Contact.Message == "" {
		f.Contact.Message = MessageTemplate(f.SelectedType, f.DetailName())
	}
}

// RegenerateMessage rewrites the message from the template. It runs whenever
// the name or active type changes, but only once the textarea has been
// touched; manual edits are overwritten, which matches the shipped behavior.
func (f *FormState) RegenerateMessage() {
	if !f.MessageClicked {
		return
	}
	f.Contact.Message = MessageTemplate(f.SelectedType, f.DetailName())
}

// DetailName returns the name field of the currently selected detail shape.
func (f *FormState) DetailName() string {
	switch f.SelectedType {
	case model.TagTypePet:
		return f.Pet.Name
	case model.TagTypeEmergency:
		return f.Emergency.Name
	default:
		return f.Item.Name
	}
}

// AttachImage validates and stores an inline image for the selected type.
// Rejected uploads commit no partial state.
func (f *FormState) AttachImage(mimeType string, data []byte) error {
	switch mimeType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return fmt.Errorf("unsupported image type %q: use PNG, JPEG or WebP", mimeType)
	}
	if len(data) > maxImageBytes {
		return fmt.Errorf("image is too large: maximum size is 5MB")
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	switch f.SelectedType {
	case model.TagTypePet:
		f.Pet.Image = dataURL
	case model.TagTypeEmergency:
		f.Emergency.Image = dataURL
	default:
		f.Item.Image = dataURL
	}
	return nil
}

// RestoreImage puts an already-validated image data URL back into the
// selected type's slot, used when replaying posted form state.
func (f *FormState) RestoreImage(dataURL string) {
	switch f.SelectedType {
	case model.TagTypePet:
		f.Pet.Image = dataURL
	case model.TagTypeEmergency:
		f.Emergency.Image = dataURL
	default:
		f.Item.Image = dataURL
	}
}

// ClearImage removes the selected type's attached image.
func (f *FormState) ClearImage() {
	f.RestoreImage("")
}

// Image returns the selected type's attached image data URL, if any.
func (f *FormState) Image() string {
	switch f.SelectedType {
	case model.TagTypePet:
		return f.Pet.Image
	case model.TagTypeEmergency:
		return f.Emergency.Image
	default:
		return f.Item.Image
	}
}

func (f *FormState) setPhoneError(field PhoneField, msg string) {
	if msg == "" {
		delete(f.PhoneErrors, field)
		return
	}
	f.PhoneErrors[field] = msg
}

// PhoneError returns the tracked error for one phone field. It takes a plain
// string so templates can call it directly.
func (f *FormState) PhoneError(field string) string {
	return f.PhoneErrors[PhoneField(field)]
}
