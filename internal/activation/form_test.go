package activation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadIshaq/scanback/internal/model"
)

func TestNewFormState(t *testing.T) {
	t.Run("concrete type keeps its type", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		assert.Equal(t, model.TagTypePet, f.StoredType)
		assert.Equal(t, model.TagTypePet, f.SelectedType)
	})

	t.Run("any defaults to item", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		assert.Equal(t, model.TagTypeItem, f.SelectedType)
	})

	t.Run("any honors concrete preselect", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, model.TagTypeEmergency)
		assert.Equal(t, model.TagTypeEmergency, f.SelectedType)
	})

	t.Run("any ignores invalid preselect", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, model.TagType("car"))
		assert.Equal(t, model.TagTypeItem, f.SelectedType)
	})

	t.Run("concrete type ignores preselect", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, model.TagTypePet)
		assert.Equal(t, model.TagTypeItem, f.SelectedType)
	})

	t.Run("seeded defaults", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		assert.Equal(t, "ZA", f.Contact.CountryCode)
		assert.True(t, f.Settings.InstantAlerts)
		assert.True(t, f.Settings.LocationSharing)
		assert.True(t, f.Settings.ShowContactOnFinderPage)
		assert.False(t, f.Settings.UseBackupNumber)
		assert.False(t, f.ShowEmergencyDetails)
		assert.False(t, f.MessageClicked)
	})
}

func TestSetContactField(t *testing.T) {
	t.Run("email tracks format error live", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		f.SetContactField("email", "not-an-email")
		assert.NotEmpty(t, f.EmailError)

		f.SetContactField("email", "jane@example.com")
		assert.Empty(t, f.EmailError)
	})

	t.Run("phone error clears when corrected", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		f.SetContactField("phone", "12")
		assert.NotEmpty(t, f.PhoneError("main"))

		f.SetContactField("phone", "0821234567")
		assert.Empty(t, f.PhoneError("main"))
	})

	t.Run("unknown country code is rejected", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		f.SetContactField("countryCode", "XX")
		assert.Equal(t, "ZA", f.Contact.CountryCode)

		f.SetContactField("countryCode", "GB")
		assert.Equal(t, "GB", f.Contact.CountryCode)
	})
}

func TestMessageLifecycle(t *testing.T) {
	t.Run("no template before first focus", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		f.SetDetailField("name", "Rex")
		assert.Empty(t, f.Contact.Message)
	})

	t.Run("focus seeds template with current name", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		f.SetDetailField("name", "Rex")
		f.FocusMessage()
		assert.Contains(t, f.Contact.Message, "Rex")
	})

	t.Run("name change after focus regenerates", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		f.FocusMessage()
		f.SetDetailField("name", "Rex")
		assert.Contains(t, f.Contact.Message, "Rex")

		f.SetDetailField("name", "Buddy")
		assert.Contains(t, f.Contact.Message, "Buddy")
		assert.NotContains(t, f.Contact.Message, "Rex")
	})

	t.Run("setting the same name keeps manual edits", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		f.SetDetailField("name", "Rex")
		f.FocusMessage()
		f.SetContactField("message", "Call me anytime, Rex bites.")

		f.SetDetailField("name", "Rex")
		assert.Equal(t, "Call me anytime, Rex bites.", f.Contact.Message)
	})

	t.Run("focus does not overwrite a prefilled message", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypePet, "")
		f.SetContactField("message", "custom")
		f.FocusMessage()
		assert.Equal(t, "custom", f.Contact.Message)
	})
}

func TestSwitchTagType(t *testing.T) {
	t.Run("only any tags can switch", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		f.SwitchTagType(model.TagTypePet)
		assert.Equal(t, model.TagTypeItem, f.SelectedType)
	})

	t.Run("switching to the active type is a no-op", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		f.SetDetailField("name", "Wallet")
		f.SwitchTagType(model.TagTypeItem)
		assert.Equal(t, "Wallet", f.Item.Name)
	})

	t.Run("switch clears other shapes and sections", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, model.TagTypePet)
		f.SetDetailField("name", "Rex")
		f.SetDetailField("breed", "Beagle")
		f.ToggleSection(SectionEmergencyDetails)
		f.SetDetailField("vetPhone", "12")
		require.NotEmpty(t, f.PhoneError("vet"))

		f.SwitchTagType(model.TagTypeItem)

		assert.Equal(t, model.TagTypeItem, f.SelectedType)
		assert.Empty(t, f.Pet.Name)
		assert.Empty(t, f.Pet.Breed)
		assert.Empty(t, f.PhoneError("vet"))
		assert.False(t, f.ShowEmergencyDetails)
	})

	t.Run("switch clears all image slots", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		require.NoError(t, f.AttachImage("image/png", []byte{1, 2, 3}))
		require.NotEmpty(t, f.Image())

		f.SwitchTagType(model.TagTypePet)
		assert.Empty(t, f.Item.Image)
		assert.Empty(t, f.Pet.Image)
		assert.Empty(t, f.Emergency.Image)
	})

	t.Run("switch clears stale age error", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, model.TagTypePet)
		f.SetDetailField("age", "99")
		require.NotEmpty(t, f.AgeError)

		f.SwitchTagType(model.TagTypeEmergency)
		assert.Empty(t, f.AgeError)
	})

	t.Run("switch keeps contact input", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		f.SetContactField("name", "Jane")
		f.SetContactField("phone", "0821234567")

		f.SwitchTagType(model.TagTypeEmergency)
		assert.Equal(t, "Jane", f.Contact.Name)
		assert.Equal(t, "0821234567", f.Contact.Phone)
	})

	t.Run("switch regenerates message once touched", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, "")
		f.FocusMessage()
		require.Contains(t, f.Contact.Message, "item")

		f.SwitchTagType(model.TagTypePet)
		assert.Contains(t, f.Contact.Message, "pet")
	})
}

func TestAttachImage(t *testing.T) {
	t.Run("accepts png and builds data url", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		require.NoError(t, f.AttachImage("image/png", []byte("fake")))
		assert.True(t, strings.HasPrefix(f.Image(), "data:image/png;base64,"))
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		err := f.AttachImage("image/gif", []byte("fake"))
		require.Error(t, err)
		assert.Empty(t, f.Image())
	})

	t.Run("rejects oversized image", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		err := f.AttachImage("image/jpeg", bytes.Repeat([]byte{0xff}, maxImageBytes+1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "5MB")
		assert.Empty(t, f.Image())
	})

	t.Run("image lands in the selected type slot", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeAny, model.TagTypeEmergency)
		require.NoError(t, f.AttachImage("image/webp", []byte("fake")))
		assert.NotEmpty(t, f.Emergency.Image)
		assert.Empty(t, f.Item.Image)
	})

	t.Run("clear removes only the selected slot", func(t *testing.T) {
		f := NewFormState("SB-1", model.TagTypeItem, "")
		require.NoError(t, f.AttachImage("image/png", []byte("fake")))
		f.ClearImage()
		assert.Empty(t, f.Image())
	})
}

func TestMessageTemplate(t *testing.T) {
	assert.Contains(t, MessageTemplate(model.TagTypePet, "Rex"), "Rex")
	assert.Contains(t, MessageTemplate(model.TagTypePet, ""), "my pet")
	assert.Contains(t, MessageTemplate(model.TagTypeItem, "wallet"), "wallet")
	assert.Contains(t, MessageTemplate(model.TagTypeItem, ""), "my item")

	// The emergency template never interpolates the name.
	assert.Equal(t,
		MessageTemplate(model.TagTypeEmergency, "Jane"),
		MessageTemplate(model.TagTypeEmergency, ""))
}
