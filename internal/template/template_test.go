package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadIshaq/scanback/internal/activation"
	"github.com/FahadIshaq/scanback/internal/handler"
	"github.com/FahadIshaq/scanback/internal/model"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, name, data))
	return buf.String()
}

func TestNew(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Render(&buf, "missing.html", nil)
	assert.Error(t, err)
}

func TestHomeTemplate(t *testing.T) {
	out := render(t, "home.html", handler.HomeData{TagTypes: []string{"item", "pet", "emergency"}})
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "ScanBack")
	assert.Contains(t, out, "Item")
	assert.Contains(t, out, "Emergency")
}

func TestScanFormTemplate(t *testing.T) {
	t.Run("any tag shows the type switch", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypeAny, "")
		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:          "SB-1",
			Form:          form,
			CanChooseType: true,
			Countries:     handler.Countries,
		})

		assert.Contains(t, out, `value="set_type_pet"`)
		assert.Contains(t, out, `name="prev_type" value="item"`)
		assert.Contains(t, out, "ZA (+27)")
		assert.Contains(t, out, "disabled", "empty form disables submit")
	})

	t.Run("concrete tag hides the type switch", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypePet, "")
		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:      "SB-1",
			Form:      form,
			Countries: handler.Countries,
		})

		assert.NotContains(t, out, `value="set_type_pet"`)
		assert.Contains(t, out, "Pet details")
	})

	t.Run("valid form enables submit", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypeItem, "")
		form.SetContactField("name", "Jane")
		form.SetContactField("email", "jane@example.com")
		form.SetContactField("phone", "0821234567")
		form.SetDetailField("name", "Wallet")

		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:      "SB-1",
			Form:      form,
			Countries: handler.Countries,
		})
		assert.NotContains(t, out, "disabled")
	})

	t.Run("field errors render inline", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypeItem, "")
		form.SetContactField("email", "nope")
		form.SetContactField("phone", "12")

		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:      "SB-1",
			Form:      form,
			Countries: handler.Countries,
		})
		assert.Contains(t, out, "Please enter a valid email address")
		assert.Contains(t, out, "Please enter a valid phone number")
	})

	t.Run("submit error banner and focus anchor", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypeItem, "")
		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:        "SB-1",
			Form:        form,
			Countries:   handler.Countries,
			SubmitError: activation.MsgMissingRequired,
			FocusField:  activation.FieldContactName,
		})
		assert.Contains(t, out, activation.MsgMissingRequired)
		assert.Contains(t, out, "#contact-name")
	})

	t.Run("closed sections post their state as hidden fields", func(t *testing.T) {
		form := activation.NewFormState("SB-1", model.TagTypePet, "")
		form.ToggleSection(activation.SectionEmergencyDetails)

		out := render(t, "scan_form.html", handler.ScanFormData{
			Code:      "SB-1",
			Form:      form,
			Countries: handler.Countries,
		})
		assert.Contains(t, out, `name="sec_emergencyDetails" value="1"`)
		assert.Contains(t, out, `name="sec_pedigreeInfo" value="0"`)
		assert.Contains(t, out, `name="d_vetPhone"`)
	})
}

func TestFinderTemplate(t *testing.T) {
	record := &model.QRTagRecord{
		Code:        "SB-1",
		Type:        model.TagTypePet,
		IsActivated: true,
		Contact: model.ContactInfo{
			Name:    "Jane",
			Email:   "jane@example.com",
			Phone:   "+27821234567",
			Message: "Rex is **friendly** but fast.",
		},
		Settings: model.TagSettings{ShowContactOnFinderPage: true},
	}
	links := handler.BuildContactLinks(record)

	t.Run("renders pet details and owner block", func(t *testing.T) {
		out := render(t, "finder.html", handler.FinderData{
			Record:      record,
			Pet:         &model.PetDetails{Name: "Rex", Breed: "Beagle"},
			Links:       links,
			ShowContact: true,
		})

		assert.Contains(t, out, "Rex")
		assert.Contains(t, out, "Beagle")
		assert.Contains(t, out, "jane@example.com")
		assert.Contains(t, out, "<strong>friendly</strong>", "markdown message rendered")
		assert.Contains(t, out, "wa.me/27821234567")
	})

	t.Run("privacy setting hides the owner block", func(t *testing.T) {
		out := render(t, "finder.html", handler.FinderData{
			Record:      record,
			Pet:         &model.PetDetails{Name: "Rex"},
			Links:       links,
			ShowContact: false,
		})

		assert.NotContains(t, out, "jane@example.com")
		// Action links still let the finder reach the owner.
		assert.Contains(t, out, "wa.me/27821234567")
		assert.Contains(t, out, "tel:+27821234567")
	})

	t.Run("owner message is sanitized", func(t *testing.T) {
		r := *record
		r.Contact.Message = `<script>alert(1)</script>hello`
		out := render(t, "finder.html", handler.FinderData{
			Record: &r,
			Pet:    &model.PetDetails{Name: "Rex"},
			Links:  links,
		})

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hello")
	})
}

func TestSuccessTemplate(t *testing.T) {
	t.Run("new user sees credentials", func(t *testing.T) {
		out := render(t, "success.html", handler.SuccessData{
			Code: "SB-1",
			State: &activation.SuccessState{
				Result: model.ActivationResult{
					TempPassword: "hunter2",
					UserEmail:    "jane@example.com",
					IsNewUser:    true,
				},
				Submitted: model.ActivationPayload{
					Type:    model.TagTypeItem,
					Contact: model.ContactInfo{Name: "Jane", Phone: "+27821234567"},
				},
			},
		})

		assert.Contains(t, out, "hunter2")
		assert.Contains(t, out, "temporary password")
		assert.Contains(t, out, "Item")
	})

	t.Run("existing user sees no credentials", func(t *testing.T) {
		out := render(t, "success.html", handler.SuccessData{
			Code: "SB-1",
			State: &activation.SuccessState{
				Result: model.ActivationResult{
					UserEmail: "jane@example.com",
					IsNewUser: false,
				},
				Submitted: model.ActivationPayload{
					Type:    model.TagTypeItem,
					Contact: model.ContactInfo{Name: "Jane", Phone: "+27821234567"},
				},
			},
		})

		assert.NotContains(t, out, "temporary password")
		assert.Contains(t, out, "existing")
	})
}

func TestScanErrorTemplate(t *testing.T) {
	t.Run("retryable error offers a retry link", func(t *testing.T) {
		out := render(t, "scan_error.html", handler.ErrorData{
			Code:     "SB-1",
			Message:  "Request timed out. Please check your connection and try again.",
			CanRetry: true,
		})
		assert.Contains(t, out, "timed out")
		assert.Contains(t, out, `href="/scan/SB-1"`)
	})

	t.Run("terminal error has no retry link", func(t *testing.T) {
		out := render(t, "scan_error.html", handler.ErrorData{
			Code:    "SB-1",
			Message: "This tag is currently inactive.",
		})
		assert.NotContains(t, out, "Try again")
	})
}
