package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/FahadIshaq/scanback/internal/activation"
	"github.com/FahadIshaq/scanback/internal/model"
)

// Countries offered in the phone country selector. The backend accepts any
// region the phone library knows; this is just the curated dropdown.
var Countries = []string{
	"ZA", "BW", "NA", "ZW", "MZ", "KE", "NG",
	"GB", "US", "AU", "DE", "FR", "NL", "PT", "ES", "AE",
}

const maxUploadBytes = 8 << 20 // multipart memory cap; image size itself is capped at 5MB

// ScanFormData is the template payload for the activation form view.
type ScanFormData struct {
	Code          string
	Form          *activation.FormState
	CanChooseType bool
	Countries     []string
	SubmitError   string
	ImageError    string
	FocusField    string
}

// FinderData is the template payload for the finder contact view.
type FinderData struct {
	Record      *model.QRTagRecord
	Item        *model.ItemDetails
	Pet         *model.PetDetails
	Emergency   *model.EmergencyDetails
	Links       ContactLinks
	ShowContact bool
}

// SuccessData is the template payload after a successful activation.
type SuccessData struct {
	Code  string
	State *activation.SuccessState
}

// ErrorData is the template payload for the scan error view.
type ErrorData struct {
	Code     string
	Message  string
	CanRetry bool
}

// ScanPage handles GET /scan/{code}: the entry point for a scanned tag.
// An optional ?type= query pre-selects the concrete type for "any" tags.
func (h *Handler) ScanPage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	preselect := model.TagType(r.URL.Query().Get("type"))

	ctrl, err := h.newController()
	if err != nil {
		slog.Error("failed to build controller", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	ctrl.Load(r.Context(), code, preselect)
	h.renderView(w, ctrl, code, "", "")
}

// ScanSubmit handles POST /scan/{code}: type switches, section toggles,
// message suggestion and the final activation submit. The whole form state
// travels with every post; the controller is rebuilt per request.
func (h *Handler) ScanSubmit(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
	}

	ctrl, err := h.newController()
	if err != nil {
		slog.Error("failed to build controller", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	prevType := model.TagType(r.FormValue("prev_type"))
	ctrl.Load(r.Context(), code, prevType)

	if ctrl.View() != activation.ViewActivationForm {
		// The tag disappeared or got activated since the form was rendered;
		// show whatever the fresh load resolved to.
		h.renderView(w, ctrl, code, "", "")
		return
	}

	form := ctrl.Form()
	h.restoreForm(form, r)
	imageErr := h.applyUpload(form, r)

	action := r.FormValue("action")
	switch {
	case strings.HasPrefix(action, "set_type_"):
		form.SwitchTagType(model.TagType(strings.TrimPrefix(action, "set_type_")))

	case strings.HasPrefix(action, "toggle_"):
		form.ToggleSection(activation.Section(strings.TrimPrefix(action, "toggle_")))

	case action == "suggest_message":
		form.FocusMessage()

	case action == "remove_image":
		form.ClearImage()
	}

	if action == "submit" && imageErr == "" {
		ctrl.Submit(r.Context())
	}

	focus := ""
	if ctrl.SubmitError() != "" {
		focus = form.FirstInvalidField()
	}
	h.renderView(w, ctrl, code, imageErr, focus)
}

// restoreForm replays the posted values into a fresh form state. Details are
// applied before the message-clicked flag so restoration itself never
// triggers template regeneration; an actual name change across the
// round-trip is detected against the previous value and regenerates.
func (h *Handler) restoreForm(form *activation.FormState, r *http.Request) {
	for _, field := range []string{"name", "email", "countryCode", "phone", "backupPhone"} {
		form.SetContactField(field, r.FormValue("c_"+field))
	}

	form.ShowEmergencyDetails = r.FormValue("sec_emergencyDetails") == "1"
	form.ShowPedigreeInfo = r.FormValue("sec_pedigreeInfo") == "1"
	form.ShowEmergencyMedicalDetails = r.FormValue("sec_emergencyMedicalDetails") == "1"
	form.ShowEmergencyContacts = r.FormValue("sec_emergencyContacts") == "1"

	for _, field := range detailFields(form.SelectedType) {
		form.SetDetailField(field, r.FormValue("d_"+field))
	}
	form.SetOrganDonor(r.FormValue("d_organDonor") == "on")

	for _, name := range []string{"instantAlerts", "locationSharing", "showContactOnFinderPage", "useBackupNumber"} {
		form.SetSetting(name, r.FormValue("s_"+name) == "on")
	}

	if img := r.FormValue("img_data"); img != "" {
		form.RestoreImage(img)
	}

	form.MessageClicked = r.FormValue("message_clicked") == "1"
	form.SetContactField("message", r.FormValue("c_message"))

	// Emulate the live name-change event across the stateless round-trip.
	if form.DetailName() != r.FormValue("prev_detail_name") {
		form.RegenerateMessage()
	}
}

// detailFields lists the posted field names per concrete type.
func detailFields(t model.TagType) []string {
	switch t {
	case model.TagTypePet:
		return []string{
			"name", "breed", "age", "medicalNotes", "vetName", "vetPhone",
			"emergencyContact", "pedigreeRegisteredName", "pedigreeRegistrationNumber", "pedigreeBreeder",
		}
	case model.TagTypeEmergency:
		return []string{
			"name", "medicalAid", "bloodType", "allergies", "medications", "iceNote",
			"contact1Name", "contact1Phone", "contact1Relationship",
			"contact2Name", "contact2Phone", "contact2Relationship",
		}
	default:
		return []string{"name", "category", "color", "brand", "model", "description"}
	}
}

// applyUpload validates and attaches an uploaded image, returning a
// user-visible error message when the file is rejected.
func (h *Handler) applyUpload(form *activation.FormState, r *http.Request) string {
	if r.MultipartForm == nil {
		return ""
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return "" // no file attached
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		return "Failed to read the uploaded image."
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if err := form.AttachImage(mimeType, data); err != nil {
		return err.Error()
	}
	return ""
}

// renderView renders the controller's active view to a buffer first so a
// template failure never emits a half-written page.
func (h *Handler) renderView(w http.ResponseWriter, ctrl *activation.Controller, code, imageErr, focus string) {
	var name string
	var data any

	switch ctrl.View() {
	case activation.ViewError:
		name = "scan_error.html"
		data = ErrorData{
			Code:     code,
			Message:  ctrl.ErrorMessage(),
			CanRetry: ctrl.CanRetry(),
		}

	case activation.ViewFinderDisplay:
		record := ctrl.Record()
		fd := FinderData{
			Record:      record,
			Links:       BuildContactLinks(record),
			ShowContact: record.Settings.ShowContactOnFinderPage,
		}
		switch d := ctrl.Details().(type) {
		case model.ItemDetails:
			fd.Item = &d
		case model.PetDetails:
			fd.Pet = &d
		case model.EmergencyDetails:
			fd.Emergency = &d
		}
		name = "finder.html"
		data = fd

	case activation.ViewSuccessDisplay:
		name = "success.html"
		data = SuccessData{Code: code, State: ctrl.Success()}

	default:
		name = "scan_form.html"
		data = ScanFormData{
			Code:          code,
			Form:          ctrl.Form(),
			CanChooseType: ctrl.Form() != nil && ctrl.Form().StoredType == model.TagTypeAny,
			Countries:     Countries,
			SubmitError:   ctrl.SubmitError(),
			ImageError:    imageErr,
			FocusField:    focus,
		}
	}

	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, name, data); err != nil {
		slog.Error("failed to render scan view", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}
