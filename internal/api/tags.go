package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/FahadIshaq/scanback/internal/client"
	"github.com/FahadIshaq/scanback/internal/model"
	"github.com/FahadIshaq/scanback/internal/validate"
)

// GetTag handles GET /api/v1/tags/{code}.
//
//	@Summary		Get public tag record
//	@Description	Returns the public record for a tag code. Owner contact is redacted unless the owner opted into showing it.
//	@Tags			tags
//	@Produce		json
//	@Param			code	path		string	true	"Tag code"
//	@Success		200		{object}	TagResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/tags/{code} [get]
func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	code, ok := h.validateCode(w, r)
	if !ok {
		return
	}

	record, err := h.client.GetPublicQRCode(r.Context(), code)
	if err != nil {
		h.writeFetchError(w, code, err)
		return
	}

	resp := TagResponse{
		Code:        record.Code,
		Type:        record.Type,
		IsActivated: record.IsActivated,
		Settings:    record.Settings,
	}
	if details, err := record.DecodeDetails(); err == nil {
		resp.Details = details
	}
	if !record.IsActivated || record.Settings.ShowContactOnFinderPage {
		contact := record.Contact
		resp.Contact = &contact
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ActivateTag handles POST /api/v1/tags/{code}/activate.
//
//	@Summary		Activate a tag
//	@Description	Validates the activation form and forwards it to the backend.
//	@Tags			tags
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string			true	"Tag code"
//	@Param			body	body		ActivateRequest	true	"Activation form"
//	@Success		200		{object}	ActivateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/v1/tags/{code}/activate [post]
func (h *Handler) ActivateTag(w http.ResponseWriter, r *http.Request) {
	code, ok := h.validateCode(w, r)
	if !ok {
		return
	}

	var req ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	payload, msg := buildPayload(&req)
	if msg != "" {
		h.writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	result, err := h.client.ActivateQRCode(r.Context(), code, *payload)
	if err != nil {
		slog.Error("api: activation failed", "code", code, "error", err)
		if m := client.Message(err); m != "" {
			h.writeError(w, http.StatusBadGateway, m)
			return
		}
		h.writeError(w, http.StatusBadGateway, "activation failed")
		return
	}

	h.writeJSON(w, http.StatusOK, ActivateResponse{
		TempPassword: result.TempPassword,
		UserEmail:    result.UserEmail,
		IsNewUser:    result.IsNewUser,
	})
}

// TrackScan handles POST /api/v1/tags/{code}/scans.
//
//	@Summary		Record a scan
//	@Description	Queues a best-effort scan event for an activated tag. Always accepted.
//	@Tags			tags
//	@Produce		json
//	@Param			code	path	string	true	"Tag code"
//	@Success		202		"accepted"
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/tags/{code}/scans [post]
func (h *Handler) TrackScan(w http.ResponseWriter, r *http.Request) {
	code, ok := h.validateCode(w, r)
	if !ok {
		return
	}

	if h.tracker != nil {
		h.tracker.Track(code)
	} else if err := h.client.TrackScan(context.WithoutCancel(r.Context()), code); err != nil {
		slog.Debug("api: scan tracking failed", "code", code, "error", err)
	}

	w.WriteHeader(http.StatusAccepted)
}

// buildPayload validates the request with the activation validators and
// assembles the backend payload. Returns a non-empty message on rejection.
func buildPayload(req *ActivateRequest) (*model.ActivationPayload, string) {
	if !req.Type.IsConcrete() {
		return nil, "type must be one of item, pet, emergency"
	}
	c := req.Contact
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return nil, "contact name, email and phone are required"
	}
	if msg := validate.Email(c.Email); msg != "" {
		return nil, msg
	}
	if msg := validate.Phone(c.Phone); msg != "" {
		return nil, msg
	}
	if c.BackupPhone != "" {
		if msg := validate.Phone(c.BackupPhone); msg != "" {
			return nil, msg
		}
	}
	region := c.CountryCode
	if region == "" {
		region = validate.DefaultRegion
	}

	var details model.TagDetails
	switch req.Type {
	case model.TagTypeItem:
		if req.Item == nil || req.Item.Name == "" {
			return nil, "item details with a name are required"
		}
		details = *req.Item
	case model.TagTypePet:
		if req.Pet == nil || req.Pet.Name == "" {
			return nil, "pet details with a name are required"
		}
		if msg := validate.Age(req.Pet.Age); msg != "" {
			return nil, msg
		}
		if msg := validate.Phone(req.Pet.VetPhone); msg != "" {
			return nil, msg
		}
		details = *req.Pet
	case model.TagTypeEmergency:
		if req.Emergency == nil || req.Emergency.Name == "" {
			return nil, "emergency details with a name are required"
		}
		details = *req.Emergency
	}

	contact := model.ContactInfo{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   validate.ComposePhone(region, c.Phone),
		Message: c.Message,
	}
	if c.BackupPhone != "" {
		contact.BackupPhone = validate.ComposePhone(region, c.BackupPhone)
	}

	return &model.ActivationPayload{
		Type:     req.Type,
		Contact:  contact,
		Details:  details,
		Settings: req.Settings,
	}, ""
}

// writeFetchError maps a backend lookup failure onto an API status.
func (h *Handler) writeFetchError(w http.ResponseWriter, code string, err error) {
	switch {
	case client.IsTimeout(err):
		h.writeError(w, http.StatusGatewayTimeout, "backend request timed out")
	case client.IsInactive(err):
		h.writeError(w, http.StatusForbidden, "tag is currently inactive")
	default:
		slog.Error("api: failed to fetch tag", "code", code, "error", err)
		if m := client.Message(err); m != "" {
			h.writeError(w, http.StatusNotFound, m)
			return
		}
		h.writeError(w, http.StatusNotFound, "tag not found")
	}
}
