package handler

import (
	"net/url"

	"github.com/FahadIshaq/scanback/internal/model"
	"github.com/FahadIshaq/scanback/internal/validate"
)

// ContactLinks holds the browser-native contact actions for the finder page.
// These are URI scheme invocations built here, not network calls.
type ContactLinks struct {
	WhatsApp string
	Tel      string
	Mailto   string
	SMS      string
}

// finderPhone picks the number surfaced to finders: the backup number when
// the owner explicitly enabled it, otherwise the main number.
func finderPhone(record *model.QRTagRecord) string {
	if record.Settings.UseBackupNumber && record.Contact.BackupPhone != "" {
		return record.Contact.BackupPhone
	}
	return record.Contact.Phone
}

// BuildContactLinks constructs the deep links for an activated tag.
func BuildContactLinks(record *model.QRTagRecord) ContactLinks {
	phone := finderPhone(record)
	found := "Hi! I scanned your ScanBack tag " + record.Code + " and would like to return your property."

	mailto := url.Values{}
	mailto.Set("subject", "I found your ScanBack tagged item")
	mailto.Set("body", found)

	sms := url.Values{}
	sms.Set("body", found)

	return ContactLinks{
		WhatsApp: "https://wa.me/" + validate.Digits(phone) + "?text=" + url.QueryEscape(found),
		Tel:      "tel:" + phone,
		Mailto:   "mailto:" + record.Contact.Email + "?" + mailto.Encode(),
		SMS:      "sms:" + phone + "?" + sms.Encode(),
	}
}
