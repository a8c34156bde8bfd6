package activation

import (
	"fmt"

	"github.com/FahadIshaq/scanback/internal/model"
)

// MessageTemplate returns the default finder message for a tag type. Item and
// pet templates interpolate the detail name when one is set; the emergency
// template is fixed.
func MessageTemplate(t model.TagType, name string) string {
	switch t {
	case model.TagTypePet:
		if name != "" {
			return fmt.Sprintf("Hi! You've found %s. Please contact me so I can come get my pet. Thank you so much!", name)
		}
		return "Hi! You've found my pet. Please contact me so I can come get them. Thank you so much!"
	case model.TagTypeEmergency:
		return "This tag belongs to me. If you are seeing this in an emergency, please contact the people listed here and share my medical details with first responders."
	default:
		if name != "" {
			return fmt.Sprintf("Hi! You've found my %s. Please contact me so I can get it back. Thank you!", name)
		}
		return "Hi! You've found my item. Please contact me so I can get it back. Thank you!"
	}
}
