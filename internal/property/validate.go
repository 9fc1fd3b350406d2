package property

import "strings"

// RequiredImages is the number of images a new listing must carry.
const RequiredImages = 3

// ValidateDraft checks a draft against the add-listing rules and returns
// every violation found. An empty result means the draft is acceptable.
func ValidateDraft(d Draft) []string {
	var errs []string

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, "Property title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, "Property description is required")
	}
	if d.Price <= 0 {
		errs = append(errs, "Valid price is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, "Property address is required")
	}
	if len(d.Images) != RequiredImages {
		errs = append(errs, "Exactly 3 images are required")
	}

	return errs
}
