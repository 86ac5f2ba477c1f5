package brand

import (
	"regexp"

	"github.com/use-agent/brandscout/models"
)

var (
	reEmail = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	rePhone = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// extractContact takes the first email and US-style phone number in the
// visible text, and a postal address from <address> or schema.org markup.
func extractContact(d *Document) models.ContactInfo {
	address := text(d.Root.Find(`address, [itemprop="address"], [itemprop="streetAddress"]`).First())
	return models.ContactInfo{
		Email:   strPtr(reEmail.FindString(d.Text)),
		Phone:   strPtr(rePhone.FindString(d.Text)),
		Address: strPtr(address),
	}
}
