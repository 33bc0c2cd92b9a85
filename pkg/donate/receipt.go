package donate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReceipt формирует receipt вида receipt_<unix millis>_<8 hex>.
// Длина укладывается в лимит шлюза в 40 символов.
func NewReceipt(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("receipt_%d_%s", now.UnixMilli(), suffix)
}

// Notes собирает заметки к заказу из данных донора
func Notes(in Input, purpose string) map[string]string {
	notes := map[string]string{
		"donor_name":  strings.TrimSpace(in.Name),
		"donor_email": strings.TrimSpace(in.Email),
		"donor_phone": strings.TrimSpace(in.Phone),
	}
	if in.Purpose != "" {
		purpose = in.Purpose
	}
	if purpose != "" {
		notes["donation_purpose"] = purpose
	}
	if in.TaxExemption.Requested {
		notes["tax_exemption"] = "80G"
		notes["pan"] = strings.TrimSpace(in.TaxExemption.PAN)
		notes["aadhaar"] = strings.TrimSpace(in.TaxExemption.Aadhaar)
		notes["address"] = strings.TrimSpace(in.TaxExemption.Address)
	}
	return notes
}
