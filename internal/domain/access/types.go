package access

type AccessState string

const (
	// AccessFree: no paid subscription; listing and custom page work,
	// premium features do not.
	AccessFree AccessState = "free"
	// AccessActive: paid subscription in good standing.
	AccessActive AccessState = "active"
	// AccessPastDue: payment failed, premium features kept during the
	// grace window.
	AccessPastDue AccessState = "past_due"
	// AccessExpired: subscription ended or canceled past its period.
	AccessExpired AccessState = "expired"
)
