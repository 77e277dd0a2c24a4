package features

var (
	// EnforceListPermission requires newsletters.list_newsletter on the newsletter list endpoint
	EnforceListPermission = registerFeature("Enforce the list permission on the newsletter list", "NEWSLETTER_ENFORCE_LIST_PERMISSION", false)

	// NewsletterLogWorker runs the periodic newsletter log writer inside the serve command
	NewsletterLogWorker = registerFeature("Write newsletter logs periodically from the API process", "NEWSLETTER_ENABLE_LOG_WORKER", false)
)
