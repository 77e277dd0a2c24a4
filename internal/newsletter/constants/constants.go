// Package constants ...
package constants

const (
	// ProductName defines the name of the product
	ProductName = "newsletter-manager"

	// APIEndpoint is the root of every REST API served by the binary.
	APIEndpoint = "/api"
	// NewslettersManagementAPIPrefix ...
	NewslettersManagementAPIPrefix = "newsletters_mgmt"
	// APIVersion ...
	APIVersion = "v1"
	// BasePath is the path prefix of the v1 API.
	BasePath = APIEndpoint + "/" + NewslettersManagementAPIPrefix + "/" + APIVersion
)

// Permissions checked by the newsletter API.
const (
	// PermissionListNewsletter gates the newsletter list when list enforcement is enabled.
	PermissionListNewsletter = "newsletters.list_newsletter"
	// PermissionSetFieldPrefix followed by a form field name allows a non-owner to edit that field.
	PermissionSetFieldPrefix = "newsletters.set_"
)

// Resource kinds rendered in API payloads.
const (
	KindNewsletter        = "Newsletter"
	KindNewsletterList    = "NewsletterList"
	KindNewsletterForm    = "NewsletterForm"
	KindNewsletterLog     = "NewsletterLog"
	KindNewsletterLogList = "NewsletterLogList"
	KindClient            = "Client"

	// NewsletterLogListTitle is the title of the logs page.
	NewsletterLogListTitle = "Logs"
)
