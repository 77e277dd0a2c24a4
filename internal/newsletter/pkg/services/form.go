package services

import (
	"regexp"
	"unicode/utf8"

	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// Editable newsletter fields. Names double as column names.
const (
	FieldSubject     = "subject"
	FieldBody        = "body"
	FieldSendTime    = "send_time"
	FieldPeriodicity = "periodicity"
	FieldStatus      = "status"
	FieldIsActive    = "is_active"
)

// MaxSubjectLength ...
const MaxSubjectLength = 255

// NewsletterFormFields lists the editable fields in form order.
var NewsletterFormFields = []string{FieldSubject, FieldBody, FieldSendTime, FieldPeriodicity, FieldStatus, FieldIsActive}

var sendTimeRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SetFieldPermission returns the permission allowing a non-owner to edit field.
func SetFieldPermission(field string) string {
	return constants.PermissionSetFieldPrefix + field
}

// NewsletterChanges holds the values submitted for an update. Nil fields were not submitted.
type NewsletterChanges struct {
	Subject     *string
	Body        *string
	SendTime    *string
	Periodicity *string
	Status      *string
	IsActive    *bool
}

// NewsletterForm is the update form of one newsletter, restricted to the fields its editor may change.
type NewsletterForm struct {
	instance *dbapi.Newsletter
	fields   []string
}

// NewNewsletterUpdateForm builds the update form of newsletter for editor.
// The owner gets every field. Any other editor loses each field it lacks newsletters.set_<field> for.
func NewNewsletterUpdateForm(newsletter *dbapi.Newsletter, editor *dbapi.User, groups dbapi.PermissionGroups) *NewsletterForm {
	form := &NewsletterForm{instance: newsletter}
	isOwner := editor != nil && newsletter.OwnerID == editor.ID
	for _, field := range NewsletterFormFields {
		if !isOwner && !editor.HasPerm(SetFieldPermission(field), groups) {
			continue
		}
		form.fields = append(form.fields, field)
	}
	return form
}

// Fields returns the remaining field names in form order.
func (f *NewsletterForm) Fields() []string {
	return append([]string(nil), f.fields...)
}

// HasField ...
func (f *NewsletterForm) HasField(field string) bool {
	return shared.Contains(f.fields, field)
}

// Instance returns the newsletter the form was built for.
func (f *NewsletterForm) Instance() *dbapi.Newsletter {
	return f.instance
}

// Values returns the current value of every remaining field.
func (f *NewsletterForm) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(f.fields))
	for _, field := range f.fields {
		switch field {
		case FieldSubject:
			values[field] = f.instance.Subject
		case FieldBody:
			values[field] = f.instance.Body
		case FieldSendTime:
			values[field] = f.instance.SendTime
		case FieldPeriodicity:
			values[field] = string(f.instance.Periodicity)
		case FieldStatus:
			values[field] = string(f.instance.Status)
		case FieldIsActive:
			values[field] = f.instance.IsActive
		}
	}
	return values
}

// Bind applies changes to a copy of the instance. Values of fields missing from the form are dropped.
// It returns the updated copy and the names of the fields that were bound.
func (f *NewsletterForm) Bind(changes NewsletterChanges) (*dbapi.Newsletter, []string, *errors.ServiceError) {
	updated := *f.instance
	var bound []string
	bind := func(field string, submitted bool, apply func()) {
		if !submitted || !f.HasField(field) {
			return
		}
		apply()
		bound = append(bound, field)
	}

	bind(FieldSubject, changes.Subject != nil, func() { updated.Subject = *changes.Subject })
	bind(FieldBody, changes.Body != nil, func() { updated.Body = *changes.Body })
	bind(FieldSendTime, changes.SendTime != nil, func() { updated.SendTime = *changes.SendTime })
	bind(FieldPeriodicity, changes.Periodicity != nil, func() { updated.Periodicity = dbapi.Periodicity(*changes.Periodicity) })
	bind(FieldStatus, changes.Status != nil, func() { updated.Status = dbapi.NewsletterStatus(*changes.Status) })
	bind(FieldIsActive, changes.IsActive != nil, func() { updated.IsActive = *changes.IsActive })

	if err := ValidateNewsletter(&updated); err != nil {
		return nil, nil, err
	}
	return &updated, bound, nil
}

// ValidateNewsletter checks the values of every editable field.
func ValidateNewsletter(n *dbapi.Newsletter) *errors.ServiceError {
	if n.Subject == "" {
		return errors.MinimumFieldLengthNotReached("%s is required", FieldSubject)
	}
	if utf8.RuneCountInString(n.Subject) > MaxSubjectLength {
		return errors.MaximumFieldLengthMissing("%s is not valid. Maximum length %d is required", FieldSubject, MaxSubjectLength)
	}
	if n.Body == "" {
		return errors.MinimumFieldLengthNotReached("%s is required", FieldBody)
	}
	if !sendTimeRegexp.MatchString(n.SendTime) {
		return errors.Validation("%s %q is not a valid HH:MM time", FieldSendTime, n.SendTime)
	}
	if !shared.Contains(dbapi.ValidPeriodicities, string(n.Periodicity)) {
		return errors.Validation("%s %q is not one of %v", FieldPeriodicity, n.Periodicity, dbapi.ValidPeriodicities)
	}
	if !shared.Contains(dbapi.ValidNewsletterStatuses, string(n.Status)) {
		return errors.Validation("%s %q is not one of %v", FieldStatus, n.Status, dbapi.ValidNewsletterStatuses)
	}
	return nil
}
