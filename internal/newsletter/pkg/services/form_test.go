package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/errors"
)

func buildNewsletter() *dbapi.Newsletter {
	return &dbapi.Newsletter{
		Meta:        api.Meta{ID: "n1"},
		OwnerID:     "owner",
		Subject:     "Weekly digest",
		Body:        "Hello",
		SendTime:    "09:30",
		Periodicity: dbapi.PeriodicityWeekly,
		Status:      dbapi.NewsletterStatusCreated,
		IsActive:    true,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewNewsletterUpdateForm_OwnerGetsEveryField(t *testing.T) {
	owner := &dbapi.User{Meta: api.Meta{ID: "owner"}, IsActive: true}
	form := NewNewsletterUpdateForm(buildNewsletter(), owner, nil)
	assert.Equal(t, NewsletterFormFields, form.Fields())
}

func TestNewNewsletterUpdateForm_NonOwnerKeepsOnlyPermittedFields(t *testing.T) {
	// Every subset of set_<field> permissions.
	for mask := 0; mask < 1<<len(NewsletterFormFields); mask++ {
		editor := &dbapi.User{Meta: api.Meta{ID: "editor"}, IsActive: true}
		var want []string
		for i, field := range NewsletterFormFields {
			if mask&(1<<i) != 0 {
				editor.Permissions = append(editor.Permissions, dbapi.UserPermission{Permission: SetFieldPermission(field)})
				want = append(want, field)
			}
		}

		form := NewNewsletterUpdateForm(buildNewsletter(), editor, nil)
		if diff := cmp.Diff(want, form.Fields()); diff != "" {
			t.Fatalf("mask %06b: unexpected fields (-want +got):\n%s", mask, diff)
		}
	}
}

func TestNewNewsletterUpdateForm_GroupPermissions(t *testing.T) {
	groups := dbapi.PermissionGroups{"editors": {SetFieldPermission(FieldSubject), SetFieldPermission(FieldBody)}}
	editor := &dbapi.User{
		Meta:     api.Meta{ID: "editor"},
		IsActive: true,
		IsStaff:  true,
		Groups:   []dbapi.UserGroup{{GroupName: "editors"}},
	}

	form := NewNewsletterUpdateForm(buildNewsletter(), editor, groups)
	assert.Equal(t, []string{FieldSubject, FieldBody}, form.Fields())
	assert.Equal(t, map[string]interface{}{
		FieldSubject: "Weekly digest",
		FieldBody:    "Hello",
	}, form.Values())
}

func TestNewNewsletterUpdateForm_SuperuserGetsEveryField(t *testing.T) {
	root := &dbapi.User{Meta: api.Meta{ID: "root"}, IsActive: true, IsSuperuser: true}
	form := NewNewsletterUpdateForm(buildNewsletter(), root, nil)
	assert.Equal(t, NewsletterFormFields, form.Fields())
}

func TestNewsletterForm_BindDropsFieldsOutsideTheForm(t *testing.T) {
	editor := &dbapi.User{
		Meta:        api.Meta{ID: "editor"},
		IsActive:    true,
		Permissions: []dbapi.UserPermission{{Permission: SetFieldPermission(FieldSubject)}},
	}
	original := buildNewsletter()
	form := NewNewsletterUpdateForm(original, editor, nil)

	updated, bound, svcErr := form.Bind(NewsletterChanges{
		Subject:  strPtr("Monthly digest"),
		Body:     strPtr("ignored"),
		IsActive: boolPtr(false),
	})
	require.Nil(t, svcErr)
	assert.Equal(t, []string{FieldSubject}, bound)
	assert.Equal(t, "Monthly digest", updated.Subject)
	assert.Equal(t, "Hello", updated.Body)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "Weekly digest", original.Subject, "the form instance must not be modified")
}

func TestNewsletterForm_BindValidates(t *testing.T) {
	owner := &dbapi.User{Meta: api.Meta{ID: "owner"}, IsActive: true}

	tests := map[string]struct {
		changes  NewsletterChanges
		wantCode errors.ServiceErrorCode
	}{
		"empty subject": {
			changes:  NewsletterChanges{Subject: strPtr("")},
			wantCode: errors.ErrorMinimumFieldLength,
		},
		"bad send time": {
			changes:  NewsletterChanges{SendTime: strPtr("25:00")},
			wantCode: errors.ErrorValidation,
		},
		"unknown periodicity": {
			changes:  NewsletterChanges{Periodicity: strPtr("hourly")},
			wantCode: errors.ErrorValidation,
		},
		"unknown status": {
			changes:  NewsletterChanges{Status: strPtr("sent")},
			wantCode: errors.ErrorValidation,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			form := NewNewsletterUpdateForm(buildNewsletter(), owner, nil)
			_, _, svcErr := form.Bind(tc.changes)
			require.NotNil(t, svcErr)
			assert.Equal(t, tc.wantCode, svcErr.Code)
		})
	}
}
