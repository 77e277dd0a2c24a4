// Package presenters converts between database models and API payloads.
package presenters

import (
	"fmt"

	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/api"
)

// ObjectPath ...
func ObjectPath(collection, id string) string {
	return fmt.Sprintf("%s/%s/%s", constants.BasePath, collection, id)
}

// ConvertNewsletterRequest builds a new newsletter from the create payload. Newsletters are active unless stated otherwise.
func ConvertNewsletterRequest(payload public.NewsletterRequestPayload) *dbapi.Newsletter {
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}
	return &dbapi.Newsletter{
		Subject:     payload.Subject,
		Body:        payload.Body,
		SendTime:    payload.SendTime,
		Periodicity: dbapi.Periodicity(payload.Periodicity),
		IsActive:    isActive,
	}
}

// ConvertNewsletterUpdateRequest ...
func ConvertNewsletterUpdateRequest(payload public.NewsletterUpdateRequest) services.NewsletterChanges {
	return services.NewsletterChanges{
		Subject:     payload.Subject,
		Body:        payload.Body,
		SendTime:    payload.SendTime,
		Periodicity: payload.Periodicity,
		Status:      payload.Status,
		IsActive:    payload.IsActive,
	}
}

// PresentNewsletter ...
func PresentNewsletter(n *dbapi.Newsletter) public.Newsletter {
	return public.Newsletter{
		Kind:        constants.KindNewsletter,
		ID:          n.ID,
		Href:        ObjectPath("newsletters", n.ID),
		OwnerID:     n.OwnerID,
		Subject:     n.Subject,
		Body:        n.Body,
		SendTime:    n.SendTime,
		Periodicity: string(n.Periodicity),
		Status:      string(n.Status),
		IsActive:    n.IsActive,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

// PresentNewsletterList renders a page of newsletters together with the mailing counters.
func PresentNewsletterList(newsletters dbapi.NewsletterList, paging *api.PagingMeta, stats *services.NewsletterStats) public.NewsletterList {
	list := public.NewsletterList{
		Kind:           constants.KindNewsletterList,
		Page:           int32(paging.Page),
		Size:           int32(paging.Size),
		Total:          int32(paging.Total),
		Items:          make([]public.Newsletter, 0, len(newsletters)),
		MailingCount:   stats.MailingCount,
		EnabledMailing: stats.EnabledMailing,
		UniqueUsers:    stats.UniqueUsers,
	}
	for _, n := range newsletters {
		list.Items = append(list.Items, PresentNewsletter(n))
	}
	return list
}

// PresentNewsletterForm ...
func PresentNewsletterForm(form *services.NewsletterForm) public.NewsletterForm {
	values := form.Values()
	res := public.NewsletterForm{
		Kind:         constants.KindNewsletterForm,
		NewsletterID: form.Instance().ID,
		Fields:       make([]public.FormField, 0, len(values)),
	}
	for _, field := range form.Fields() {
		res.Fields = append(res.Fields, public.FormField{Name: field, Value: values[field]})
	}
	return res
}
