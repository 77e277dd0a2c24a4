package presenters

import (
	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/pkg/api"
)

// PresentNewsletterLog ...
func PresentNewsletterLog(l *dbapi.NewsletterLog) public.NewsletterLog {
	return public.NewsletterLog{
		Kind:      constants.KindNewsletterLog,
		ID:        l.ID,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}

// PresentNewsletterLogList ...
func PresentNewsletterLogList(logs dbapi.NewsletterLogList, paging *api.PagingMeta) public.NewsletterLogList {
	list := public.NewsletterLogList{
		Kind:  constants.KindNewsletterLogList,
		Title: constants.NewsletterLogListTitle,
		Page:  int32(paging.Page),
		Size:  int32(paging.Size),
		Total: int32(paging.Total),
		Items: make([]public.NewsletterLog, 0, len(logs)),
	}
	for _, l := range logs {
		list.Items = append(list.Items, PresentNewsletterLog(l))
	}
	return list
}
