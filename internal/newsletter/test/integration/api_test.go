//go:build integration

package integration

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/bxcodec/faker/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/check"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/client/newslettermgr"
)

const apiPassword = "correct horse battery staple" // pragma: allowlist secret

func apiStatus(err error) int {
	var apiErr *newslettermgr.APIError
	ExpectWithOffset(1, errors.As(err, &apiErr)).To(BeTrue(), "expected an API error, got %v", err)
	return apiErr.StatusCode
}

var _ = Describe("Newsletter API", Ordered, func() {
	ctx := context.Background()
	var (
		owner, other, staff *newslettermgr.Client
		ownerUser           *dbapi.User
		logService          services.NewsletterLogService
		newsletter          *public.Newsletter
	)

	loginAs := func(users services.UserService, isStaff bool) (*newslettermgr.Client, *dbapi.User) {
		user := &dbapi.User{Username: faker.Username() + faker.UUIDDigit(), Email: faker.Email(), IsActive: true, IsStaff: isStaff}
		Expect(users.Create(ctx, user, apiPassword)).To(BeNil())

		anonymous, err := newslettermgr.NewClient(newslettermgr.Config{Endpoint: apiServer.URL})
		Expect(err).NotTo(HaveOccurred())
		token, err := anonymous.Login(ctx, user.Username, apiPassword)
		Expect(err).NotTo(HaveOccurred())
		Expect(token.TokenType).To(Equal("Bearer"))

		client, err := newslettermgr.NewClient(newslettermgr.Config{Endpoint: apiServer.URL, Token: token.AccessToken})
		Expect(err).NotTo(HaveOccurred())
		return client, user
	}

	BeforeAll(func() {
		var users services.UserService
		apiEnv.MustResolve(&users)
		apiEnv.MustResolve(&logService)
		owner, ownerUser = loginAs(users, false)
		other, _ = loginAs(users, false)
		staff, _ = loginAs(users, true)
	})

	It("rejects requests without a token", func() {
		anonymous, err := newslettermgr.NewClient(newslettermgr.Config{Endpoint: apiServer.URL})
		Expect(err).NotTo(HaveOccurred())
		_, err = anonymous.ListNewsletters(ctx, 1, 10)
		Expect(apiStatus(err)).To(Equal(http.StatusUnauthorized))
	})

	It("assigns the requester as owner on create", func() {
		var err error
		newsletter, err = owner.CreateNewsletter(ctx, public.NewsletterRequestPayload{
			Subject:     "Weekly digest",
			Body:        "hello",
			SendTime:    "09:30",
			Periodicity: string(dbapi.PeriodicityWeekly),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(newsletter.OwnerID).To(Equal(ownerUser.ID))
		Expect(newsletter.IsActive).To(BeTrue())
	})

	It("hides the newsletter from other users but not from staff", func() {
		_, err := other.GetNewsletter(ctx, newsletter.ID)
		Expect(apiStatus(err)).To(Equal(http.StatusForbidden))

		got, err := staff.GetNewsletter(ctx, newsletter.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Subject).To(Equal("Weekly digest"))

		list, err := other.ListNewsletters(ctx, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(BeEmpty())
	})

	It("reports mailing counters written by the check command", func() {
		out := &bytes.Buffer{}
		Expect(check.RunCheck(ctx, logService, out)).To(Succeed())
		Expect(check.RunCheck(ctx, logService, out)).To(Succeed())

		list, err := owner.ListNewsletters(ctx, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(HaveLen(1))
		Expect(list.MailingCount).To(Equal(int64(2)))
		Expect(list.EnabledMailing).To(Equal(int64(2)))
		Expect(list.UniqueUsers).To(Equal(int64(3)))

		logs, err := owner.ListNewsletterLogs(ctx, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(logs.Title).To(Equal("Logs"))
		Expect(logs.Items).To(HaveLen(2))
	})

	It("creates a client owned by the requester", func() {
		created, err := owner.CreateClient(ctx, public.ClientRequestPayload{Email: faker.Email(), Fio: "Ivanov Ivan"})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.Object).To(Equal("Client"))
		Expect(created.OwnerID).To(Equal(ownerUser.ID))
	})

	It("lets only the owner delete", func() {
		Expect(apiStatus(other.DeleteNewsletter(ctx, newsletter.ID))).To(Equal(http.StatusForbidden))
		Expect(owner.DeleteNewsletter(ctx, newsletter.ID)).To(Succeed())

		_, err := owner.GetNewsletter(ctx, newsletter.ID)
		Expect(apiStatus(err)).To(Equal(http.StatusNotFound))
	})
})
