package notifsvc

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/trezcool/jadwali/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// emailNotifier forwards each notification as a short plain-text email.
// Delivery is fire-and-forget; failures are logged, never surfaced.
type emailNotifier struct {
	key        string
	from       *sgmail.Email
	to         *sgmail.Email
	subjPrefix string
	logger     core.Logger
}

var _ core.Notifier = (*emailNotifier)(nil)

func NewEmailNotifier(conf *core.Config, logger core.Logger) *emailNotifier {
	return &emailNotifier{
		key:        conf.Notifier.SendgridApiKey,
		from:       sgmail.NewEmail(conf.AppName, "no-reply@"+strings.ToLower(conf.AppName)+".app"),
		to:         sgmail.NewEmail("", conf.Notifier.Email),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc emailNotifier) Notify(msg string) {
	go svc.send(msg)
}

func (svc emailNotifier) prepare(msg string) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + msg
	p.AddTos(svc.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg))
	return m
}

func (svc emailNotifier) send(msg string) {
	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(svc.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending notification: %v", err), err)
	} else if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("sending notification - status: %d - Body: %s", res.StatusCode, res.Body))
	}
	// todo: retries ??
}
