package handler

import (
	"net/http"

	"github.com/vfg2006/f-engage-api/internal/api/handler/router"
	"github.com/vfg2006/f-engage-api/internal/usecases/authenticating"
	"github.com/vfg2006/f-engage-api/internal/usecases/configuring"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
	"github.com/vfg2006/f-engage-api/internal/usecases/reporting"
	"github.com/vfg2006/f-engage-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/insights/fetch",
			Method:  http.MethodPost,
			Handler: FetchInsights(service),
		},
		{
			Path:    "/v1/insights/filters",
			Method:  http.MethodPut,
			Handler: UpdateInsightFilters(service),
		},
		{
			Path:    "/v1/insights/breakdown",
			Method:  http.MethodGet,
			Handler: GetInsightsBreakdown(service),
		},
		{
			Path:    "/v1/insights/ages",
			Method:  http.MethodGet,
			Handler: GetAgeRollup(service),
		},
		{
			Path:    "/v1/insights/suggestion",
			Method:  http.MethodGet,
			Handler: GetAudienceSuggestion(service),
		},
		{
			Path:    "/v1/insights/suggestion/apply",
			Method:  http.MethodPost,
			Handler: ApplyAudienceSuggestion(service),
		},
	}
}

func Leads(service leading.Leader, presenter LeadPresenter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: ListLeads(service, presenter),
		},
		{
			Path:    "/v1/lead-counts",
			Method:  http.MethodGet,
			Handler: GetLeadCounts(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodGet,
			Handler: GetLead(service, presenter),
		},
		{
			Path:    "/v1/leads/:id/owner",
			Method:  http.MethodPut,
			Handler: AssignLead(service, presenter),
		},
		{
			Path:    "/v1/leads/:id/status",
			Method:  http.MethodPut,
			Handler: SetLeadStatus(service, presenter),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/summary",
			Method:  http.MethodGet,
			Handler: GetReportSummary(service),
		},
		{
			Path:    "/v1/reports/export.csv",
			Method:  http.MethodGet,
			Handler: ExportReportCSV(service),
		},
	}
}

func Settings(service configuring.Configurer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: SaveSettings(service),
		},
		{
			Path:    "/v1/settings/validate-credentials",
			Method:  http.MethodPost,
			Handler: ValidateCredentials(service),
		},
		{
			Path:    "/v1/settings/test-webhook",
			Method:  http.MethodPost,
			Handler: TestWebhook(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrMarketing()},
		},
	}
}
