package handler

import (
	"net/http"

	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
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

func Dashboard(service deriving.Deriver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Clients(service deriving.Deriver, pageSize int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ClientList(service, pageSize),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodGet,
			Handler: ClientDetail(service, pageSize),
		},
	}
}

func Statement(service statement.Builder, pageSize int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statement",
			Method:  http.MethodGet,
			Handler: GetStatement(service, pageSize),
		},
	}
}

func Withdrawals(service statement.Builder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/withdrawals/balance",
			Method:  http.MethodGet,
			Handler: GetWithdrawalBalance(service),
		},
		{
			Path:    "/v1/withdrawals",
			Method:  http.MethodPost,
			Handler: RequestWithdrawal(service),
		},
	}
}

func Profile(source entitysource.Source) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(source),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/forgot-password",
			Method:  http.MethodPost,
			Handler: ForgotPassword(service),
		},
		{
			Path:    "/v1/auth/reset-password",
			Method:  http.MethodPost,
			Handler: ResetPassword(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
		{
			Path:    "/v1/cron/ranking/sync",
			Method:  http.MethodPost,
			Handler: TriggerRankingWarmup(services),
		},
	}
}
