package browser

import (
	"net/http"

	"vetcare-web/internal/adapters/api"
	"vetcare-web/internal/adapters/persistence/repositories"
	"vetcare-web/internal/adapters/persistence/store"
	"vetcare-web/internal/core/services"
	"vetcare-web/internal/pkg/sealer"

	"github.com/sirupsen/logrus"
)

// Options configure how each browser's components are built
type Options struct {
	Repo       repositories.StorageRepository
	Sealer     *sealer.Sealer // nil stores tokens unsealed
	APIBaseURL string
	HTTPClient *http.Client
	Log        *logrus.Logger
}

// NewFactory returns a factory wiring, per browser id, the session store,
// an API client authenticated with that store's token, the backend
// resource APIs and the session controller.
func NewFactory(opts Options) services.BrowserFactory {
	return func(id string) *services.Browser {
		log := opts.Log.WithField("browser", id)

		sessionStore := store.New(opts.Repo, id, opts.Sealer, log.WithField("component", "store"))
		client := api.NewClient(opts.APIBaseURL, opts.HTTPClient, sessionStore, log.WithField("component", "api"))
		auth := api.NewAuthAPI(client)

		return &services.Browser{
			ID:           id,
			Session:      services.NewSessionService(sessionStore, auth, log.WithField("component", "session")),
			Auth:         auth,
			Animals:      api.NewAnimalsAPI(client),
			Appointments: api.NewAppointmentsAPI(client),
			Contact:      api.NewContactAPI(client),
		}
	}
}
