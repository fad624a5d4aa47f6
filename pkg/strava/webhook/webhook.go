package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/openstride/strava-model/pkg/strava/model"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"gopkg.in/yaml.v2"
)

// Config holds the push subscription callback settings. The verify
// token is the pre shared secret agreed with the API when the
// subscription was created.
type Config struct {
	VerifyToken    string   `yaml:"verifyToken"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.VerifyToken == "" {
		return nil, fmt.Errorf("configuration does not contain a verify token")
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// EventHandlerFunc is called once for each received callback event.
type EventHandlerFunc func(ctx context.Context, event *model.WebhookEvent)

// NewRouter sets up the callback endpoint: GET serves the subscription
// validation handshake, POST receives events and dispatches them to
// the handler after deserialization through the entity layer.
func NewRouter(serviceName string, cfg *Config, handler EventHandlerFunc) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	r.Get("/webhook", validationHandler(cfg))
	r.Post("/webhook", eventHandler(handler))

	return r
}

func validationHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := r.URL.Query().Get("hub.mode")
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if mode != "subscribe" || token != cfg.VerifyToken {
			log := logging.GetFromContext(r.Context())
			log.Warn("rejected subscription validation request", "mode", mode)

			w.WriteHeader(http.StatusForbidden)
			return
		}

		response, _ := json.Marshal(map[string]string{
			"hub.challenge": challenge,
		})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}

func eventHandler(handler EventHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("failed to read event body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		raw := map[string]any{}

		err = json.Unmarshal(body, &raw)
		if err != nil {
			log.Error("failed to unmarshal event body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		event, err := model.DeserializeWebhookEvent(ctx, raw, nil)
		if err != nil {
			log.Error("failed to deserialize event", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		handler(ctx, event)

		// The API expects a prompt 200 regardless of processing outcome
		w.WriteHeader(http.StatusOK)
	}
}
