package di

import (
	"student_portal/internal/client/api"
	"student_portal/internal/client/session"
	infrahttp "student_portal/internal/platform/http"
)

// Portal bundles the terminal client's collaborators.
type Portal struct {
	API     *api.Client
	Session *session.Controller
}

// NewPortal builds an API client whose data calls carry the session's token.
// The session itself logs in and revokes through a tokenless client.
func NewPortal(cfg api.Config, storage session.Storage) *Portal {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	base := api.NewClient(cfg, httpClient, nil)
	ctrl := session.New(storage, base)
	return &Portal{API: base.WithTokens(ctrl), Session: ctrl}
}
