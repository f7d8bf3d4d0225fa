package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mschulz/resume-tailor/internal/rendering"
	"github.com/mschulz/resume-tailor/internal/selection"
	"github.com/mschulz/resume-tailor/internal/types"
)

// GenerateRequest selects either a stored profile by id or a custom
// checkbox selection.
type GenerateRequest struct {
	ProfileID string   `json:"profile_id,omitempty"`
	Selected  []string `json:"selected,omitempty"`
	Format    string   `json:"format,omitempty"`
}

// GenerateResponse carries the tailored view and its rendered markup.
type GenerateResponse struct {
	Resume *types.TailoredResume `json:"resume"`
	HTML   string                `json:"html"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResume(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dataset)
}

func (s *Server) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.profiles)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	mode, err := selection.ParseFormatMode(req.Format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine := selection.New(s.dataset, s.profiles, mode)

	var resume *types.TailoredResume
	if len(req.Selected) > 0 || req.ProfileID == types.CustomProfileID {
		resume, err = engine.GenerateCustom(s.profiles.ResolveSelection(req.Selected))
	} else {
		resume, err = engine.Generate(req.ProfileID)
	}

	if err != nil {
		var notFound *selection.ProfileNotFoundError
		var invalid *selection.InvalidProfileError
		switch {
		case errors.As(err, &notFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &invalid):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Resume: resume,
		HTML:   rendering.Render(resume),
	})
}
