package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ramisn26/AI-Architect/pkg/cache"
	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/observability"
	"github.com/ramisn26/AI-Architect/pkg/validate"
)

// maxBodyBytes caps request bodies. Design inputs are tiny; anything
// larger is a client error.
const maxBodyBytes = 1 << 20

// designResponse is the body returned for created and fetched designs.
type designResponse struct {
	ID     string                      `json:"id,omitempty"`
	Design *design.ArchitecturalDesign `json:"design"`
}

// errorResponse is the body returned for all failures. Errors carries
// the validator's messages verbatim when the failure is a feasibility
// rejection.
type errorResponse struct {
	Error  string      `json:"error"`
	Code   errors.Code `json:"code,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(s, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	writeJSON(s, w, http.StatusOK, validate.Check(in))
}

func (s *Server) handleCreateDesign(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	dsg, err := s.cachedDesign(r, in)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := designResponse{Design: dsg}
	if s.store != nil {
		id, err := s.des.Save(r.Context(), dsg)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.ID = id
	}
	writeJSON(s, w, http.StatusCreated, resp)
}

// cachedDesign returns a generated design for the input, consulting the
// cache first. Cache failures degrade to plain generation.
func (s *Server) cachedDesign(r *http.Request, in *design.DesignInput) (*design.ArchitecturalDesign, error) {
	ctx := r.Context()
	key := s.keyer.DesignKey(in)

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("design cache read failed", "err", err)
	} else if ok {
		dsg, err := design.UnmarshalDesign(data)
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "design")
			return dsg, nil
		}
		s.log.Warn("discarding corrupt cached design", "key", key, "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, "design")

	dsg, err := s.des.GenerateDesign(ctx, *in)
	if err != nil {
		return nil, err
	}
	if data, err := design.MarshalDesign(dsg); err == nil {
		if err := s.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			s.log.Warn("design cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "design", len(data))
		}
	}
	return dsg, nil
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "no design store configured"))
		return
	}
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(s, w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	dsg, ok := s.loadDesign(w, r)
	if !ok {
		return
	}
	writeJSON(s, w, http.StatusOK, designResponse{ID: chi.URLParam(r, "id"), Design: dsg})
}

func (s *Server) handleDeleteDesign(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "no design store configured"))
		return
	}
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAllFloors(w http.ResponseWriter, r *http.Request) {
	dsg, ok := s.loadDesign(w, r)
	if !ok {
		return
	}
	plans, err := s.des.GenerateAllFloorPlans(dsg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(s, w, http.StatusOK, map[string][]design.FloorPlan{"floor_plans": plans})
}

func (s *Server) handleFloor(w http.ResponseWriter, r *http.Request) {
	dsg, ok := s.loadDesign(w, r)
	if !ok {
		return
	}
	floor, err := strconv.Atoi(chi.URLParam(r, "floor"))
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"floor must be an integer, got %q", chi.URLParam(r, "floor")))
		return
	}

	ctx := r.Context()
	key := s.keyer.PlanKey(&dsg.Input, floor)
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("plan cache read failed", "err", err)
	} else if ok {
		observability.Cache().OnCacheHit(ctx, "plan")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	fp, err := s.des.GenerateFloorPlan(dsg, floor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := design.MarshalFloorPlan(fp)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		s.log.Warn("plan cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// decodeInput parses and normalizes a design input body, writing the
// error response itself on failure.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (*design.DesignInput, bool) {
	var in design.DesignInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return nil, false
	}
	if err := in.Normalize(); err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return &in, true
}

// loadDesign fetches the design named by the {id} URL parameter, writing
// the error response itself on failure.
func (s *Server) loadDesign(w http.ResponseWriter, r *http.Request) (*design.ArchitecturalDesign, bool) {
	if s.store == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "no design store configured"))
		return nil, false
	}
	dsg, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return dsg, true
}

// writeError maps an error to an HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)}
	status := http.StatusInternalServerError

	if fe := errors.AsFeasibility(err); fe != nil {
		status = http.StatusBadRequest
		resp.Code = fe.Code()
		resp.Errors = fe.Errors
		resp.Error = "design validation failed"
	} else {
		switch resp.Code {
		case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFacing,
			errors.ErrCodeInvalidBuilding, errors.ErrCodeInvalidStaircase,
			errors.ErrCodeInvalidBedrooms:
			status = http.StatusBadRequest
		case errors.ErrCodeNotFound:
			status = http.StatusNotFound
		case errors.ErrCodeUnsupported:
			status = http.StatusNotImplemented
		}
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(s, w, status, resp)
}

func writeJSON(s *Server, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "err", err)
	}
}
