package http

import (
	"net/http"

	"festival/internal/log"
)

const (
	msgDonorNotFound = "Donor not found"
	msgDonorAdded    = "Donor added successfully"
	msgDonorUpdated  = "Donor updated successfully"
	msgDonorDeleted  = "Donor deleted successfully"
)

// handleListDonors serves both /api/donors and /api/dashboard/donors.
func (s *Server) handleListDonors(w http.ResponseWriter, r *http.Request) {
	filter := ParseDonorFilter(r.URL.Query(), log.FromContext(r.Context()))
	donors, err := s.deps.Donors.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpList)
		return
	}
	donors = emptyIfNil(donors)
	NewJSONResponse().Data(donors).Count(len(donors)).Write(w)
}

func (s *Server) handleGetDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgDonorNotFound).Write(w)
		return
	}
	donor, err := s.deps.Donors.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpRead)
		return
	}
	NewJSONResponse().Data(donor).Write(w)
}

func (s *Server) handleCreateDonor(w http.ResponseWriter, r *http.Request) {
	body, err := ParseRequestBody(w, r)
	if err != nil {
		BadRequestError("Invalid request body").Write(w)
		return
	}

	donor, err := s.deps.Donors.Create(r.Context(), body.DonorInput())
	if err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpCreate)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Data(donor).Message(msgDonorAdded).Write(w)
}

func (s *Server) handleUpdateDonor(w http.ResponseWriter, r *http.Request) {
	body, err := ParseRequestBody(w, r)
	if err != nil {
		BadRequestError("Invalid request body").Write(w)
		return
	}
	in := body.DonorInput()
	if _, err := in.Fields(); err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpValidate)
		return
	}

	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgDonorNotFound).Write(w)
		return
	}
	donor, err := s.deps.Donors.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpUpdate)
		return
	}
	NewJSONResponse().Data(donor).Message(msgDonorUpdated).Write(w)
}

func (s *Server) handleDeleteDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgDonorNotFound).Write(w)
		return
	}
	if _, err := s.deps.Donors.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, msgDonorNotFound, log.OpDelete)
		return
	}
	NewJSONResponse().Message(msgDonorDeleted).Write(w)
}
