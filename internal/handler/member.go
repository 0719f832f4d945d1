package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/service"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Create handles POST /v1/members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.members.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusCreated, member, map[string]string{
		"self": fmt.Sprintf("/v1/members/%d", member.ID),
	})
}

// List handles GET /v1/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		WriteError(w, model.NewBadRequestError("skip must be an integer"))
		return
	}
	limit, err := queryInt(r, "limit", model.DefaultListLimit)
	if err != nil {
		WriteError(w, model.NewBadRequestError("limit must be an integer"))
		return
	}

	members, err := h.members.List(r.Context(), skip, limit)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	if limit > model.MaxListLimit {
		limit = model.MaxListLimit
	}
	pagination := &PaginationInfo{
		Offset:  skip,
		Limit:   limit,
		HasMore: len(members) == limit,
	}
	WriteCollection(w, http.StatusOK, members, pagination, map[string]string{
		"self": "/v1/members",
	})
}

// Get handles GET /v1/members/{memberId}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	member, err := h.members.GetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, member, map[string]string{
		"self": fmt.Sprintf("/v1/members/%d", member.ID),
	})
}

// Update handles PATCH /v1/members/{memberId}
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	var req model.UpdateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.members.Update(r.Context(), id, &req)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, member, map[string]string{
		"self": fmt.Sprintf("/v1/members/%d", member.ID),
	})
}

// Delete handles DELETE /v1/members/{memberId}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	if err := h.members.Delete(r.Context(), id); err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteNoContent(w)
}

// memberID parses the {memberId} path value, writing a 400 on garbage input.
func memberID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("memberId"), 10, 64)
	if err != nil {
		WriteError(w, model.NewBadRequestError("member id must be an integer"))
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
