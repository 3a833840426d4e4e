package dto

import (
	"servi-search/internal/usecase"

	"github.com/google/uuid"
)

type SelectCategoryRequest struct {
	Categoria string `json:"categoria" validate:"required,min=2,max=150"`
}

type ResumeSelectionRequest struct {
	IntentID string `json:"intent_id" validate:"required,uuid"`
}

type NavigationResponse struct {
	Route string                  `json:"route"`
	State usecase.NavigationState `json:"state"`
}

type AuthRequiredResponse struct {
	Notice     string `json:"notice"`
	RedirectTo string `json:"redirect_to"`
	IntentID   string `json:"intent_id,omitempty"`
}

func NewNavigationResponse(n usecase.Navigation) NavigationResponse {
	return NavigationResponse{Route: n.Route, State: n.State}
}

func NewAuthRequiredResponse(e *usecase.AuthRequiredError) AuthRequiredResponse {
	out := AuthRequiredResponse{Notice: e.Notice, RedirectTo: e.RedirectTo}
	if e.IntentID != uuid.Nil {
		out.IntentID = e.IntentID.String()
	}
	return out
}
