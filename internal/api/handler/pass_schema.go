package handler

import "github.com/theyard/fanpass/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPassRequest struct {
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,contains=@"`
	Phone  string `json:"phone"  validate:"required"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
	// PhotoDataURL optionally carries the user photo as a data URL.
	PhotoDataURL string `json:"photoDataUrl"`
	// PNGDataURL optionally carries a client-rendered card, stored verbatim.
	PNGDataURL string `json:"pngDataUrl"`
}

type passResponse struct {
	Pass *domain.Pass `json:"pass"`
}

type passViewResponse struct {
	Pass  *domain.Pass `json:"pass"`
	State string       `json:"state"`
}

type passListResponse struct {
	Passes []*domain.Pass `json:"passes"`
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type cmsResponse struct {
	CMS *domain.CMSDocument `json:"cms"`
}

type cmsUpdateRequest struct {
	CMS *domain.CMSDocument `json:"cms" validate:"required"`
}

type uploadResponse struct {
	Path string `json:"path"`
}
