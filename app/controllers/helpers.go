// Package controllers holds the HTTP handlers for the blog's
// server-rendered pages.
package controllers

import (
	"net/http"

	"bramble/app/middleware"
	"bramble/app/views"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses 303 See Other so form POSTs land on a GET.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager, url, message, messageType string) {
	middleware.Flash(r.Context(), sm, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager, url, message string) {
	flashAndRedirect(w, r, sm, url, message, "error")
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager, url, message string) {
	flashAndRedirect(w, r, sm, url, message, "success")
}

// pageData builds a PageData pre-filled with the current user and any
// pending flash notice.
func pageData(r *http.Request, sm *scs.SessionManager, title string) *views.PageData {
	flash, flashType := middleware.PopFlash(r.Context(), sm)
	return &views.PageData{
		Title:       title,
		Flash:       flash,
		FlashType:   flashType,
		CurrentUser: middleware.CurrentUser(r),
	}
}

// renderPage renders a page, logging and failing with a 500 if the
// template breaks.
func renderPage(w http.ResponseWriter, renderer *views.Renderer, logger *zap.Logger, page string, data *views.PageData) {
	if err := renderer.Render(w, page, data); err != nil {
		logger.Error("render failed", zap.String("page", page), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// validationMessages flattens validator errors into user-facing notices.
func validationMessages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid form data."}
	}
	var messages []string
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" is required.")
		case "email":
			messages = append(messages, "Please enter a valid email address.")
		case "url":
			messages = append(messages, "Please enter a valid URL.")
		case "min":
			messages = append(messages, fe.Field()+" is too short.")
		case "max":
			messages = append(messages, fe.Field()+" is too long.")
		default:
			messages = append(messages, fe.Field()+" is invalid.")
		}
	}
	return messages
}
