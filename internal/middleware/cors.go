package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// PriceCORSHeaders are the request headers browsers may send to the price endpoint.
var PriceCORSHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// NewOpenCORS allows any origin and answers preflights with 200 and no body.
func NewOpenCORS(allowedHeaders []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       allowedHeaders,
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler
}
