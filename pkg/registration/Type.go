package registration

import (
	"net/http"

	"golang.org/x/time/rate"
)

type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	api     string
	token   string
}
