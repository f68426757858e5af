package registration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/pkg/errors"
)

func TestEndpoint(t *testing.T) {
	type Wanted struct {
		endpoint string
		err      bool
	}

	type Parameters struct {
		target string
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Organization URL",
			Wanted{endpoint: "https://api.github.com/orgs/acme/actions/runners/registration-token"},
			Parameters{target: "https://github.com/acme"},
		},
		{
			"Organization URL with trailing slash",
			Wanted{endpoint: "https://api.github.com/orgs/acme/actions/runners/registration-token"},
			Parameters{target: "https://github.com/acme/"},
		},
		{
			"Repository URL",
			Wanted{endpoint: "https://api.github.com/repos/acme/widgets/actions/runners/registration-token"},
			Parameters{target: "https://github.com/acme/widgets"},
		},
		{
			"Too short",
			Wanted{err: true},
			Parameters{target: "https://github.com"},
		},
	}

	client := New("", "token")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint, err := client.Endpoint(tc.parameters.target)

			if tc.wanted.err {
				assert.NotEqual(t, err, nil)
				return
			}

			assert.Equal(t, err, nil)
			assert.Equal(t, endpoint, tc.wanted.endpoint)
		})
	}
}

func TestRegistrationTokenNoCredential(t *testing.T) {
	client := New("http://127.0.0.1:1", "")

	_, err := client.RegistrationToken(context.Background(), "https://github.com/acme")

	assert.Equal(t, errors.Is(err, ErrNoCredential), true)
}

func TestRegistrationToken(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, r.Method, http.MethodPost)
		assert.Equal(t, r.URL.Path, "/orgs/acme/actions/runners/registration-token")
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer pat")

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"token": "AAAA", "expires_at": "2026-08-28T00:00:00Z"}`)
	}))
	defer server.Close()

	client := New(server.URL, "pat")

	token, err := client.RegistrationToken(context.Background(), "https://github.com/acme")

	assert.Equal(t, err, nil)
	assert.Equal(t, token, "AAAA")
	assert.Equal(t, requests, 1)
}

func TestRegistrationTokenRetriesTransientFailure(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		fmt.Fprint(w, `{"token": "BBBB"}`)
	}))
	defer server.Close()

	client := New(server.URL, "pat")

	token, err := client.RegistrationToken(context.Background(), "https://github.com/acme/widgets")

	assert.Equal(t, err, nil)
	assert.Equal(t, token, "BBBB")
	assert.Equal(t, requests, 2)
}

func TestRegistrationTokenExhaustsRetries(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, "pat")

	_, err := client.RegistrationToken(context.Background(), "https://github.com/acme")

	assert.Equal(t, errors.Is(err, ErrService), true)
	assert.Equal(t, requests, 3)
}

func TestRegistrationTokenRejectsNonStringToken(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"token": 12345}`)
	}))
	defer server.Close()

	client := New(server.URL, "pat")

	_, err := client.RegistrationToken(context.Background(), "https://github.com/acme")

	assert.Equal(t, errors.Is(err, ErrService), true)

	// a malformed payload is permanent, not retried
	assert.Equal(t, requests, 1)
}

func TestLatestRunnerVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/repos/actions/runner/releases/latest")
		fmt.Fprint(w, `{"tag_name": "v2.321.0"}`)
	}))
	defer server.Close()

	client := New(server.URL, "")

	version, err := client.LatestRunnerVersion(context.Background())

	assert.Equal(t, err, nil)
	assert.Equal(t, version, "2.321.0")
}

func TestLatestRunnerVersionMissingTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New(server.URL, "")

	_, err := client.LatestRunnerVersion(context.Background())

	assert.Equal(t, errors.Is(err, ErrService), true)
}
