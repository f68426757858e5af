package registration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fleetci/fleetci/pkg/static"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

var (
	ErrNoCredential = errors.New("github credential not configured")
	ErrService      = errors.New("registration service unavailable")
)

const (
	attempts   = 3
	retryDelay = 1 * time.Second
)

func New(api string, personalToken string) *Client {
	if api == "" {
		api = static.GITHUB_API
	}

	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
		api:     strings.TrimSuffix(api, "/"),
		token:   personalToken,
	}
}

// Endpoint picks the org- or repo-scoped registration endpoint based on the
// shape of the target URL: four path segments mean an org URL, anything
// longer means owner/repo.
func (client *Client) Endpoint(target string) (string, error) {
	target = strings.TrimSuffix(target, "/")
	parts := strings.Split(target, "/")

	if len(parts) < 4 {
		return "", errors.Errorf("unrecognized registration target: %s", target)
	}

	if len(parts) == 4 {
		return fmt.Sprintf("%s/orgs/%s/actions/runners/registration-token", client.api, parts[3]), nil
	}

	owner, repo := parts[len(parts)-2], parts[len(parts)-1]

	return fmt.Sprintf("%s/repos/%s/%s/actions/runners/registration-token", client.api, owner, repo), nil
}

// RegistrationToken obtains a short-lived runner registration token for the
// target org or repository. The token is handed straight to the caller and
// never stored.
func (client *Client) RegistrationToken(ctx context.Context, target string) (string, error) {
	if client.token == "" {
		return "", errors.Wrapf(ErrNoCredential, "set %s in the environment", static.ENV_GITHUB_TOKEN)
	}

	endpoint, err := client.Endpoint(target)

	if err != nil {
		return "", err
	}

	var token string

	operation := func() error {
		payload, reqErr := client.do(ctx, http.MethodPost, endpoint)

		if reqErr != nil {
			return reqErr
		}

		value, ok := payload["token"]

		if !ok {
			return backoff.Permanent(errors.Wrap(ErrService, "registration response carries no token"))
		}

		text, ok := value.(string)

		if !ok {
			return backoff.Permanent(errors.Wrap(ErrService, "registration token is not a string"))
		}

		token = text

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), attempts-1), ctx)

	err = backoff.Retry(operation, policy)

	if err != nil {
		if errors.Is(err, ErrService) {
			return "", err
		}

		return "", errors.Wrap(ErrService, err.Error())
	}

	return token, nil
}

// LatestRunnerVersion fetches the latest published runner-agent release tag
// and strips its leading v.
func (client *Client) LatestRunnerVersion(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", client.api, static.GITHUB_RUNNER_RELEASE)

	payload, err := client.do(ctx, http.MethodGet, endpoint)

	if err != nil {
		return "", err
	}

	tag, ok := payload["tag_name"].(string)

	if !ok {
		return "", errors.Wrap(ErrService, "release response carries no tag_name")
	}

	return strings.TrimPrefix(tag, "v"), nil
}

func (client *Client) do(ctx context.Context, method string, endpoint string) (map[string]interface{}, error) {
	err := client.limiter.Wait(ctx)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)

	if err != nil {
		return nil, err
	}

	if client.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", client.token))
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.http.Do(req)

	if err != nil {
		return nil, err
	}

	defer func() {
		resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var payload map[string]interface{}

	err = json.Unmarshal(body, &payload)

	if err != nil {
		return nil, err
	}

	return payload, nil
}
