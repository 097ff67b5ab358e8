package esolat

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"solat-assistant/api"
	"solat-assistant/config"
	"solat-assistant/models"
)

const takwimRoute = "esolatApi/takwimsolat"

// ESolatApiClient embeds the common HTTPClient
type ESolatApiClient struct {
	*api.HTTPClient
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewESolatApiClient creates a new instance of ESolatApiClient
func NewESolatApiClient(httpClient *api.HTTPClient) *ESolatApiClient {
	return &ESolatApiClient{
		HTTPClient:     httpClient,
		maxRetries:     2,
		initialBackoff: config.ESOLAT_RETRY_INITIAL_BACKOFF,
	}
}

// WithRetry sets how often a failed lookup is retried and the first wait.
// A status other than OK from e-Solat is never retried.
func (c *ESolatApiClient) WithRetry(maxRetries uint64, initialBackoff time.Duration) *ESolatApiClient {
	c.maxRetries = maxRetries
	c.initialBackoff = initialBackoff
	return c
}

// GetWeek retrieves the rolling week of prayer times e-Solat publishes for a zone.
func (c *ESolatApiClient) GetWeek(ctx context.Context, zone models.Zone) (*models.ESolatResponse, error) {
	response, err := c.fetch(ctx, http.MethodGet, takwimQuery("week", zone), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "e-Solat week lookup for %s", zone)
	}
	return response, nil
}

// GetDuration retrieves prayer times for an inclusive date range. The range
// travels in the POST body as datestart/dateend.
func (c *ESolatApiClient) GetDuration(ctx context.Context, zone models.Zone, start, end time.Time) (*models.ESolatResponse, error) {
	form := url.Values{
		"datestart": {start.In(models.MalaysiaLocation).Format(models.DateLayout)},
		"dateend":   {end.In(models.MalaysiaLocation).Format(models.DateLayout)},
	}
	response, err := c.fetch(ctx, http.MethodPost, takwimQuery("duration", zone), form)
	if err != nil {
		return nil, errors.Wrapf(err, "e-Solat duration lookup for %s", zone)
	}
	return response, nil
}

func (c *ESolatApiClient) fetch(ctx context.Context, method string, query url.Values, body interface{}) (*models.ESolatResponse, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.initialBackoff
	exp.Multiplier = 2
	exp.Reset()

	var response models.ESolatResponse
	attempt := 0
	op := func() error {
		attempt++
		response = models.ESolatResponse{}
		if err := c.Request(ctx, method, "", query, nil, body, &response); err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Str("period", query.Get("period")).Msg("e-Solat request failed")
			return err
		}
		if err := checkStatus(&response); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(exp, c.maxRetries), ctx)); err != nil {
		return nil, err
	}
	return &response, nil
}

func takwimQuery(period string, zone models.Zone) url.Values {
	return url.Values{
		"r":      {takwimRoute},
		"period": {period},
		"zone":   {string(zone)},
	}
}

// e-Solat answers "OK!" on success and a message such as "NO_RECORD!" otherwise.
func checkStatus(resp *models.ESolatResponse) error {
	if resp.Status != "" && !strings.HasPrefix(strings.ToUpper(resp.Status), "OK") {
		return errors.Errorf("e-Solat status %q", resp.Status)
	}
	return nil
}
