package probe

import (
	"bytes"
	"crypto/rsa"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"

	"github.com/vss-go/vssprobe/lib"
)

// DefaultSubject is the sub claim carried by every forged token.
const DefaultSubject = "02a1b2c3d4e5f6789abcdef0123456789abcdef0123456789abcdef0123456789a"

// The request body is fixed for every scenario: the auth boundary is what
// is under test, not the query.
var listRequest = lib.ListKeyVersionsRequest{
	StoreID:   "test_store",
	KeyPrefix: "test_",
	PageSize:  10,
}

// Expectation is the service behavior a scenario asserts.
type Expectation int

const (
	// ExpectAccepted passes when the service returns a 2xx status.
	ExpectAccepted Expectation = iota
	// ExpectRejected passes when the service returns 401 or 403.
	ExpectRejected
)

// Scenario is one probe-and-assert unit: obtain a key, forge a token,
// send the request, compare the status against Expect.
type Scenario struct {
	Name     string
	Key      func() (*rsa.PrivateKey, error)
	Subject  string
	Validity time.Duration
	Expect   Expectation
}

// Outcome is the result of a single scenario run.
type Outcome struct {
	Name    string
	Pass    bool
	Elapsed time.Duration
	Detail  string
}

// Scenarios returns the scenario list for a config, in run order.
func Scenarios(c *Config) ([]Scenario, error) {
	validity, err := time.ParseDuration(c.Validity)
	if err != nil {
		return nil, errors.Wrap(err, "invalid validity")
	}
	trusted := func() (*rsa.PrivateKey, error) { return LoadSigningKey(c.KeyFile) }
	s := []Scenario{
		{Name: "valid-token", Key: trusted, Subject: DefaultSubject, Validity: validity, Expect: ExpectAccepted},
		{Name: "invalid-token", Key: GenerateUntrustedKey, Subject: DefaultSubject, Validity: validity, Expect: ExpectRejected},
	}
	if c.CheckExpired {
		s = append(s, Scenario{Name: "expired-token", Key: trusted, Subject: DefaultSubject, Validity: -time.Hour, Expect: ExpectRejected})
	}
	return s, nil
}

// Runner executes scenarios against a VSS server, one at a time.
type Runner struct {
	server string
	client *http.Client
}

// NewRunner returns a Runner for the given base URL with a bounded
// request timeout.
func NewRunner(server string, timeout time.Duration, validateTLS bool) *Runner {
	return &Runner{
		server: server,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !validateTLS},
			},
			Timeout: timeout,
		},
	}
}

// Run executes a single scenario. Every failure mode is caught here and
// reported in the outcome; a failed scenario never prevents later ones.
func (r *Runner) Run(s Scenario) Outcome {
	start := time.Now()
	done := func(pass bool, detail string) Outcome {
		return Outcome{Name: s.Name, Pass: pass, Elapsed: time.Since(start), Detail: detail}
	}
	key, err := s.Key()
	if err != nil {
		return done(false, fmt.Sprintf("unable to obtain signing key: %v", err))
	}
	token, err := SignToken(key, s.Subject, s.Validity)
	if err != nil {
		return done(false, fmt.Sprintf("unable to sign token: %v", err))
	}
	status, err := r.send(token)
	if err != nil {
		return done(false, fmt.Sprintf("request failed: %v", err))
	}
	pass, detail := classify(s.Expect, status)
	return done(pass, detail)
}

// send posts the serialized list request with the token as bearer
// credential and returns the response status.
func (r *Runner) send(token string) (int, error) {
	u, err := url.Parse(r.server)
	if err != nil {
		return 0, errors.Wrap(err, "unable to parse server url")
	}
	u.Path = path.Join(u.Path, lib.ListKeyVersionsPath)
	req, err := http.NewRequest("POST", u.String(), bytes.NewReader(listRequest.Marshal()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", lib.ContentTypeProtobuf)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func classify(expect Expectation, status int) (bool, string) {
	accepted := status >= 200 && status < 300
	rejected := status == http.StatusUnauthorized || status == http.StatusForbidden
	switch expect {
	case ExpectAccepted:
		switch {
		case accepted:
			return true, fmt.Sprintf("status: %d", status)
		case rejected:
			return false, fmt.Sprintf("auth failed with status: %d", status)
		default:
			return false, fmt.Sprintf("server error with status: %d", status)
		}
	default:
		switch {
		case rejected:
			return true, fmt.Sprintf("status: %d", status)
		case accepted:
			return false, fmt.Sprintf("should have rejected token but got: %d", status)
		default:
			return false, fmt.Sprintf("unexpected status: %d", status)
		}
	}
}
