package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/pkg/metrics"
)

// Default HTTP client configuration constants.
const (
	defaultTimeout       = 10 * time.Second
	defaultRetryCount    = 2
	defaultRetryWaitTime = 100 * time.Millisecond
	defaultRetryMaxWait  = 2 * time.Second
)

// Client is the shared HTTP transport behind the network-backed gateways.
type Client struct {
	rc              *resty.Client
	includeManagers bool
}

// NewClient builds an HTTP gateway client against baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{}
	c.rc = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		SetRetryMaxWaitTime(defaultRetryMaxWait)

	// Retries cover transport-level failures only. An ordinary HTTP error
	// is a definitive backend answer and maps to the error taxonomy.
	c.rc.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPSet wires all entity families onto one shared client.
func NewHTTPSet(baseURL string, opts ...Option) Set {
	c := NewClient(baseURL, opts...)
	return Set{
		Auth:   &httpAuth{c: c},
		Users:  &httpUsers{c: c},
		Skills: &httpSkills{c: c},
		Scores: &httpScores{c: c},
	}
}

// request starts a call, reading the bearer token from the session source.
// The token is never cached between calls.
func (c *Client) request(ctx context.Context, ts TokenSource) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if tok := ts.Token(); tok != "" {
		req.SetAuthToken(tok)
	}
	return req
}

// outcome translates a completed exchange into the gateway error taxonomy
// and records the call metric.
func outcome(entity, op string, resp *resty.Response, err error) error {
	if err != nil {
		metrics.RecordGatewayCall(entity, op, "transport_error")
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, op, entity, err)
	}
	if resp.IsSuccess() {
		metrics.RecordGatewayCall(entity, op, "ok")
		return nil
	}
	metrics.RecordGatewayCall(entity, op, fmt.Sprintf("http_%d", resp.StatusCode()))
	switch code := resp.StatusCode(); code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s %s: status %d", ErrUnauthorized, op, entity, code)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, op, entity)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s %s: status %d", ErrValidation, op, entity, code)
	default:
		return fmt.Errorf("%w: %s %s: status %d", ErrRemote, op, entity, code)
	}
}

// httpAuth implements Auth over REST.
type httpAuth struct {
	c *Client
}

// loginResponse tolerates both token field spellings the backend has used.
type loginResponse struct {
	AccessToken string     `json:"access_token"`
	Token       string     `json:"token"`
	User        model.User `json:"user"`
}

func (a *httpAuth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var body loginResponse
	resp, err := a.c.request(ctx, Anonymous).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&body).
		Post("/auth/login")
	if err != nil || !resp.IsSuccess() {
		// Any non-2xx is an authentication failure, not distinguished
		// further by the backend contract.
		if err == nil {
			metrics.RecordGatewayCall("auth", "login", fmt.Sprintf("http_%d", resp.StatusCode()))
			return LoginResult{}, fmt.Errorf("%w: login rejected", ErrUnauthorized)
		}
		metrics.RecordGatewayCall("auth", "login", "transport_error")
		return LoginResult{}, fmt.Errorf("%w: login: %v", ErrTransport, err)
	}
	metrics.RecordGatewayCall("auth", "login", "ok")
	token := body.AccessToken
	if token == "" {
		token = body.Token
	}
	return LoginResult{User: body.User.Redacted(), Token: token}, nil
}

func (a *httpAuth) Logout(ctx context.Context, ts TokenSource) error {
	resp, err := a.c.request(ctx, ts).Post("/auth/logout")
	return outcome("auth", "logout", resp, err)
}

// httpUsers implements Users over REST.
type httpUsers struct {
	c *Client
}

func (g *httpUsers) Employees(ctx context.Context, ts TokenSource) ([]model.User, error) {
	var out []model.User
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/employees")
	if err := outcome("users", "list_employees", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpUsers) Trainers(ctx context.Context, ts TokenSource) ([]model.User, error) {
	var out []model.User
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/trainers")
	if err := outcome("users", "list_trainers", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// List unions employees and trainers. The backend does not enumerate
// managers; WithManagers folds them in from /managers once the backend
// grows that route.
func (g *httpUsers) List(ctx context.Context, ts TokenSource) ([]model.User, error) {
	employees, err := g.Employees(ctx, ts)
	if err != nil {
		return nil, err
	}
	trainers, err := g.Trainers(ctx, ts)
	if err != nil {
		return nil, err
	}
	all := append(employees, trainers...)
	if g.c.includeManagers {
		var managers []model.User
		resp, err := g.c.request(ctx, ts).SetResult(&managers).Get("/managers")
		if err := outcome("users", "list_managers", resp, err); err != nil {
			return nil, err
		}
		all = append(all, managers...)
	}
	return all, nil
}

func (g *httpUsers) Get(ctx context.Context, ts TokenSource, id string) (model.Employee, error) {
	var out model.Employee
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/employees/" + id)
	if err := outcome("users", "get", resp, err); err != nil {
		return model.Employee{}, err
	}
	return out, nil
}

func (g *httpUsers) Create(ctx context.Context, ts TokenSource, u model.User) (model.User, error) {
	if err := u.ValidateNew(); err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var out model.User
	resp, err := g.c.request(ctx, ts).SetBody(u).SetResult(&out).Post("/employees")
	if err := outcome("users", "create", resp, err); err != nil {
		return model.User{}, err
	}
	return out.Redacted(), nil
}

func (g *httpUsers) Update(ctx context.Context, ts TokenSource, id string, u model.User) (model.User, error) {
	// The backend rejects ids in update bodies; the id travels in the path.
	u.ID = ""
	var out model.User
	resp, err := g.c.request(ctx, ts).SetBody(u).SetResult(&out).Put("/employees/" + id)
	if err := outcome("users", "update", resp, err); err != nil {
		return model.User{}, err
	}
	return out.Redacted(), nil
}

func (g *httpUsers) Delete(ctx context.Context, ts TokenSource, id string) error {
	resp, err := g.c.request(ctx, ts).Delete("/employees/" + id)
	return outcome("users", "delete", resp, err)
}

// httpSkills implements Skills over REST.
type httpSkills struct {
	c *Client
}

func (g *httpSkills) List(ctx context.Context, ts TokenSource) ([]model.Skill, error) {
	var out []model.Skill
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/skills")
	if err := outcome("skills", "list", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpSkills) Get(ctx context.Context, ts TokenSource, id string) (model.Skill, error) {
	var out model.Skill
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/skills/" + id)
	if err := outcome("skills", "get", resp, err); err != nil {
		return model.Skill{}, err
	}
	return out, nil
}

func (g *httpSkills) Create(ctx context.Context, ts TokenSource, s model.Skill) (model.Skill, error) {
	if err := s.Validate(); err != nil {
		return model.Skill{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var out model.Skill
	resp, err := g.c.request(ctx, ts).SetBody(s).SetResult(&out).Post("/skills")
	if err := outcome("skills", "create", resp, err); err != nil {
		return model.Skill{}, err
	}
	return out, nil
}

func (g *httpSkills) Update(ctx context.Context, ts TokenSource, id string, s model.Skill) (model.Skill, error) {
	s.ID = ""
	var out model.Skill
	resp, err := g.c.request(ctx, ts).SetBody(s).SetResult(&out).Put("/skills/" + id)
	if err := outcome("skills", "update", resp, err); err != nil {
		return model.Skill{}, err
	}
	return out, nil
}

func (g *httpSkills) Delete(ctx context.Context, ts TokenSource, id string) error {
	resp, err := g.c.request(ctx, ts).Delete("/skills/" + id)
	return outcome("skills", "delete", resp, err)
}

// httpScores implements Scores over REST.
type httpScores struct {
	c *Client
}

func (g *httpScores) List(ctx context.Context, ts TokenSource) ([]model.Score, error) {
	var out []model.Score
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/scores")
	if err := outcome("scores", "list", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpScores) Get(ctx context.Context, ts TokenSource, id string) (model.Score, error) {
	var out model.Score
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/scores/" + id)
	if err := outcome("scores", "get", resp, err); err != nil {
		return model.Score{}, err
	}
	return out, nil
}

func (g *httpScores) ByEmployee(ctx context.Context, ts TokenSource, employeeID string) ([]model.Score, error) {
	var out []model.Score
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/scores/employee/" + employeeID)
	if err := outcome("scores", "by_employee", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpScores) AverageByEmployee(ctx context.Context, ts TokenSource, employeeID string) (float64, error) {
	var out struct {
		Average float64 `json:"average"`
	}
	resp, err := g.c.request(ctx, ts).SetResult(&out).Get("/scores/employee/" + employeeID + "/average")
	if err := outcome("scores", "average", resp, err); err != nil {
		return 0, err
	}
	return out.Average, nil
}

func (g *httpScores) Create(ctx context.Context, ts TokenSource, s model.Score) (model.Score, error) {
	if err := s.Validate(); err != nil {
		return model.Score{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var out model.Score
	resp, err := g.c.request(ctx, ts).SetBody(s).SetResult(&out).Post("/scores")
	if err := outcome("scores", "create", resp, err); err != nil {
		return model.Score{}, err
	}
	return out, nil
}

func (g *httpScores) Update(ctx context.Context, ts TokenSource, id string, s model.Score) (model.Score, error) {
	s.ID = ""
	var out model.Score
	resp, err := g.c.request(ctx, ts).SetBody(s).SetResult(&out).Put("/scores/" + id)
	if err := outcome("scores", "update", resp, err); err != nil {
		return model.Score{}, err
	}
	return out, nil
}

func (g *httpScores) Delete(ctx context.Context, ts TokenSource, id string) error {
	resp, err := g.c.request(ctx, ts).Delete("/scores/" + id)
	return outcome("scores", "delete", resp, err)
}
