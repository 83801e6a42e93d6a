package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

// TokenSource supplies the current session credential. It is consulted
// when each request is built, never earlier, so a logout or credential
// rotation takes effect on the very next call.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource, mainly for tests and
// one-shot commands.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// AuthMode selects how the credential travels to the server.
type AuthMode int

const (
	// AuthBearer sends "Authorization: Bearer <token>".
	AuthBearer AuthMode = iota
	// AuthCookie sends the token as the session_token cookie, for
	// deployments that use cookie sessions instead of bearer headers.
	AuthCookie
)

// sessionCookieName matches the cookie the cookie-session deployment reads.
const sessionCookieName = "session_token"

// Client is the Warriorfoot API client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	mode       AuthMode
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAuthMode sets the credential transport strategy.
func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) { c.mode = mode }
}

// WithLogger attaches a request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new API client. tokens may be nil for a purely
// anonymous client.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UsingToken returns a copy of the client pinned to a fixed credential,
// bypassing the TokenSource. For requests that must carry a credential
// the caller is about to discard locally, such as the final logout.
func (c *Client) UsingToken(tok string) *Client {
	cc := *c
	cc.tokens = StaticToken(tok)
	return &cc
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AcceptInviteRequest is the payload for redeeming an invite token.
type AcceptInviteRequest struct {
	Token                string `json:"token"`
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
	SelectedTeamID       string `json:"selectedTeamId"`
}

// InviteRequest is the payload for sending a league invite.
type InviteRequest struct {
	InviteeName  string `json:"inviteeName"`
	InviteeEmail string `json:"inviteeEmail"`
}

// createLeagueRequest carries the optional league name.
type createLeagueRequest struct {
	LeagueName string `json:"leagueName"`
}

// Register creates an account and returns the session bundle.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.Session, error) {
	var bundle domain.Session
	if err := c.post(ctx, "/auth/register", req, &bundle); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &bundle, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.Session, error) {
	var bundle domain.Session
	if err := c.post(ctx, "/auth/login", req, &bundle); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &bundle, nil
}

// Logout invalidates the server-side session. Callers treat this as
// fire-and-forget: local state is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// ValidateInvite checks an invite token before showing the accept form.
func (c *Client) ValidateInvite(ctx context.Context, token string) (*domain.InviteValidation, error) {
	params := url.Values{}
	params.Set("token", token)

	var v domain.InviteValidation
	if err := c.get(ctx, "/invites/validate?"+params.Encode(), &v); err != nil {
		return nil, fmt.Errorf("client.ValidateInvite: %w", err)
	}
	return &v, nil
}

// AvailableTeams lists the unmanaged teams of a league.
func (c *Client) AvailableTeams(ctx context.Context, leagueID uuid.UUID) ([]domain.AvailableTeam, error) {
	params := url.Values{}
	params.Set("leagueId", leagueID.String())

	var teams []domain.AvailableTeam
	if err := c.get(ctx, "/invites/available-teams?"+params.Encode(), &teams); err != nil {
		return nil, fmt.Errorf("client.AvailableTeams: %w", err)
	}
	return teams, nil
}

// AcceptInvite redeems an invite token and returns the session bundle.
func (c *Client) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (*domain.Session, error) {
	var bundle domain.Session
	if err := c.post(ctx, "/invites/accept", req, &bundle); err != nil {
		return nil, fmt.Errorf("client.AcceptInvite: %w", err)
	}
	return &bundle, nil
}

// SendInvite emails an invite to join the sender's active league.
func (c *Client) SendInvite(ctx context.Context, req InviteRequest) error {
	if err := c.post(ctx, "/invites/send", req, nil); err != nil {
		return fmt.Errorf("client.SendInvite: %w", err)
	}
	return nil
}

// UserLeagues lists the leagues the authenticated user belongs to.
func (c *Client) UserLeagues(ctx context.Context) ([]domain.UserLeague, error) {
	var leagues []domain.UserLeague
	if err := c.get(ctx, "/leagues/user/list", &leagues); err != nil {
		return nil, fmt.Errorf("client.UserLeagues: %w", err)
	}
	return leagues, nil
}

// CreateLeague generates a fresh league and assigns the caller a team.
// name is optional; an empty name lets the server pick the default.
func (c *Client) CreateLeague(ctx context.Context, name string) (*domain.CreatedLeague, error) {
	var body any
	if name != "" {
		body = createLeagueRequest{LeagueName: name}
	}
	var created domain.CreatedLeague
	if err := c.doRequest(ctx, http.MethodPost, "/leagues/create", body, &created); err != nil {
		return nil, fmt.Errorf("client.CreateLeague: %w", err)
	}
	return &created, nil
}

// DeleteLeague removes a league. Only its creator may do this; anyone
// else gets an invalid-input error.
func (c *Client) DeleteLeague(ctx context.Context, leagueID uuid.UUID) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/leagues/"+leagueID.String(), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteLeague: %w", err)
	}
	return nil
}

// LeaveLeague withdraws the caller from a league. The creator cannot
// leave; that comes back as a conflict.
func (c *Client) LeaveLeague(ctx context.Context, leagueID uuid.UUID) error {
	if err := c.doRequest(ctx, http.MethodPost, "/leagues/"+leagueID.String()+"/leave", nil, nil); err != nil {
		return fmt.Errorf("client.LeaveLeague: %w", err)
	}
	return nil
}

// LeagueDashboard fetches the division tables of a league.
func (c *Client) LeagueDashboard(ctx context.Context, leagueID uuid.UUID) (*domain.LeagueInfo, error) {
	var info domain.LeagueInfo
	if err := c.get(ctx, "/leagues/"+leagueID.String(), &info); err != nil {
		return nil, fmt.Errorf("client.LeagueDashboard: %w", err)
	}
	return &info, nil
}

// Team fetches a single team, including its manager's name.
func (c *Client) Team(ctx context.Context, teamID uuid.UUID) (*domain.TeamInfo, error) {
	var team domain.TeamInfo
	if err := c.get(ctx, "/teams/"+teamID.String(), &team); err != nil {
		return nil, fmt.Errorf("client.Team: %w", err)
	}
	return &team, nil
}

// TeamPlayers fetches a team's roster.
func (c *Client) TeamPlayers(ctx context.Context, teamID uuid.UUID) ([]domain.PlayerSummary, error) {
	var players []domain.PlayerSummary
	if err := c.get(ctx, "/teams/"+teamID.String()+"/players", &players); err != nil {
		return nil, fmt.Errorf("client.TeamPlayers: %w", err)
	}
	return players, nil
}

// Player fetches a player's full attribute sheet.
func (c *Client) Player(ctx context.Context, playerID uuid.UUID) (*domain.PlayerDetails, error) {
	var p domain.PlayerDetails
	if err := c.get(ctx, "/players/"+playerID.String(), &p); err != nil {
		return nil, fmt.Errorf("client.Player: %w", err)
	}
	return &p, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachCredential(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := c.readError(resp)
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).
			Str("kind", apiErr.Kind.String()).Msg("api error")
		return apiErr
	}
	c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("api ok")

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// attachCredential applies the configured transport, reading the token
// fresh from the source.
func (c *Client) attachCredential(req *http.Request) {
	if c.tokens == nil {
		return
	}
	tok := c.tokens.Token()
	if tok == "" {
		return
	}
	switch c.mode {
	case AuthCookie:
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tok})
	default:
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

// readError converts a non-2xx response into an APIError. The body may
// be a {"error": "..."} document or plain text; both carry the message.
func (c *Client) readError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Kind: kindFromStatus(resp.StatusCode)}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if err != nil {
		apiErr.Message = fmt.Sprintf("failed to read body: %v", err)
		return apiErr
	}
	var wrapped struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(respBody, &wrapped) == nil && wrapped.Error != "" {
		apiErr.Message = wrapped.Error
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(respBody))
	return apiErr
}
