package api

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

	"student_portal/internal/platform/logger"
)

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed value.
type StaticToken string

// Token returns the token.
func (t StaticToken) Token() string { return string(t) }

// Client calls the portal API.
type Client struct {
	cfg    Config
	client *http.Client
	tokens TokenSource
}

// NewClient creates a Client. tokens may be nil for public calls only.
func NewClient(cfg Config, client *http.Client, tokens TokenSource) *Client {
	return &Client{cfg: cfg, client: client, tokens: tokens}
}

// WithTokens returns a copy of the client that authenticates with tokens.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	cp := *c
	cp.tokens = tokens
	return &cp
}

// Login checks credentials against the kind's login route.
func (c *Client) Login(ctx context.Context, kind Kind, email, password string) (*LoginResult, error) {
	var body struct {
		Token     string          `json:"token"`
		ExpiresAt time.Time       `json:"expires_at"`
		UserType  Kind            `json:"user_type"`
		User      json.RawMessage `json:"user"`
	}
	creds := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/"+string(kind)+"/login", creds, &body); err != nil {
		return nil, err
	}
	user, err := DecodeUser(body.UserType, body.User)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: body.Token, ExpiresAt: body.ExpiresAt, User: user}, nil
}

// Logout revokes the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// LogoutAll revokes every token of the current user and returns how many were revoked.
func (c *Client) LogoutAll(ctx context.Context) (int64, error) {
	var body struct {
		Revoked int64 `json:"revoked"`
	}
	if err := c.do(ctx, http.MethodPost, "/logout/all", nil, &body); err != nil {
		return 0, err
	}
	return body.Revoked, nil
}

// Revoke logs out the given token regardless of the client's token source.
func (c *Client) Revoke(ctx context.Context, token string) error {
	return c.WithTokens(StaticToken(token)).Logout(ctx)
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var body struct {
		UserType Kind            `json:"user_type"`
		User     json.RawMessage `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/me", nil, &body); err != nil {
		return User{}, err
	}
	return DecodeUser(body.UserType, body.User)
}

// Announcements lists every announcement, newest first.
func (c *Client) Announcements(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	err := c.do(ctx, http.MethodGet, "/announcements", nil, &out)
	return out, err
}

// DepartmentAnnouncements lists one department's announcements, newest first.
func (c *Client) DepartmentAnnouncements(ctx context.Context, department string) ([]Announcement, error) {
	var out []Announcement
	err := c.do(ctx, http.MethodGet, "/announcements/"+url.PathEscape(department), nil, &out)
	return out, err
}

// CreateAnnouncement posts an announcement (admin only).
func (c *Client) CreateAnnouncement(ctx context.Context, in NewAnnouncement) (*Announcement, error) {
	var out Announcement
	if err := c.do(ctx, http.MethodPost, "/admin/announcements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Projects lists every project.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

// CreateProject adds a project (admin only).
func (c *Client) CreateProject(ctx context.Context, title, description string) (*Project, error) {
	var out Project
	in := map[string]string{"title": title, "description": description}
	if err := c.do(ctx, http.MethodPost, "/admin/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Wishlist lists a student's wishlist.
func (c *Client) Wishlist(ctx context.Context, studentID uint) ([]WishlistItem, error) {
	var out []WishlistItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/student/%d/wishlist", studentID), nil, &out)
	return out, err
}

// AddToWishlist puts a project on the student's wishlist.
func (c *Client) AddToWishlist(ctx context.Context, studentID, projectID uint) (*WishlistItem, error) {
	var out WishlistItem
	in := map[string]uint{"project_id": projectID}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/student/%d/wishlist", studentID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromWishlist deletes a wishlist item.
func (c *Client) RemoveFromWishlist(ctx context.Context, itemID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/student/wishlist/%d", itemID), nil, nil)
}

// Students lists students, optionally filtered by search text (admin only).
func (c *Client) Students(ctx context.Context, search string) ([]Student, error) {
	path := "/admin/students"
	if search = strings.TrimSpace(search); search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	var out []Student
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// StudentWishlists returns every student's wishlist (admin only).
func (c *Client) StudentWishlists(ctx context.Context) ([]StudentWishlist, error) {
	var out []StudentWishlist
	err := c.do(ctx, http.MethodGet, "/admin/student-wishlists", nil, &out)
	return out, err
}

// ExportWishlists streams the .xlsx export into w (admin only).
func (c *Client) ExportWishlists(ctx context.Context, w io.Writer) error {
	res, err := c.send(ctx, http.MethodGet, "/admin/student-wishlists/export", nil)
	if err != nil {
		return err
	}
	defer closeBody(res)
	if res.StatusCode >= 400 {
		return decodeError(res)
	}
	_, err = io.Copy(w, res.Body)
	return err
}

// do sends a JSON request and decodes a JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	res, err := c.send(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer closeBody(res)

	if res.StatusCode >= 400 {
		return decodeError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return c.client.Do(req)
}

func decodeError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(res.StatusCode)
	}
	return apiErr
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close response body")
	}
}
