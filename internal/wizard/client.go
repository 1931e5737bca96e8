package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hackarena/backend/internal/models"
)

// Client calls the backend API on behalf of the TUI.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 90 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), "application/json", out)
}

// Login authenticates, stores the session token on the client, and returns
// the user's role so the wizard can pick its step count.
func (c *Client) Login(ctx context.Context, email, password string) (models.Role, error) {
	var data struct {
		Token string `json:"token"`
		User  struct {
			Role models.Role `json:"role"`
		} `json:"user"`
	}
	err := c.postJSON(ctx, "/users/login", map[string]string{
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return "", err
	}
	c.Token = data.Token
	return data.User.Role, nil
}

// UploadPhoto uploads a local file and returns its public URL.
func (c *Client) UploadPhoto(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var data struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/uploads", &buf, mw.FormDataContentType(), &data); err != nil {
		return "", err
	}
	return data.URL, nil
}

// Submit finishes the wizard: uploads the photo when one is set, posts the
// event registration, and on the create branch registers the team. The photo
// upload must succeed before anything is persisted.
func (c *Client) Submit(ctx context.Context, s State) error {
	f := s.Form

	photoURL := ""
	if f.PhotoPath != "" {
		url, err := c.UploadPhoto(ctx, f.PhotoPath)
		if err != nil {
			return fmt.Errorf("photo upload: %w", err)
		}
		photoURL = url
	}

	payload := map[string]interface{}{
		"dni": strings.TrimSpace(f.DNI),
	}
	if s.Role.IsStaff() {
		payload["company"] = strings.TrimSpace(f.Company)
		payload["position"] = strings.TrimSpace(f.Position)
		payload["food_preference"] = strings.TrimSpace(f.FoodPreference)
		payload["photo_url"] = photoURL
	} else {
		age, _ := strconv.Atoi(strings.TrimSpace(f.Age))
		payload["university"] = strings.TrimSpace(f.University)
		payload["career"] = strings.TrimSpace(f.Career)
		payload["age"] = age
		if len(f.Priorities) >= 3 {
			payload["category_1"] = f.Priorities[0]
			payload["category_2"] = f.Priorities[1]
			payload["category_3"] = f.Priorities[2]
		}
		if f.Choice == ChoiceHasTeam {
			payload["team"] = strings.TrimSpace(f.TeamCode)
		}
	}
	setIf(payload, "github", f.GitHub)
	setIf(payload, "linkedin", f.LinkedIn)
	setIf(payload, "instagram", f.Instagram)
	setIf(payload, "twitter", f.Twitter)
	setIf(payload, "cv_link", f.CVLink)

	if err := c.postJSON(ctx, "/users/register-event", payload, nil); err != nil {
		return err
	}

	if f.Choice == ChoiceCreate && !s.Role.IsStaff() {
		team := map[string]interface{}{
			"name":     strings.TrimSpace(f.TeamName),
			"tell_why": strings.TrimSpace(f.TeamMotivation),
		}
		if len(f.Priorities) >= 3 {
			team["category_1"] = f.Priorities[0]
			team["category_2"] = f.Priorities[1]
			team["category_3"] = f.Priorities[2]
		}
		if err := c.postJSON(ctx, "/teams", team, nil); err != nil {
			return fmt.Errorf("team creation: %w", err)
		}
	}
	return nil
}

func setIf(m map[string]interface{}, key, val string) {
	if v := strings.TrimSpace(val); v != "" {
		m[key] = v
	}
}
