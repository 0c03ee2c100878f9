package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lcabreja/psiq/internal/models"
)

// SignUpInput carries the account and profile halves of a registration.
type SignUpInput struct {
	Email        string
	Password     string
	RoleID       int
	Name         string
	Lastname     string
	Birthdate    string
	Phone        string
	DocumentType string
	Document     string
	Exequatur    string
	Sex          string
}

// Login exchanges credentials for a bearer token. The token endpoint takes
// form-encoded credentials, unlike the rest of the backend.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.postForm(ctx, "usuarios/token/", form, &resp); err != nil {
		return "", mapStatus(err, map[int]string{
			http.StatusUnauthorized: "Incorrect username or password",
		})
	}
	return resp.AccessToken, nil
}

// SignUp registers a new professional account.
func (c *Client) SignUp(ctx context.Context, in SignUpInput) error {
	body := map[string]any{
		"usuario": map[string]any{
			"nombre":   in.Email,
			"email":    in.Email,
			"password": in.Password,
			"id_rol":   in.RoleID,
		},
		"professional": map[string]any{
			"name":          in.Name,
			"lastname":      in.Lastname,
			"birthdate":     in.Birthdate,
			"phone":         in.Phone,
			"document_type": in.DocumentType,
			"document":      in.Document,
			"exequatur":     in.Exequatur,
			"sex":           in.Sex,
		},
	}
	return c.send(ctx, http.MethodPost, "usuarios/create", body, nil)
}

// CurrentUser returns the account behind the attached token.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.get(ctx, "usuarios/me/", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ChangePassword replaces the current user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"password":     newPassword,
	}
	err := c.send(ctx, http.MethodPut, "usuarios/change_password", body, nil)
	return mapDetail(err, http.StatusBadRequest, []string{
		"The old password does not match with the current password.",
		"You are entering the same password.",
	})
}
